package domain

import (
	"fmt"
	"strings"
)

// identifierSegment is the position of the app ID in a thumbnail URL split on "/",
// e.g. https://cdn.akamai.steamstatic.com/steam/apps/<id>/capsule_sm_120.jpg.
const identifierSegment = 5

// SearchMatch is one item returned by a store search.
type SearchMatch struct {
	// Name is the display name.
	Name string `json:"name"`

	// Logo is the thumbnail URL. Its path encodes the app identifier.
	Logo string `json:"logo"`
}

// Identifier extracts the app identifier from the thumbnail URL.
// It returns exactly the sixth "/"-delimited segment.
func (m SearchMatch) Identifier() (string, error) {
	segments := strings.Split(m.Logo, "/")
	if len(segments) <= identifierSegment {
		return "", NewRequestError(KindDecode, "extract identifier",
			fmt.Errorf("thumbnail %q has %d segments, need at least %d",
				m.Logo, len(segments), identifierSegment+1))
	}
	return segments[identifierSegment], nil
}
