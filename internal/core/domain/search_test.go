package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearchMatch_Identifier(t *testing.T) {
	tests := []struct {
		name string
		logo string
		want string
	}{
		{
			name: "cdn thumbnail",
			logo: "https://cdn.akamai.steamstatic.com/steam/apps/1145360/capsule_sm_120.jpg?t=1",
			want: "1145360",
		},
		{
			name: "exactly six segments",
			logo: "a/b/c/d/e/42",
			want: "42",
		},
		{
			name: "empty segment is returned as is",
			logo: "a/b/c/d/e//f",
			want: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := SearchMatch{Logo: tt.logo}.Identifier()

			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestSearchMatch_Identifier_TooFewSegments(t *testing.T) {
	for _, logo := range []string{"", "a/b/c/d/e", "https://cdn/x.jpg"} {
		_, err := SearchMatch{Name: "x", Logo: logo}.Identifier()

		require.Error(t, err, logo)
		assert.True(t, errors.Is(err, ErrDecode))
		assert.Equal(t, KindDecode, KindOf(err))
	}
}
