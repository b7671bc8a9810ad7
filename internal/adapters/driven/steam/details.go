package steam

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// appDetailsEntry is the value under the app id key of /api/appdetails.
type appDetailsEntry struct {
	Success bool     `json:"success"`
	Data    *appData `json:"data"`
}

// appData is the store's detail payload.
type appData struct {
	Type               string             `json:"type"`
	Name               string             `json:"name"`
	SteamAppID         uint32             `json:"steam_appid"`
	RequiredAge        flexInt            `json:"required_age"`
	IsFree             bool               `json:"is_free"`
	SupportedLanguages string             `json:"supported_languages"`
	Developers         []string           `json:"developers"`
	Publishers         []string           `json:"publishers"`
	PriceOverview      *domain.Price      `json:"price_overview"`
	Platforms          domain.Platforms   `json:"platforms"`
	Categories         []tag              `json:"categories"`
	Genres             []tag              `json:"genres"`
	ReleaseDate        domain.ReleaseDate `json:"release_date"`
}

// tag is a category (numeric id) or genre (string id).
type tag struct {
	ID          flexString `json:"id"`
	Description string     `json:"description"`
}

// reviewsResponse is the /appreviews envelope.
type reviewsResponse struct {
	Success      int                   `json:"success"`
	QuerySummary *domain.ReviewSummary `json:"query_summary"`
}

// Fetch retrieves details and the review summary for one app.
// Both requests are issued concurrently and both must finish.
func (c *Client) Fetch(ctx context.Context, id string) (domain.TitleRecord, error) {
	op := "fetch " + id

	var (
		wg                       sync.WaitGroup
		detailsResp, reviewsResp *http.Response
		detailsErr, reviewsErr   error
	)

	wg.Add(2)
	go func() {
		defer wg.Done()
		detailsResp, detailsErr = c.get(ctx, op, "/api/appdetails", url.Values{"appids": {id}})
	}()
	go func() {
		defer wg.Done()
		reviewsResp, reviewsErr = c.get(ctx, op, "/appreviews/"+url.PathEscape(id),
			url.Values{"json": {"1"}, "purchase_type": {"all"}})
	}()
	wg.Wait()

	defer closeBody(detailsResp)
	defer closeBody(reviewsResp)

	// A throttled sibling wins over everything else, bodies unread.
	for _, resp := range []*http.Response{detailsResp, reviewsResp} {
		if resp != nil && isRateLimitStatus(resp.StatusCode) {
			return domain.TitleRecord{}, statusError(domain.KindRateLimited, op, resp.StatusCode)
		}
	}
	if detailsErr != nil {
		return domain.TitleRecord{}, detailsErr
	}
	if reviewsErr != nil {
		return domain.TitleRecord{}, reviewsErr
	}
	if err := checkStatus(op, detailsResp); err != nil {
		return domain.TitleRecord{}, err
	}
	if err := checkStatus(op, reviewsResp); err != nil {
		return domain.TitleRecord{}, err
	}

	data, err := decodeDetails(op, id, detailsResp)
	if err != nil {
		return domain.TitleRecord{}, err
	}

	var reviews reviewsResponse
	if err := decode(op, reviewsResp, &reviews); err != nil {
		return domain.TitleRecord{}, err
	}
	if reviews.QuerySummary == nil {
		return domain.TitleRecord{}, domain.NewRequestError(domain.KindDecode, op, errMissingField("query_summary"))
	}

	return data.toTitle(id, *reviews.QuerySummary), nil
}

func closeBody(resp *http.Response) {
	if resp != nil {
		_ = resp.Body.Close()
	}
}

// decodeDetails extracts the entry keyed by id from the details body.
func decodeDetails(op, id string, resp *http.Response) (*appData, error) {
	var body map[string]json.RawMessage
	if err := decode(op, resp, &body); err != nil {
		return nil, err
	}

	raw, ok := body[id]
	if !ok {
		return nil, domain.NewRequestError(domain.KindDecode, op, errMissingField(id))
	}

	var entry appDetailsEntry
	if err := json.Unmarshal(raw, &entry); err != nil {
		return nil, domain.NewRequestError(domain.KindDecode, op, err)
	}
	if !entry.Success {
		return nil, domain.NewRequestError(domain.KindDecode, op, fmt.Errorf("store reported no data for app %s", id))
	}
	if entry.Data == nil {
		return nil, domain.NewRequestError(domain.KindDecode, op, errMissingField("data"))
	}

	return entry.Data, nil
}

func (d *appData) toTitle(id string, reviews domain.ReviewSummary) domain.TitleRecord {
	appID := d.SteamAppID
	if appID == 0 {
		if n, err := strconv.ParseUint(id, 10, 32); err == nil {
			appID = uint32(n)
		}
	}

	price := d.PriceOverview
	if d.IsFree {
		price = nil
	}

	return domain.TitleRecord{
		ID:                 appID,
		Type:               d.Type,
		Name:               d.Name,
		RequiredAge:        int(d.RequiredAge),
		IsFree:             d.IsFree,
		SupportedLanguages: d.SupportedLanguages,
		Developers:         d.Developers,
		Publishers:         d.Publishers,
		Price:              price,
		Platforms:          d.Platforms,
		Categories:         toTags(d.Categories),
		Genres:             toTags(d.Genres),
		ReleaseDate:        d.ReleaseDate,
		Reviews:            reviews,
	}
}

func toTags(in []tag) []domain.Tag {
	if len(in) == 0 {
		return nil
	}
	out := make([]domain.Tag, len(in))
	for i, t := range in {
		out[i] = domain.Tag{ID: string(t.ID), Description: t.Description}
	}
	return out
}

// flexInt decodes a JSON number or a numeric string.
type flexInt int

func (f *flexInt) UnmarshalJSON(data []byte) error {
	s := strings.TrimSpace(string(data))
	if s == "null" {
		*f = 0
		return nil
	}
	s = strings.Trim(s, `"`)
	if s == "" {
		*f = 0
		return nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return fmt.Errorf("not an integer: %s", data)
	}
	*f = flexInt(n)
	return nil
}

// flexString decodes a JSON string or a bare number as text.
type flexString string

func (f *flexString) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*f = flexString(s)
		return nil
	}
	if string(data) == "null" {
		*f = ""
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	*f = flexString(n.String())
	return nil
}
