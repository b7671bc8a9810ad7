package steam

import (
	"context"
	"net/url"
	"strconv"

	"github.com/custodia-labs/undiscovered/internal/core/domain"
)

// Fixed search parameters: games only, newest first.
const (
	categoryGames = "998"
	sortReleased  = "Released_DESC"
	maxPriceFree  = "free"
)

// searchResponse is the /search/results?json=1 envelope.
type searchResponse struct {
	Desc  string                `json:"desc"`
	Items *[]domain.SearchMatch `json:"items"`
}

// Search queries the catalog for games matching term under the price ceiling.
func (c *Client) Search(ctx context.Context, maxPrice float64, term string) ([]domain.SearchMatch, error) {
	const op = "search"

	query := url.Values{}
	query.Set("term", term)
	query.Set("maxprice", maxPriceParam(maxPrice))
	query.Set("json", "1")
	query.Set("category1", categoryGames)
	query.Set("sort_by", sortReleased)

	resp, err := c.get(ctx, op, "/search/results", query)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if err := checkStatus(op, resp); err != nil {
		return nil, err
	}

	var body searchResponse
	if err := decode(op, resp, &body); err != nil {
		return nil, err
	}
	if body.Items == nil {
		return nil, domain.NewRequestError(domain.KindDecode, op, errMissingField("items"))
	}

	return *body.Items, nil
}

// maxPriceParam encodes the ceiling: "free" when not positive, else minor units.
func maxPriceParam(maxPrice float64) string {
	if maxPrice <= 0 {
		return maxPriceFree
	}
	return strconv.FormatInt(domain.MinorUnits(maxPrice), 10)
}
