package client

import (
	"context"
	"fmt"
	"net/http"
	"strconv"
	"time"

	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/api"
	"github.com/ronin-planets/backend/pkg/numberutil"
)

// PriceCaller fetches historical BTC/USD prices.
type PriceCaller interface {
	GetBTCPriceHistory(ctx context.Context, from, to time.Time) ([]model.PricePoint, error)
}

type coinGeckoCaller struct {
	apiGenerator api.Generator
	apiKey       string
}

func NewCoinGeckoCaller(apiGenerator api.Generator, apiKey string) *coinGeckoCaller {
	return &coinGeckoCaller{apiGenerator: apiGenerator, apiKey: apiKey}
}

type marketChartResponse struct {
	Prices [][2]float64 `json:"prices"`
}

func (c *coinGeckoCaller) GetBTCPriceHistory(
	ctx context.Context, from, to time.Time,
) ([]model.PricePoint, error) {
	resp, err := c.apiGenerator.New("/coins/bitcoin/market_chart/range").
		Query(api.Parameter{
			"vs_currency": "usd",
			"from":        strconv.FormatInt(from.Unix(), 10),
			"to":          strconv.FormatInt(to.Unix(), 10),
		}).
		GET(ctx, api.APIKey("x-cg-demo-api-key", c.apiKey))
	if err != nil {
		return nil, err
	}

	if resp.Code != http.StatusOK {
		return nil, fmt.Errorf("unexpected status code %d", resp.Code)
	}

	var chart marketChartResponse
	if err := resp.Decode(&chart); err != nil {
		return nil, err
	}

	points := make([]model.PricePoint, 0, len(chart.Prices))
	for _, p := range chart.Prices {
		points = append(points, model.PricePoint{
			TimestampMs: int64(p[0]),
			Price:       numberutil.Round(p[1], 2),
		})
	}

	return points, nil
}
