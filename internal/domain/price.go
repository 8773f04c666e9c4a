package domain

import (
	"context"
	"time"

	"github.com/ronin-planets/backend/internal/client"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/dateutil"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

const defaultMaxPriceRange = 365 * dateutil.Day

type PriceDomain interface {
	GetBTCPriceHistory(context.Context, *model.GetBTCPriceHistoryRequest) (*model.GetBTCPriceHistoryResponse, error)
}

type priceDomain struct {
	priceCaller client.PriceCaller
}

func NewPriceDomain(priceCaller client.PriceCaller) PriceDomain {
	return &priceDomain{priceCaller: priceCaller}
}

func (d *priceDomain) GetBTCPriceHistory(
	ctx context.Context, req *model.GetBTCPriceHistoryRequest,
) (*model.GetBTCPriceHistoryResponse, error) {
	if req.From == "" || req.To == "" {
		return nil, errorx.New(errorx.BadRequest, "Both from and to dates are required")
	}

	from, err := dateutil.ParseDate(req.From)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid from date")
	}

	to, err := dateutil.ParseDate(req.To)
	if err != nil {
		return nil, errorx.New(errorx.BadRequest, "Invalid to date")
	}

	if !from.Before(to) {
		return nil, errorx.New(errorx.BadRequest, "From date must be before to date")
	}

	if to.After(time.Now()) {
		return nil, errorx.New(errorx.BadRequest, "To date cannot be in the future")
	}

	maxRange := xcontext.Configs(ctx).Price.MaxRange
	if maxRange <= 0 {
		maxRange = defaultMaxPriceRange
	}

	maxDays := int(maxRange / dateutil.Day)
	if dateutil.DaysBetween(from, to) > maxDays {
		return nil, errorx.New(errorx.BadRequest, "Date range cannot exceed %d days", maxDays)
	}

	prices, err := d.priceCaller.GetBTCPriceHistory(ctx, from, to)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get btc price history: %v", err)
		return nil, errorx.New(errorx.Unavailable, "Cannot fetch price data")
	}

	return &model.GetBTCPriceHistoryResponse{Prices: prices}, nil
}
