package testutil

import (
	"context"
	"errors"
	"time"

	"github.com/ronin-planets/backend/internal/model"
)

type MockNFTCaller struct {
	GetOwnedNFTsFunc func(ctx context.Context, address string) ([]model.NFT, error)
}

func (m *MockNFTCaller) GetOwnedNFTs(ctx context.Context, address string) ([]model.NFT, error) {
	if m.GetOwnedNFTsFunc != nil {
		return m.GetOwnedNFTsFunc(ctx, address)
	}

	return nil, errors.New("not implemented")
}

// OwnedNFTs returns a MockNFTCaller which reports the given token ids for
// every wallet.
func OwnedNFTs(tokenIDs ...string) *MockNFTCaller {
	return &MockNFTCaller{
		GetOwnedNFTsFunc: func(ctx context.Context, address string) ([]model.NFT, error) {
			nfts := make([]model.NFT, 0, len(tokenIDs))
			for _, id := range tokenIDs {
				nfts = append(nfts, model.NFT{TokenID: id, Name: "AstRONaut #" + id})
			}
			return nfts, nil
		},
	}
}

type MockPriceCaller struct {
	GetBTCPriceHistoryFunc func(ctx context.Context, from, to time.Time) ([]model.PricePoint, error)
}

func (m *MockPriceCaller) GetBTCPriceHistory(
	ctx context.Context, from, to time.Time,
) ([]model.PricePoint, error) {
	if m.GetBTCPriceHistoryFunc != nil {
		return m.GetBTCPriceHistoryFunc(ctx, from, to)
	}

	return nil, errors.New("not implemented")
}
