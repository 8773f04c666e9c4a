package client

import (
	"context"
	"fmt"
	"math/big"
	"strings"

	"github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/api"
	"github.com/ronin-planets/backend/pkg/blockchain/eth"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

const erc721ABI = `[
	{"name":"balanceOf","type":"function","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"name":"tokenOfOwnerByIndex","type":"function","stateMutability":"view",
	 "inputs":[{"name":"owner","type":"address"},{"name":"index","type":"uint256"}],
	 "outputs":[{"name":"","type":"uint256"}]},
	{"name":"tokenURI","type":"function","stateMutability":"view",
	 "inputs":[{"name":"tokenId","type":"uint256"}],
	 "outputs":[{"name":"","type":"string"}]}
]`

// NFTCaller lists the collection tokens owned by a wallet.
type NFTCaller interface {
	GetOwnedNFTs(ctx context.Context, address string) ([]model.NFT, error)
}

type erc721Caller struct {
	contract  common.Address
	abi       abi.ABI
	ethClient eth.EthClient
}

func NewERC721Caller(ethClient eth.EthClient, contractAddress string) (*erc721Caller, error) {
	parsed, err := abi.JSON(strings.NewReader(erc721ABI))
	if err != nil {
		return nil, err
	}

	if !common.IsHexAddress(contractAddress) {
		return nil, fmt.Errorf("invalid contract address %q", contractAddress)
	}

	return &erc721Caller{
		contract:  common.HexToAddress(contractAddress),
		abi:       parsed,
		ethClient: ethClient,
	}, nil
}

func (c *erc721Caller) call(ctx context.Context, method string, args ...any) ([]any, error) {
	input, err := c.abi.Pack(method, args...)
	if err != nil {
		return nil, err
	}

	output, err := c.ethClient.CallContract(ctx, ethereum.CallMsg{To: &c.contract, Data: input}, nil)
	if err != nil {
		return nil, err
	}

	return c.abi.Unpack(method, output)
}

func (c *erc721Caller) GetOwnedNFTs(ctx context.Context, address string) ([]model.NFT, error) {
	if !common.IsHexAddress(address) {
		return nil, fmt.Errorf("invalid address %q", address)
	}
	owner := common.HexToAddress(address)

	out, err := c.call(ctx, "balanceOf", owner)
	if err != nil {
		return nil, err
	}

	balance, ok := out[0].(*big.Int)
	if !ok {
		return nil, fmt.Errorf("unexpected balanceOf result %T", out[0])
	}

	nfts := []model.NFT{}
	for i := int64(0); i < balance.Int64(); i++ {
		out, err := c.call(ctx, "tokenOfOwnerByIndex", owner, big.NewInt(i))
		if err != nil {
			xcontext.Logger(ctx).Warnf("Cannot get token at index %d of %s: %v", i, address, err)
			continue
		}

		tokenID, ok := out[0].(*big.Int)
		if !ok {
			continue
		}

		nfts = append(nfts, c.withMetadata(ctx, tokenID))
	}

	return nfts, nil
}

// withMetadata fills the display fields from the token URI, falling back to
// placeholders when the metadata cannot be fetched.
func (c *erc721Caller) withMetadata(ctx context.Context, tokenID *big.Int) model.NFT {
	id := tokenID.String()
	nft := model.NFT{
		TokenID:     id,
		Name:        "AstRONaut #" + id,
		Image:       "https://via.placeholder.com/300?text=AstRONaut+" + id,
		Description: "An AstRONaut from the Ronin Planets collection",
		Attributes:  []model.NFTAttribute{},
	}

	out, err := c.call(ctx, "tokenURI", tokenID)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot get token uri of %s: %v", id, err)
		return nft
	}

	uri, _ := out[0].(string)
	if uri == "" {
		return nft
	}

	resp, err := api.NewGenerator(uri).New("").GET(ctx)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Cannot fetch metadata of %s: %v", id, err)
		return nft
	}

	var metadata model.NFT
	if err := resp.Decode(&metadata); err != nil {
		return nft
	}

	if metadata.Name != "" {
		nft.Name = metadata.Name
	}
	if metadata.Image != "" {
		nft.Image = metadata.Image
	}
	if metadata.Description != "" {
		nft.Description = metadata.Description
	}
	if len(metadata.Attributes) > 0 {
		nft.Attributes = metadata.Attributes
	}

	return nft
}

type mockNFTCaller struct{}

// NewMockNFTCaller returns three fixed tokens for any wallet. It is used when
// no RPC or contract is configured.
func NewMockNFTCaller() *mockNFTCaller {
	return &mockNFTCaller{}
}

func (mockNFTCaller) GetOwnedNFTs(ctx context.Context, address string) ([]model.NFT, error) {
	return []model.NFT{
		{
			TokenID:     "1",
			Name:        "AstRONaut #1",
			Image:       "https://via.placeholder.com/300/0066ff/ffffff?text=AstRONaut+1",
			Description: "A brave space explorer",
			Attributes: []model.NFTAttribute{
				{TraitType: "Type", Value: "Explorer"},
				{TraitType: "Rarity", Value: "Common"},
			},
		},
		{
			TokenID:     "2",
			Name:        "AstRONaut #2",
			Image:       "https://via.placeholder.com/300/ff4500/ffffff?text=AstRONaut+2",
			Description: "A skilled engineer",
			Attributes: []model.NFTAttribute{
				{TraitType: "Type", Value: "Engineer"},
				{TraitType: "Rarity", Value: "Rare"},
			},
		},
		{
			TokenID:     "3",
			Name:        "AstRONaut #3",
			Image:       "https://via.placeholder.com/300/00ff00/ffffff?text=AstRONaut+3",
			Description: "A wise scientist",
			Attributes: []model.NFTAttribute{
				{TraitType: "Type", Value: "Scientist"},
				{TraitType: "Rarity", Value: "Epic"},
			},
		},
	}, nil
}
