package domain

import (
	"context"
	"time"

	"github.com/ronin-planets/backend/internal/client"
	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/numberutil"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

type UserDomain interface {
	Connect(context.Context, *model.ConnectRequest) (*model.ConnectResponse, error)
	InitUserData(context.Context, *model.InitUserRequest) (*model.InitUserResponse, error)
	SyncNFTs(context.Context, *model.SyncNFTsRequest) (*model.SyncNFTsResponse, error)
	GetUser(context.Context, *model.GetUserRequest) (*model.GetUserResponse, error)
	UpdateUser(context.Context, *model.UpdateUserRequest) (*model.UpdateUserResponse, error)
	UpdateResources(context.Context, *model.UpdateResourcesRequest) (*model.UpdateResourcesResponse, error)
	UpdatePoints(context.Context, *model.UpdatePointsRequest) (*model.UpdatePointsResponse, error)
	UpdateKnowledge(context.Context, *model.UpdateKnowledgeRequest) (*model.UpdateKnowledgeResponse, error)
	SetCooldown(context.Context, *model.SetCooldownRequest) (*model.SetCooldownResponse, error)
	GetCooldown(context.Context, *model.GetCooldownRequest) (*model.GetCooldownResponse, error)
	AddCraftingHistory(context.Context, *model.AddCraftingHistoryRequest) (*model.AddCraftingHistoryResponse, error)
}

type userDomain struct {
	ledger        *Ledger
	nftCaller     client.NFTCaller
	adminVerifier *common.AdminVerifier
}

func NewUserDomain(
	ledger *Ledger,
	nftCaller client.NFTCaller,
	adminVerifier *common.AdminVerifier,
) UserDomain {
	return &userDomain{
		ledger:        ledger,
		nftCaller:     nftCaller,
		adminVerifier: adminVerifier,
	}
}

// Connect fetches the caller's tokens, creates the account on first sight
// and registers tokens acquired since then.
func (d *userDomain) Connect(
	ctx context.Context, req *model.ConnectRequest,
) (*model.ConnectResponse, error) {
	address := xcontext.RequestUserID(ctx)
	if address == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Wallet is not connected")
	}

	nfts, err := d.nftCaller.GetOwnedNFTs(ctx, address)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot get nfts of %s: %v", address, err)
		return nil, errorx.New(errorx.Unavailable, "Cannot fetch owned NFTs")
	}

	tokenIDs := make([]string, 0, len(nfts))
	for _, nft := range nfts {
		tokenIDs = append(tokenIDs, nft.TokenID)
	}

	var user *entity.UserAccount
	err = d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, created := initUser(doc, address, tokenIDs)
		added := syncNFTs(u, tokenIDs)
		user = u
		if !created && len(added) == 0 {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.ConnectResponse{
		User:    user,
		NFTs:    nfts,
		IsAdmin: d.adminVerifier.IsAdmin(address),
	}, nil
}

func (d *userDomain) InitUserData(
	ctx context.Context, req *model.InitUserRequest,
) (*model.InitUserResponse, error) {
	address, err := resolveAddress(ctx, d.adminVerifier, req.Address)
	if err != nil {
		return nil, err
	}

	var user *entity.UserAccount
	err = d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, created := initUser(doc, address, req.TokenIDs)
		user = u
		if !created {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.InitUserResponse{User: user}, nil
}

func (d *userDomain) SyncNFTs(
	ctx context.Context, req *model.SyncNFTsRequest,
) (*model.SyncNFTsResponse, error) {
	address, err := resolveAddress(ctx, d.adminVerifier, req.Address)
	if err != nil {
		return nil, err
	}

	resp := &model.SyncNFTsResponse{}
	err = d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, err := requireUser(doc, address)
		if err != nil {
			return err
		}

		resp.User = u
		resp.Added = syncNFTs(u, req.TokenIDs)
		if len(resp.Added) == 0 {
			return errUnchanged
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (d *userDomain) GetUser(
	ctx context.Context, req *model.GetUserRequest,
) (*model.GetUserResponse, error) {
	address, err := resolveAddress(ctx, d.adminVerifier, req.Address)
	if err != nil {
		return nil, err
	}

	var user *entity.UserAccount
	err = d.ledger.View(ctx, func(doc *entity.Document) error {
		user, err = requireUser(doc, address)
		return err
	})
	if err != nil {
		return nil, err
	}

	return &model.GetUserResponse{User: user}, nil
}

func (d *userDomain) UpdateUser(
	ctx context.Context, req *model.UpdateUserRequest,
) (*model.UpdateUserResponse, error) {
	if req.Address == "" {
		return nil, errorx.New(errorx.BadRequest, "Address is required")
	}

	if req.Points != nil && *req.Points < 0 {
		return nil, errorx.New(errorx.BadRequest, "Points cannot be negative")
	}

	for name, amount := range req.Resources {
		if amount < 0 {
			return nil, errorx.New(errorx.BadRequest, "Resource %s cannot be negative", name)
		}
	}

	for tokenID, knowledge := range req.Knowledge {
		if knowledge == nil {
			return nil, errorx.New(errorx.BadRequest, "Knowledge of token %s cannot be null", tokenID)
		}
	}

	var user *entity.UserAccount
	err := d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, err := requireUser(doc, req.Address)
		if err != nil {
			return err
		}

		// Nested collections are replaced as a whole.
		if req.NFTs != nil {
			u.NFTs = req.NFTs
		}
		if req.Knowledge != nil {
			u.Knowledge = req.Knowledge
		}
		if req.Resources != nil {
			u.Resources = req.Resources
		}
		if req.Cooldowns != nil {
			u.Cooldowns = req.Cooldowns
		}
		if req.Points != nil {
			u.Points = *req.Points
		}
		if req.ClaimedRewards != nil {
			u.ClaimedRewards = req.ClaimedRewards
		}
		if req.CraftingHistory != nil {
			u.CraftingHistory = req.CraftingHistory
		}

		user = u
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.UpdateUserResponse{User: user}, nil
}

func (d *userDomain) UpdateResources(
	ctx context.Context, req *model.UpdateResourcesRequest,
) (*model.UpdateResourcesResponse, error) {
	if !common.IsResource(req.Resource) {
		return nil, errorx.New(errorx.BadRequest, "Unknown resource %s", req.Resource)
	}

	if req.Amount < 0 {
		return nil, errorx.New(errorx.BadRequest, "Amount cannot be negative")
	}

	resp := &model.UpdateResourcesResponse{}
	err := d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, err := requireUser(doc, req.Address)
		if err != nil {
			return err
		}

		resp.Amount, err = changeResource(u, req.Resource, req.Amount, req.IsAdd)
		return err
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (d *userDomain) UpdatePoints(
	ctx context.Context, req *model.UpdatePointsRequest,
) (*model.UpdatePointsResponse, error) {
	if req.Amount < 0 {
		return nil, errorx.New(errorx.BadRequest, "Amount cannot be negative")
	}

	resp := &model.UpdatePointsResponse{}
	err := d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, err := requireUser(doc, req.Address)
		if err != nil {
			return err
		}

		resp.Points, err = changePoints(u, req.Amount, req.IsAdd)
		return err
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (d *userDomain) UpdateKnowledge(
	ctx context.Context, req *model.UpdateKnowledgeRequest,
) (*model.UpdateKnowledgeResponse, error) {
	maxLevel := gameConfigs(ctx).MaxKnowledgeLevel
	if req.Level < 1 || req.Level > maxLevel {
		return nil, errorx.New(errorx.BadRequest, "Level must be between 1 and %d", maxLevel)
	}

	if !common.IsResource(req.Resource) {
		return nil, errorx.New(errorx.BadRequest, "Unknown resource %s", req.Resource)
	}

	err := d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, err := requireUser(doc, req.Address)
		if err != nil {
			return err
		}

		knowledge, ok := u.Knowledge[req.TokenID]
		if !ok {
			return errorx.New(errorx.NotFound, "No knowledge for token %s", req.TokenID)
		}
		if knowledge == nil {
			knowledge = newKnowledge()
			u.Knowledge[req.TokenID] = knowledge
		}

		knowledge[req.Resource] = req.Level
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.UpdateKnowledgeResponse{Updated: true}, nil
}

func (d *userDomain) SetCooldown(
	ctx context.Context, req *model.SetCooldownRequest,
) (*model.SetCooldownResponse, error) {
	if req.TokenID == "" {
		return nil, errorx.New(errorx.BadRequest, "Token id is required")
	}

	err := d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, err := requireUser(doc, req.Address)
		if err != nil {
			return err
		}

		u.Cooldowns[req.TokenID] = req.EndMs
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.SetCooldownResponse{Updated: true}, nil
}

func (d *userDomain) GetCooldown(
	ctx context.Context, req *model.GetCooldownRequest,
) (*model.GetCooldownResponse, error) {
	address, err := resolveAddress(ctx, d.adminVerifier, req.Address)
	if err != nil {
		return nil, err
	}

	resp := &model.GetCooldownResponse{}
	err = d.ledger.View(ctx, func(doc *entity.Document) error {
		u, ok := doc.Users.Get(address)
		if !ok {
			return nil
		}

		end, ok := u.Cooldowns[req.TokenID]
		if !ok {
			return nil
		}

		now := nowMs()
		resp.HasCooldown = true
		resp.EndMs = end
		resp.Active = common.IsCooldownActive(end, now)
		if resp.Active {
			resp.RemainingMs = end - now
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (d *userDomain) AddCraftingHistory(
	ctx context.Context, req *model.AddCraftingHistoryRequest,
) (*model.AddCraftingHistoryResponse, error) {
	recipe, ok := common.RecipeByID(req.RecipeID)
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Recipe not found")
	}

	timestamp := time.Now().UTC()
	if req.TimestampMs > 0 {
		timestamp = time.UnixMilli(req.TimestampMs).UTC()
	}

	err := d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, err := requireUser(doc, req.Address)
		if err != nil {
			return err
		}

		appendCraftingHistory(u, recipe, timestamp)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.AddCraftingHistoryResponse{Added: true}, nil
}

// initUser returns the account at address, creating it when absent. An
// existing account is returned untouched.
func initUser(doc *entity.Document, address string, tokenIDs []string) (*entity.UserAccount, bool) {
	if u, ok := doc.Users.Get(address); ok {
		return u, false
	}

	u := newUserAccount(tokenIDs)
	doc.Users.Set(address, u)
	return u, true
}

// syncNFTs registers tokens the account has not seen before and returns
// them. Known tokens and their levels are left as they are.
func syncNFTs(u *entity.UserAccount, tokenIDs []string) []string {
	added := []string{}
	for _, tokenID := range tokenIDs {
		if u.OwnsNFT(tokenID) {
			continue
		}

		u.NFTs = append(u.NFTs, tokenID)
		if _, ok := u.Knowledge[tokenID]; !ok {
			u.Knowledge[tokenID] = newKnowledge()
		}
		added = append(added, tokenID)
	}

	return added
}

func changeResource(u *entity.UserAccount, resource string, amount int64, isAdd bool) (int64, error) {
	if !isAdd {
		u.Resources[resource] = numberutil.SubClamp(u.Resources[resource], amount)
		return u.Resources[resource], nil
	}

	total, err := addBalance(u.Resources[resource], amount)
	if err != nil {
		return 0, err
	}

	u.Resources[resource] = total
	return total, nil
}

func changePoints(u *entity.UserAccount, amount int64, isAdd bool) (int64, error) {
	if !isAdd {
		u.Points = numberutil.SubClamp(u.Points, amount)
		return u.Points, nil
	}

	total, err := addBalance(u.Points, amount)
	if err != nil {
		return 0, err
	}

	u.Points = total
	return total, nil
}

func appendCraftingHistory(u *entity.UserAccount, recipe entity.Recipe, timestamp time.Time) {
	u.CraftingHistory = append(u.CraftingHistory, entity.CraftingRecord{
		RecipeID:   recipe.ID,
		RecipeName: recipe.Name,
		Output:     recipe.Output,
		Timestamp:  timestamp,
	})
}
