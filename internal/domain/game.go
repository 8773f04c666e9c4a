package domain

import (
	"context"
	"time"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/xcontext"

	"golang.org/x/exp/maps"
)

type GameDomain interface {
	GetCatalog(context.Context, *model.GetCatalogRequest) (*model.GetCatalogResponse, error)
	Mine(context.Context, *model.MineRequest) (*model.MineResponse, error)
	Learn(context.Context, *model.LearnRequest) (*model.LearnResponse, error)
	Craft(context.Context, *model.CraftRequest) (*model.CraftResponse, error)
}

type gameDomain struct {
	ledger *Ledger
}

func NewGameDomain(ledger *Ledger) GameDomain {
	return &gameDomain{ledger: ledger}
}

func (d *gameDomain) GetCatalog(
	ctx context.Context, req *model.GetCatalogRequest,
) (*model.GetCatalogResponse, error) {
	cfg := gameConfigs(ctx)
	return &model.GetCatalogResponse{
		Planets:           common.Planets,
		Resources:         common.Resources,
		Recipes:           common.Recipes,
		MaxKnowledgeLevel: cfg.MaxKnowledgeLevel,
		CooldownMs:        cfg.CooldownDuration.Milliseconds(),
	}, nil
}

func (d *gameDomain) Mine(
	ctx context.Context, req *model.MineRequest,
) (*model.MineResponse, error) {
	planet, ok := common.PlanetByID(req.PlanetID)
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Planet not found")
	}

	resp := &model.MineResponse{Resource: planet.Resource}
	err := d.updateWithToken(ctx, req.TokenID, func(u *entity.UserAccount, now int64) error {
		level := u.Knowledge[req.TokenID][planet.Resource]
		resp.Mined = common.MiningOutput(level)
		total, err := changeResource(u, planet.Resource, resp.Mined, true)
		if err != nil {
			return err
		}
		resp.Total = total
		resp.CooldownEndMs = d.startCooldown(ctx, u, req.TokenID, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (d *gameDomain) Learn(
	ctx context.Context, req *model.LearnRequest,
) (*model.LearnResponse, error) {
	planet, ok := common.PlanetByID(req.PlanetID)
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Planet not found")
	}

	maxLevel := gameConfigs(ctx).MaxKnowledgeLevel
	resp := &model.LearnResponse{Resource: planet.Resource}
	err := d.updateWithToken(ctx, req.TokenID, func(u *entity.UserAccount, now int64) error {
		knowledge := u.Knowledge[req.TokenID]
		level := knowledge[planet.Resource]
		if level >= maxLevel {
			return errorx.New(errorx.PreconditionFailed, "Knowledge of %s is at max level", planet.Resource)
		}

		// The cost is shown to the player but nothing is charged.
		resp.Cost = common.LearningCost(level)
		resp.Level = level + 1
		knowledge[planet.Resource] = resp.Level
		resp.CooldownEndMs = d.startCooldown(ctx, u, req.TokenID, now)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func (d *gameDomain) Craft(
	ctx context.Context, req *model.CraftRequest,
) (*model.CraftResponse, error) {
	address := xcontext.RequestUserID(ctx)
	if address == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Wallet is not connected")
	}

	recipe, ok := common.RecipeByID(req.RecipeID)
	if !ok {
		return nil, errorx.New(errorx.NotFound, "Recipe not found")
	}

	resp := &model.CraftResponse{Recipe: recipe}
	err := d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, err := requireUser(doc, address)
		if err != nil {
			return err
		}

		if !common.CanCraftRecipe(recipe, u.Resources) {
			return errorx.New(errorx.PreconditionFailed, "Not enough resources to craft %s", recipe.Name)
		}

		resp.Points, err = changePoints(u, recipe.Output, true)
		if err != nil {
			return err
		}

		for _, r := range recipe.Requirements {
			_, _ = changeResource(u, r.Resource, r.Amount, false)
		}
		appendCraftingHistory(u, recipe, time.Now().UTC())
		resp.Resources = maps.Clone(u.Resources)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

// updateWithToken runs fn on the caller's account inside one ledger update
// once the caller owns tokenID and the token is not cooling down.
func (d *gameDomain) updateWithToken(
	ctx context.Context,
	tokenID string,
	fn func(u *entity.UserAccount, now int64) error,
) error {
	address := xcontext.RequestUserID(ctx)
	if address == "" {
		return errorx.New(errorx.Unauthenticated, "Wallet is not connected")
	}

	return d.ledger.Update(ctx, func(doc *entity.Document) error {
		u, err := requireUser(doc, address)
		if err != nil {
			return err
		}

		if !u.OwnsNFT(tokenID) {
			return errorx.New(errorx.PermissionDenied, "Token %s is not owned by the wallet", tokenID)
		}

		knowledge := u.Knowledge[tokenID]
		if knowledge == nil {
			knowledge = newKnowledge()
			u.Knowledge[tokenID] = knowledge
		}
		for _, r := range common.Resources {
			if knowledge[r] < 1 {
				knowledge[r] = 1
			}
		}

		now := nowMs()
		if end := u.Cooldowns[tokenID]; common.IsCooldownActive(end, now) {
			return errorx.New(errorx.PreconditionFailed,
				"Token %s is cooling down for %s", tokenID, time.Duration(end-now)*time.Millisecond)
		}

		return fn(u, now)
	})
}

func (d *gameDomain) startCooldown(ctx context.Context, u *entity.UserAccount, tokenID string, now int64) int64 {
	end := now + gameConfigs(ctx).CooldownDuration.Milliseconds()
	u.Cooldowns[tokenID] = end
	return end
}
