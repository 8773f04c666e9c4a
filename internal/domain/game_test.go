package domain

import (
	"context"
	"testing"
	"time"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func Test_gameDomain_GetCatalog(t *testing.T) {
	s := newSuite(t)

	resp, err := s.game.GetCatalog(s.ctx, &model.GetCatalogRequest{})
	require.NoError(t, err)
	require.Len(t, resp.Planets, 10)
	require.Len(t, resp.Resources, 10)
	require.Len(t, resp.Recipes, 20)
	require.Equal(t, 100, resp.MaxKnowledgeLevel)
	require.Equal(t, (12 * time.Hour).Milliseconds(), resp.CooldownMs)
}

func Test_gameDomain_Mine(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1", "2")
	ctx := s.as(testutil.User1Address)

	_, err := s.user.UpdateKnowledge(s.ctx, &model.UpdateKnowledgeRequest{
		Address:  testutil.User1Address,
		TokenID:  "1",
		Resource: "Crystallite",
		Level:    4,
	})
	require.NoError(t, err)

	before := time.Now().UnixMilli()
	resp, err := s.game.Mine(ctx, &model.MineRequest{TokenID: "1", PlanetID: 1})
	require.NoError(t, err)
	require.Equal(t, "Crystallite", resp.Resource)
	require.Equal(t, int64(4), resp.Mined)
	require.Equal(t, int64(4), resp.Total)
	require.GreaterOrEqual(t, resp.CooldownEndMs, before+(12*time.Hour).Milliseconds())

	// The cooldown belongs to the token, whichever planet is chosen.
	_, err = s.game.Mine(ctx, &model.MineRequest{TokenID: "1", PlanetID: 2})
	require.True(t, errorx.Is(err, errorx.PreconditionFailed))

	resp, err = s.game.Mine(ctx, &model.MineRequest{TokenID: "2", PlanetID: 1})
	require.NoError(t, err)
	require.Equal(t, int64(1), resp.Mined)
	require.Equal(t, int64(5), resp.Total)

	_, err = s.game.Mine(ctx, &model.MineRequest{TokenID: "3", PlanetID: 1})
	require.True(t, errorx.Is(err, errorx.PermissionDenied))

	_, err = s.game.Mine(ctx, &model.MineRequest{TokenID: "1", PlanetID: 11})
	require.True(t, errorx.Is(err, errorx.NotFound))

	_, err = s.game.Mine(s.ctx, &model.MineRequest{TokenID: "1", PlanetID: 1})
	require.True(t, errorx.Is(err, errorx.Unauthenticated))
}

func Test_gameDomain_Learn(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1", "2")
	ctx := s.as(testutil.User1Address)

	resp, err := s.game.Learn(ctx, &model.LearnRequest{TokenID: "1", PlanetID: 3})
	require.NoError(t, err)
	require.Equal(t, "Hydroflux", resp.Resource)
	require.Equal(t, 1, resp.Cost)
	require.Equal(t, 2, resp.Level)

	user := s.getUser(t, testutil.User1Address)
	require.Equal(t, 2, user.Knowledge["1"]["Hydroflux"])
	require.Equal(t, resp.CooldownEndMs, user.Cooldowns["1"])

	_, err = s.game.Learn(ctx, &model.LearnRequest{TokenID: "1", PlanetID: 3})
	require.True(t, errorx.Is(err, errorx.PreconditionFailed))

	_, err = s.user.UpdateKnowledge(s.ctx, &model.UpdateKnowledgeRequest{
		Address:  testutil.User1Address,
		TokenID:  "2",
		Resource: "Hydroflux",
		Level:    common.MaxKnowledgeLevel,
	})
	require.NoError(t, err)

	_, err = s.game.Learn(ctx, &model.LearnRequest{TokenID: "2", PlanetID: 3})
	require.True(t, errorx.Is(err, errorx.PreconditionFailed))

	// A failed learn leaves the token free.
	_, err = s.game.Mine(ctx, &model.MineRequest{TokenID: "2", PlanetID: 3})
	require.NoError(t, err)
}

func Test_gameDomain_Craft(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1")
	ctx := s.as(testutil.User1Address)

	recipe, ok := common.RecipeByID(1)
	require.True(t, ok)

	resources := map[string]int64{}
	for _, r := range common.Resources {
		resources[r] = 0
	}
	for _, r := range recipe.Requirements {
		resources[r.Resource] = r.Amount
	}
	resources["Crystallite"] = 9
	_, err := s.user.UpdateUser(s.ctx, &model.UpdateUserRequest{
		Address:   testutil.User1Address,
		Resources: resources,
	})
	require.NoError(t, err)

	_, err = s.game.Craft(ctx, &model.CraftRequest{RecipeID: 1})
	require.True(t, errorx.Is(err, errorx.PreconditionFailed))
	require.Empty(t, s.getUser(t, testutil.User1Address).CraftingHistory)

	_, err = s.user.UpdateResources(s.ctx, &model.UpdateResourcesRequest{
		Address:  testutil.User1Address,
		Resource: "Crystallite",
		Amount:   3,
		IsAdd:    true,
	})
	require.NoError(t, err)

	resp, err := s.game.Craft(ctx, &model.CraftRequest{RecipeID: 1})
	require.NoError(t, err)
	require.Equal(t, int64(50), resp.Points)
	require.Equal(t, int64(2), resp.Resources["Crystallite"])
	require.Zero(t, resp.Resources["Voltium"])

	user := s.getUser(t, testutil.User1Address)
	require.Equal(t, int64(50), user.Points)
	require.Len(t, user.CraftingHistory, 1)
	require.Equal(t, recipe.Name, user.CraftingHistory[0].RecipeName)

	_, err = s.game.Craft(ctx, &model.CraftRequest{RecipeID: 0})
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_gameDomain_Learn_NullStoredKnowledge(t *testing.T) {
	u := newUserAccount([]string{"1"})
	u.Knowledge["1"] = nil
	doc := entity.NewDocument()
	doc.Users.Set(testutil.User1Address, u)

	ledger := NewLedger(&testutil.MockLedgerRepository{
		LoadFunc: func(ctx context.Context) (*entity.Document, error) {
			return doc, nil
		},
		SaveFunc: func(ctx context.Context, d *entity.Document) error {
			return nil
		},
	})
	game := NewGameDomain(ledger)
	ctx := testutil.MockContextWithUserID(testutil.User1Address)

	resp, err := game.Learn(ctx, &model.LearnRequest{TokenID: "1", PlanetID: 3})
	require.NoError(t, err)
	require.Equal(t, 1, resp.Cost)
	require.Equal(t, 2, resp.Level)
	require.Equal(t, 2, u.Knowledge["1"]["Hydroflux"])
	require.Len(t, u.Knowledge["1"], len(common.Resources))
}
