package domain

import (
	"context"
	"errors"
	"math"
	"testing"
	"time"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func Test_userDomain_InitUserData(t *testing.T) {
	s := newSuite(t)

	resp, err := s.user.InitUserData(s.ctx, &model.InitUserRequest{
		Address:  testutil.User1Address,
		TokenIDs: []string{"7", "9"},
	})
	require.NoError(t, err)

	user := resp.User
	require.Equal(t, []string{"7", "9"}, user.NFTs)
	require.Len(t, user.Knowledge, 2)
	for _, tokenID := range user.NFTs {
		require.Len(t, user.Knowledge[tokenID], len(common.Resources))
		for _, level := range user.Knowledge[tokenID] {
			require.Equal(t, 1, level)
		}
	}
	require.Len(t, user.Resources, len(common.Resources))
	require.Empty(t, user.Cooldowns)
	require.Zero(t, user.Points)
	require.Empty(t, user.ClaimedRewards)
	require.Empty(t, user.CraftingHistory)

	// A second init with other tokens is a no-op.
	resp, err = s.user.InitUserData(s.ctx, &model.InitUserRequest{
		Address:  testutil.User1Address,
		TokenIDs: []string{"1"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"7", "9"}, resp.User.NFTs)
	require.Equal(t, []string{"7", "9"}, s.getUser(t, testutil.User1Address).NFTs)
}

func Test_userDomain_InitUserData_ExistingIsNotSaved(t *testing.T) {
	ctx := testutil.MockContext()
	doc := entity.NewDocument()
	doc.Users.Set(testutil.User1Address, newUserAccount([]string{"1"}))

	// Save always fails, so only a path that skips the save succeeds.
	ledger := NewLedger(&testutil.MockLedgerRepository{
		LoadFunc: func(ctx context.Context) (*entity.Document, error) {
			return doc, nil
		},
	})
	domain := NewUserDomain(ledger, nil, common.NewAdminVerifier(testutil.AdminAddress))

	resp, err := domain.InitUserData(ctx, &model.InitUserRequest{
		Address:  testutil.User1Address,
		TokenIDs: []string{"2"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, resp.User.NFTs)

	_, err = domain.InitUserData(ctx, &model.InitUserRequest{
		Address:  testutil.User2Address,
		TokenIDs: []string{"2"},
	})
	require.True(t, errorx.Is(err, errorx.PersistenceFailure))
}

func Test_userDomain_AccessOtherAccount(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1")
	s.initUser(t, testutil.User2Address, "2")

	_, err := s.user.GetUser(s.as(testutil.User2Address), &model.GetUserRequest{
		Address: testutil.User1Address,
	})
	require.True(t, errorx.Is(err, errorx.PermissionDenied))

	resp, err := s.user.GetUser(s.as(testutil.User1Address), &model.GetUserRequest{})
	require.NoError(t, err)
	require.Equal(t, []string{"1"}, resp.User.NFTs)

	resp, err = s.user.GetUser(s.as(testutil.AdminAddress), &model.GetUserRequest{
		Address: testutil.User2Address,
	})
	require.NoError(t, err)
	require.Equal(t, []string{"2"}, resp.User.NFTs)
}

func Test_userDomain_GetUser_NotFound(t *testing.T) {
	s := newSuite(t)

	_, err := s.user.GetUser(s.ctx, &model.GetUserRequest{Address: testutil.User1Address})
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_userDomain_UpdateUser(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1")

	points := int64(42)
	resp, err := s.user.UpdateUser(s.ctx, &model.UpdateUserRequest{
		Address:   testutil.User1Address,
		Points:    &points,
		Resources: map[string]int64{"Crystallite": 3},
	})
	require.NoError(t, err)
	require.Equal(t, int64(42), resp.User.Points)

	// Nested maps are replaced, not merged.
	require.Equal(t, map[string]int64{"Crystallite": 3}, resp.User.Resources)

	// Fields not given are kept.
	user := s.getUser(t, testutil.User1Address)
	require.Equal(t, []string{"1"}, user.NFTs)
	require.Len(t, user.Knowledge["1"], len(common.Resources))

	_, err = s.user.UpdateUser(s.ctx, &model.UpdateUserRequest{Address: testutil.User2Address})
	require.True(t, errorx.Is(err, errorx.NotFound))

	negative := int64(-1)
	_, err = s.user.UpdateUser(s.ctx, &model.UpdateUserRequest{
		Address: testutil.User1Address,
		Points:  &negative,
	})
	require.True(t, errorx.Is(err, errorx.BadRequest))
}

func Test_userDomain_UpdateResources(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1")

	resp, err := s.user.UpdateResources(s.ctx, &model.UpdateResourcesRequest{
		Address:  testutil.User1Address,
		Resource: "Voltium",
		Amount:   5,
		IsAdd:    true,
	})
	require.NoError(t, err)
	require.Equal(t, int64(5), resp.Amount)

	// Subtraction clamps at zero.
	resp, err = s.user.UpdateResources(s.ctx, &model.UpdateResourcesRequest{
		Address:  testutil.User1Address,
		Resource: "Voltium",
		Amount:   8,
	})
	require.NoError(t, err)
	require.Zero(t, resp.Amount)
	require.Zero(t, s.getUser(t, testutil.User1Address).Resources["Voltium"])

	_, err = s.user.UpdateResources(s.ctx, &model.UpdateResourcesRequest{
		Address:  testutil.User1Address,
		Resource: "Gold",
		Amount:   1,
		IsAdd:    true,
	})
	require.True(t, errorx.Is(err, errorx.BadRequest))

	_, err = s.user.UpdateResources(s.ctx, &model.UpdateResourcesRequest{
		Address:  testutil.User2Address,
		Resource: "Voltium",
		Amount:   1,
		IsAdd:    true,
	})
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_userDomain_UpdatePoints(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address)
	s.setPoints(t, testutil.User1Address, 3)

	resp, err := s.user.UpdatePoints(s.ctx, &model.UpdatePointsRequest{
		Address: testutil.User1Address,
		Amount:  5,
	})
	require.NoError(t, err)
	require.Zero(t, resp.Points)

	resp, err = s.user.UpdatePoints(s.ctx, &model.UpdatePointsRequest{
		Address: testutil.User1Address,
		Amount:  10,
		IsAdd:   true,
	})
	require.NoError(t, err)
	require.Equal(t, int64(10), resp.Points)
}

func Test_userDomain_UpdateKnowledge(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1")

	resp, err := s.user.UpdateKnowledge(s.ctx, &model.UpdateKnowledgeRequest{
		Address:  testutil.User1Address,
		TokenID:  "1",
		Resource: "Stardust",
		Level:    7,
	})
	require.NoError(t, err)
	require.True(t, resp.Updated)
	require.Equal(t, 7, s.getUser(t, testutil.User1Address).Knowledge["1"]["Stardust"])

	_, err = s.user.UpdateKnowledge(s.ctx, &model.UpdateKnowledgeRequest{
		Address:  testutil.User1Address,
		TokenID:  "99",
		Resource: "Stardust",
		Level:    2,
	})
	require.True(t, errorx.Is(err, errorx.NotFound))

	_, err = s.user.UpdateKnowledge(s.ctx, &model.UpdateKnowledgeRequest{
		Address:  testutil.User1Address,
		TokenID:  "1",
		Resource: "Stardust",
		Level:    101,
	})
	require.True(t, errorx.Is(err, errorx.BadRequest))
}

func Test_userDomain_Cooldown(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1", "2")

	// No account and no cooldown both read as no cooldown.
	resp, err := s.user.GetCooldown(s.ctx, &model.GetCooldownRequest{
		Address: testutil.User2Address,
		TokenID: "1",
	})
	require.NoError(t, err)
	require.False(t, resp.HasCooldown)

	resp, err = s.user.GetCooldown(s.ctx, &model.GetCooldownRequest{
		Address: testutil.User1Address,
		TokenID: "1",
	})
	require.NoError(t, err)
	require.False(t, resp.HasCooldown)

	end := time.Now().Add(time.Hour).UnixMilli()
	_, err = s.user.SetCooldown(s.ctx, &model.SetCooldownRequest{
		Address: testutil.User1Address,
		TokenID: "1",
		EndMs:   end,
	})
	require.NoError(t, err)

	resp, err = s.user.GetCooldown(s.ctx, &model.GetCooldownRequest{
		Address: testutil.User1Address,
		TokenID: "1",
	})
	require.NoError(t, err)
	require.True(t, resp.HasCooldown)
	require.True(t, resp.Active)
	require.Equal(t, end, resp.EndMs)
	require.Positive(t, resp.RemainingMs)

	past := time.Now().Add(-time.Hour).UnixMilli()
	_, err = s.user.SetCooldown(s.ctx, &model.SetCooldownRequest{
		Address: testutil.User1Address,
		TokenID: "2",
		EndMs:   past,
	})
	require.NoError(t, err)

	resp, err = s.user.GetCooldown(s.ctx, &model.GetCooldownRequest{
		Address: testutil.User1Address,
		TokenID: "2",
	})
	require.NoError(t, err)
	require.True(t, resp.HasCooldown)
	require.False(t, resp.Active)
	require.Zero(t, resp.RemainingMs)

	_, err = s.user.SetCooldown(s.ctx, &model.SetCooldownRequest{
		Address: testutil.User2Address,
		TokenID: "1",
		EndMs:   end,
	})
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_userDomain_AddCraftingHistory(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address)

	at := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)
	_, err := s.user.AddCraftingHistory(s.ctx, &model.AddCraftingHistoryRequest{
		Address:     testutil.User1Address,
		RecipeID:    1,
		TimestampMs: at.UnixMilli(),
	})
	require.NoError(t, err)

	history := s.getUser(t, testutil.User1Address).CraftingHistory
	require.Len(t, history, 1)
	require.Equal(t, 1, history[0].RecipeID)
	require.Equal(t, "Basic Energy Cell", history[0].RecipeName)
	require.Equal(t, int64(50), history[0].Output)
	require.True(t, at.Equal(history[0].Timestamp))

	_, err = s.user.AddCraftingHistory(s.ctx, &model.AddCraftingHistoryRequest{
		Address:  testutil.User1Address,
		RecipeID: 999,
	})
	require.True(t, errorx.Is(err, errorx.NotFound))
}

func Test_userDomain_SyncNFTs(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1")

	_, err := s.user.UpdateKnowledge(s.ctx, &model.UpdateKnowledgeRequest{
		Address:  testutil.User1Address,
		TokenID:  "1",
		Resource: "Cryonite",
		Level:    5,
	})
	require.NoError(t, err)

	resp, err := s.user.SyncNFTs(s.ctx, &model.SyncNFTsRequest{
		Address:  testutil.User1Address,
		TokenIDs: []string{"1", "4"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"4"}, resp.Added)

	user := s.getUser(t, testutil.User1Address)
	require.Equal(t, []string{"1", "4"}, user.NFTs)
	require.Equal(t, 5, user.Knowledge["1"]["Cryonite"])
	require.Equal(t, 1, user.Knowledge["4"]["Cryonite"])
}

func Test_userDomain_Connect(t *testing.T) {
	s := newSuite(t)

	_, err := s.user.Connect(s.ctx, &model.ConnectRequest{})
	require.True(t, errorx.Is(err, errorx.Unauthenticated))

	resp, err := s.user.Connect(s.as(testutil.AdminAddress), &model.ConnectRequest{})
	require.NoError(t, err)
	require.True(t, resp.IsAdmin)
	require.Len(t, resp.NFTs, 3)
	require.Equal(t, []string{"1", "2", "3"}, resp.User.NFTs)

	resp, err = s.user.Connect(s.as(testutil.User1Address), &model.ConnectRequest{})
	require.NoError(t, err)
	require.False(t, resp.IsAdmin)

	domain := NewUserDomain(s.ledger, &testutil.MockNFTCaller{
		GetOwnedNFTsFunc: func(ctx context.Context, address string) ([]model.NFT, error) {
			return nil, errors.New("rpc is down")
		},
	}, common.NewAdminVerifier(testutil.AdminAddress))
	_, err = domain.Connect(s.as(testutil.User1Address), &model.ConnectRequest{})
	require.True(t, errorx.Is(err, errorx.Unavailable))
}

func Test_userDomain_InitUserData_DuplicateTokens(t *testing.T) {
	s := newSuite(t)

	resp, err := s.user.InitUserData(s.ctx, &model.InitUserRequest{
		Address:  testutil.User1Address,
		TokenIDs: []string{"7", "7", "9", "7"},
	})
	require.NoError(t, err)
	require.Equal(t, []string{"7", "9"}, resp.User.NFTs)
	require.Len(t, resp.User.Knowledge, 2)
}

func Test_userDomain_UpdatePoints_Overflow(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address)

	_, err := s.user.UpdatePoints(s.ctx, &model.UpdatePointsRequest{
		Address: testutil.User1Address,
		Amount:  10,
		IsAdd:   true,
	})
	require.NoError(t, err)

	_, err = s.user.UpdatePoints(s.ctx, &model.UpdatePointsRequest{
		Address: testutil.User1Address,
		Amount:  math.MaxInt64,
		IsAdd:   true,
	})
	require.True(t, errorx.Is(err, errorx.BadRequest))
	require.Equal(t, int64(10), s.getUser(t, testutil.User1Address).Points)

	// Reaching the maximum exactly is allowed.
	resp, err := s.user.UpdatePoints(s.ctx, &model.UpdatePointsRequest{
		Address: testutil.User1Address,
		Amount:  math.MaxInt64 - 10,
		IsAdd:   true,
	})
	require.NoError(t, err)
	require.Equal(t, int64(math.MaxInt64), resp.Points)
}

func Test_userDomain_UpdateResources_Overflow(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address)

	_, err := s.user.UpdateResources(s.ctx, &model.UpdateResourcesRequest{
		Address:  testutil.User1Address,
		Resource: "Crystallite",
		Amount:   math.MaxInt64,
		IsAdd:    true,
	})
	require.NoError(t, err)

	_, err = s.user.UpdateResources(s.ctx, &model.UpdateResourcesRequest{
		Address:  testutil.User1Address,
		Resource: "Crystallite",
		Amount:   1,
		IsAdd:    true,
	})
	require.True(t, errorx.Is(err, errorx.BadRequest))
	require.Equal(t, int64(math.MaxInt64), s.getUser(t, testutil.User1Address).Resources["Crystallite"])
}

func Test_userDomain_UpdateUser_NullKnowledge(t *testing.T) {
	s := newSuite(t)
	s.initUser(t, testutil.User1Address, "1")

	_, err := s.user.UpdateUser(s.ctx, &model.UpdateUserRequest{
		Address:   testutil.User1Address,
		Knowledge: map[string]map[string]int{"1": nil},
	})
	require.True(t, errorx.Is(err, errorx.BadRequest))
	require.Len(t, s.getUser(t, testutil.User1Address).Knowledge["1"], len(common.Resources))
}

func Test_userDomain_UpdateKnowledge_NullStoredMap(t *testing.T) {
	ctx := testutil.MockContext()
	u := newUserAccount([]string{"1"})
	u.Knowledge["1"] = nil
	doc := entity.NewDocument()
	doc.Users.Set(testutil.User1Address, u)

	var saved *entity.Document
	ledger := NewLedger(&testutil.MockLedgerRepository{
		LoadFunc: func(ctx context.Context) (*entity.Document, error) {
			return doc, nil
		},
		SaveFunc: func(ctx context.Context, d *entity.Document) error {
			saved = d
			return nil
		},
	})
	domain := NewUserDomain(ledger, nil, common.NewAdminVerifier(testutil.AdminAddress))

	_, err := domain.UpdateKnowledge(ctx, &model.UpdateKnowledgeRequest{
		Address:  testutil.User1Address,
		TokenID:  "1",
		Resource: "Crystallite",
		Level:    2,
	})
	require.NoError(t, err)
	require.NotNil(t, saved)

	stored, ok := saved.Users.Get(testutil.User1Address)
	require.True(t, ok)
	require.Equal(t, 2, stored.Knowledge["1"]["Crystallite"])
	require.Equal(t, 1, stored.Knowledge["1"]["Hydroflux"])
}
