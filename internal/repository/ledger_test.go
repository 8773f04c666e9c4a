package repository

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/testutil"
	"github.com/stretchr/testify/require"
)

func sampleDocument() *entity.Document {
	doc := entity.NewDocument()
	now := time.Date(2024, 5, 1, 10, 0, 0, 0, time.UTC)

	for _, addr := range []string{"0xCCC", "0xAAA", "0xBBB"} {
		u := &entity.UserAccount{
			NFTs:      []string{"1"},
			Knowledge: map[string]map[string]int{"1": {"Crystallite": 3}},
			Resources: map[string]int64{"Crystallite": 12},
			Cooldowns: map[string]int64{"1": now.UnixMilli()},
			Points:    40,
			CraftingHistory: []entity.CraftingRecord{
				{RecipeID: 1, RecipeName: "Basic Energy Cell", Output: 50, Timestamp: now},
			},
		}
		u.Normalize()
		doc.Users.Set(addr, u)
	}

	doc.Rewards = append(doc.Rewards, entity.Reward{
		ID: "r1", Name: "Ticket", Type: entity.ItemReward, PointsNeeded: 100, CreatedAt: now,
	})
	doc.PendingClaims = append(doc.PendingClaims, entity.Claim{
		ID: "c1", UserID: "0xAAA", RewardID: "r1", RewardName: "Ticket",
		Timestamp: now, Status: entity.ClaimPending,
	})

	return doc
}

func testRepository(t *testing.T, ctx context.Context, repo LedgerRepository) {
	// First load creates an empty document.
	doc, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, doc.Users.Len())
	require.Empty(t, doc.Rewards)
	require.Empty(t, doc.PendingClaims)

	want := sampleDocument()
	require.NoError(t, repo.Save(ctx, want))

	got, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, []string{"0xCCC", "0xAAA", "0xBBB"}, got.Users.Addresses())
	require.Equal(t, want.Rewards, got.Rewards)
	require.Equal(t, want.PendingClaims, got.PendingClaims)

	u, ok := got.Users.Get("0xAAA")
	require.True(t, ok)
	wantUser, _ := want.Users.Get("0xAAA")
	require.Equal(t, wantUser, u)

	// save(load()) leaves the stored document unchanged.
	require.NoError(t, repo.Save(ctx, got))
	again, err := repo.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, got, again)

	// Loaded documents are independent copies.
	u.Points = 999
	fresh, err := repo.Load(ctx)
	require.NoError(t, err)
	freshUser, _ := fresh.Users.Get("0xAAA")
	require.Equal(t, int64(40), freshUser.Points)
}

func TestFileLedgerRepository(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "data")
	repo := NewFileLedgerRepository(dir, "")
	testRepository(t, context.Background(), repo)

	require.Equal(t, filepath.Join(dir, entity.LedgerKey+".json"), repo.Path())

	entries, err := os.ReadDir(dir)
	require.NoError(t, err)
	require.Len(t, entries, 1, "temp files must not be left behind")
}

func TestFileLedgerRepository_CorruptFile(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileLedgerRepository(dir, "ledger")
	require.NoError(t, os.WriteFile(repo.Path(), []byte("{broken"), 0o600))

	_, err := repo.Load(context.Background())
	require.Error(t, err)
}

func TestFileLedgerRepository_PartialDocument(t *testing.T) {
	dir := t.TempDir()
	repo := NewFileLedgerRepository(dir, "ledger")
	require.NoError(t, os.WriteFile(repo.Path(), []byte(`{"users":{"0xA":{"points":5}}}`), 0o600))

	doc, err := repo.Load(context.Background())
	require.NoError(t, err)
	require.NotNil(t, doc.Rewards)
	require.NotNil(t, doc.PendingClaims)

	u, ok := doc.Users.Get("0xA")
	require.True(t, ok)
	require.Equal(t, int64(5), u.Points)
	require.NotNil(t, u.Resources)
	require.NotNil(t, u.ClaimedRewards)
}

func TestGormLedgerRepository(t *testing.T) {
	testRepository(t, testutil.MockContext(), NewGormLedgerRepository(""))
}

func TestGormLedgerRepository_SeparateKeys(t *testing.T) {
	ctx := testutil.MockContext()
	a := NewGormLedgerRepository("a")
	b := NewGormLedgerRepository("b")

	require.NoError(t, a.Save(ctx, sampleDocument()))

	doc, err := b.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 0, doc.Users.Len())

	doc, err = a.Load(ctx)
	require.NoError(t, err)
	require.Equal(t, 3, doc.Users.Len())
}

func TestRedisLedgerRepository(t *testing.T) {
	testRepository(t, context.Background(), NewRedisLedgerRepository(&testutil.MockRedisClient{}, ""))
}

func TestRedisLedgerRepository_SaveFailure(t *testing.T) {
	client := &testutil.MockRedisClient{
		SetFunc: func(ctx context.Context, key string, value []byte) error {
			return errors.New("quota exceeded")
		},
	}

	_, err := NewRedisLedgerRepository(client, "").Load(context.Background())
	require.Error(t, err)
}

func TestS3LedgerRepository(t *testing.T) {
	s := &testutil.MockStorage{}
	testRepository(t, context.Background(), NewS3LedgerRepository(s, "bucket", ""))
	require.Contains(t, s.Objects, "bucket/"+entity.LedgerKey+".json")
}
