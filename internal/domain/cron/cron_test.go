package cron

import (
	"context"
	"encoding/json"
	"sync/atomic"
	"testing"
	"time"

	"github.com/ronin-planets/backend/internal/domain"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/repository"
	"github.com/ronin-planets/backend/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func seedLedger(t *testing.T, ctx context.Context) *domain.Ledger {
	repo := repository.NewGormLedgerRepository(entity.LedgerKey)
	doc, err := repo.Load(ctx)
	require.NoError(t, err)

	now := time.Now().UTC()
	doc.PendingClaims = []entity.Claim{
		{ID: "1", UserID: testutil.User1Address, Timestamp: now.Add(-50 * time.Hour), Status: entity.ClaimPending},
		{ID: "2", UserID: testutil.User1Address, Timestamp: now.Add(-50 * time.Hour), Status: entity.ClaimRejected},
		{ID: "3", UserID: testutil.User2Address, Timestamp: now.Add(-time.Hour), Status: entity.ClaimPending},
	}
	require.NoError(t, repo.Save(ctx, doc))

	return domain.NewLedger(repo)
}

func TestOverdueClaimCronJob(t *testing.T) {
	ctx := testutil.MockContext()
	job := NewOverdueClaimCronJob(seedLedger(t, ctx), 0)

	overdue, err := job.OverdueClaims(ctx, time.Now())
	require.NoError(t, err)
	require.Len(t, overdue, 1)
	require.Equal(t, "1", overdue[0].ID)

	overdue, err = job.OverdueClaims(ctx, time.Now().Add(48*time.Hour))
	require.NoError(t, err)
	require.Len(t, overdue, 2)

	job.Do(ctx)
	require.True(t, job.RunNow())
}

func TestLedgerBackupCronJob(t *testing.T) {
	ctx := testutil.MockContext()
	store := &testutil.MockStorage{}
	job := NewLedgerBackupCronJob(seedLedger(t, ctx), store, "backups-bucket", entity.LedgerKey, 0)

	at := time.Date(2024, 6, 1, 12, 30, 0, 0, time.UTC)
	key, err := job.Backup(ctx, at)
	require.NoError(t, err)
	require.Equal(t, "backups/ronin_planets_data/20240601T123000Z.json", key)

	var doc entity.Document
	require.NoError(t, json.Unmarshal(store.Objects["backups-bucket/"+key], &doc))
	require.Len(t, doc.PendingClaims, 3)
}

type countingJob struct {
	runs int32
}

func (j *countingJob) Do(ctx context.Context) { atomic.AddInt32(&j.runs, 1) }
func (j *countingJob) RunNow() bool           { return true }
func (j *countingJob) Next() time.Time        { return time.Now().Add(10 * time.Millisecond) }

func TestCronJobManager(t *testing.T) {
	ctx, cancel := context.WithCancel(testutil.MockContext())
	defer cancel()

	job := &countingJob{}
	manager := NewCronJobManager()
	manager.Register(job)

	done := make(chan struct{})
	go func() {
		manager.Start(ctx)
		close(done)
	}()

	require.Eventually(t, func() bool { return atomic.LoadInt32(&job.runs) >= 3 }, time.Second, 5*time.Millisecond)

	manager.Cancel(ctx)
	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("manager did not stop")
	}
}
