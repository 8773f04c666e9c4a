package cron

import (
	"context"
	"time"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/domain"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

// OverdueClaimCronJob reports pending claims older than the claim deadline.
// Claims never expire, so nothing is changed.
type OverdueClaimCronJob struct {
	ledger   *domain.Ledger
	interval time.Duration
}

func NewOverdueClaimCronJob(ledger *domain.Ledger, interval time.Duration) *OverdueClaimCronJob {
	if interval <= 0 {
		interval = time.Hour
	}

	return &OverdueClaimCronJob{ledger: ledger, interval: interval}
}

func (job *OverdueClaimCronJob) Do(ctx context.Context) {
	overdue, err := job.OverdueClaims(ctx, time.Now())
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot check overdue claims: %v", err)
		return
	}

	for _, c := range overdue {
		xcontext.Logger(ctx).Warnf("Claim %s of %s for reward %s is overdue since %s",
			c.ID, c.UserID, c.RewardName, c.Timestamp.Add(claimDeadline(ctx)).Format(time.RFC3339))
	}
}

// OverdueClaims returns the pending claims whose deadline passed before now.
func (job *OverdueClaimCronJob) OverdueClaims(ctx context.Context, now time.Time) ([]entity.Claim, error) {
	deadline := claimDeadline(ctx)

	var overdue []entity.Claim
	err := job.ledger.View(ctx, func(doc *entity.Document) error {
		for _, c := range doc.PendingClaims {
			if c.Status == entity.ClaimPending && now.After(c.Timestamp.Add(deadline)) {
				overdue = append(overdue, c)
			}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return overdue, nil
}

func (job *OverdueClaimCronJob) RunNow() bool {
	return true
}

func (job *OverdueClaimCronJob) Next() time.Time {
	return time.Now().Add(job.interval)
}

func claimDeadline(ctx context.Context) time.Duration {
	if d := xcontext.Configs(ctx).Game.ClaimDeadline; d > 0 {
		return d
	}

	return common.ClaimDeadline
}
