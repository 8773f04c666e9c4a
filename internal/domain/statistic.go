package domain

import (
	"context"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

type StatisticDomain interface {
	GetStatistics(context.Context, *model.GetStatisticsRequest) (*model.GetStatisticsResponse, error)
}

type statisticDomain struct {
	ledger        *Ledger
	adminVerifier *common.AdminVerifier
}

func NewStatisticDomain(ledger *Ledger, adminVerifier *common.AdminVerifier) StatisticDomain {
	return &statisticDomain{
		ledger:        ledger,
		adminVerifier: adminVerifier,
	}
}

func (d *statisticDomain) GetStatistics(
	ctx context.Context, req *model.GetStatisticsRequest,
) (*model.GetStatisticsResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only admin can view statistics")
	}

	var resp *model.GetStatisticsResponse
	err := d.ledger.View(ctx, func(doc *entity.Document) error {
		resp = computeStatistics(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return resp, nil
}

func computeStatistics(doc *entity.Document) *model.GetStatisticsResponse {
	resp := &model.GetStatisticsResponse{
		TotalUsers:   doc.Users.Len(),
		TotalRewards: len(doc.Rewards),
		TotalClaims:  len(doc.PendingClaims),
	}

	for _, c := range doc.PendingClaims {
		switch c.Status {
		case entity.ClaimPending:
			resp.PendingClaims++
		case entity.ClaimDistributed:
			resp.DistributedClaims++
		case entity.ClaimRejected:
			resp.RejectedClaims++
		}
	}

	doc.Users.Range(func(address string, u *entity.UserAccount) bool {
		crafts := len(u.CraftingHistory)
		resp.TotalPoints += u.Points
		resp.TotalCrafts += crafts

		// Strictly greater keeps the first address on ties.
		if crafts > 0 && (resp.MostActiveUser == nil || crafts > resp.MostActiveUser.Crafts) {
			resp.MostActiveUser = &model.MostActiveUser{Address: address, Crafts: crafts}
		}
		return true
	})

	return resp
}
