package domain

import (
	"context"
	"strings"
	"time"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/enum"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/idutil"
	"github.com/ronin-planets/backend/pkg/pubsub"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

type RewardDomain interface {
	CreateReward(context.Context, *model.CreateRewardRequest) (*model.CreateRewardResponse, error)
	GetRewards(context.Context, *model.GetRewardsRequest) (*model.GetRewardsResponse, error)
	ClaimReward(context.Context, *model.ClaimRewardRequest) (*model.ClaimRewardResponse, error)
	GetPendingClaims(context.Context, *model.GetPendingClaimsRequest) (*model.GetPendingClaimsResponse, error)
	DistributeReward(context.Context, *model.DistributeRewardRequest) (*model.DistributeRewardResponse, error)
	RejectReward(context.Context, *model.RejectRewardRequest) (*model.RejectRewardResponse, error)
	GetClaimedRewards(context.Context, *model.GetClaimedRewardsRequest) (*model.GetClaimedRewardsResponse, error)
}

type rewardDomain struct {
	ledger        *Ledger
	publisher     pubsub.Publisher
	adminVerifier *common.AdminVerifier
}

func NewRewardDomain(
	ledger *Ledger,
	publisher pubsub.Publisher,
	adminVerifier *common.AdminVerifier,
) RewardDomain {
	return &rewardDomain{
		ledger:        ledger,
		publisher:     publisher,
		adminVerifier: adminVerifier,
	}
}

func (d *rewardDomain) CreateReward(
	ctx context.Context, req *model.CreateRewardRequest,
) (*model.CreateRewardResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only admin can create rewards")
	}

	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, errorx.New(errorx.BadRequest, "Reward name is required")
	}

	rewardType, err := enum.ToEnum[entity.RewardType](req.Type)
	if err != nil {
		xcontext.Logger(ctx).Debugf("Invalid reward type: %v", err)
		return nil, errorx.New(errorx.BadRequest, "Invalid reward type %s", req.Type)
	}

	if req.PointsNeeded <= 0 {
		return nil, errorx.New(errorx.BadRequest, "Points needed must be positive")
	}

	reward := entity.Reward{
		ID:           idutil.NewUUID(),
		Name:         name,
		Description:  req.Description,
		Type:         rewardType,
		PointsNeeded: req.PointsNeeded,
		Amount:       req.Amount,
		CreatedAt:    time.Now().UTC(),
	}

	err = d.ledger.Update(ctx, func(doc *entity.Document) error {
		doc.Rewards = append(doc.Rewards, reward)
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishLedgerEvent(ctx, d.publisher, reward.ID, LedgerEvent{
		Type:      RewardCreatedEvent,
		Reward:    &reward,
		Timestamp: reward.CreatedAt,
	})

	return &model.CreateRewardResponse{Reward: reward}, nil
}

func (d *rewardDomain) GetRewards(
	ctx context.Context, req *model.GetRewardsRequest,
) (*model.GetRewardsResponse, error) {
	var rewards []entity.Reward
	err := d.ledger.View(ctx, func(doc *entity.Document) error {
		rewards = doc.Rewards
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.GetRewardsResponse{Rewards: rewards}, nil
}

func (d *rewardDomain) ClaimReward(
	ctx context.Context, req *model.ClaimRewardRequest,
) (*model.ClaimRewardResponse, error) {
	address := xcontext.RequestUserID(ctx)
	if address == "" {
		return nil, errorx.New(errorx.Unauthenticated, "Wallet is not connected")
	}

	claimID, err := idutil.NewSnowflakeID()
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot generate claim id: %v", err)
		return nil, errorx.Unknown
	}

	resp := &model.ClaimRewardResponse{}
	err = d.ledger.Update(ctx, func(doc *entity.Document) error {
		user, err := requireUser(doc, address)
		if err != nil {
			return err
		}

		reward := doc.FindReward(req.RewardID)
		if reward == nil {
			return errorx.New(errorx.NotFound, "Reward not found")
		}

		// A reward can be claimed once per user, whatever happened to the
		// earlier claim.
		if user.FindClaimedReward(reward.ID) != nil {
			return errorx.New(errorx.PreconditionFailed, "Reward has already been claimed")
		}

		if user.Points < reward.PointsNeeded {
			return errorx.New(errorx.PreconditionFailed,
				"Not enough points, need %d but have %d", reward.PointsNeeded, user.Points)
		}

		claim := entity.Claim{
			ID:         claimID,
			UserID:     address,
			RewardID:   reward.ID,
			RewardName: reward.Name,
			Timestamp:  time.Now().UTC(),
			Status:     entity.ClaimPending,
		}

		user.Points -= reward.PointsNeeded
		doc.PendingClaims = append(doc.PendingClaims, claim)
		user.ClaimedRewards = append(user.ClaimedRewards, entity.ClaimedReward{
			RewardID:  reward.ID,
			ClaimID:   claim.ID,
			Timestamp: claim.Timestamp,
			Status:    claim.Status,
		})

		resp.Claim = claim
		resp.Points = user.Points
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishLedgerEvent(ctx, d.publisher, resp.Claim.ID, LedgerEvent{
		Type:      ClaimCreatedEvent,
		Claim:     &resp.Claim,
		Timestamp: resp.Claim.Timestamp,
	})

	return resp, nil
}

func (d *rewardDomain) GetPendingClaims(
	ctx context.Context, req *model.GetPendingClaimsRequest,
) (*model.GetPendingClaimsResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only admin can view pending claims")
	}

	var claims []entity.Claim
	err := d.ledger.View(ctx, func(doc *entity.Document) error {
		claims = pendingClaims(doc)
		return nil
	})
	if err != nil {
		return nil, err
	}

	deadline := gameConfigs(ctx).ClaimDeadline
	now := time.Now()
	resp := &model.GetPendingClaimsResponse{Claims: []model.PendingClaim{}}
	for _, c := range claims {
		pc := model.PendingClaim{Claim: c, Deadline: c.Timestamp.Add(deadline)}
		pc.Overdue = now.After(pc.Deadline)
		resp.Claims = append(resp.Claims, pc)
	}

	return resp, nil
}

func (d *rewardDomain) DistributeReward(
	ctx context.Context, req *model.DistributeRewardRequest,
) (*model.DistributeRewardResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only admin can distribute rewards")
	}

	resp := &model.DistributeRewardResponse{}
	err := d.ledger.Update(ctx, func(doc *entity.Document) error {
		claim, err := requirePendingClaim(doc, req.ClaimID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		claim.Status = entity.ClaimDistributed
		claim.DistributedAt = &now
		mirrorClaimStatus(doc, claim)

		resp.Claim = *claim
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishLedgerEvent(ctx, d.publisher, resp.Claim.ID, LedgerEvent{
		Type:      ClaimDistributedEvent,
		Claim:     &resp.Claim,
		Timestamp: *resp.Claim.DistributedAt,
	})

	return resp, nil
}

func (d *rewardDomain) RejectReward(
	ctx context.Context, req *model.RejectRewardRequest,
) (*model.RejectRewardResponse, error) {
	if err := d.adminVerifier.Verify(ctx); err != nil {
		xcontext.Logger(ctx).Debugf("Permission denied: %v", err)
		return nil, errorx.New(errorx.PermissionDenied, "Only admin can reject rewards")
	}

	resp := &model.RejectRewardResponse{}
	err := d.ledger.Update(ctx, func(doc *entity.Document) error {
		claim, err := requirePendingClaim(doc, req.ClaimID)
		if err != nil {
			return err
		}

		now := time.Now().UTC()
		claim.Status = entity.ClaimRejected
		claim.RejectedAt = &now
		mirrorClaimStatus(doc, claim)

		// The refund follows the catalog price. Rewards are never edited, so
		// it equals what the claim deducted.
		if reward := doc.FindReward(claim.RewardID); reward != nil {
			if user, ok := doc.Users.Get(claim.UserID); ok {
				points, err := addBalance(user.Points, reward.PointsNeeded)
				if err != nil {
					return err
				}
				user.Points = points
				resp.Refunded = reward.PointsNeeded
			}
		}

		resp.Claim = *claim
		return nil
	})
	if err != nil {
		return nil, err
	}

	publishLedgerEvent(ctx, d.publisher, resp.Claim.ID, LedgerEvent{
		Type:      ClaimRejectedEvent,
		Claim:     &resp.Claim,
		Timestamp: *resp.Claim.RejectedAt,
	})

	return resp, nil
}

func (d *rewardDomain) GetClaimedRewards(
	ctx context.Context, req *model.GetClaimedRewardsRequest,
) (*model.GetClaimedRewardsResponse, error) {
	address, err := resolveAddress(ctx, d.adminVerifier, req.Address)
	if err != nil {
		return nil, err
	}

	claimed := []entity.ClaimedReward{}
	err = d.ledger.View(ctx, func(doc *entity.Document) error {
		if user, ok := doc.Users.Get(address); ok {
			claimed = user.ClaimedRewards
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return &model.GetClaimedRewardsResponse{ClaimedRewards: claimed}, nil
}

func pendingClaims(doc *entity.Document) []entity.Claim {
	claims := []entity.Claim{}
	for _, c := range doc.PendingClaims {
		if c.Status == entity.ClaimPending {
			claims = append(claims, c)
		}
	}

	return claims
}

// requirePendingClaim returns the claim with id. A claim that already
// reached a terminal state cannot transition again.
func requirePendingClaim(doc *entity.Document, id string) (*entity.Claim, error) {
	claim := doc.FindClaim(id)
	if claim == nil {
		return nil, errorx.New(errorx.NotFound, "Claim not found")
	}

	if claim.IsTerminal() {
		return nil, errorx.New(errorx.PreconditionFailed, "Claim is already %s", claim.Status)
	}

	return claim, nil
}

func mirrorClaimStatus(doc *entity.Document, claim *entity.Claim) {
	user, ok := doc.Users.Get(claim.UserID)
	if !ok {
		return
	}

	if summary := user.FindClaimedRewardByClaim(claim.ID); summary != nil {
		summary.Status = claim.Status
	}
}
