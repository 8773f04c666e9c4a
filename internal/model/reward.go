package model

import (
	"time"

	"github.com/ronin-planets/backend/internal/entity"
)

type CreateRewardRequest struct {
	Name         string `json:"name"`
	Description  string `json:"description"`
	Type         string `json:"type"`
	PointsNeeded int64  `json:"points_needed"`
	Amount       string `json:"amount"`
}

type CreateRewardResponse struct {
	Reward entity.Reward `json:"reward"`
}

type GetRewardsRequest struct{}

type GetRewardsResponse struct {
	Rewards []entity.Reward `json:"rewards"`
}

type ClaimRewardRequest struct {
	RewardID string `json:"reward_id"`
}

type ClaimRewardResponse struct {
	Claim  entity.Claim `json:"claim"`
	Points int64        `json:"points"`
}

type PendingClaim struct {
	entity.Claim
	Deadline time.Time `json:"deadline"`
	Overdue  bool      `json:"overdue"`
}

type GetPendingClaimsRequest struct{}

type GetPendingClaimsResponse struct {
	Claims []PendingClaim `json:"claims"`
}

type DistributeRewardRequest struct {
	ClaimID string `json:"claim_id"`
}

type DistributeRewardResponse struct {
	Claim entity.Claim `json:"claim"`
}

type RejectRewardRequest struct {
	ClaimID string `json:"claim_id"`
}

type RejectRewardResponse struct {
	Claim    entity.Claim `json:"claim"`
	Refunded int64        `json:"refunded"`
}

type GetClaimedRewardsRequest struct {
	Address string `mapstructure:"address" json:"address"`
}

type GetClaimedRewardsResponse struct {
	ClaimedRewards []entity.ClaimedReward `json:"claimed_rewards"`
}
