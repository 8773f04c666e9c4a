package entity

import (
	"time"

	"github.com/ronin-planets/backend/pkg/enum"
)

type RewardType string

var (
	TokenReward = enum.New(RewardType("token"))
	NFTReward   = enum.New(RewardType("nft"))
	ItemReward  = enum.New(RewardType("item"))
	OtherReward = enum.New(RewardType("other"))
)

// Reward is immutable once created.
type Reward struct {
	ID           string     `json:"id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	Type         RewardType `json:"type"`
	PointsNeeded int64      `json:"pointsNeeded"`
	Amount       string     `json:"amount,omitempty"`
	CreatedAt    time.Time  `json:"createdAt"`
}

type ClaimStatus string

var (
	ClaimPending     = enum.New(ClaimStatus("pending"))
	ClaimDistributed = enum.New(ClaimStatus("distributed"))
	ClaimRejected    = enum.New(ClaimStatus("rejected"))
)

// Claim moves from pending to exactly one of distributed or rejected.
type Claim struct {
	ID            string      `json:"id"`
	UserID        string      `json:"userId"`
	RewardID      string      `json:"rewardId"`
	RewardName    string      `json:"rewardName"`
	Timestamp     time.Time   `json:"timestamp"`
	Status        ClaimStatus `json:"status"`
	DistributedAt *time.Time  `json:"distributedAt,omitempty"`
	RejectedAt    *time.Time  `json:"rejectedAt,omitempty"`
}

func (c *Claim) IsTerminal() bool {
	return c.Status == ClaimDistributed || c.Status == ClaimRejected
}
