package entity

import "time"

type UserAccount struct {
	NFTs            []string                  `json:"nfts"`
	Knowledge       map[string]map[string]int `json:"knowledge"`
	Resources       map[string]int64          `json:"resources"`
	Cooldowns       map[string]int64          `json:"cooldowns"`
	Points          int64                     `json:"points"`
	ClaimedRewards  []ClaimedReward           `json:"claimedRewards"`
	CraftingHistory []CraftingRecord          `json:"craftingHistory"`
}

// ClaimedReward mirrors the status of the linked Claim.
type ClaimedReward struct {
	RewardID  string      `json:"rewardId"`
	ClaimID   string      `json:"claimId"`
	Timestamp time.Time   `json:"timestamp"`
	Status    ClaimStatus `json:"status"`
}

type CraftingRecord struct {
	RecipeID   int       `json:"recipeId"`
	RecipeName string    `json:"recipeName"`
	Output     int64     `json:"output"`
	Timestamp  time.Time `json:"timestamp"`
}

func (u *UserAccount) Normalize() {
	if u.NFTs == nil {
		u.NFTs = []string{}
	}
	if u.Knowledge == nil {
		u.Knowledge = map[string]map[string]int{}
	}
	for tokenID, knowledge := range u.Knowledge {
		if knowledge == nil {
			u.Knowledge[tokenID] = map[string]int{}
		}
	}
	if u.Resources == nil {
		u.Resources = map[string]int64{}
	}
	if u.Cooldowns == nil {
		u.Cooldowns = map[string]int64{}
	}
	if u.ClaimedRewards == nil {
		u.ClaimedRewards = []ClaimedReward{}
	}
	if u.CraftingHistory == nil {
		u.CraftingHistory = []CraftingRecord{}
	}
}

func (u *UserAccount) OwnsNFT(tokenID string) bool {
	for _, id := range u.NFTs {
		if id == tokenID {
			return true
		}
	}

	return false
}

func (u *UserAccount) FindClaimedReward(rewardID string) *ClaimedReward {
	for i := range u.ClaimedRewards {
		if u.ClaimedRewards[i].RewardID == rewardID {
			return &u.ClaimedRewards[i]
		}
	}

	return nil
}

func (u *UserAccount) FindClaimedRewardByClaim(claimID string) *ClaimedReward {
	for i := range u.ClaimedRewards {
		if u.ClaimedRewards[i].ClaimID == claimID {
			return &u.ClaimedRewards[i]
		}
	}

	return nil
}
