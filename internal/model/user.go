package model

import "github.com/ronin-planets/backend/internal/entity"

type NFT struct {
	TokenID     string         `json:"token_id"`
	Name        string         `json:"name"`
	Image       string         `json:"image"`
	Description string         `json:"description"`
	Attributes  []NFTAttribute `json:"attributes"`
}

type NFTAttribute struct {
	TraitType string `json:"trait_type"`
	Value     string `json:"value"`
}

type ConnectRequest struct{}

type ConnectResponse struct {
	User    *entity.UserAccount `json:"user"`
	NFTs    []NFT               `json:"nfts"`
	IsAdmin bool                `json:"is_admin"`
}

type InitUserRequest struct {
	Address  string   `json:"address"`
	TokenIDs []string `json:"token_ids"`
}

type InitUserResponse struct {
	User *entity.UserAccount `json:"user"`
}

type SyncNFTsRequest struct {
	Address  string   `json:"address"`
	TokenIDs []string `json:"token_ids"`
}

type SyncNFTsResponse struct {
	User  *entity.UserAccount `json:"user"`
	Added []string            `json:"added"`
}

type GetUserRequest struct {
	Address string `mapstructure:"address" json:"address"`
}

type GetUserResponse struct {
	User *entity.UserAccount `json:"user"`
}

// UpdateUserRequest is a shallow merge: every non-nil field replaces the
// stored value as a whole.
type UpdateUserRequest struct {
	Address         string                    `json:"address"`
	NFTs            []string                  `json:"nfts"`
	Knowledge       map[string]map[string]int `json:"knowledge"`
	Resources       map[string]int64          `json:"resources"`
	Cooldowns       map[string]int64          `json:"cooldowns"`
	Points          *int64                    `json:"points"`
	ClaimedRewards  []entity.ClaimedReward    `json:"claimed_rewards"`
	CraftingHistory []entity.CraftingRecord   `json:"crafting_history"`
}

type UpdateUserResponse struct {
	User *entity.UserAccount `json:"user"`
}

type UpdateResourcesRequest struct {
	Address  string `json:"address"`
	Resource string `json:"resource"`
	Amount   int64  `json:"amount"`
	IsAdd    bool   `json:"is_add"`
}

type UpdateResourcesResponse struct {
	Amount int64 `json:"amount"`
}

type UpdatePointsRequest struct {
	Address string `json:"address"`
	Amount  int64  `json:"amount"`
	IsAdd   bool   `json:"is_add"`
}

type UpdatePointsResponse struct {
	Points int64 `json:"points"`
}

type UpdateKnowledgeRequest struct {
	Address  string `json:"address"`
	TokenID  string `json:"token_id"`
	Resource string `json:"resource"`
	Level    int    `json:"level"`
}

type UpdateKnowledgeResponse struct {
	Updated bool `json:"updated"`
}

type SetCooldownRequest struct {
	Address string `json:"address"`
	TokenID string `json:"token_id"`
	EndMs   int64  `json:"end_ms"`
}

type SetCooldownResponse struct {
	Updated bool `json:"updated"`
}

type GetCooldownRequest struct {
	Address string `mapstructure:"address" json:"address"`
	TokenID string `mapstructure:"token_id" json:"token_id"`
}

type GetCooldownResponse struct {
	HasCooldown bool  `json:"has_cooldown"`
	Active      bool  `json:"active"`
	EndMs       int64 `json:"end_ms,omitempty"`
	RemainingMs int64 `json:"remaining_ms,omitempty"`
}

type AddCraftingHistoryRequest struct {
	Address  string `json:"address"`
	RecipeID int    `json:"recipe_id"`
	// Timestamp defaults to now when zero.
	TimestampMs int64 `json:"timestamp_ms"`
}

type AddCraftingHistoryResponse struct {
	Added bool `json:"added"`
}
