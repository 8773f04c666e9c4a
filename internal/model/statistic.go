package model

type GetStatisticsRequest struct{}

type MostActiveUser struct {
	Address string `json:"address"`
	Crafts  int    `json:"crafts"`
}

type GetStatisticsResponse struct {
	TotalUsers        int             `json:"total_users"`
	TotalRewards      int             `json:"total_rewards"`
	TotalClaims       int             `json:"total_claims"`
	PendingClaims     int             `json:"pending_claims"`
	DistributedClaims int             `json:"distributed_claims"`
	RejectedClaims    int             `json:"rejected_claims"`
	TotalPoints       int64           `json:"total_points"`
	TotalCrafts       int             `json:"total_crafts"`
	MostActiveUser    *MostActiveUser `json:"most_active_user"`
}
