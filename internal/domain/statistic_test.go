package domain

import (
	"testing"
	"time"

	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/pkg/errorx"
	"github.com/ronin-planets/backend/pkg/testutil"

	"github.com/stretchr/testify/require"
)

func Test_statisticDomain_GetStatistics(t *testing.T) {
	s := newSuite(t)
	admin := s.as(testutil.AdminAddress)

	resp, err := s.statistic.GetStatistics(admin, &model.GetStatisticsRequest{})
	require.NoError(t, err)
	require.Zero(t, resp.TotalUsers)
	require.Nil(t, resp.MostActiveUser)

	s.initUser(t, testutil.User2Address, "2")
	s.initUser(t, testutil.User1Address, "1")
	s.initUser(t, testutil.AdminAddress)
	s.setPoints(t, testutil.User1Address, 300)
	s.setPoints(t, testutil.User2Address, 20)

	// Every user has zero crafts, so nobody is the most active.
	resp, err = s.statistic.GetStatistics(admin, &model.GetStatisticsRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, resp.TotalUsers)
	require.Equal(t, int64(320), resp.TotalPoints)
	require.Nil(t, resp.MostActiveUser)

	craft := func(address string, times int) {
		for i := 0; i < times; i++ {
			_, err := s.user.AddCraftingHistory(s.ctx, &model.AddCraftingHistoryRequest{
				Address:     address,
				RecipeID:    1,
				TimestampMs: time.Now().UnixMilli(),
			})
			require.NoError(t, err)
		}
	}

	// User2 was inserted first and wins the tie.
	craft(testutil.User1Address, 2)
	craft(testutil.User2Address, 2)

	r1 := s.createReward(t, "Ronin Token", 100)
	r2 := s.createReward(t, "Planet Skin", 50)

	ctx := s.as(testutil.User1Address)
	c1, err := s.reward.ClaimReward(ctx, &model.ClaimRewardRequest{RewardID: r1.ID})
	require.NoError(t, err)
	c2, err := s.reward.ClaimReward(ctx, &model.ClaimRewardRequest{RewardID: r2.ID})
	require.NoError(t, err)
	_, err = s.reward.DistributeReward(admin, &model.DistributeRewardRequest{ClaimID: c1.Claim.ID})
	require.NoError(t, err)
	_, err = s.reward.RejectReward(admin, &model.RejectRewardRequest{ClaimID: c2.Claim.ID})
	require.NoError(t, err)

	resp, err = s.statistic.GetStatistics(admin, &model.GetStatisticsRequest{})
	require.NoError(t, err)
	require.Equal(t, 3, resp.TotalUsers)
	require.Equal(t, 2, resp.TotalRewards)
	require.Equal(t, 2, resp.TotalClaims)
	require.Equal(t, 0, resp.PendingClaims)
	require.Equal(t, 1, resp.DistributedClaims)
	require.Equal(t, 1, resp.RejectedClaims)
	require.Equal(t, int64(220), resp.TotalPoints)
	require.Equal(t, 4, resp.TotalCrafts)
	require.Equal(t, &model.MostActiveUser{Address: testutil.User2Address, Crafts: 2}, resp.MostActiveUser)

	craft(testutil.User1Address, 1)
	resp, err = s.statistic.GetStatistics(admin, &model.GetStatisticsRequest{})
	require.NoError(t, err)
	require.Equal(t, &model.MostActiveUser{Address: testutil.User1Address, Crafts: 3}, resp.MostActiveUser)
}

func Test_statisticDomain_GetStatistics_NotAdmin(t *testing.T) {
	s := newSuite(t)

	_, err := s.statistic.GetStatistics(s.as(testutil.User1Address), &model.GetStatisticsRequest{})
	require.True(t, errorx.Is(err, errorx.PermissionDenied))

	_, err = s.statistic.GetStatistics(s.ctx, &model.GetStatisticsRequest{})
	require.True(t, errorx.Is(err, errorx.PermissionDenied))
}
