package domain

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/internal/model"
	"github.com/ronin-planets/backend/internal/repository"
	"github.com/ronin-planets/backend/pkg/pubsub"
	"github.com/ronin-planets/backend/pkg/testutil"
	"github.com/ronin-planets/backend/pkg/xcontext"

	"github.com/stretchr/testify/require"
)

// suite wires every domain over one sqlite backed ledger.
type suite struct {
	ctx       context.Context
	ledger    *Ledger
	publisher *testutil.MockPublisher
	events    []LedgerEvent

	user      UserDomain
	reward    RewardDomain
	statistic StatisticDomain
	game      GameDomain
}

func newSuite(t *testing.T) *suite {
	s := &suite{
		ctx:    testutil.MockContext(),
		ledger: NewLedger(repository.NewGormLedgerRepository(entity.LedgerKey)),
	}

	s.publisher = &testutil.MockPublisher{
		PublishFunc: func(ctx context.Context, topic string, pack *pubsub.Pack) error {
			var event LedgerEvent
			if err := json.Unmarshal(pack.Msg, &event); err != nil {
				return err
			}
			s.events = append(s.events, event)
			return nil
		},
	}

	verifier := common.NewAdminVerifier(testutil.AdminAddress)
	s.user = NewUserDomain(s.ledger, testutil.OwnedNFTs("1", "2", "3"), verifier)
	s.reward = NewRewardDomain(s.ledger, s.publisher, verifier)
	s.statistic = NewStatisticDomain(s.ledger, verifier)
	s.game = NewGameDomain(s.ledger)

	return s
}

func (s *suite) as(address string) context.Context {
	return xcontext.WithRequestUserID(s.ctx, address)
}

func (s *suite) initUser(t *testing.T, address string, tokenIDs ...string) {
	_, err := s.user.InitUserData(s.ctx, &model.InitUserRequest{
		Address:  address,
		TokenIDs: tokenIDs,
	})
	require.NoError(t, err)
}

func (s *suite) setPoints(t *testing.T, address string, points int64) {
	_, err := s.user.UpdateUser(s.ctx, &model.UpdateUserRequest{
		Address: address,
		Points:  &points,
	})
	require.NoError(t, err)
}

func (s *suite) getUser(t *testing.T, address string) *entity.UserAccount {
	resp, err := s.user.GetUser(s.ctx, &model.GetUserRequest{Address: address})
	require.NoError(t, err)
	return resp.User
}

func (s *suite) createReward(t *testing.T, name string, pointsNeeded int64) entity.Reward {
	resp, err := s.reward.CreateReward(s.as(testutil.AdminAddress), &model.CreateRewardRequest{
		Name:         name,
		Type:         string(entity.TokenReward),
		PointsNeeded: pointsNeeded,
	})
	require.NoError(t, err)
	return resp.Reward
}
