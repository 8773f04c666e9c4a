package main

import (
	"context"
	"encoding/json"
	"errors"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ronin-planets/backend/internal/domain"
	"github.com/ronin-planets/backend/pkg/kafka"
	"github.com/ronin-planets/backend/pkg/pubsub"
	"github.com/ronin-planets/backend/pkg/xcontext"

	"github.com/urfave/cli/v2"
)

func (s *srv) startSubscriber(*cli.Context) error {
	cfg := xcontext.Configs(s.ctx).Kafka
	if cfg.Addr == "" {
		return errors.New("kafka address is not configured")
	}

	subscriber, err := kafka.NewSubscriber(
		"ledger-events",
		strings.Split(cfg.Addr, ","),
		[]string{domain.LedgerTopic(s.ctx)},
		s.handleLedgerEvent,
	)
	if err != nil {
		return err
	}
	defer subscriber.Stop(s.ctx)

	ctx, stop := signal.NotifyContext(s.ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	xcontext.Logger(s.ctx).Infof("Subscribed to topic %s", domain.LedgerTopic(s.ctx))
	subscriber.Subscribe(ctx)
	return nil
}

func (s *srv) handleLedgerEvent(ctx context.Context, pack *pubsub.Pack, t time.Time) {
	var event domain.LedgerEvent
	if err := json.Unmarshal(pack.Msg, &event); err != nil {
		xcontext.Logger(s.ctx).Errorf("Cannot decode ledger event %s: %v", pack.Key, err)
		return
	}

	switch {
	case event.Claim != nil:
		xcontext.Logger(s.ctx).Infof("%s | claim %s | user %s | reward %s | %s",
			event.Type, event.Claim.ID, event.Claim.UserID, event.Claim.RewardName, t.Format(time.RFC3339))
	case event.Reward != nil:
		xcontext.Logger(s.ctx).Infof("%s | reward %s | %s | %d points | %s",
			event.Type, event.Reward.ID, event.Reward.Name, event.Reward.PointsNeeded, t.Format(time.RFC3339))
	default:
		xcontext.Logger(s.ctx).Warnf("Empty ledger event %s", event.Type)
	}
}
