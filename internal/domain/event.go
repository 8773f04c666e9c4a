package domain

import (
	"context"
	"encoding/json"
	"time"

	"github.com/ronin-planets/backend/internal/common"
	"github.com/ronin-planets/backend/internal/entity"
	"github.com/ronin-planets/backend/pkg/pubsub"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

const defaultLedgerTopic = "ronin-ledger"

type LedgerEventType string

const (
	RewardCreatedEvent    LedgerEventType = "reward_created"
	ClaimCreatedEvent     LedgerEventType = "claim_created"
	ClaimDistributedEvent LedgerEventType = "claim_distributed"
	ClaimRejectedEvent    LedgerEventType = "claim_rejected"
)

// LedgerEvent is published after a ledger transition has been saved.
type LedgerEvent struct {
	Type      LedgerEventType `json:"type"`
	Reward    *entity.Reward  `json:"reward,omitempty"`
	Claim     *entity.Claim   `json:"claim,omitempty"`
	Timestamp time.Time       `json:"timestamp"`
}

func LedgerTopic(ctx context.Context) string {
	if topic := xcontext.Configs(ctx).Kafka.Topic; topic != "" {
		return topic
	}

	return defaultLedgerTopic
}

// publishLedgerEvent never fails the caller, the ledger is already saved.
func publishLedgerEvent(ctx context.Context, publisher pubsub.Publisher, key string, event LedgerEvent) {
	common.PromCounters[common.LedgerEventTotal].WithLabelValues(string(event.Type)).Inc()

	if publisher == nil {
		return
	}

	b, err := json.Marshal(event)
	if err != nil {
		xcontext.Logger(ctx).Errorf("Cannot marshal ledger event %s: %v", event.Type, err)
		return
	}

	err = publisher.Publish(ctx, LedgerTopic(ctx), &pubsub.Pack{Key: []byte(key), Msg: b})
	if err != nil {
		xcontext.Logger(ctx).Warnf("Cannot publish ledger event %s: %v", event.Type, err)
	}
}
