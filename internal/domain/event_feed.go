package domain

import (
	"context"

	"github.com/gorilla/websocket"
	"github.com/ronin-planets/backend/pkg/pubsub"
	"github.com/ronin-planets/backend/pkg/ws"
	"github.com/ronin-planets/backend/pkg/xcontext"
)

// EventFeedDomain is a pubsub.Publisher which streams every ledger event to
// the connected websocket clients before handing it to the next publisher.
type EventFeedDomain interface {
	pubsub.Publisher
	ServeEvents(ctx context.Context, conn *websocket.Conn) error
}

type eventFeedDomain struct {
	hub  *ws.Hub
	next pubsub.Publisher
}

func NewEventFeedDomain(next pubsub.Publisher) EventFeedDomain {
	return &eventFeedDomain{
		hub:  ws.NewHub(),
		next: next,
	}
}

func (d *eventFeedDomain) Publish(ctx context.Context, topic string, pack *pubsub.Pack) error {
	d.hub.Broadcast(pack.Msg)

	if d.next == nil {
		return nil
	}

	return d.next.Publish(ctx, topic, pack)
}

func (d *eventFeedDomain) ServeEvents(ctx context.Context, conn *websocket.Conn) error {
	client := ws.NewClient(conn)
	d.hub.Register(client)
	defer d.hub.Unregister(client)

	xcontext.Logger(ctx).Infof("%s is watching ledger events", xcontext.RequestUserID(ctx))
	return client.Run(ctx)
}
