// Package commander is the client library for enqueueing sync work. An admin
// backend embeds it to trigger deal sync passes and product imports.
package commander

import (
	"context"
	"encoding/json"
	"fmt"
)

//go:generate mockery --name Sender --filename sender.go

// Command actions understood by the syncer worker.
const (
	ActionSyncDeals      = "sync_deals"
	ActionImportProducts = "import_products"
)

// Command is one unit of work for the syncer worker.
type Command struct {
	Action string `json:"action"`
	Query  string `json:"query,omitempty"`
}

// Sender sends messages.
type Sender interface {
	Send(context.Context, []byte) error
}

// SyncCommander sends sync commands.
type SyncCommander struct {
	sender Sender
}

// NewSyncCommander returns new SyncCommander using provided sender for sending messages.
func NewSyncCommander(sender Sender) SyncCommander {
	return SyncCommander{
		sender: sender,
	}
}

// SendSyncDealsCommand requests one full deal sync pass.
func (c SyncCommander) SendSyncDealsCommand(ctx context.Context) error {
	return c.send(ctx, Command{
		Action: ActionSyncDeals,
	})
}

// SendImportProductsCommand requests importing products matching query.
func (c SyncCommander) SendImportProductsCommand(ctx context.Context, query string) error {
	return c.send(ctx, Command{
		Action: ActionImportProducts,
		Query:  query,
	})
}

func (c SyncCommander) send(ctx context.Context, cmd Command) error {
	cmdMsg, err := json.Marshal(cmd)
	if err != nil {
		return fmt.Errorf("can't marshal sync command: %w", err)
	}

	return c.sender.Send(ctx, cmdMsg)
}
