package ports

import (
	"context"

	"release-notes-bot/internal/domain/model"
)

// Notifier delivers a card to a chat webhook (e.g. Google Chat) and returns
// the endpoint's raw response.
type Notifier interface {
	Send(ctx context.Context, webhookURL string, card model.Card) (*model.DeliveryResponse, error)
}
