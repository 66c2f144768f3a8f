package usecase

import (
	"context"
	"fmt"
	"strings"

	"release-notes-bot/internal/domain/model"
)

type nopLogger struct{}

func (nopLogger) Info(context.Context, string, ...any)  {}
func (nopLogger) Warn(context.Context, string, ...any)  {}
func (nopLogger) Error(context.Context, string, ...any) {}

type fakeStore struct {
	execQueries  []string
	fetchQueries []string
	products     []model.Product
	execErr      error
	fetchErr     error
}

func (s *fakeStore) Exec(_ context.Context, query string) error {
	s.execQueries = append(s.execQueries, query)
	return s.execErr
}

func (s *fakeStore) QueryProducts(_ context.Context, query string) ([]model.Product, error) {
	s.fetchQueries = append(s.fetchQueries, query)
	if s.fetchErr != nil {
		return nil, s.fetchErr
	}
	return s.products, nil
}

type mapQuerySource map[string]string

func (m mapQuerySource) Load(name string) (string, error) {
	text, ok := m[name]
	if !ok {
		return "", fmt.Errorf("query not found: %s", name)
	}
	return text, nil
}

type sentCard struct {
	webhookURL string
	card       model.Card
}

type fakeNotifier struct {
	sent []sentCard
	resp *model.DeliveryResponse
	err  error
}

func (n *fakeNotifier) Send(_ context.Context, webhookURL string, card model.Card) (*model.DeliveryResponse, error) {
	n.sent = append(n.sent, sentCard{webhookURL: webhookURL, card: card})
	return n.resp, n.err
}

// emphasisMarkup renders *text* as <em>text</em>, enough to observe markup being applied.
type emphasisMarkup struct{}

func (emphasisMarkup) RenderInline(text string) string {
	parts := strings.Split(text, "*")
	var b strings.Builder
	for i, p := range parts {
		if i > 0 {
			if i%2 == 1 {
				b.WriteString("<em>")
			} else {
				b.WriteString("</em>")
			}
		}
		b.WriteString(p)
	}
	return b.String()
}
