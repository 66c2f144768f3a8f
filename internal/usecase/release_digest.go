package usecase

import (
	"context"
	"fmt"
	"time"

	"release-notes-bot/internal/domain/model"
	"release-notes-bot/internal/domain/ports"
)

// Names of the query templates a run renders.
const (
	InsertQueryName = "insert_new_releases"
	FetchQueryName  = "get_new_releases"
)

// ReleaseDigest ingests new release notes and sends them as a single card.
type ReleaseDigest struct {
	store     ports.ReleaseStore
	queries   ports.QuerySource
	cards     *CardBuilder
	notifier  ports.Notifier
	logger    ports.Logger
	static    map[string]any
	projectID string
	now       func() time.Time
}

// ReleaseDigestConfig carries the static values every run is rendered with.
type ReleaseDigestConfig struct {
	ProjectID string
	Static    map[string]any
}

// NewReleaseDigest constructs a ReleaseDigest use case.
func NewReleaseDigest(
	store ports.ReleaseStore,
	queries ports.QuerySource,
	cards *CardBuilder,
	notifier ports.Notifier,
	logger ports.Logger,
	cfg ReleaseDigestConfig,
) *ReleaseDigest {
	return &ReleaseDigest{
		store:     store,
		queries:   queries,
		cards:     cards,
		notifier:  notifier,
		logger:    logger,
		static:    cfg.Static,
		projectID: cfg.ProjectID,
		now:       time.Now,
	}
}

// Run executes one ingestion-and-notification pass. It returns nil without
// error when there is nothing new to send.
func (d *ReleaseDigest) Run(ctx context.Context, trigger model.Trigger) (*model.DeliveryResponse, error) {
	start := time.Now()

	at := d.now().UTC()
	if trigger.TestMode() {
		at = trigger.TestTimestamp.UTC()
	}

	rc, err := BuildContext(d.static, d.projectID, at, trigger.TestMode())
	if err != nil {
		d.logger.Error(ctx, "failed to build render context", "error", err)
		return nil, err
	}
	d.logger.Info(ctx, "starting release digest",
		"timestamp", rc.CurrentTimestamp(),
		"test_mode", rc.TestMode())

	insertQuery, err := d.render(InsertQueryName, rc)
	if err != nil {
		d.logger.Error(ctx, "failed to render query", "query", InsertQueryName, "error", err)
		return nil, err
	}
	fetchQuery, err := d.render(FetchQueryName, rc)
	if err != nil {
		d.logger.Error(ctx, "failed to render query", "query", FetchQueryName, "error", err)
		return nil, err
	}

	if err := d.ingest(ctx, insertQuery, rc.TestMode()); err != nil {
		d.logger.Error(ctx, "failed to merge new releases", "error", err)
		return nil, err
	}

	products, err := d.fetch(ctx, fetchQuery)
	if err != nil {
		d.logger.Error(ctx, "failed to fetch new releases", "error", err)
		return nil, err
	}

	card := d.cards.Build(products)
	resp, err := d.dispatch(ctx, rc.WebhookURL(), card)
	if err != nil {
		d.logger.Error(ctx, "failed to send release digest", "error", err)
		return resp, err
	}

	d.logger.Info(ctx, "release digest completed",
		"products", len(products),
		"sent", resp != nil,
		"duration", time.Since(start))
	return resp, nil
}

func (d *ReleaseDigest) render(name string, rc model.RenderContext) (string, error) {
	text, err := d.queries.Load(name)
	if err != nil {
		return "", model.ConfigurationError("load "+name, err)
	}
	return RenderQuery(name, text, rc)
}

func (d *ReleaseDigest) ingest(ctx context.Context, query string, testMode bool) error {
	if testMode {
		d.logger.Warn(ctx, "test mode, skipping release merge")
		return nil
	}

	if err := d.store.Exec(ctx, query); err != nil {
		return model.StoreError("merge new releases", err)
	}
	return nil
}

func (d *ReleaseDigest) fetch(ctx context.Context, query string) ([]model.Product, error) {
	products, err := d.store.QueryProducts(ctx, query)
	if err != nil {
		return nil, model.StoreError("fetch new releases", err)
	}
	grouped := GroupProducts(products)
	d.logger.Info(ctx, "fetched new releases", "products", len(grouped))
	return grouped, nil
}

func (d *ReleaseDigest) dispatch(ctx context.Context, webhookURL string, card *model.Card) (*model.DeliveryResponse, error) {
	if card == nil {
		d.logger.Info(ctx, "no new releases, nothing to send")
		return nil, nil
	}

	resp, err := d.notifier.Send(ctx, webhookURL, *card)
	if err != nil {
		return resp, fmt.Errorf("dispatch card: %w", err)
	}
	return resp, nil
}

// GroupProducts merges products sharing a name into the first occurrence,
// keeping first-seen product order and note arrival order.
func GroupProducts(products []model.Product) []model.Product {
	if len(products) == 0 {
		return nil
	}

	grouped := make([]model.Product, 0, len(products))
	index := make(map[string]int, len(products))
	for _, p := range products {
		if i, exists := index[p.Name]; exists {
			grouped[i].ReleaseNotes = append(grouped[i].ReleaseNotes, p.ReleaseNotes...)
			continue
		}
		index[p.Name] = len(grouped)
		grouped = append(grouped, model.Product{
			Name:         p.Name,
			ReleaseNotes: append([]model.ReleaseNote(nil), p.ReleaseNotes...),
		})
	}
	return grouped
}
