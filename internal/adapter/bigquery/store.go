package bigquery

import (
	"context"
	"errors"
	"fmt"

	"cloud.google.com/go/bigquery"
	"google.golang.org/api/iterator"

	"release-notes-bot/internal/domain/model"
	"release-notes-bot/internal/domain/ports"
)

// Store runs release note queries on BigQuery. Select queries must return
// product_name and release_notes ARRAY<STRUCT<release_note_type, description>>.
type Store struct {
	client *bigquery.Client
	logger ports.Logger
}

var _ ports.ReleaseStore = (*Store)(nil)

// New creates a BigQuery client for projectID using application default credentials.
func New(ctx context.Context, projectID string, logger ports.Logger) (*Store, error) {
	if projectID == "" {
		return nil, errors.New("bigquery project ID is required")
	}
	client, err := bigquery.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("create bigquery client: %w", err)
	}
	return &Store{client: client, logger: logger}, nil
}

// Close releases the client.
func (s *Store) Close() error {
	if s == nil || s.client == nil {
		return nil
	}
	return s.client.Close()
}

// Exec runs the statement as a query job and waits for the job to finish.
func (s *Store) Exec(ctx context.Context, query string) error {
	job, err := s.client.Query(query).Run(ctx)
	if err != nil {
		return fmt.Errorf("start query job: %w", err)
	}

	status, err := job.Wait(ctx)
	if err != nil {
		return fmt.Errorf("wait for job %s: %w", job.ID(), err)
	}
	if err := status.Err(); err != nil {
		return fmt.Errorf("job %s failed: %w", job.ID(), err)
	}

	if s.logger != nil {
		s.logger.Info(ctx, "bigquery job completed", "job_id", job.ID())
	}
	return nil
}

type releaseNoteRow struct {
	ReleaseNoteType bigquery.NullString `bigquery:"release_note_type"`
	Description     bigquery.NullString `bigquery:"description"`
}

type productRow struct {
	ProductName  bigquery.NullString `bigquery:"product_name"`
	ReleaseNotes []releaseNoteRow    `bigquery:"release_notes"`
}

// QueryProducts runs the select and maps each row to a Product.
func (s *Store) QueryProducts(ctx context.Context, query string) ([]model.Product, error) {
	it, err := s.client.Query(query).Read(ctx)
	if err != nil {
		return nil, fmt.Errorf("run query: %w", err)
	}

	var products []model.Product
	for {
		var row productRow
		err := it.Next(&row)
		if errors.Is(err, iterator.Done) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("read row: %w", err)
		}
		products = append(products, toProduct(row))
	}
	return products, nil
}

func toProduct(row productRow) model.Product {
	notes := make([]model.ReleaseNote, 0, len(row.ReleaseNotes))
	for _, n := range row.ReleaseNotes {
		notes = append(notes, model.ReleaseNote{
			Type:        n.ReleaseNoteType.StringVal,
			Description: n.Description.StringVal,
		})
	}
	return model.Product{
		Name:         row.ProductName.StringVal,
		ReleaseNotes: notes,
	}
}
