package bigquery

import (
	"testing"

	"cloud.google.com/go/bigquery"
	"github.com/stretchr/testify/assert"

	"release-notes-bot/internal/domain/model"
)

func TestToProduct(t *testing.T) {
	row := productRow{
		ProductName: bigquery.NullString{StringVal: "Cloud Run", Valid: true},
		ReleaseNotes: []releaseNoteRow{
			{
				ReleaseNoteType: bigquery.NullString{StringVal: "FEATURE", Valid: true},
				Description:     bigquery.NullString{StringVal: "Jobs are GA", Valid: true},
			},
			{
				ReleaseNoteType: bigquery.NullString{StringVal: "ISSUE", Valid: true},
			},
		},
	}

	assert.Equal(t, model.Product{
		Name: "Cloud Run",
		ReleaseNotes: []model.ReleaseNote{
			{Type: "FEATURE", Description: "Jobs are GA"},
			{Type: "ISSUE", Description: ""},
		},
	}, toProduct(row))
}

func TestToProduct_NoNotes(t *testing.T) {
	got := toProduct(productRow{ProductName: bigquery.NullString{StringVal: "GKE", Valid: true}})
	assert.Equal(t, "GKE", got.Name)
	assert.Empty(t, got.ReleaseNotes)
}
