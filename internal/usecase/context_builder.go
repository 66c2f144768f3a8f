package usecase

import (
	"fmt"
	"maps"
	"strings"
	"time"

	"release-notes-bot/internal/domain/model"
)

// BuildContext merges the static configuration with the run-time values.
// Run-time keys always win over static keys of the same name.
func BuildContext(static map[string]any, projectID string, at time.Time, testMode bool) (model.RenderContext, error) {
	webhook, ok := static[model.KeyWebhookURL].(string)
	if !ok || strings.TrimSpace(webhook) == "" {
		return model.RenderContext{}, model.ConfigurationError("build context", fmt.Errorf("%s is required", model.KeyWebhookURL))
	}

	values := make(map[string]any, len(static)+3)
	maps.Copy(values, static)
	values[model.KeyProjectID] = projectID
	values[model.KeyCurrentTimestamp] = model.FormatTimestamp(at)
	values[model.KeyTestMode] = testMode

	return model.NewRenderContext(values), nil
}
