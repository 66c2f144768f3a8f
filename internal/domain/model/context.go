package model

import (
	"maps"
	"time"
)

// Well-known render context keys.
const (
	KeyProjectID        = "project_id"
	KeyCurrentTimestamp = "current_timestamp"
	KeyWebhookURL       = "webhook_url"
	KeyTestMode         = "test_mode"
)

// TimestampLayout is the fixed-width UTC layout used for timestamps placed in
// the render context, so both rendered queries compare them as equal strings.
const TimestampLayout = "2006-01-02T15:04:05.000000Z"

// FormatTimestamp renders t in UTC using TimestampLayout.
func FormatTimestamp(t time.Time) string {
	return t.UTC().Format(TimestampLayout)
}

// RenderContext is the read-only set of values templates are rendered against.
type RenderContext struct {
	values map[string]any
}

// NewRenderContext copies values into a new context.
func NewRenderContext(values map[string]any) RenderContext {
	return RenderContext{values: maps.Clone(values)}
}

// Values returns a copy of the context values.
func (c RenderContext) Values() map[string]any {
	if c.values == nil {
		return map[string]any{}
	}
	return maps.Clone(c.values)
}

// String returns the value under key when it is a string.
func (c RenderContext) String(key string) string {
	s, _ := c.values[key].(string)
	return s
}

// WebhookURL returns the configured webhook URL.
func (c RenderContext) WebhookURL() string {
	return c.String(KeyWebhookURL)
}

// CurrentTimestamp returns the formatted run timestamp.
func (c RenderContext) CurrentTimestamp() string {
	return c.String(KeyCurrentTimestamp)
}

// TestMode reports whether the context was built for a test run.
func (c RenderContext) TestMode() bool {
	b, _ := c.values[KeyTestMode].(bool)
	return b
}
