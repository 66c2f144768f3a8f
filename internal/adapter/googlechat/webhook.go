package googlechat

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	"release-notes-bot/internal/domain/model"
	"release-notes-bot/internal/domain/ports"
)

const contentType = "application/json; charset=UTF-8"

// Webhook is a Google Chat incoming webhook notifier.
type Webhook struct {
	httpClient *http.Client
	logger     ports.Logger
}

var _ ports.Notifier = (*Webhook)(nil)

// NewWebhook creates a new Google Chat webhook notifier.
func NewWebhook(timeout time.Duration, logger ports.Logger) *Webhook {
	return &Webhook{
		httpClient: &http.Client{Timeout: timeout},
		logger:     logger,
	}
}

type cardMessage struct {
	Cards []card `json:"cards"`
}

type card struct {
	Header   cardHeader `json:"header"`
	Sections []section  `json:"sections"`
}

type cardHeader struct {
	Title string `json:"title"`
}

type section struct {
	Header  string   `json:"header"`
	Widgets []widget `json:"widgets"`
}

type widget struct {
	TextParagraph textParagraph `json:"textParagraph"`
}

type textParagraph struct {
	Text string `json:"text"`
}

// Encode serializes a card into the Google Chat card message format. Markup
// in widget text is kept verbatim rather than escaped.
func Encode(c model.Card) ([]byte, error) {
	sections := make([]section, 0, len(c.Sections))
	for _, s := range c.Sections {
		widgets := make([]widget, 0, len(s.Widgets))
		for _, w := range s.Widgets {
			widgets = append(widgets, widget{TextParagraph: textParagraph{Text: w.Text}})
		}
		sections = append(sections, section{Header: s.Header, Widgets: widgets})
	}

	msg := cardMessage{
		Cards: []card{{
			Header:   cardHeader{Title: c.Title},
			Sections: sections,
		}},
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(msg); err != nil {
		return nil, fmt.Errorf("marshal card: %w", err)
	}
	return bytes.TrimSuffix(buf.Bytes(), []byte("\n")), nil
}

// Send posts the card to the webhook once and returns the status and the full
// response body. Non-2xx responses are returned together with a transport error.
func (w *Webhook) Send(ctx context.Context, webhookURL string, c model.Card) (*model.DeliveryResponse, error) {
	if webhookURL == "" {
		return nil, model.ConfigurationError("send card", fmt.Errorf("webhook URL is empty"))
	}

	body, err := Encode(c)
	if err != nil {
		return nil, model.TransportError("encode card", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, webhookURL, bytes.NewReader(body))
	if err != nil {
		return nil, model.TransportError("create request", err)
	}
	req.Header.Set("Content-Type", contentType)

	resp, err := w.httpClient.Do(req)
	if err != nil {
		return nil, model.TransportError("perform request", err)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, model.TransportError("read response", err)
	}

	result := &model.DeliveryResponse{StatusCode: resp.StatusCode, Body: data}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return result, model.TransportError("deliver card", fmt.Errorf("google chat webhook returned status %d", resp.StatusCode))
	}

	if w.logger != nil {
		w.logger.Info(ctx, "card sent to google chat",
			"webhook", RedactURL(webhookURL),
			"sections", len(c.Sections),
			"status", resp.StatusCode)
	}
	return result, nil
}

// RedactURL masks query parameter values (Google Chat puts the key and token
// there) so the URL can be logged.
func RedactURL(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return "<invalid-url>"
	}
	if u.RawQuery != "" {
		q := u.Query()
		for key := range q {
			q.Set(key, "REDACTED")
		}
		u.RawQuery = q.Encode()
	}
	return u.Redacted()
}
