package usecase

import (
	"strings"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"release-notes-bot/internal/domain/model"
	"release-notes-bot/internal/domain/ports"
)

const (
	cardTitle     = "Daily GCP Release Note"
	footerHeader  = "To go Further"
	footerText    = `👉 <a href="https://cloud.google.com/release-notes">GCP Official Release Note</a>`
	noteSeparator = "<br><br>"
)

// CardBuilder turns grouped release notes into a digest card.
type CardBuilder struct {
	markup ports.MarkupRenderer
}

// NewCardBuilder constructs a CardBuilder using markup for note descriptions.
func NewCardBuilder(markup ports.MarkupRenderer) *CardBuilder {
	return &CardBuilder{markup: markup}
}

// Build returns nil when there are no products to report.
func (b *CardBuilder) Build(products []model.Product) *model.Card {
	if len(products) == 0 {
		return nil
	}

	sections := make([]model.Section, 0, len(products)+1)
	for _, p := range products {
		sections = append(sections, b.productSection(p))
	}

	sections = append(sections, model.Section{
		Header:  footerHeader,
		Widgets: []model.Widget{{Text: footerText}},
	})

	return &model.Card{
		Title:    cardTitle,
		Sections: sections,
	}
}

func (b *CardBuilder) productSection(p model.Product) model.Section {
	texts := make([]string, 0, len(p.ReleaseNotes))
	for _, note := range p.ReleaseNotes {
		texts = append(texts, b.noteText(note))
	}
	return model.Section{
		Header:  p.Name,
		Widgets: []model.Widget{{Text: strings.Join(texts, noteSeparator)}},
	}
}

func (b *CardBuilder) noteText(note model.ReleaseNote) string {
	description := note.Description
	if b.markup != nil {
		description = b.markup.RenderInline(description)
	}
	return capitalize(note.Type) + ": " + description
}

// capitalize upper-cases the first rune and lower-cases the rest.
// Casers are stateful, so each call gets its own.
func capitalize(s string) string {
	if s == "" {
		return s
	}
	_, size := utf8.DecodeRuneInString(s)
	return cases.Upper(language.Und).String(s[:size]) + cases.Lower(language.Und).String(s[size:])
}
