package ports

// MarkupRenderer turns markdown text into inline chat markup.
type MarkupRenderer interface {
	RenderInline(text string) string
}
