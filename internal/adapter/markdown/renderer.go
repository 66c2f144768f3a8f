package markdown

import (
	"bytes"
	"net/url"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"golang.org/x/net/html"
	"golang.org/x/net/html/atom"

	"release-notes-bot/internal/domain/ports"
)

const (
	lineBreak    = "<br>"
	bulletPrefix = "• "
)

// Renderer converts markdown descriptions into inline markup suitable for a
// chat text paragraph: block elements are flattened into <br>-separated runs.
type Renderer struct {
	md goldmark.Markdown
}

var _ ports.MarkupRenderer = (*Renderer)(nil)

// inlineTags are the elements kept in the output. Anything else is unwrapped
// to its text content.
var inlineTags = map[atom.Atom]bool{
	atom.B:      true,
	atom.Strong: true,
	atom.I:      true,
	atom.Em:     true,
	atom.U:      true,
	atom.S:      true,
	atom.Del:    true,
	atom.A:      true,
	atom.Code:   true,
	atom.Font:   true,
}

// keptAttrs lists the attributes that survive on kept elements.
var keptAttrs = map[atom.Atom][]string{
	atom.A:    {"href"},
	atom.Font: {"color"},
}

// New creates a Renderer. Raw HTML in the source is passed through goldmark
// and filtered while flattening.
func New() *Renderer {
	return &Renderer{
		md: goldmark.New(
			goldmark.WithExtensions(
				extension.Strikethrough,
				extension.Linkify,
			),
			goldmark.WithRendererOptions(gmhtml.WithUnsafe()),
		),
	}
}

// RenderInline renders text and flattens it to inline markup. If markdown
// conversion fails the escaped source text is returned.
func (r *Renderer) RenderInline(text string) string {
	var buf bytes.Buffer
	if err := r.md.Convert([]byte(text), &buf); err != nil {
		return html.EscapeString(text)
	}
	return flatten(buf.String())
}

func flatten(markup string) string {
	parent := &html.Node{Type: html.ElementNode, Data: "body", DataAtom: atom.Body}
	nodes, err := html.ParseFragment(strings.NewReader(markup), parent)
	if err != nil {
		return strings.TrimSpace(markup)
	}

	w := &inlineWriter{}
	for _, n := range nodes {
		w.block(n)
	}
	return strings.TrimSpace(w.buf.String())
}

type inlineWriter struct {
	buf    bytes.Buffer
	blocks int
}

func (w *inlineWriter) startBlock() {
	if w.blocks > 0 {
		w.buf.WriteString(lineBreak)
	}
	w.blocks++
}

func (w *inlineWriter) block(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		if strings.TrimSpace(n.Data) == "" {
			return
		}
		w.startBlock()
		w.inline(n)
		return
	case html.ElementNode:
	default:
		return
	}

	switch n.DataAtom {
	case atom.Script, atom.Style:
	case atom.P, atom.Blockquote, atom.Div:
		w.startBlock()
		w.children(n)
	case atom.H1, atom.H2, atom.H3, atom.H4, atom.H5, atom.H6:
		w.startBlock()
		w.buf.WriteString("<b>")
		w.children(n)
		w.buf.WriteString("</b>")
	case atom.Ul, atom.Ol:
		for li := n.FirstChild; li != nil; li = li.NextSibling {
			if li.Type != html.ElementNode || li.DataAtom != atom.Li {
				continue
			}
			w.startBlock()
			w.buf.WriteString(bulletPrefix)
			w.children(li)
		}
	case atom.Hr:
	default:
		w.startBlock()
		w.inline(n)
	}
}

// children writes the inline content of n, unwrapping nested paragraphs.
func (w *inlineWriter) children(n *html.Node) {
	first := true
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode && c.DataAtom == atom.P {
			if !first {
				w.buf.WriteString(lineBreak)
			}
			w.children(c)
			first = false
			continue
		}
		if c.Type == html.ElementNode && (c.DataAtom == atom.Ul || c.DataAtom == atom.Ol) {
			for li := c.FirstChild; li != nil; li = li.NextSibling {
				if li.Type != html.ElementNode || li.DataAtom != atom.Li {
					continue
				}
				w.buf.WriteString(lineBreak + bulletPrefix)
				w.children(li)
			}
			first = false
			continue
		}
		if c.Type == html.TextNode && strings.TrimSpace(c.Data) == "" && (c.PrevSibling == nil || c.NextSibling == nil) {
			continue
		}
		w.inline(c)
		first = false
	}
}

func (w *inlineWriter) inline(n *html.Node) {
	switch n.Type {
	case html.TextNode:
		w.buf.WriteString(html.EscapeString(n.Data))
		return
	case html.ElementNode:
	default:
		return
	}

	switch {
	case n.DataAtom == atom.Br:
		w.buf.WriteString(lineBreak)
	case n.DataAtom == atom.Script, n.DataAtom == atom.Style:
	case n.DataAtom == atom.A && !safeHref(attr(n, "href")):
		// A link without a usable target keeps only its text.
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.inline(c)
		}
	case inlineTags[n.DataAtom]:
		w.startTag(n)
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.inline(c)
		}
		w.buf.WriteString("</" + n.Data + ">")
	default:
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			w.inline(c)
		}
	}
}

func (w *inlineWriter) startTag(n *html.Node) {
	w.buf.WriteString("<" + n.Data)
	for _, name := range keptAttrs[n.DataAtom] {
		if val := attr(n, name); val != "" {
			w.buf.WriteString(" " + name + `="` + html.EscapeString(val) + `"`)
		}
	}
	w.buf.WriteString(">")
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Namespace == "" && a.Key == key {
			return a.Val
		}
	}
	return ""
}

func safeHref(href string) bool {
	href = strings.TrimSpace(href)
	if href == "" {
		return false
	}
	u, err := url.Parse(href)
	if err != nil {
		return false
	}
	switch strings.ToLower(u.Scheme) {
	case "", "http", "https", "mailto":
		return true
	default:
		return false
	}
}
