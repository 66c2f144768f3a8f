package markdown

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRenderer_RenderInline(t *testing.T) {
	r := New()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "New region", want: "New region"},
		{name: "emphasis", input: "Supports *bold*", want: "Supports <em>bold</em>"},
		{name: "strong", input: "Now **GA**", want: "Now <strong>GA</strong>"},
		{name: "link", input: "See [docs](https://cloud.google.com/run)", want: `See <a href="https://cloud.google.com/run">docs</a>`},
		{name: "code", input: "Use `gcloud run deploy`", want: "Use <code>gcloud run deploy</code>"},
		{name: "escaped", input: "a & b", want: "a &amp; b"},
		{name: "paragraphs", input: "First\n\nSecond", want: "First<br>Second"},
		{name: "list", input: "- one\n- two", want: "• one<br>• two"},
		{name: "paragraph then list", input: "Changes:\n\n- one\n- two", want: "Changes:<br>• one<br>• two"},
		{name: "heading", input: "## Changes\n\nBody", want: "<b>Changes</b><br>Body"},
		{name: "empty", input: "", want: ""},
		{name: "inline html link", input: `See <a href="https://x">docs</a>`, want: `See <a href="https://x">docs</a>`},
		{name: "inline html code", input: "Supports <code>bq</code> now", want: "Supports <code>bq</code> now"},
		{name: "inline html bold", input: "Now <b>GA</b>", want: "Now <b>GA</b>"},
		{name: "font color kept", input: `<font color="#ff0000">Deprecated</font> API`, want: `<font color="#ff0000">Deprecated</font> API`},
		{name: "unsupported tag unwrapped", input: `Now <span class="x">GA</span>`, want: "Now GA"},
		{name: "attributes stripped", input: `<b onclick="x()">GA</b>`, want: "<b>GA</b>"},
		{name: "script href dropped", input: `<a href="javascript:alert(1)">x</a>`, want: "x"},
		{name: "inline br", input: "one<br>two", want: "one<br>two"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.RenderInline(tt.input))
		})
	}
}

func TestRenderer_DropsScripts(t *testing.T) {
	assert.Equal(t, "", New().RenderInline("<script>alert(1)</script>"))
	assert.Equal(t, "Before", New().RenderInline("Before\n\n<script>alert(1)</script>"))
}

func TestRenderer_SkipsComments(t *testing.T) {
	got := New().RenderInline("a <!-- hidden --> b")
	assert.NotContains(t, got, "<!--")
	assert.NotContains(t, got, "hidden")
	assert.Equal(t, "a  b", got)
}
