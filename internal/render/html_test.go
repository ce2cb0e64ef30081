package render

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"resume-builder/internal/model"
)

func TestHTMLDocumentInlinesStylesheet(t *testing.T) {
	page := mustRender(t, fullDocument(), model.TemplateProfessional, model.ColorGreen)
	out, err := HTMLDocument(page, "Jane Doe")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(out, "<!DOCTYPE html>"))
	assert.Contains(t, out, "<title>Jane Doe</title>")
	assert.Contains(t, out, "@page { size: A4 portrait")
	assert.Contains(t, out, `<div class="tpl-professional" data-color="green" data-template="professional">`)
	assert.Contains(t, out, `<h1 class="pro-name" data-role="full-name">Jane Doe</h1>`)
	assert.Contains(t, out, "background-color:#16a34a;color:#ffffff")
	assert.Contains(t, out, `<span class="pro-entry-dates" data-role="dates">2020-01 - Present</span>`)
}

func TestWriteHTMLEscapesUserText(t *testing.T) {
	d := janeDoe()
	d.PersonalInfo.FullName = `Jane <script>alert(1)</script>& "Co"`
	d.PersonalInfo.Summary = "<b>bold</b> claims"
	page := mustRender(t, d, model.TemplateMinimalist, model.ColorBlue)

	var b strings.Builder
	require.NoError(t, WriteHTML(&b, page))
	out := b.String()
	assert.NotContains(t, out, "<script>")
	assert.NotContains(t, out, "<b>")
	assert.Contains(t, out, "&lt;script&gt;alert(1)&lt;/script&gt;&amp; &#34;Co&#34;")
	assert.Contains(t, out, "&lt;b&gt;bold&lt;/b&gt; claims")
}

func TestWriteHTMLKeepsAngleBracketText(t *testing.T) {
	d := janeDoe()
	d.PersonalInfo.Summary = "Wrote C++ <templates> and kept latency<p99 budgets"
	d.Skills.Technical = "Go, <Rust>, SQL"
	page := mustRender(t, d, model.TemplateModern, model.ColorBlue)

	var b strings.Builder
	require.NoError(t, WriteHTML(&b, page))
	out := b.String()
	assert.Contains(t, out, "Wrote C++ &lt;templates&gt; and kept latency&lt;p99 budgets")
	assert.Contains(t, out, "&lt;Rust&gt;")
	assert.NotContains(t, out, "<templates>")
}

func TestWriteHTMLDropsUnsafeLinks(t *testing.T) {
	n := &Node{Kind: KindLink, Text: "x", Attrs: map[string]string{"href": "javascript:alert(1)"}}
	var b strings.Builder
	require.NoError(t, WriteHTML(&b, n))
	assert.Equal(t, "<a>x</a>", b.String())

	n.Attrs["href"] = "https://example.com/?a=1&b=2"
	b.Reset()
	require.NoError(t, WriteHTML(&b, n))
	assert.Equal(t, `<a href="https://example.com/?a=1&amp;b=2">x</a>`, b.String())
}
