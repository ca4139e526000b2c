package proposal

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"beanstalk/core"
	"beanstalk/pkg/number"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMarkdown(t *testing.T) {
	html, err := Markdown("# Title\n\nsee [doc](https://cf-ipfs.com/ipfs/abc) <script>alert(1)</script>")
	require.NoError(t, err)

	out := string(html)
	assert.Contains(t, out, "<h1")
	assert.Contains(t, out, `href="https://cf-ipfs.com/ipfs/abc"`)
	assert.Contains(t, out, `target="_blank"`)
	assert.NotContains(t, out, "<script>")
}

func TestMarkdownEmpty(t *testing.T) {
	html, err := Markdown("")
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(html)))
}

func TestRender(t *testing.T) {
	p := &core.Proposal{
		Title:       "BIP-21: Replant",
		Body:        "Read ipfs://bafy first.",
		Choices:     []string{"For", "Against"},
		Scores:      core.Scores{number.Decimal("600"), number.Decimal("400")},
		ScoresTotal: number.Decimal("1000"),
		Start:       now.Unix() - 3600,
		End:         now.Unix() + 3600,
	}

	var b bytes.Buffer
	require.NoError(t, Render(&b, Build(p, quorumOf(0.623, "For"), now)))

	out := b.String()
	assert.Contains(t, out, "BIP-21: Replant")
	assert.Contains(t, out, "62%")
	assert.Contains(t, out, `title="For is ~62.3% of the way to reaching quorum."`)
	assert.Contains(t, out, "https://cf-ipfs.com/ipfs/bafy")
	assert.Contains(t, out, `class="leading"`)
	assert.NotContains(t, out, "ipfs://bafy")
}

func TestRenderWithoutQuorum(t *testing.T) {
	p := &core.Proposal{Title: "BIP-22", End: now.Unix() + 60}

	var b bytes.Buffer
	require.NoError(t, Render(&b, Build(p, nil, now)))
	assert.NotContains(t, b.String(), "quorum-badge")
	assert.NotContains(t, b.String(), "reaching quorum")
}

func TestRenderPage(t *testing.T) {
	var b bytes.Buffer
	require.NoError(t, RenderPage(&b, Build(&core.Proposal{Title: "BIP-23"}, nil, now)))
	assert.True(t, strings.HasPrefix(strings.TrimSpace(b.String()), "<!doctype html>"))
	assert.Contains(t, b.String(), "<title>BIP-23</title>")
}

func TestRenderKeepsRenderedBody(t *testing.T) {
	s := newTestService(&memoryStore{}, &hub{}, quorums{})

	c, err := s.Content(context.Background(), &core.Proposal{Title: "BIP-25", Body: "<script>alert(1)</script>"}, nil)
	require.NoError(t, err)
	assert.Empty(t, strings.TrimSpace(string(c.Body)))

	// a body sanitised to nothing is not rendered again
	c.Markdown = "**fresh**"
	var b bytes.Buffer
	require.NoError(t, Render(&b, c))
	assert.NotContains(t, b.String(), "<strong>fresh</strong>")

	b.Reset()
	require.NoError(t, Render(&b, Build(&core.Proposal{Title: "BIP-26", Body: "**fresh**"}, nil, now)))
	assert.Contains(t, b.String(), "<strong>fresh</strong>")
}
