package markdown_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditev/pkg/doctree"
	"github.com/yaklabco/goeditev/pkg/markdown"
)

func TestParse_ParagraphWithStrong(t *testing.T) {
	t.Parallel()

	p := markdown.New()
	snap := p.Parse([]byte("Hello **bold** world"))

	require.Equal(t, 1, snap.Root.ChildCount())
	para := snap.Root.Child(0)
	assert.Equal(t, markdown.NodeParagraph, para.TypeName())

	require.Equal(t, 3, para.ChildCount())
	assert.Equal(t, "Hello ", para.Child(0).Text)
	assert.Empty(t, para.Child(0).Marks)
	assert.Equal(t, "bold", para.Child(1).Text)
	assert.True(t, para.Child(1).Marks.HasType(p.Schema().MarkType(markdown.MarkStrong)))
	assert.Equal(t, " world", para.Child(2).Text)
}

func TestParse_HeadingLevel(t *testing.T) {
	t.Parallel()

	snap := markdown.New().Parse([]byte("## Title"))

	require.Equal(t, 1, snap.Root.ChildCount())
	h := snap.Root.Child(0)
	assert.Equal(t, markdown.NodeHeading, h.TypeName())
	assert.Equal(t, 2, h.Attrs["level"])
	require.Equal(t, 1, h.ChildCount())
	assert.Equal(t, "Title", h.Child(0).Text)
}

func TestParse_NestedEmphasis(t *testing.T) {
	t.Parallel()

	p := markdown.New()
	snap := p.Parse([]byte("*em **and strong***"))

	para := snap.Root.Child(0)
	em := p.Schema().MarkType(markdown.MarkEm)
	strong := p.Schema().MarkType(markdown.MarkStrong)

	require.Equal(t, 2, para.ChildCount())
	assert.Equal(t, "em ", para.Child(0).Text)
	assert.True(t, para.Child(0).Marks.HasType(em))
	assert.False(t, para.Child(0).Marks.HasType(strong))

	assert.Equal(t, "and strong", para.Child(1).Text)
	assert.True(t, para.Child(1).Marks.HasType(em))
	assert.True(t, para.Child(1).Marks.HasType(strong))
}

func TestParse_CodeSpan(t *testing.T) {
	t.Parallel()

	p := markdown.New()
	snap := p.Parse([]byte("run `go doc` now"))

	para := snap.Root.Child(0)
	require.Equal(t, 3, para.ChildCount())
	assert.Equal(t, "go doc", para.Child(1).Text)
	assert.True(t, para.Child(1).Marks.HasType(p.Schema().MarkType(markdown.MarkCode)))
}

func TestParse_LinkHref(t *testing.T) {
	t.Parallel()

	p := markdown.New()
	snap := p.Parse([]byte("see [the docs](https://example.com)"))

	para := snap.Root.Child(0)
	require.Equal(t, 2, para.ChildCount())

	leaf := para.Child(1)
	assert.Equal(t, "the docs", leaf.Text)
	mark, ok := leaf.Marks.OfType(p.Schema().MarkType(markdown.MarkLink))
	require.True(t, ok)
	assert.Equal(t, "https://example.com", mark.Attrs["href"])
}

func TestParse_BlockStructure(t *testing.T) {
	t.Parallel()

	input := "> quoted\n\n- one\n- two\n\n---\n\n```go\nx := 1\n```\n"
	snap := markdown.New().Parse([]byte(input))

	require.Equal(t, 4, snap.Root.ChildCount())

	quote := snap.Root.Child(0)
	assert.Equal(t, markdown.NodeBlockquote, quote.TypeName())
	require.Equal(t, 1, quote.ChildCount())
	assert.Equal(t, markdown.NodeParagraph, quote.Child(0).TypeName())

	list := snap.Root.Child(1)
	assert.Equal(t, markdown.NodeList, list.TypeName())
	assert.Equal(t, false, list.Attrs["ordered"])
	require.Equal(t, 2, list.ChildCount())
	item := list.Child(0)
	assert.Equal(t, markdown.NodeListItem, item.TypeName())
	require.Equal(t, 1, item.ChildCount())
	assert.Equal(t, markdown.NodeParagraph, item.Child(0).TypeName())

	rule := snap.Root.Child(2)
	assert.Equal(t, markdown.NodeHorizontalRule, rule.TypeName())
	assert.True(t, rule.IsLeaf())

	code := snap.Root.Child(3)
	assert.Equal(t, markdown.NodeCodeBlock, code.TypeName())
	assert.Equal(t, "go", code.Attrs["language"])
	require.Equal(t, 1, code.ChildCount())
	assert.Equal(t, "x := 1\n", code.Child(0).Text)
}

func TestParse_OrderedList(t *testing.T) {
	t.Parallel()

	snap := markdown.New().Parse([]byte("1. first\n2. second\n"))

	list := snap.Root.Child(0)
	assert.Equal(t, markdown.NodeList, list.TypeName())
	assert.Equal(t, true, list.Attrs["ordered"])
	assert.Equal(t, 2, list.ChildCount())
}

func TestParse_EmptyInput(t *testing.T) {
	t.Parallel()

	snap := markdown.New().Parse(nil)
	assert.Zero(t, snap.Root.ChildCount())
	assert.Zero(t, snap.ContentSize())
}

func TestParse_SnapshotResolves(t *testing.T) {
	t.Parallel()

	snap := markdown.New().Parse([]byte("Hello **bold** world"))

	// Position algebra over a parsed document: "bold" occupies [7,11).
	rp, err := snap.Resolve(9)
	require.NoError(t, err)
	assert.Equal(t, "bold", rp.Node(rp.Depth()).Text)

	r, ok := doctree.RangeAt(rp, snap.Schema.MarkType(markdown.MarkStrong))
	require.True(t, ok)
	assert.Equal(t, 7, r.From)
	assert.Equal(t, 11, r.To)
}
