package doctree_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/yaklabco/goeditev/pkg/doctree"
)

// markRunDoc builds a paragraph whose middle three text runs all carry
// the "em" mark, with differing link attributes on the last two:
//
//	paragraph: "aa" + "bb"(em) + "cc"(em,link=1) + "dd"(em,link=2) + "ee"
//	positions:  1-3    3-5        5-7               7-9               9-11
func markRunDoc(t *testing.T) *doctree.Snapshot {
	t.Helper()

	s := testSchema()
	em := doctree.NewMark(s.MarkType("em"))
	link1 := doctree.Mark{Type: s.MarkType("link"), Attrs: map[string]any{"href": "1"}}
	link2 := doctree.Mark{Type: s.MarkType("link"), Attrs: map[string]any{"href": "2"}}

	root := doctree.NewNode(s.Doc(),
		doctree.NewNode(s.NodeType("paragraph"),
			doctree.NewText(s.Text(), "aa"),
			doctree.NewText(s.Text(), "bb", em),
			doctree.NewText(s.Text(), "cc", em, link1),
			doctree.NewText(s.Text(), "dd", em, link2),
			doctree.NewText(s.Text(), "ee"),
		),
	)
	return doctree.NewSnapshot(s, root)
}

func TestRangeAt_SpansAdjacentRunsOfSameType(t *testing.T) {
	t.Parallel()

	snap := markRunDoc(t)
	em := snap.Schema.MarkType("em")

	// Anchor inside "cc": the em run covers "bb" + "cc" + "dd".
	rp, err := snap.Resolve(6)
	require.NoError(t, err)

	r, ok := doctree.RangeAt(rp, em)
	require.True(t, ok)
	assert.Equal(t, 3, r.From)
	assert.Equal(t, 9, r.To)
	assert.True(t, r.Contains(rp.Pos))
	assert.Same(t, em, r.Mark.Type)
}

func TestRangeAt_TypeIdentityNotAttributeEquality(t *testing.T) {
	t.Parallel()

	snap := markRunDoc(t)
	link := snap.Schema.MarkType("link")

	// "cc" and "dd" carry link marks with different attributes; the
	// range still spans both runs because scanning goes by type.
	rp, err := snap.Resolve(6)
	require.NoError(t, err)

	r, ok := doctree.RangeAt(rp, link)
	require.True(t, ok)
	assert.Equal(t, 5, r.From)
	assert.Equal(t, 9, r.To)
	assert.Equal(t, "1", r.Mark.Attrs["href"], "the instance comes from the anchor leaf")
}

func TestRangeAt_InactiveType(t *testing.T) {
	t.Parallel()

	snap := markRunDoc(t)

	// "aa" carries no marks at all.
	rp, err := snap.Resolve(2)
	require.NoError(t, err)

	_, ok := doctree.RangeAt(rp, snap.Schema.MarkType("em"))
	assert.False(t, ok)
	assert.Empty(t, doctree.RangesAt(rp))
}

func TestRangeAt_Maximality(t *testing.T) {
	t.Parallel()

	snap := markRunDoc(t)
	em := snap.Schema.MarkType("em")

	rp, err := snap.Resolve(6)
	require.NoError(t, err)
	r, ok := doctree.RangeAt(rp, em)
	require.True(t, ok)

	// One position outside either boundary no longer carries the mark.
	before, err := snap.Resolve(r.From - 1)
	require.NoError(t, err)
	_, ok = doctree.RangeAt(before, em)
	assert.False(t, ok, "extending past the left boundary must leave the mark")

	after, err := snap.Resolve(r.To)
	require.NoError(t, err)
	_, ok = doctree.RangeAt(after, em)
	assert.False(t, ok, "extending past the right boundary must leave the mark")
}

func TestRangeAt_Idempotent(t *testing.T) {
	t.Parallel()

	snap := markRunDoc(t)
	em := snap.Schema.MarkType("em")

	for range 3 {
		rp, err := snap.Resolve(4)
		require.NoError(t, err)
		r, ok := doctree.RangeAt(rp, em)
		require.True(t, ok)
		assert.Equal(t, 3, r.From)
		assert.Equal(t, 9, r.To)
	}
}

func TestRangeAt_DoesNotCrossParentBoundary(t *testing.T) {
	t.Parallel()

	s := testSchema()
	em := doctree.NewMark(s.MarkType("em"))
	root := doctree.NewNode(s.Doc(),
		doctree.NewNode(s.NodeType("paragraph"),
			doctree.NewText(s.Text(), "one", em),
		),
		doctree.NewNode(s.NodeType("paragraph"),
			doctree.NewText(s.Text(), "two", em),
		),
	)
	snap := doctree.NewSnapshot(s, root)

	rp, err := snap.Resolve(2)
	require.NoError(t, err)

	r, ok := doctree.RangeAt(rp, s.MarkType("em"))
	require.True(t, ok)
	assert.Equal(t, 1, r.From)
	assert.Equal(t, 4, r.To, "the run ends at the paragraph boundary")
}

func TestRangesAt_AllActiveMarks(t *testing.T) {
	t.Parallel()

	snap := markRunDoc(t)

	// Inside "cc" both em and link are active.
	rp, err := snap.Resolve(6)
	require.NoError(t, err)

	ranges := doctree.RangesAt(rp)
	require.Len(t, ranges, 2)
	assert.Same(t, snap.Schema.MarkType("em"), ranges[0].Mark.Type)
	assert.Same(t, snap.Schema.MarkType("link"), ranges[1].Mark.Type)
	for _, r := range ranges {
		assert.True(t, r.Contains(rp.Pos))
	}
}
