// Package markdown builds doctree snapshots from Markdown using the
// goldmark library. Block elements become nodes; inline emphasis,
// strong, code-span, and link spans become marks on text leaves. It is
// the reference document source for hosts that feed Markdown into the
// editor, and the substrate most tests build documents with.
package markdown

import (
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/text"

	"github.com/yaklabco/goeditev/pkg/doctree"
)

// Node and mark type names of the default schema.
const (
	NodeParagraph      = "paragraph"
	NodeHeading        = "heading"
	NodeBlockquote     = "blockquote"
	NodeCodeBlock      = "code_block"
	NodeList           = "list"
	NodeListItem       = "list_item"
	NodeHorizontalRule = "horizontal_rule"

	MarkEm     = "em"
	MarkStrong = "strong"
	MarkCode   = "code"
	MarkLink   = "link"
)

// DefaultSchema returns the schema Markdown documents are built with.
func DefaultSchema() *doctree.Schema {
	return doctree.NewSchema(doctree.Spec{
		Nodes: []string{
			NodeParagraph,
			NodeHeading,
			NodeBlockquote,
			NodeCodeBlock,
			NodeList,
			NodeListItem,
		},
		Leaves: []string{NodeHorizontalRule},
		Marks:  []string{MarkEm, MarkStrong, MarkCode, MarkLink},
	})
}

// Parser converts Markdown content into doctree snapshots.
type Parser struct {
	schema *doctree.Schema
	md     goldmark.Markdown
}

// New creates a CommonMark parser over the default schema.
func New() *Parser {
	return &Parser{
		schema: DefaultSchema(),
		md:     goldmark.New(),
	}
}

// Schema returns the schema snapshots are built with.
func (p *Parser) Schema() *doctree.Schema {
	return p.schema
}

// Parse converts Markdown bytes into an immutable document snapshot.
func (p *Parser) Parse(content []byte) *doctree.Snapshot {
	reader := text.NewReader(content)
	gmDoc := p.md.Parser().Parse(reader)

	m := &mapper{content: content, schema: p.schema}
	root := doctree.NewNode(p.schema.Doc())
	m.mapBlocks(gmDoc, root)

	return doctree.NewSnapshot(p.schema, root)
}
