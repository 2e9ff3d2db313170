package markdown

import (
	"slices"

	"github.com/yuin/goldmark/ast"

	"github.com/yaklabco/goeditev/pkg/doctree"
)

// mapper converts a goldmark AST into a doctree node tree.
type mapper struct {
	content []byte
	schema  *doctree.Schema
}

// mapBlocks maps all block-level children of gmParent onto parent.
func (m *mapper) mapBlocks(gmParent ast.Node, parent *doctree.Node) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		if node := m.mapBlock(child); node != nil {
			doctree.AppendChild(parent, node)
		}
	}
}

// mapBlock converts a single block-level goldmark node.
func (m *mapper) mapBlock(gmNode ast.Node) *doctree.Node {
	switch gmn := gmNode.(type) {
	case *ast.Heading:
		node := doctree.NewNode(m.schema.NodeType(NodeHeading))
		node.Attrs = map[string]any{"level": gmn.Level}
		m.mapInlines(gmNode, node, nil)
		return node

	case *ast.Paragraph:
		node := doctree.NewNode(m.schema.NodeType(NodeParagraph))
		m.mapInlines(gmNode, node, nil)
		return node

	case *ast.TextBlock:
		// A loose list item's implicit paragraph.
		node := doctree.NewNode(m.schema.NodeType(NodeParagraph))
		m.mapInlines(gmNode, node, nil)
		return node

	case *ast.Blockquote:
		node := doctree.NewNode(m.schema.NodeType(NodeBlockquote))
		m.mapBlocks(gmNode, node)
		return node

	case *ast.List:
		node := doctree.NewNode(m.schema.NodeType(NodeList))
		node.Attrs = map[string]any{"ordered": gmn.IsOrdered()}
		m.mapBlocks(gmNode, node)
		return node

	case *ast.ListItem:
		node := doctree.NewNode(m.schema.NodeType(NodeListItem))
		m.mapBlocks(gmNode, node)
		return node

	case *ast.FencedCodeBlock:
		return m.mapCodeBlock(gmNode, string(gmn.Language(m.content)))

	case *ast.CodeBlock:
		return m.mapCodeBlock(gmNode, "")

	case *ast.ThematicBreak:
		return doctree.NewNode(m.schema.NodeType(NodeHorizontalRule))

	default:
		// HTML blocks and unrecognized content carry no event-relevant
		// structure.
		return nil
	}
}

// mapCodeBlock concatenates a code block's lines into one text leaf.
func (m *mapper) mapCodeBlock(gmNode ast.Node, language string) *doctree.Node {
	node := doctree.NewNode(m.schema.NodeType(NodeCodeBlock))
	if language != "" {
		node.Attrs = map[string]any{"language": language}
	}

	var code []byte
	lines := gmNode.Lines()
	for i := range lines.Len() {
		segment := lines.At(i)
		code = append(code, segment.Value(m.content)...)
	}
	if len(code) > 0 {
		doctree.AppendChild(node, doctree.NewText(m.schema.Text(), string(code)))
	}
	return node
}

// mapInlines maps inline children of gmParent onto parent, carrying the
// set of marks active at this nesting level.
func (m *mapper) mapInlines(gmParent ast.Node, parent *doctree.Node, marks doctree.MarkSet) {
	for child := gmParent.FirstChild(); child != nil; child = child.NextSibling() {
		switch gmn := child.(type) {
		case *ast.Text:
			value := string(gmn.Segment.Value(m.content))
			if gmn.SoftLineBreak() || gmn.HardLineBreak() {
				value += "\n"
			}
			m.appendText(parent, value, marks)

		case *ast.String:
			m.appendText(parent, string(gmn.Value), marks)

		case *ast.Emphasis:
			name := MarkEm
			if gmn.Level >= 2 {
				name = MarkStrong
			}
			mark := doctree.NewMark(m.schema.MarkType(name))
			m.mapInlines(child, parent, append(slices.Clone(marks), mark))

		case *ast.CodeSpan:
			mark := doctree.NewMark(m.schema.MarkType(MarkCode))
			m.mapInlines(child, parent, append(slices.Clone(marks), mark))

		case *ast.Link:
			mark := doctree.Mark{
				Type:  m.schema.MarkType(MarkLink),
				Attrs: map[string]any{"href": string(gmn.Destination)},
			}
			m.mapInlines(child, parent, append(slices.Clone(marks), mark))

		case *ast.AutoLink:
			url := string(gmn.URL(m.content))
			mark := doctree.Mark{
				Type:  m.schema.MarkType(MarkLink),
				Attrs: map[string]any{"href": url},
			}
			m.appendText(parent, url, append(slices.Clone(marks), mark))

		default:
			// Raw HTML and other inline content without document
			// structure is flattened into its children, if any.
			m.mapInlines(child, parent, marks)
		}
	}
}

// appendText appends a text leaf carrying the given marks. Empty
// values are dropped; adjacent leaves with identical mark sets stay
// separate, which the position algebra treats the same as one run.
func (m *mapper) appendText(parent *doctree.Node, value string, marks doctree.MarkSet) {
	if value == "" {
		return
	}
	doctree.AppendChild(parent, doctree.NewText(m.schema.Text(), value, slices.Clone(marks)...))
}
