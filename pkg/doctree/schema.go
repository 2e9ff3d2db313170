package doctree

import (
	"fmt"
	"slices"
)

// NodeType describes a named kind of document node.
// Node types are interned per schema: two nodes share a type exactly
// when they hold the same *NodeType pointer.
type NodeType struct {
	// Name is the schema-unique name of the type (e.g., "paragraph").
	Name string

	// Text marks the type as a text leaf. Text nodes carry runes and
	// marks instead of children.
	Text bool

	// Leaf marks a childless non-text type (e.g., "horizontal_rule").
	Leaf bool
}

// MarkType describes a named kind of inline annotation.
// Like node types, mark types are interned per schema and compared by
// pointer identity.
type MarkType struct {
	// Name is the schema-unique name of the type (e.g., "em").
	Name string
}

// Spec declares the node and mark types of a schema.
type Spec struct {
	// Nodes lists non-text node type names. The document type "doc"
	// and the text type "text" are always present and need not be listed.
	Nodes []string

	// Leaves lists childless non-text node type names.
	Leaves []string

	// Marks lists mark type names.
	Marks []string
}

// Schema holds the interned node and mark types a document may use.
type Schema struct {
	nodes map[string]*NodeType
	marks map[string]*MarkType

	doc  *NodeType
	text *NodeType
}

// Reserved type names present in every schema.
const (
	DocTypeName  = "doc"
	TextTypeName = "text"
)

// NewSchema builds a schema from a spec. The "doc" and "text" types are
// added automatically.
func NewSchema(spec Spec) *Schema {
	s := &Schema{
		nodes: make(map[string]*NodeType),
		marks: make(map[string]*MarkType),
	}

	s.doc = &NodeType{Name: DocTypeName}
	s.text = &NodeType{Name: TextTypeName, Text: true}
	s.nodes[DocTypeName] = s.doc
	s.nodes[TextTypeName] = s.text

	for _, name := range spec.Nodes {
		s.nodes[name] = &NodeType{Name: name}
	}
	for _, name := range spec.Leaves {
		s.nodes[name] = &NodeType{Name: name, Leaf: true}
	}
	for _, name := range spec.Marks {
		s.marks[name] = &MarkType{Name: name}
	}

	return s
}

// Doc returns the document root type.
func (s *Schema) Doc() *NodeType { return s.doc }

// Text returns the text leaf type.
func (s *Schema) Text() *NodeType { return s.text }

// NodeType returns the named node type.
//
// It panics if the name is not part of the schema: asking for an
// unknown type indicates a misconfigured extension, and such schema
// mismatches must never pass silently. Use LookupNodeType to probe.
func (s *Schema) NodeType(name string) *NodeType {
	t, ok := s.nodes[name]
	if !ok {
		panic(fmt.Sprintf("doctree: unknown node type %q (known: %v)", name, s.NodeTypeNames()))
	}
	return t
}

// LookupNodeType returns the named node type and whether it exists.
func (s *Schema) LookupNodeType(name string) (*NodeType, bool) {
	t, ok := s.nodes[name]
	return t, ok
}

// MarkType returns the named mark type.
//
// It panics if the name is not part of the schema, for the same reason
// NodeType does. Use LookupMarkType to probe.
func (s *Schema) MarkType(name string) *MarkType {
	t, ok := s.marks[name]
	if !ok {
		panic(fmt.Sprintf("doctree: unknown mark type %q (known: %v)", name, s.MarkTypeNames()))
	}
	return t
}

// LookupMarkType returns the named mark type and whether it exists.
func (s *Schema) LookupMarkType(name string) (*MarkType, bool) {
	t, ok := s.marks[name]
	return t, ok
}

// NodeTypeNames returns all node type names in sorted order.
func (s *Schema) NodeTypeNames() []string {
	names := make([]string, 0, len(s.nodes))
	for name := range s.nodes {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// MarkTypeNames returns all mark type names in sorted order.
func (s *Schema) MarkTypeNames() []string {
	names := make([]string, 0, len(s.marks))
	for name := range s.marks {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}
