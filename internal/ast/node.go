// Package ast defines the tree the parser hands to the lint engine.
//
// Nodes are deliberately generic: a type tag, a source span, ordered
// children, and a small attribute payload. Rules subscribe to type tags and
// pattern-match on node shapes, so the engine never depends on concrete
// per-construct types. Nodes carry no parent pointer; the traversal driver
// maintains an explicit ancestor stack instead, which keeps parsed trees
// immutable and safe to share between sessions.
package ast

import (
	"github.com/olehManboy/Ethlint/internal/source"
)

// Node type tags, following the Solidity AST vocabulary.
const (
	Program                  = "Program"
	PragmaStatement          = "PragmaStatement"
	ImportStatement          = "ImportStatement"
	ContractStatement        = "ContractStatement"
	LibraryStatement         = "LibraryStatement"
	InterfaceStatement       = "InterfaceStatement"
	StateVariableDeclaration = "StateVariableDeclaration"
	FunctionDeclaration      = "FunctionDeclaration"
	ConstructorDeclaration   = "ConstructorDeclaration"
	ModifierDeclaration      = "ModifierDeclaration"
	EventDeclaration         = "EventDeclaration"
	StructDeclaration        = "StructDeclaration"
	EnumDeclaration          = "EnumDeclaration"
	UsingStatement           = "UsingStatement"
	InformalParameter        = "InformalParameter"
	BlockStatement           = "BlockStatement"
	ExpressionStatement      = "ExpressionStatement"
	VariableDeclaration      = "VariableDeclaration"
	IfStatement              = "IfStatement"
	ForStatement             = "ForStatement"
	WhileStatement           = "WhileStatement"
	DoWhileStatement         = "DoWhileStatement"
	ReturnStatement          = "ReturnStatement"
	BreakStatement           = "BreakStatement"
	ContinueStatement        = "ContinueStatement"
	ThrowStatement           = "ThrowStatement"
	EmitStatement            = "EmitStatement"
	Identifier               = "Identifier"
	Literal                  = "Literal"
	Type                     = "Type"
	MappingType              = "MappingType"
	ArrayType                = "ArrayType"
	CallExpression           = "CallExpression"
	NewExpression            = "NewExpression"
	MemberExpression         = "MemberExpression"
	IndexExpression          = "IndexExpression"
	BinaryExpression         = "BinaryExpression"
	UnaryExpression          = "UnaryExpression"
	AssignmentExpression     = "AssignmentExpression"
	ConditionalExpression    = "ConditionalExpression"
	TupleExpression          = "TupleExpression"
)

// Node is one tree node. Type is the tag rules subscribe to; Children are
// ordered as they appear in source.
type Node struct {
	Type     string
	Span     source.Span
	Children []*Node

	// Name carries the declared or referenced identifier for declarations,
	// identifiers, and member accesses; empty elsewhere.
	Name string
	// Value carries the raw source text of literals, including quotes.
	Value string
	// Attributes holds construct-specific details (operator, visibility,
	// mutability, data location). Nil when a node has none.
	Attributes map[string]string
}

// New creates a node with a type tag and span.
func New(nodeType string, span source.Span) *Node {
	return &Node{Type: nodeType, Span: span}
}

// Add appends children in source order and widens the node's span to cover
// them. Nil children are skipped.
func (n *Node) Add(children ...*Node) *Node {
	for _, c := range children {
		if c == nil {
			continue
		}
		n.Children = append(n.Children, c)
		n.Span = n.Span.Cover(c.Span)
	}
	return n
}

// Attr returns the named attribute, or "" when absent.
func (n *Node) Attr(key string) string {
	if n.Attributes == nil {
		return ""
	}
	return n.Attributes[key]
}

// SetAttr records an attribute, allocating the map on first use.
func (n *Node) SetAttr(key, value string) *Node {
	if n.Attributes == nil {
		n.Attributes = make(map[string]string, 2)
	}
	n.Attributes[key] = value
	return n
}

// Is reports whether the node carries the given type tag.
func (n *Node) Is(nodeType string) bool {
	return n != nil && n.Type == nodeType
}

// FirstChild returns the first child with the given type tag, or nil.
func (n *Node) FirstChild(nodeType string) *Node {
	for _, c := range n.Children {
		if c.Type == nodeType {
			return c
		}
	}
	return nil
}

// ChildrenOfType collects the direct children with the given type tag.
func (n *Node) ChildrenOfType(nodeType string) []*Node {
	var out []*Node
	for _, c := range n.Children {
		if c.Type == nodeType {
			out = append(out, c)
		}
	}
	return out
}

// Count returns the number of nodes in the subtree rooted at n.
func (n *Node) Count() int {
	if n == nil {
		return 0
	}
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}
