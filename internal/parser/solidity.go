package parser

import (
	"fmt"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/source"
)

// Solidity adapts the parser to collaborators that want a tree or an error.
// Any syntax error fails the parse; the partial tree is not returned.
type Solidity struct {
	// MaxErrors caps how many syntax errors are collected before the
	// parser stops reporting. Zero means no cap.
	MaxErrors uint
}

func (s Solidity) Parse(file *source.File) (*ast.Node, error) {
	bag := diag.NewBag(0)
	rep := diag.BagReporter{Bag: bag, File: file, Rule: "parse"}
	root := ParseFile(file, Options{Reporter: rep, MaxErrors: s.MaxErrors})
	bag.Sort()
	for _, d := range bag.Take() {
		if d.Severity == diag.SevError {
			return nil, fmt.Errorf("%d:%d: %s", d.Line, d.Column, d.Message)
		}
	}
	return root, nil
}
