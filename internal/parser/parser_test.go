package parser

import (
	"strings"
	"testing"

	"github.com/olehManboy/Ethlint/internal/ast"
	"github.com/olehManboy/Ethlint/internal/diag"
	"github.com/olehManboy/Ethlint/internal/source"
)

func parseSource(t *testing.T, src string) (*ast.Node, *diag.Bag) {
	t.Helper()
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sol", []byte(src)))
	bag := diag.NewBag(0)
	root := ParseFile(file, Options{Reporter: diag.BagReporter{Bag: bag, File: file, Rule: "parse"}})
	if root == nil {
		t.Fatal("ParseFile returned nil")
	}
	return root, bag
}

func mustParse(t *testing.T, src string) *ast.Node {
	t.Helper()
	root, bag := parseSource(t, src)
	if bag.HasErrors() {
		for _, d := range bag.Take() {
			t.Logf("%d:%d %s", d.Line, d.Column, d.Message)
		}
		t.Fatalf("unexpected syntax errors in %q", src)
	}
	return root
}

func TestParseTopLevelFragment(t *testing.T) {
	root := mustParse(t, "uint x;")
	if !root.Is(ast.Program) || len(root.Children) != 1 {
		t.Fatalf("root = %s with %d children", root.Type, len(root.Children))
	}
	decl := root.Children[0]
	if !decl.Is(ast.StateVariableDeclaration) || decl.Name != "x" {
		t.Fatalf("child = %s %q", decl.Type, decl.Name)
	}
	typ := decl.FirstChild(ast.Type)
	if typ == nil || typ.Name != "uint" {
		t.Fatalf("type child = %+v", typ)
	}
}

func TestParsePragmaAndImport(t *testing.T) {
	root := mustParse(t, "pragma solidity ^0.4.17;\nimport \"./lib/SafeMath.sol\";\n")
	pragma := root.FirstChild(ast.PragmaStatement)
	if pragma == nil || pragma.Name != "solidity" || pragma.Value != "^0.4.17" {
		t.Fatalf("pragma = %+v", pragma)
	}
	imp := root.FirstChild(ast.ImportStatement)
	if imp == nil || imp.Value != "./lib/SafeMath.sol" {
		t.Fatalf("import = %+v", imp)
	}
}

const contractSrc = `pragma solidity ^0.4.17;

contract Token is Ownable, ERC20 {
    uint public totalSupply;
    mapping (address => uint) balances;

    event Transfer(address indexed from, address indexed to, uint value);

    function transfer(address to, uint value) public returns (bool) {
        balances[msg.sender] -= value;
        balances[to] += value;
        emit Transfer(msg.sender, to, value);
        return true;
    }
}
`

func TestParseContract(t *testing.T) {
	root := mustParse(t, contractSrc)

	contract := root.FirstChild(ast.ContractStatement)
	if contract == nil || contract.Name != "Token" {
		t.Fatalf("contract = %+v", contract)
	}
	if got := contract.Attr("parents"); got != "Ownable,ERC20" {
		t.Errorf("parents = %q", got)
	}

	vars := contract.ChildrenOfType(ast.StateVariableDeclaration)
	if len(vars) != 2 {
		t.Fatalf("state vars = %d", len(vars))
	}
	if vars[0].Name != "totalSupply" || vars[0].Attr("visibility") != "public" {
		t.Errorf("totalSupply = %+v", vars[0])
	}
	if vars[1].Name != "balances" || vars[1].FirstChild(ast.MappingType) == nil {
		t.Errorf("balances = %+v", vars[1])
	}

	ev := contract.FirstChild(ast.EventDeclaration)
	if ev == nil || ev.Name != "Transfer" {
		t.Fatalf("event = %+v", ev)
	}
	params := ev.ChildrenOfType(ast.InformalParameter)
	if len(params) != 3 {
		t.Fatalf("event params = %d", len(params))
	}
	if params[0].Name != "from" || params[0].Attr("indexed") != "true" {
		t.Errorf("param[0] = %+v", params[0])
	}
	if params[2].Attr("indexed") != "" {
		t.Errorf("value should not be indexed")
	}

	fn := contract.FirstChild(ast.FunctionDeclaration)
	if fn == nil || fn.Name != "transfer" {
		t.Fatalf("function = %+v", fn)
	}
	if fn.Attr("visibility") != "public" {
		t.Errorf("visibility = %q", fn.Attr("visibility"))
	}
	var returns []*ast.Node
	for _, c := range fn.ChildrenOfType(ast.InformalParameter) {
		if c.Attr("group") == "returns" {
			returns = append(returns, c)
		}
	}
	if len(returns) != 1 {
		t.Fatalf("return params = %d", len(returns))
	}
}

func TestParseEmitStatement(t *testing.T) {
	root := mustParse(t, "contract C { event E(uint v); function f() public { emit E(1); } }")
	fn := root.FirstChild(ast.ContractStatement).FirstChild(ast.FunctionDeclaration)
	block := fn.FirstChild(ast.BlockStatement)
	if block == nil {
		t.Fatal("no function body")
	}
	em := block.FirstChild(ast.EmitStatement)
	if em == nil {
		t.Fatal("no emit statement")
	}
	call := em.FirstChild(ast.CallExpression)
	if call == nil {
		t.Fatal("emit without call expression")
	}
	if callee := call.Children[0]; !callee.Is(ast.Identifier) || callee.Name != "E" {
		t.Errorf("callee = %+v", callee)
	}
}

func TestParseExpressions(t *testing.T) {
	root := mustParse(t, "function f() internal { x = a.b[0] + c * 2; }")
	fn := root.FirstChild(ast.FunctionDeclaration)
	stmt := fn.FirstChild(ast.BlockStatement).FirstChild(ast.ExpressionStatement)
	if stmt == nil {
		t.Fatal("no expression statement")
	}
	assign := stmt.FirstChild(ast.AssignmentExpression)
	if assign == nil || assign.Attr("operator") != "=" {
		t.Fatalf("assignment = %+v", assign)
	}
	bin := assign.FirstChild(ast.BinaryExpression)
	if bin == nil || bin.Attr("operator") != "+" {
		t.Fatalf("binary = %+v", bin)
	}
	idx := bin.FirstChild(ast.IndexExpression)
	if idx == nil {
		t.Fatal("no index expression")
	}
	if member := idx.FirstChild(ast.MemberExpression); member == nil || member.Name != "b" {
		t.Fatalf("member = %+v", member)
	}
}

func TestParseStringLiteralKeepsQuotes(t *testing.T) {
	root := mustParse(t, `string s = 'single';`)
	decl := root.FirstChild(ast.StateVariableDeclaration)
	lit := decl.FirstChild(ast.Literal)
	if lit == nil || lit.Value != "'single'" {
		t.Fatalf("literal = %+v", lit)
	}
	if lit.Attr("kind") != "string" {
		t.Errorf("kind = %q", lit.Attr("kind"))
	}
}

func TestNodeSpansCoverSource(t *testing.T) {
	src := "contract C { uint balance; }"
	fs := source.NewFileSet()
	file := fs.Get(fs.AddVirtual("test.sol", []byte(src)))
	root := ParseFile(file, Options{})

	decl := root.FirstChild(ast.ContractStatement).FirstChild(ast.StateVariableDeclaration)
	if decl == nil {
		t.Fatal("no state variable")
	}
	text := string(file.Content[decl.Span.Start:decl.Span.End])
	if text != "uint balance;" {
		t.Fatalf("span text = %q", text)
	}
}

func TestParseReportsMissingSemicolon(t *testing.T) {
	root, bag := parseSource(t, "contract C { uint x }")
	if !bag.HasErrors() {
		t.Fatal("expected a syntax error")
	}
	// The tree still covers what was recognized.
	if root.FirstChild(ast.ContractStatement) == nil {
		t.Fatal("contract missing from recovered tree")
	}
}

func TestParseTerminatesOnGarbage(t *testing.T) {
	_, bag := parseSource(t, ")))) ???? {{{{")
	if !bag.HasErrors() {
		t.Fatal("expected syntax errors")
	}
}

func TestSolidityAdapter(t *testing.T) {
	fs := source.NewFileSet()
	good := fs.Get(fs.AddVirtual("good.sol", []byte("uint x;")))
	root, err := Solidity{}.Parse(good)
	if err != nil || root == nil {
		t.Fatalf("parse good: %v", err)
	}

	bad := fs.Get(fs.AddVirtual("bad.sol", []byte("contract {")))
	if _, err := (Solidity{}).Parse(bad); err == nil {
		t.Fatal("expected parse error")
	} else if !strings.Contains(err.Error(), ":") {
		t.Errorf("error lacks position: %v", err)
	}
}
