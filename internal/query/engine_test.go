package query

import (
	"testing"

	"github.com/oxhq/tractor/internal/xmltree"
)

func sampleTree() *xmltree.Element {
	root := xmltree.NewElement("module")
	root.HasSpan = true

	fn := xmltree.NewElement("function")
	fn.Span = xmltree.Span{StartLine: 1, StartCol: 1, EndLine: 3, EndCol: 1, StartByte: 0, EndByte: 20}
	fn.HasSpan = true

	name := xmltree.NewElement("name")
	name.Span = fn.Span
	name.HasSpan = true
	name.AddChild(xmltree.NewText("Foo"))
	fn.AddChild(name)

	root.AddChild(fn)
	return root
}

func TestSelectFindsElementsByName(t *testing.T) {
	expr, err := Compile("//function/name")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	matches, err := Select(expr, sampleTree())
	if err != nil {
		t.Fatalf("Select: %v", err)
	}
	if len(matches) != 1 {
		t.Fatalf("len(matches) = %d, want 1", len(matches))
	}
	if matches[0].StringValue() != "Foo" {
		t.Errorf("StringValue() = %q, want Foo", matches[0].StringValue())
	}
}

func TestSelectRejectsScalarExpressions(t *testing.T) {
	expr, err := Compile("count(//function)")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	if _, err := Select(expr, sampleTree()); err == nil {
		t.Error("Select on a scalar-valued expression should error")
	}
}

func TestEvalReturnsScalarForCount(t *testing.T) {
	expr, err := Compile("count(//function)")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	result, err := Eval(expr, sampleTree())
	if err != nil {
		t.Fatalf("Eval: %v", err)
	}
	n, ok := result.(float64)
	if !ok || n != 1 {
		t.Errorf("Eval(count(...)) = %v, want float64(1)", result)
	}
}

func TestEvalFromResolvesRelativeToMatchNode(t *testing.T) {
	root := sampleTree()
	fn := root.ChildElements()[0]
	name := fn.ChildElements()[0]

	expr, err := Compile("parent::function/name")
	if err != nil {
		t.Fatalf("Compile: %v", err)
	}
	result, err := EvalFrom(expr, root, name)
	if err != nil {
		t.Fatalf("EvalFrom: %v", err)
	}
	matches, ok := result.([]Match)
	if !ok || len(matches) != 1 {
		t.Fatalf("EvalFrom = %v, want one match", result)
	}
}

func TestMatchSpanFallsBackToParentForTextMatch(t *testing.T) {
	root := sampleTree()
	name := root.ChildElements()[0].ChildElements()[0]
	textNode := name.Children[0].(*xmltree.Text)

	m := Match{Text: textNode}
	span, ok := m.Span()
	if !ok {
		t.Fatal("text match should inherit parent span")
	}
	if span != name.Span {
		t.Errorf("Span() = %v, want parent's span %v", span, name.Span)
	}
}

func TestCompileInvalidExpressionErrors(t *testing.T) {
	if _, err := Compile("//["); err == nil {
		t.Error("Compile on malformed XPath should error")
	}
}
