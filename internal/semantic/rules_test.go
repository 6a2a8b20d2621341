package semantic

import (
	"testing"

	"github.com/oxhq/tractor/internal/xmltree"
)

// build constructs a detached element of the given CST kind with children,
// mirroring what the builder would hand the transform before renaming.
func build(cstKind string, named bool, children ...xmltree.Node) *xmltree.Element {
	el := xmltree.NewElement(cstKind)
	el.CSTKind = cstKind
	el.IsNamed = named
	for _, c := range children {
		el.AddChild(c)
	}
	return el
}

func TestTransformRenamesKnownKinds(t *testing.T) {
	fn := build("function_declaration", true, build("identifier", true, xmltree.NewText("Foo")))
	out := Transform(Go, fn)
	if out.Name != "function" {
		t.Errorf("Name = %q, want function", out.Name)
	}
	kids := out.ChildElements()
	if len(kids) != 1 || kids[0].Name != "name" {
		t.Errorf("child = %v, want [name]", kids)
	}
}

func TestTransformFlattensWrapperNodes(t *testing.T) {
	inner := build("return_statement", true)
	block := build("block", true, inner)
	fn := build("function_declaration", true, block)

	out := Transform(Go, fn)
	kids := out.ChildElements()
	if len(kids) != 1 || kids[0].Name != "return" {
		t.Fatalf("block should flatten away, got children %v", kids)
	}
}

func TestTransformAnonymousTokensFoldIntoText(t *testing.T) {
	keyword := build("func", false, xmltree.NewText("func"))
	fn := build("function_declaration", true, keyword)

	out := Transform(Go, fn)
	if out.StringValue() != "func" {
		t.Errorf("StringValue() = %q, want %q (text preserved through flatten)", out.StringValue(), "func")
	}
}

func TestTransformTypeWrapSetsKindAttribute(t *testing.T) {
	ptr := build("pointer_type", true, xmltree.NewText("*int"))
	out := Transform(Go, ptr)
	if out.Name != "type" {
		t.Errorf("Name = %q, want type", out.Name)
	}
	if !out.HasKind || out.Kind != "pointer_type" {
		t.Errorf("Kind = (%q, %v), want (pointer_type, true)", out.Kind, out.HasKind)
	}
}

func TestTransformOperatorExtractionPreservesStringValue(t *testing.T) {
	bin := build("binary_expression", true,
		build("identifier", true, xmltree.NewText("a")),
		xmltree.NewText("+"),
		build("identifier", true, xmltree.NewText("b")),
	)
	before := bin.StringValue()
	out := Transform(Go, bin)
	if !out.HasOp || out.Op != "+" {
		t.Errorf("Op = (%q, %v), want (+, true)", out.Op, out.HasOp)
	}
	if out.StringValue() != before {
		t.Errorf("StringValue() changed across operator extraction: %q != %q", out.StringValue(), before)
	}
}

func TestGoSpecialTypeSpecDispatchesOnChildKind(t *testing.T) {
	tests := []struct {
		name      string
		childKind string
		wantName  string
	}{
		{"struct", "struct_type", "struct"},
		{"interface", "interface_type", "interface"},
		{"alias", "predefined_type", "type"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			child := build(tt.childKind, true, xmltree.NewText("x"))
			spec := build("type_spec", true, build("identifier", true, xmltree.NewText("T")), child)
			out := Transform(Go, spec)
			if out.Name != tt.wantName {
				t.Errorf("Name = %q, want %q", out.Name, tt.wantName)
			}
		})
	}
}

func TestModifierBecomesEmptyElement(t *testing.T) {
	async := build("async", false, xmltree.NewText("async"))
	fn := build("async_function_definition", true, async, build("identifier", true, xmltree.NewText("f")))

	out := Transform(Python, fn)
	var found *xmltree.Element
	for _, c := range out.ChildElements() {
		if c.Name == "async" {
			found = c
		}
	}
	if found == nil {
		t.Fatal("expected an <async/> modifier child")
	}
	if len(found.Children) != 0 {
		t.Errorf("modifier element should have no children, got %v", found.Children)
	}
}

func TestPythonWrapEachChildWrapsBareParameters(t *testing.T) {
	params := build("parameters", true,
		build("identifier", true, xmltree.NewText("a")),
		build("identifier", true, xmltree.NewText("b")),
	)
	fn := build("function_definition", true, build("identifier", true, xmltree.NewText("f")), params)

	out := Transform(Python, fn)
	var paramList *xmltree.Element
	for _, c := range out.ChildElements() {
		if c.CSTKind == "parameters" {
			paramList = c
		}
	}
	if paramList == nil {
		t.Fatal("parameters node should survive (not in Flatten)")
	}
	for _, c := range paramList.ChildElements() {
		if c.Name != "param" {
			t.Errorf("child = %q, want param", c.Name)
		}
		if len(c.ChildElements()) != 1 || c.ChildElements()[0].Name != "name" {
			t.Errorf("param should wrap a single name, got %v", c.ChildElements())
		}
	}
}

func TestTypeScriptSignatureUnification(t *testing.T) {
	sig := build("index_signature", true, xmltree.NewText("[key: string]: number"))
	out := Transform(TypeScript, sig)
	if out.Name != "signature" {
		t.Errorf("Name = %q, want signature", out.Name)
	}
	if !out.HasKind || out.Kind != "index_signature" {
		t.Errorf("Kind = (%q, %v), want (index_signature, true)", out.Kind, out.HasKind)
	}
}

func TestMarkdownFencedCodeBlockCapturesLanguage(t *testing.T) {
	info := build("info_string", true, xmltree.NewText("javascript"))
	content := build("code_fence_content", true, xmltree.NewText("f()"))
	fence := build("fenced_code_block", true, info, content)

	out := Transform(Markdown, fence)
	if out.Name != "code_block" {
		t.Errorf("Name = %q, want code_block", out.Name)
	}
	if !out.HasLang || out.Lang != "javascript" {
		t.Errorf("Lang = (%q, %v), want (javascript, true)", out.Lang, out.HasLang)
	}
}

func TestRegistryResolvesByLanguageName(t *testing.T) {
	if _, ok := RulesFor("go"); !ok {
		t.Error("RulesFor(go) should resolve")
	}
	if _, ok := RulesFor("nonexistent"); ok {
		t.Error("RulesFor(nonexistent) should not resolve")
	}
}
