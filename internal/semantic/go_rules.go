package semantic

import "github.com/oxhq/tractor/internal/xmltree"

// Go grounded on providers/golang/config.go's aliasMap node-kind table,
// generalized from "candidate kinds for a query type" to "the element name
// every kind unconditionally becomes".
var Go = Rules{
	Rename: map[string]string{
		"source_file":           "module",
		"function_declaration":  "function",
		"method_declaration":    "method",
		"parameter_declaration": "param",
		"var_declaration":       "variable",
		"short_var_declaration": "variable",
		"const_declaration":     "const",
		"import_declaration":    "import",
		"import_spec":           "import",
		"struct_type":           "struct",
		"interface_type":        "interface",
		"field_declaration":     "field",
		"return_statement":      "return",
		"if_statement":          "if",
		"for_statement":         "for",
		"call_expression":       "call",
		"assignment_statement":  "assignment",
		"composite_literal":     "literal",
		"binary_expression":     "binary",
		"unary_expression":      "unary",
	},
	Flatten: map[string]bool{
		"block":           true,
		"parameter_list":  true,
		"argument_list":   true,
		"expression_list": true,
		"literal_value":   true,
		"var_spec":        true,
		"const_spec":      true,
		"type_declaration": true,
	},
	Modifiers: map[string]bool{},
	TypeWrap: map[string]bool{
		"predefined_type": true,
		"type_identifier": true,
		"pointer_type":    true,
		"slice_type":      true,
		"array_type":      true,
		"map_type":        true,
		"qualified_type":  true,
		"generic_type":    true,
		"function_type":   true,
	},
	OperatorConstructs: map[string]bool{
		"binary_expression": true,
		"unary_expression":  true,
	},
	// type_spec's unified name depends on which kind of type it declares —
	// a plain rename table can't express that, so it's handled here instead
	// (spec §9's "small interface" escape hatch).
	Special: func(el *xmltree.Element) bool {
		if el.CSTKind != "type_spec" {
			return false
		}
		for _, c := range el.ChildElements() {
			switch c.Name {
			case "struct", "interface":
				el.Name = c.Name
				return true
			}
		}
		el.Name = "type"
		return true
	},
}
