package semantic

import "github.com/oxhq/tractor/internal/xmltree"

// TypeScript grounded on providers/typescript/config.go's aliasMap, extending
// JavaScript's table with TypeScript-only constructs (interfaces, enums,
// signatures, visibility modifiers).
var TypeScript = Rules{
	Rename: map[string]string{
		"program":                 "module",
		"function_declaration":    "function",
		"function_expression":     "function",
		"arrow_function":          "function",
		"function_signature":      "function",
		"method_definition":       "method",
		"method_signature":        "method",
		"class_declaration":       "class",
		"class_expression":        "class",
		"interface_declaration":   "interface",
		"type_alias_declaration":  "type",
		"enum_declaration":        "enum",
		"enum_member":             "member",
		"public_field_definition": "field",
		"property_signature":      "field",
		"variable_declaration":    "variable",
		"lexical_declaration":     "variable",
		"variable_declarator":     "variable",
		"import_statement":        "import",
		"export_statement":        "export",
		"module_declaration":      "namespace",
		"namespace_declaration":   "namespace",
		"decorator":               "decorator",
		"comment":                 "comment",
		"return_statement":        "return",
		"if_statement":            "if",
		"for_statement":           "for",
		"call_expression":         "call",
		"assignment_expression":   "assignment",
		"augmented_assignment_expression": "assignment",
		"binary_expression":       "binary",
		"unary_expression":        "unary",
	},
	Flatten: map[string]bool{
		"statement_block":     true,
		"arguments":           true,
		"interface_body":      true,
		"class_body":          true,
		"enum_body":           true,
	},
	Modifiers: map[string]bool{
		"async":     true,
		"static":    true,
		"readonly":  true,
		"public":    true,
		"private":   true,
		"protected": true,
		"abstract":  true,
		"get":       true,
		"set":       true,
	},
	TypeWrap: map[string]bool{
		"type_annotation": true,
		"predefined_type": true,
		"type_identifier": true,
		"union_type":      true,
		"intersection_type": true,
		"array_type":      true,
		"generic_type":    true,
		"tuple_type":      true,
		"function_type":   true,
	},
	OperatorConstructs: map[string]bool{
		"binary_expression":               true,
		"unary_expression":                true,
		"augmented_assignment_expression": true,
	},
	WrapEachChild: map[string]string{
		"formal_parameters": "param",
	},
	// index_signature and call_signature both present as bare construct
	// nodes with no field-style rename target in the alias table; unified
	// under "signature" to match the provider's own collapsing of them.
	Special: func(el *xmltree.Element) bool {
		switch el.CSTKind {
		case "index_signature", "call_signature", "construct_signature":
			el.Name = "signature"
			el.Kind = el.CSTKind
			el.HasKind = true
			return true
		}
		return false
	},
}
