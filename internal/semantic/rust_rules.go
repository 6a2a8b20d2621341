package semantic

// Rust has no provider counterpart in the teacher's own stack; its table is
// built the same way providers/javascript/config.go and
// providers/python/config.go are — one CST kind per unified concept — against
// tree-sitter-rust's own grammar node names (spec §8's fn add/fn main
// scenario).
var Rust = Rules{
	Rename: map[string]string{
		"source_file":          "module",
		"function_item":        "function",
		"struct_item":          "struct",
		"enum_item":            "enum",
		"trait_item":           "trait",
		"impl_item":            "impl",
		"mod_item":             "module",
		"use_declaration":      "import",
		"let_declaration":      "variable",
		"const_item":           "const",
		"static_item":          "static",
		"field_declaration":    "field",
		"parameter":            "param",
		"return_expression":    "return",
		"if_expression":        "if",
		"for_expression":       "for",
		"while_expression":     "while",
		"loop_expression":      "loop",
		"match_expression":     "match",
		"call_expression":      "call",
		"macro_invocation":     "call",
		"assignment_expression": "assignment",
		"closure_expression":   "function",
		"line_comment":         "comment",
		"block_comment":        "comment",
		"binary_expression":    "binary",
		"unary_expression":     "unary",
		"compound_assignment_expr": "assignment",
	},
	Flatten: map[string]bool{
		"block":               true,
		"declaration_list":    true,
		"field_declaration_list": true,
		"arguments":           true,
	},
	Modifiers: map[string]bool{
		"pub":   true,
		"async": true,
		"mut":   true,
		"unsafe": true,
	},
	TypeWrap: map[string]bool{
		"primitive_type":    true,
		"type_identifier":   true,
		"reference_type":    true,
		"pointer_type":      true,
		"generic_type":      true,
		"array_type":        true,
		"tuple_type":        true,
	},
	OperatorConstructs: map[string]bool{
		"binary_expression": true,
		"unary_expression":  true,
		"compound_assignment_expr": true,
	},
}
