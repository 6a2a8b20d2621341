package semantic

// JavaScript grounded on providers/javascript/config.go's aliasMap.
var JavaScript = Rules{
	Rename: map[string]string{
		"program":                 "module",
		"function_declaration":    "function",
		"function_expression":     "function",
		"arrow_function":          "function",
		"method_definition":       "method",
		"class_declaration":       "class",
		"class_expression":        "class",
		"field_definition":        "field",
		"variable_declaration":    "variable",
		"lexical_declaration":     "variable",
		"variable_declarator":     "variable",
		"import_statement":        "import",
		"export_statement":        "export",
		"interface_declaration":   "interface",
		"type_alias_declaration":  "type",
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
		"statement_block": true,
		"arguments":       true,
	},
	Modifiers: map[string]bool{
		"async":  true,
		"static": true,
		"get":    true,
		"set":    true,
	},
	TypeWrap: map[string]bool{
		"type_annotation":    true,
		"predefined_type":    true,
		"type_identifier":    true,
		"union_type":         true,
		"array_type":         true,
		"generic_type":       true,
	},
	OperatorConstructs: map[string]bool{
		"binary_expression":  true,
		"unary_expression":   true,
		"augmented_assignment_expression": true,
	},
	// JavaScript's formal_parameters node, like Python's parameters, holds
	// bare identifiers directly rather than its own parameter wrapper node.
	WrapEachChild: map[string]string{
		"formal_parameters": "param",
	},
}
