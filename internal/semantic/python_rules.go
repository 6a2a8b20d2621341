package semantic

// Python grounded on providers/python/config.go's aliasMap node-kind table.
var Python = Rules{
	Rename: map[string]string{
		"module":                   "module",
		"function_definition":      "function",
		"async_function_definition": "function",
		"class_definition":         "class",
		"type_alias_statement":     "type",
		"assignment":               "assignment",
		"augmented_assignment":     "assignment",
		"import_statement":         "import",
		"import_from_statement":    "import",
		"decorator":                "decorator",
		"lambda":                   "lambda",
		"comment":                  "comment",
		"return_statement":         "return",
		"if_statement":             "if",
		"for_statement":            "for",
		"while_statement":          "while",
		"call":                     "call",
		"binary_operator":          "binary",
		"boolean_operator":         "binary",
		"comparison_operator":      "binary",
		"unary_operator":           "unary",
	},
	Flatten: map[string]bool{
		"block":                 true,
		"argument_list":         true,
		"expression_statement":  true,
	},
	Modifiers: map[string]bool{
		"async": true,
	},
	TypeWrap: map[string]bool{
		"type":       true,
		"generic_type": true,
	},
	OperatorConstructs: map[string]bool{
		"binary_operator":  true,
		"boolean_operator": true,
		"comparison_operator": true,
		"unary_operator":   true,
	},
	// Python's "parameters" node holds a mix of bare identifiers and
	// default_parameter/typed_parameter/typed_default_parameter nodes
	// directly, with no uniform wrapper of its own (unlike Go's
	// parameter_declaration), so every child is individually wrapped here.
	WrapEachChild: map[string]string{
		"parameters": "param",
	},
}
