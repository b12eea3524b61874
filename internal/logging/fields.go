package logging

// Structured field names.
const (
	FieldError    = "error"
	FieldURL      = "url"
	FieldPath     = "path"
	FieldFormat   = "format"
	FieldEngine   = "engine"
	FieldStatus   = "status"
	FieldLanguage = "language"
	FieldBlocks   = "code_blocks"
	FieldLinks    = "links"
	FieldAddr     = "addr"
	FieldTitle    = "title"
	FieldBytes    = "bytes"
)
