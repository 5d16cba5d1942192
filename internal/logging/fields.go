package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError  = "error"
	FieldPath   = "path"
	FieldInput  = "input"
	FieldOutput = "output"

	// Annotation fields.
	FieldMatches  = "matches"
	FieldSegments = "segments"
	FieldBytes    = "bytes"

	// Tag fields.
	FieldQuery = "query"
	FieldTags  = "tags"

	// Attachment fields.
	FieldIndex = "index"
	FieldMime  = "mime"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
