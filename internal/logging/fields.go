package logging

// Field name constants for structured logging.
// Using constants prevents typos across call sites.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldWorkingDir = "working_dir"

	// Search fields.
	FieldQuery        = "query"
	FieldIgnoreCase   = "ignore_case"
	FieldLinesScanned = "lines_scanned"
	FieldMatches      = "matches"
	FieldFileSize     = "file_size"

	// Configuration fields.
	FieldConfigFiles = "config_files"
	FieldColor       = "color"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"
)
