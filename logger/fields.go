package logger

// Standard field names for consistent structured logging across confgen.
// Use these constants instead of raw strings to ensure consistency.
const (
	// Identity and context
	FieldSessionID = "session_id"

	// Components
	FieldComponent = "component"

	// Operations
	FieldOperation = "operation"
	FieldPath      = "path"

	// Generation
	FieldConfigDir    = "config_dir"
	FieldOutputPath   = "output_path"
	FieldHash         = "hash"
	FieldEnvironment  = "environment"
	FieldEnvironments = "environments"

	// Errors
	FieldError = "error"

	// Counts and sizes
	FieldCount = "count"
	FieldSize  = "size"

	// Files
	FieldFile = "file"
)
