// Package logging provides a structured logging wrapper around charmbracelet/log.
package logging

// Field name constants for structured logging.
// Using constants prevents typos and enables IDE autocomplete.
const (
	// Common fields.
	FieldError      = "error"
	FieldPath       = "path"
	FieldPaths      = "paths"
	FieldFiles      = "files"
	FieldInput      = "input"
	FieldOutput     = "output"
	FieldWorkingDir = "working_dir"
	FieldReason     = "reason"
	FieldLanguage   = "language"

	// Configuration fields.
	FieldStyle   = "style"
	FieldSection = "section"
	FieldDryRun  = "dry_run"
	FieldJobs    = "jobs"

	// Statistics fields.
	FieldFilesDiscovered = "files_discovered"
	FieldFilesProcessed  = "files_processed"
	FieldFilesModified   = "files_modified"
	FieldFilesFailed     = "files_failed"

	// Version fields.
	FieldVersion = "version"
	FieldCommit  = "commit"
	FieldBuilt   = "built"

	// Query fields.
	FieldOp      = "op"
	FieldNode    = "node"
	FieldKind    = "kind"
	FieldMatches = "matches"
	FieldChanged = "changed"
	FieldDeleted = "deleted"
)
