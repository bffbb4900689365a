package model

// ExtractResult represents the outcome of one extraction pass over a
// package archive
type ExtractResult struct {
	FileCount int    // Number of page object files written
	Version   string // Version declared by the package metadata member
	OutputDir string // Destination root the files were written beneath
}

// Manifest is the metadata document recording one extraction run.
// It is written exactly once per run and never updated.
type Manifest struct {
	Source    string `json:"source"`     // Package the files came from
	Version   string `json:"version"`    // Resolved package version
	Extracted string `json:"extracted"`  // ISO-8601 extraction timestamp
	FileCount int    `json:"file_count"` // Number of files written
}

// NamespaceStat is the per-namespace file count used for reporting.
// Namespaces are the immediate subdirectories of the output root.
type NamespaceStat struct {
	Name      string // Namespace directory name
	FileCount int    // Page object files beneath it, recursively
}

// ValidationResult represents the outcome of the optional JSON
// well-formedness pass over extracted files
type ValidationResult struct {
	Checked int      // Files examined
	Invalid []string // Relative paths that failed to parse as JSON
}
