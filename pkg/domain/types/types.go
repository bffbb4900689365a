package types

// Version is the application version
const Version = "0.1.0"

// SourceName is the npm package the extractor pulls page objects from.
// It is also recorded as the manifest's source identifier.
const SourceName = "salesforce-pageobjects"

// UnknownVersion is the sentinel recorded when the package metadata
// member is missing or does not declare a version.
const UnknownVersion = "unknown"

// Archive member conventions of the published package layout.
const (
	// MetadataMember is the archive member holding the package metadata.
	MetadataMember = "package/package.json"

	// MemberPrefix is the archive subtree page objects are published under.
	// It is stripped when computing destination paths.
	MemberPrefix = "package/dist/"

	// MemberSuffix is the naming convention of page object definitions.
	MemberSuffix = ".utam.json"
)

// ManifestFilename is the metadata document written at the output root
// after each extraction run.
const ManifestFilename = "MANIFEST.json"

// ReservedCacheDir is excluded from namespace statistics.
const ReservedCacheDir = "__pycache__"
