package version

import "fmt"

// MissingVersionJsonError reports that a version's manifest file is not
// present on disk.
type MissingVersionJsonError struct {
	Version string
	Path    string
}

func (e *MissingVersionJsonError) Error() string {
	return fmt.Sprintf("version %q: manifest not found at %s", e.Version, e.Path)
}

// CorruptedVersionJsonError reports that a version's manifest file exists
// but is not valid JSON. Raw carries the unparseable text for diagnostics.
type CorruptedVersionJsonError struct {
	Version string
	Raw     string
	Cause   error
}

func (e *CorruptedVersionJsonError) Error() string {
	return fmt.Sprintf("version %q: manifest is not valid JSON: %v", e.Version, e.Cause)
}

func (e *CorruptedVersionJsonError) Unwrap() error { return e.Cause }

// CircularDependenciesError reports a cycle in the inheritsFrom chain.
// Chain is the sequence of ids walked, ending with the id that closes the
// cycle (so for A -> B -> A, Chain is [A, B, A]).
type CircularDependenciesError struct {
	Chain []string
}

func (e *CircularDependenciesError) Error() string {
	return fmt.Sprintf("circular inheritsFrom dependency: %v", e.Chain)
}

// BadVersionJsonError reports a manifest that parsed but is missing a
// required field after the full merge.
type BadVersionJsonError struct {
	Version string
	Missing string
}

func (e *BadVersionJsonError) Error() string {
	return fmt.Sprintf("version %q: missing required field %s", e.Version, e.Missing)
}

// FormatMismatchError reports a legacy manifest (minecraftArguments)
// inheriting from, or being inherited by, a modern manifest (arguments),
// or vice versa — mixing the two forms across a chain is illegal.
type FormatMismatchError struct {
	Version string
}

func (e *FormatMismatchError) Error() string {
	return fmt.Sprintf("version %q: mixes legacy minecraftArguments with modern arguments across its inheritance chain", e.Version)
}

// LibraryCorruptionError reports a library entry that has no usable
// download descriptor (no downloads.artifact, no natives, no legacy url
// form).
type LibraryCorruptionError struct {
	Library string
}

func (e *LibraryCorruptionError) Error() string {
	return fmt.Sprintf("library %q: no usable download descriptor", e.Library)
}
