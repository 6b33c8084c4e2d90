package headline

import "strings"

// Warning describes a non-fatal issue encountered during extraction. The
// pipeline keeps going when it can; warnings tell the caller what was
// skipped or degraded along the way.
type Warning struct {
	// Code identifies the class of warning, such as "open_failed" or
	// "page_skipped".
	Code string
	// Message is a human-readable description of the issue.
	Message string
}

// WarnOpenFailed means the document could not be opened. The terminal
// operation returns empty results instead of an error.
const WarnOpenFailed = "open_failed"

// WarnNoText means the document opened but yielded no text blocks, as
// happens with scanned or image-only PDFs.
const WarnNoText = "no_text"

// FormatWarnings renders a slice of warnings as a single semicolon-separated
// string, suitable for logging. It returns the empty string when there are
// no warnings.
//
// Example:
//
//	log.Println("Warnings:", headline.FormatWarnings(warnings))
func FormatWarnings(warnings []Warning) string {
	if len(warnings) == 0 {
		return ""
	}
	parts := make([]string, len(warnings))
	for i, w := range warnings {
		parts[i] = w.Code + ": " + w.Message
	}
	return strings.Join(parts, "; ")
}
