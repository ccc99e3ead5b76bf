package intake

import "errors"

// Sentinel errors describing why a resume upload was rejected. The messages
// are user-facing; callers map them onto transport status codes.
var (
	// Client-caused failures.
	ErrEmptyDocument    = errors.New("no document provided")
	ErrUnsupportedType  = errors.New("only PDF files are supported")
	ErrDocumentTooLarge = errors.New("document exceeds the upload size limit")
	ErrEmptyText        = errors.New("could not extract text from the document")

	// Service-side failures.
	ErrNotConfigured     = errors.New("resume analysis service is not configured")
	ErrUpstreamMalformed = errors.New("could not analyze resume")
)
