// Package extract turns uploaded document bytes into plain text.
package extract

import "errors"

// ErrUnsupportedType is returned for document types no extractor handles.
var ErrUnsupportedType = errors.New("unsupported document type")

// Extractor produces the plain text of a document.
type Extractor interface {
	Text(data []byte) (string, error)
}
