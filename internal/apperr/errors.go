package apperr

import (
	stderrors "errors"

	crerr "github.com/cockroachdb/errors"
)

// Sentinel error kinds. Call sites wrap these with context and the service
// layer classifies with errors.Is before printing a single line.
var (
	ErrTransport    = crerr.New("upstream transport failure")
	ErrMissingField = crerr.New("missing field in response")
	ErrDecode       = crerr.New("response decode failure")
	ErrNotFound     = crerr.New("not found")
	ErrFile         = crerr.New("file access failure")
)

func IsTransport(err error) bool { return stderrors.Is(err, ErrTransport) }

func IsNotFound(err error) bool { return stderrors.Is(err, ErrNotFound) }

// IsParse covers both normalization failure modes: an envelope without the
// expected field and a payload that does not decode into the target shape.
func IsParse(err error) bool {
	return stderrors.Is(err, ErrMissingField) || stderrors.Is(err, ErrDecode)
}
