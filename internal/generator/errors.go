package generator

import (
	"errors"
	"fmt"

	"github.com/yumiyumii6886-collab/Tr-l-CONTENT/internal/gemini"
)

// Kind discriminates generation failures. The UI switches on this value,
// never on error text.
type Kind string

const (
	// KindValidation: the request had neither a product image nor a prompt.
	KindValidation Kind = "validation"

	// KindBusy: another generation is already running.
	KindBusy Kind = "busy"

	// KindConfig: the API credential is absent; actionable, not transient.
	KindConfig Kind = "config"

	// KindService: network failure or error status from the remote service.
	KindService Kind = "service"

	// KindContract: the service answered but the payload violated the
	// expected shape.
	KindContract Kind = "contract"
)

type Error struct {
	Kind Kind
	Err  error
}

func (e *Error) Error() string {
	return fmt.Sprintf("generation failed (%s): %v", e.Kind, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

// KindOf extracts the failure kind, or KindService for anything untyped.
func KindOf(err error) Kind {
	var genErr *Error
	if errors.As(err, &genErr) {
		return genErr.Kind
	}
	return KindService
}

// classify maps raw client errors onto the taxonomy.
func classify(err error) Kind {
	switch {
	case errors.Is(err, gemini.ErrMissingAPIKey):
		return KindConfig
	case errors.Is(err, gemini.ErrNoImageData), errors.Is(err, gemini.ErrMalformedContent):
		return KindContract
	default:
		return KindService
	}
}
