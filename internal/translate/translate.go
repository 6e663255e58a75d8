// Package translate declares the capability blocks implement to be lowered
// to target code. No backend ships with STIR; blocks without a translator
// fail with ErrNoBackend.
package translate

import (
	"errors"
	"fmt"

	"stir/internal/blocks"
)

// ErrNoBackend is wrapped by the TranslateError returned for blocks that do
// not implement Translator.
var ErrNoBackend = errors.New("no translation backend")

// Translator is implemented by blocks that can emit target code.
type Translator interface {
	Translate() error
}

// TranslateError reports why a block could not be translated.
type TranslateError struct {
	Label  string
	Reason string
	Err    error
}

func (e *TranslateError) Error() string {
	if e.Reason == "" && e.Err != nil {
		return fmt.Sprintf("cannot translate %s: %v", e.Label, e.Err)
	}
	return fmt.Sprintf("cannot translate %s: %s", e.Label, e.Reason)
}

func (e *TranslateError) Unwrap() error { return e.Err }

// Translate lowers b through its Translator. Errors that are not already
// TranslateErrors are wrapped in one.
func Translate(b blocks.Block) error {
	t, ok := b.(Translator)
	if !ok {
		return &TranslateError{Label: b.Label(), Err: ErrNoBackend}
	}

	err := t.Translate()
	if err == nil {
		return nil
	}

	var te *TranslateError
	if errors.As(err, &te) {
		return err
	}
	return &TranslateError{Label: b.Label(), Reason: err.Error(), Err: err}
}
