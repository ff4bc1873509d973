package inspector

import (
	"errors"
	"fmt"
)

// noDeclarationFoundError is returned when a document has no declaration
// block and no prompter is available to fall back on.
type noDeclarationFoundError struct{ file string }

func (e noDeclarationFoundError) Error() string { return "no shader declaration in " + e.file }

func ErrNoDeclarationFound(file string) error { return noDeclarationFoundError{file: file} }

// IsNoDeclarationFound reports whether err indicates a missing declaration block.
func IsNoDeclarationFound(err error) bool {
	var e noDeclarationFoundError
	return errors.As(err, &e)
}

type nothingToRepeatError struct{}

func (nothingToRepeatError) Error() string { return "haven't compiled anything yet" }

func ErrNothingToRepeat() error { return nothingToRepeatError{} }

// IsNothingToRepeat reports whether err indicates no prior compile was recorded.
func IsNothingToRepeat(err error) bool {
	var e nothingToRepeatError
	return errors.As(err, &e)
}

// saveFailedError is never returned to callers; it is logged as a warning.
type saveFailedError struct {
	file string
	err  error
}

func (e saveFailedError) Error() string {
	return fmt.Sprintf("saving %s failed, compiling last saved content: %v", e.file, e.err)
}

func (e saveFailedError) Unwrap() error { return e.err }

func ErrSaveFailed(file string, err error) error { return saveFailedError{file: file, err: err} }

// IsSaveFailed reports whether err indicates a document save failure.
func IsSaveFailed(err error) bool {
	var e saveFailedError
	return errors.As(err, &e)
}

type wrongLanguageError struct{ lang string }

func (e wrongLanguageError) Error() string {
	return fmt.Sprintf("wrong document language %q, HLSL expected", e.lang)
}

func ErrWrongLanguage(lang string) error { return wrongLanguageError{lang: lang} }

// IsWrongLanguage reports whether err indicates a non-HLSL document.
func IsWrongLanguage(err error) bool {
	var e wrongLanguageError
	return errors.As(err, &e)
}

// cancelledError signals the user dismissed a prompt.
type cancelledError struct{ step string }

func (e cancelledError) Error() string { return "cancelled at " + e.step }

func ErrCancelled(step string) error { return cancelledError{step: step} }

// IsCancelled reports whether err indicates an aborted prompt sequence.
func IsCancelled(err error) bool {
	var e cancelledError
	return errors.As(err, &e)
}
