package shader

import "errors"

// malformedDeclarationError signals a declaration block that could not be decoded.
type malformedDeclarationError struct {
	msg string
	err error
}

func (e malformedDeclarationError) Error() string {
	if e.err != nil {
		return e.msg + ": " + e.err.Error()
	}
	return e.msg
}

func (e malformedDeclarationError) Unwrap() error { return e.err }

// ErrMalformedDeclaration constructs a malformedDeclarationError.
func ErrMalformedDeclaration(msg string, err error) error {
	return malformedDeclarationError{msg: msg, err: err}
}

// IsMalformedDeclaration reports whether err indicates an undecodable declaration block.
func IsMalformedDeclaration(err error) bool {
	var e malformedDeclarationError
	return errors.As(err, &e)
}

// noDeclarationsError signals a block whose Shaders list is empty.
type noDeclarationsError struct{}

func (noDeclarationsError) Error() string { return "missing shader declarations" }

// ErrNoDeclarations returns the error used for an empty Shaders list.
func ErrNoDeclarations() error { return noDeclarationsError{} }

// IsNoDeclarations reports whether err indicates an empty Shaders list.
func IsNoDeclarations(err error) bool {
	var e noDeclarationsError
	return errors.As(err, &e)
}

// declarationExistsError is returned when a sample block would clobber an existing one.
type declarationExistsError struct{}

func (declarationExistsError) Error() string { return "file already has shader declaration" }

// ErrDeclarationExists returns the error used when a block is already present.
func ErrDeclarationExists() error { return declarationExistsError{} }

// IsDeclarationExists reports whether err indicates an existing declaration block.
func IsDeclarationExists(err error) bool {
	var e declarationExistsError
	return errors.As(err, &e)
}

// unsupportedCompilerError carries a compiler name that is neither dxc nor fxc.
type unsupportedCompilerError struct{ name string }

func (e unsupportedCompilerError) Error() string { return "unknown shader compiler: " + e.name }

// ErrUnsupportedCompiler constructs an unsupportedCompilerError.
func ErrUnsupportedCompiler(name string) error { return unsupportedCompilerError{name: name} }

// IsUnsupportedCompiler reports whether err names an unknown compiler.
func IsUnsupportedCompiler(err error) bool {
	var e unsupportedCompilerError
	return errors.As(err, &e)
}
