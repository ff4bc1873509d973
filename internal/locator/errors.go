package locator

import "errors"

// notFoundError signals that no step of the precedence chain produced a path.
type notFoundError struct{ compiler string }

func (e notFoundError) Error() string {
	key := SettingCustomDXCPath
	if e.compiler == "fxc" {
		key = SettingCustomFXCPath
	}
	return "could not locate " + e.compiler + "; set shaderinspector." + key + " to the compiler executable"
}

// ErrNotFound constructs a notFoundError for compiler.
func ErrNotFound(compiler string) error { return notFoundError{compiler: compiler} }

// IsNotFound reports whether err indicates an unresolvable compiler path.
func IsNotFound(err error) bool {
	var e notFoundError
	return errors.As(err, &e)
}
