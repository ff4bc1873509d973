//go:build !windows

package locator

import "context"

// DefaultProbe yields nothing: the platform SDK only exists on Windows.
func DefaultProbe(ctx context.Context) (string, error) { return "", nil }
