package httpapi

import (
	"encoding/json"
	"errors"
	"net/http"

	"shaderinspector/internal/inspector"
	"shaderinspector/internal/locator"
	"shaderinspector/internal/shader"
	"shaderinspector/pkg/types"
)

// HTTPError allows services to provide an HTTP status code for an error.
type HTTPError interface {
	error
	StatusCode() int
}

// statusFor maps domain errors to HTTP status codes.
func statusFor(err error) int {
	var he HTTPError
	switch {
	case errors.As(err, &he):
		return he.StatusCode()
	case shader.IsMalformedDeclaration(err),
		shader.IsNoDeclarations(err),
		shader.IsUnsupportedCompiler(err),
		inspector.IsWrongLanguage(err),
		inspector.IsCancelled(err):
		return http.StatusBadRequest
	case locator.IsNotFound(err), inspector.IsNothingToRepeat(err):
		return http.StatusNotFound
	case shader.IsDeclarationExists(err):
		return http.StatusConflict
	case inspector.IsNoDeclarationFound(err):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}

// writeJSONError writes a consistent JSON error payload.
func writeJSONError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(types.ErrorResponse{Error: msg, Code: status})
}
