package httpapi

import (
	"net/http"
	"os"
	"time"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog"
)

// zlog is an optional structured logger. If unset, request logging is off.
var zlog *zerolog.Logger

// SetLogger installs a structured logger used by the HTTP layer.
func SetLogger(l zerolog.Logger) { zlog = &l }

// requestThreshold is the lowest level a request line must reach to be
// written. Read once from SHADERINSPECTOR_HTTP_LOG_LEVEL; empty means off.
var requestThreshold = parseThreshold(os.Getenv("SHADERINSPECTOR_HTTP_LOG_LEVEL"))

// SetRequestLogLevel overrides the threshold for requests without their own.
func SetRequestLogLevel(s string) { requestThreshold = parseThreshold(s) }

func parseThreshold(s string) zerolog.Level {
	if s == "" || s == "off" {
		return zerolog.Disabled
	}
	lvl, err := zerolog.ParseLevel(s)
	if err != nil || lvl == zerolog.NoLevel {
		return zerolog.InfoLevel
	}
	return lvl
}

// thresholdFor lets a caller raise verbosity for one request with ?log= or
// the X-Log-Level header.
func thresholdFor(r *http.Request) zerolog.Level {
	if v := r.URL.Query().Get("log"); v != "" {
		return parseThreshold(v)
	}
	if v := r.Header.Get("X-Log-Level"); v != "" {
		return parseThreshold(v)
	}
	return requestThreshold
}

// lineLevel grades a finished request: client mistakes warn, server faults error.
func lineLevel(code int) zerolog.Level {
	switch {
	case code >= http.StatusInternalServerError:
		return zerolog.ErrorLevel
	case code >= http.StatusBadRequest:
		return zerolog.WarnLevel
	default:
		return zerolog.InfoLevel
	}
}

// RequestLogger writes one line per request whose graded level meets the
// request's threshold. At debug the query string is included.
func RequestLogger(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		threshold := thresholdFor(r)
		if zlog == nil || threshold == zerolog.Disabled {
			next.ServeHTTP(w, r)
			return
		}
		rec := &codeRecorder{ResponseWriter: w, code: http.StatusOK}
		start := time.Now()
		next.ServeHTTP(rec, r)

		lvl := lineLevel(rec.code)
		if lvl < threshold {
			return
		}
		ev := zlog.WithLevel(lvl).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", rec.code).
			Dur("dur", time.Since(start))
		if threshold <= zerolog.DebugLevel && r.URL.RawQuery != "" {
			ev = ev.Str("query", r.URL.RawQuery)
		}
		if rid := middleware.GetReqID(r.Context()); rid != "" {
			ev = ev.Str("request_id", rid)
		}
		ev.Msg("http request")
	})
}
