package httpapi

import (
	"context"
	"net/http"
)

// serverBaseCtx is canceled when the daemon shuts down.
var serverBaseCtx = context.Background()

// SetBaseContext sets the daemon lifetime context. nil resets to Background.
func SetBaseContext(ctx context.Context) {
	if ctx == nil {
		serverBaseCtx = context.Background()
		return
	}
	serverBaseCtx = ctx
}

// compileContext scopes a compiler run to both the request and the daemon:
// it is done when the client goes away or the server shuts down. The returned
// cancel func must be called when the handler returns.
func compileContext(r *http.Request) (context.Context, context.CancelFunc) {
	ctx, cancel := context.WithCancel(r.Context())
	stop := context.AfterFunc(serverBaseCtx, cancel)
	return ctx, func() {
		stop()
		cancel()
	}
}
