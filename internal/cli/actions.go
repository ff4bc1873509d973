package cli

import (
	"net/http"

	"shaderinspector/internal/execx"
	"shaderinspector/internal/locator"
)

// Indirection layer to allow stubbing in tests

var (
	fnRunner         execx.Runner      = execx.ExecRunner{}
	fnProbe          locator.ProbeFunc = locator.DefaultProbe
	fnListenAndServe                   = func(srv *http.Server) error { return srv.ListenAndServe() }
)
