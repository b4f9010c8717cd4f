package main

import (
	"os"

	"github.com/btcsuite/btclog"

	"github.com/thanhnp/txsigner/internal/api/middleware"
	"github.com/thanhnp/txsigner/internal/gateway"
	"github.com/thanhnp/txsigner/internal/signer"
)

// All diagnostics go to stderr so stdout stays reserved for the JSON
// output array.
var (
	backend = btclog.NewBackend(os.Stderr)

	mainLog = backend.Logger("MAIN")
	gateLog = backend.Logger("GATE")
	signLog = backend.Logger("SIGN")
	apiLog  = backend.Logger("API")
)

// setupLoggers wires the subsystem loggers into their packages and sets the
// log level.
func setupLoggers(debug bool) {
	level := btclog.LevelInfo
	if debug {
		level = btclog.LevelDebug
	}

	for _, l := range []btclog.Logger{mainLog, gateLog, signLog, apiLog} {
		l.SetLevel(level)
	}

	gateway.UseLogger(gateLog)
	signer.UseLogger(signLog)
	middleware.UseLogger(apiLog)
}
