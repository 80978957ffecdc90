// Package logger provides the zap-based application logger.
package logger

import "go.uber.org/zap"

// Log is the global zap logger used across the project. It defaults to a
// no-op logger so packages stay quiet under test until Init runs.
var Log = zap.NewNop()

// Init configures the global logger in production mode.
func Init() {
	l, err := zap.NewProduction()
	if err != nil {
		panic(err)
	}
	Log = l
}
