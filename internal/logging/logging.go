// Package logging configures the hclog loggers used by the iconkit tools.
package logging

import (
	"io"

	"github.com/hashicorp/go-hclog"
)

// Options selects the verbosity of a tool logger.
type Options struct {
	Verbose bool
	Quiet   bool
}

// Level returns the hclog level for the options. Quiet wins over Verbose.
func (o Options) Level() hclog.Level {
	switch {
	case o.Quiet:
		return hclog.Off
	case o.Verbose:
		return hclog.Debug
	default:
		return hclog.Info
	}
}

// New returns a named logger writing to out. Log records are diagnostics;
// tool results are written separately to stdout.
func New(name string, out io.Writer, opts Options) hclog.Logger {
	if out == nil {
		out = io.Discard
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Output: out,
		Level:  opts.Level(),
	})
}
