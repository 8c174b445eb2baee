// Package logging configures the logrus logger shared by the runtime packages.
package logging

import (
	"io"

	log "github.com/sirupsen/logrus"
)

// New returns a text logger writing to w. Diagnostics stay at warn level
// unless debug is set, so they never interleave with prompts by default.
func New(w io.Writer, debug bool) *log.Logger {
	l := log.New()
	l.SetOutput(w)
	l.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	l.SetLevel(log.WarnLevel)
	if debug {
		l.SetLevel(log.DebugLevel)
	}
	return l
}

// Component returns an entry tagged with the component name.
func Component(l *log.Logger, name string) *log.Entry {
	return l.WithField("component", name)
}

// Discard returns an entry that drops everything; the default for packages
// constructed without a logger.
func Discard() *log.Entry {
	l := log.New()
	l.SetOutput(io.Discard)
	return log.NewEntry(l)
}
