package main

import (
	"io"
	"sync"

	"github.com/nvandessel/liftconf/internal/boundary"
	"github.com/nvandessel/liftconf/internal/config"
	"github.com/nvandessel/liftconf/internal/logger"
	"github.com/nvandessel/liftconf/internal/options"
)

// errorSlot holds the pending exception raised towards the C caller. The
// first one raised wins until it is taken. There is one slot per process,
// not per thread, so callers sharing the library across threads must
// serialize a call with its liftconf_last_error.
type errorSlot struct {
	mu  sync.Mutex
	msg string
	set bool
}

func (s *errorSlot) store(class, message string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.set {
		return
	}
	s.msg = class + ": " + message
	s.set = true
}

// take returns and clears the stored message.
func (s *errorSlot) take() (string, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	msg, ok := s.msg, s.set
	s.msg, s.set = "", false
	return msg, ok
}

// newAdapter builds the adapter backing the exported functions. Logging
// settings come from the LIFTCONF_* environment; a bad environment falls back
// to the defaults since there is no caller to report it to yet.
func newAdapter(host boundary.Host, w io.Writer) *boundary.Adapter {
	level := "warn"
	opts, err := options.Load()
	if err == nil {
		level = opts.LogLevel
	}

	log := logger.NewJSON(w, "libliftconf", level)
	if err != nil {
		log.Warn().Err(err).Msg("ignoring invalid environment")
	}
	return boundary.New(host, config.NewLoader(log.Logger), log.Logger)
}
