// Copyright (c) 2026 The cachefix authors.
// SPDX-License-Identifier: MIT

package log

import (
	"fmt"
	"io"
	"os"
	"runtime"
	"strings"
	"time"

	"github.com/apex/log"
	"golang.org/x/term"
)

// levelNames maps CACHEFIX_LOG values to apex levels. WARN/WARNING and
// CRITICAL are accepted as aliases for compatibility with common logger
// conventions.
var levelNames = map[string]log.Level{
	"DEBUG":    log.DebugLevel,
	"INFO":     log.InfoLevel,
	"WARN":     log.WarnLevel,
	"WARNING":  log.WarnLevel,
	"ERROR":    log.ErrorLevel,
	"CRITICAL": log.FatalLevel,
	"FATAL":    log.FatalLevel,
}

// levelColors holds the ANSI SGR code used for each level name.
var levelColors = map[log.Level]string{
	log.DebugLevel: "94", // light blue
	log.InfoLevel:  "32", // dark green
	log.WarnLevel:  "33", // dark yellow
	log.ErrorLevel: "31", // dark red
	log.FatalLevel: "91", // red
}

// InitLogger sets up apex with the cachefix handler and a log level from the
// CACHEFIX_LOG env variable. An unrecognized level name is a configuration
// error and aborts startup.
func InitLogger() error {
	name := strings.ToUpper(os.Getenv("CACHEFIX_LOG"))
	if name == "" {
		name = "INFO"
	}

	level, ok := levelNames[name]
	if !ok {
		return fmt.Errorf("unknown CACHEFIX_LOG value: %q", name)
	}

	log.SetHandler(&Handler{Colored: ColorCapable()})
	log.SetLevel(level)

	return nil
}

// SetColor overrides the tty-based color detection, for the --color and
// --no-color flags.
func SetColor(enabled bool) {
	log.SetHandler(&Handler{Colored: enabled && runtime.GOOS != "windows"})
}

// ColorCapable reports whether stderr can take ANSI colors. Windows consoles
// get plain text.
func ColorCapable() bool {
	if runtime.GOOS == "windows" {
		return false
	}
	return term.IsTerminal(int(os.Stderr.Fd()))
}

// Handler formats log entries as "[timestamp] LEVEL: message" and writes
// them to W (stderr when nil), coloring the level name when enabled.
type Handler struct {
	Colored bool
	W       io.Writer
}

// HandleLog implements the log.Handler interface.
func (h *Handler) HandleLog(e *log.Entry) error {
	w := h.W
	if w == nil {
		w = os.Stderr
	}
	timestamp := time.Now().Format("02/01/2006 15:04:05")
	level := strings.ToUpper(e.Level.String())
	if h.Colored {
		level = fmt.Sprintf("\033[%sm%s\033[0m", levelColors[e.Level], level)
	}
	fmt.Fprintf(w, "[%s] %s: %s\n", timestamp, level, e.Message)
	return nil
}
