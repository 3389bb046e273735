// Package logger configures the zerolog logger shared by the application.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Init builds the stderr logger and installs it as the global logger along
// with its level. Development builds log to a human readable console writer;
// other environments emit JSON lines.
func Init(env, level string) (zerolog.Logger, error) {
	l, err := New(os.Stderr, env, level)
	if err != nil {
		return l, err
	}
	zerolog.SetGlobalLevel(l.GetLevel())
	log.Logger = l
	return l, nil
}

// New builds a logger writing to w. Global zerolog state is left alone.
func New(w io.Writer, env, level string) (zerolog.Logger, error) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		return zerolog.Nop(), err
	}
	if lvl == zerolog.NoLevel {
		lvl = zerolog.InfoLevel
	}

	if env == "development" {
		w = zerolog.ConsoleWriter{Out: w, TimeFormat: time.Kitchen}
	}

	l := zerolog.New(w).Level(lvl).With().Timestamp().Logger()
	return l, nil
}
