package logger

import (
	"os"
	"strings"

	"github.com/sirupsen/logrus"
)

// Log is the process-wide logger. It is usable before Init with logrus
// defaults so packages and tests never see a nil logger.
var Log = logrus.New()

// Init configures Log. Unknown levels fall back to info; format is "json"
// or "text".
func Init(opts ...Option) {
	o := options{level: "info", format: "json"}
	for _, opt := range opts {
		opt(&o)
	}

	Log.SetOutput(os.Stdout)

	if strings.EqualFold(o.format, "text") {
		Log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	} else {
		Log.SetFormatter(&logrus.JSONFormatter{})
	}

	level, err := logrus.ParseLevel(o.level)
	if err != nil {
		level = logrus.InfoLevel
	}
	Log.SetLevel(level)
}

type options struct {
	level  string
	format string
}

type Option func(*options)

func WithLevel(level string) Option {
	return func(o *options) { o.level = level }
}

func WithFormat(format string) Option {
	return func(o *options) { o.format = format }
}
