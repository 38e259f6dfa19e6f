package logging

import (
	"strings"

	"github.com/go-kit/kit/log"
	"github.com/go-kit/kit/log/level"
)

// Logging keys used throughout this library.  Collaborators that adapt go-kit
// loggers, such as the binsem tracing and perf-warning hooks, emit their text
// under MessageKey.
const (
	MessageKey   = "msg"
	TimestampKey = "ts"
	CallerKey    = "caller"
)

var defaultLogger = log.NewNopLogger()

// DefaultLogger returns the singleton NOP logger used wherever no logger has
// been supplied.  It is safe for concurrent use and discards everything.
func DefaultLogger() log.Logger {
	return defaultLogger
}

// New produces a go-kit Logger from a set of Options.  A nil Options is legal
// and yields a logfmt logger on stdout that admits errors only.  Entries carry
// a UTC timestamp under TimestampKey and are filtered per the Level field.
func New(o *Options) log.Logger {
	return NewFilter(
		log.WithPrefix(
			o.loggerFactory()(o.output()),
			TimestampKey, log.DefaultTimestampUTC,
		),
		o,
	)
}

// NewFilter applies the level configured in Options to an arbitrary go-kit
// Logger.  Levels are case-insensitive.  Anything unrecognized, including the
// empty string, admits errors only.  Entries that carry no level at all always
// pass the filter.
func NewFilter(next log.Logger, o *Options) log.Logger {
	switch strings.ToUpper(o.level()) {
	case "DEBUG":
		return level.NewFilter(next, level.AllowDebug())

	case "INFO":
		return level.NewFilter(next, level.AllowInfo())

	case "WARN":
		return level.NewFilter(next, level.AllowWarn())

	default:
		return level.NewFilter(next, level.AllowError())
	}
}

// Warn returns a logger that stamps each entry with the calling location and a
// constant warn level, followed by any additional key/value pairs.  The
// perf-warning collaborator uses this for its coarse-lock advisory.
//
// Do not decorate the returned logger further: later decoration would report
// the decorator as the caller.
func Warn(next log.Logger, keyvals ...interface{}) log.Logger {
	return log.WithPrefix(
		next,
		append([]interface{}{CallerKey, log.DefaultCaller, level.Key(), level.WarnValue()}, keyvals...)...,
	)
}
