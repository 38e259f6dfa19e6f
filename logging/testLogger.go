package logging

import (
	"io"

	"github.com/go-kit/kit/log"
)

// TestSink is the subset of testing.TB that log output is routed to.
// Both *testing.T and *testing.B satisfy it.
type TestSink interface {
	Log(...interface{})
}

// sinkWriter adapts a TestSink to io.Writer, one log line per Write
type sinkWriter struct {
	sink TestSink
}

func (sw sinkWriter) Write(p []byte) (int, error) {
	sw.sink.Log(string(p))
	return len(p), nil
}

// NewTestWriter adapts a testing log into an io.Writer.  Writes need no
// synchronization beyond what the testing package already provides.
func NewTestWriter(sink TestSink) io.Writer {
	return sinkWriter{sink: sink}
}

// NewTestLogger produces a go-kit Logger that writes through the supplied
// testing log, so entries appear inline with test output.  A nil Options
// admits everything: tests usually want all the output they can get.
func NewTestLogger(o *Options, sink TestSink) log.Logger {
	if o == nil {
		o = &Options{Level: "DEBUG"}
	}

	return NewFilter(
		log.With(
			o.loggerFactory()(NewTestWriter(sink)),
			TimestampKey, log.DefaultTimestampUTC,
		),
		o,
	)
}
