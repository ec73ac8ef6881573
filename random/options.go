package random

import (
	"io"
	"log/slog"
)

// Options encapsulates the available options which can be used when creating a 'Generator'.
type Options struct {
	// Logger is used to report invalid requests and failures reading from the source. Defaults to discarding output.
	Logger *slog.Logger

	// DecimalDigits is the number of uniformly distributed fractional digits in generated decimals. Defaults to
	// 'DecimalDigits'.
	DecimalDigits int
}

func (o *Options) defaults() {
	if o.Logger == nil {
		o.Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	if o.DecimalDigits <= 0 {
		o.DecimalDigits = DecimalDigits
	}
}
