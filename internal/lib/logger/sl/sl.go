package sl

import (
	"log/slog"
	"strings"
)

// Err creates a slog.Attr with the given error. A nil error is logged as an empty string.
func Err(err error) slog.Attr {
	if err == nil {
		return slog.String("error", "")
	}

	return slog.Attr{
		Key:   "error",
		Value: slog.StringValue(err.Error()),
	}
}

// Args creates a slog.Attr holding the command-line tokens joined by spaces.
func Args(args []string) slog.Attr {
	return slog.String("args", strings.Join(args, " "))
}
