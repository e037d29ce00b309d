package logger

import (
	"log/slog"
	"os"
)

var Log *slog.Logger

// Init configures the global structured logger. JSON output so log
// aggregators can index fields without parsing.
func Init() {
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	})
	Log = slog.New(handler)
}
