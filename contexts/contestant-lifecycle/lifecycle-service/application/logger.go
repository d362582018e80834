package application

import "log/slog"

func resolveLogger(logger *slog.Logger) *slog.Logger {
	if logger != nil {
		return logger
	}
	return slog.Default()
}

// ResolveLogger is the exported variant for worker code in subpackages.
func ResolveLogger(logger *slog.Logger) *slog.Logger {
	return resolveLogger(logger)
}
