// Package logger provides slog attribute helpers used across viewkit.
// Helpers return an empty Attr for zero values, so calls like
// log.Info("msg", logger.Error(err)) are safe without nil checks.
package logger
