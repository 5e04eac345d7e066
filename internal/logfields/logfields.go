package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyRunID      = "run_id"
	KeyEvent      = "event"
	KeyChallenge  = "challenge"
	KeyPath       = "path"
	KeyAsset      = "asset"
	KeyDialect    = "dialect"
	KeyPages      = "pages"
	KeyAssets     = "assets"
	KeySkipped    = "skipped"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func RunID(id string) slog.Attr        { return slog.String(KeyRunID, id) }
func Event(name string) slog.Attr      { return slog.String(KeyEvent, name) }
func Challenge(key string) slog.Attr   { return slog.String(KeyChallenge, key) }
func Path(p string) slog.Attr          { return slog.String(KeyPath, p) }
func Asset(rel string) slog.Attr       { return slog.String(KeyAsset, rel) }
func Dialect(d string) slog.Attr       { return slog.String(KeyDialect, d) }
func Pages(n int) slog.Attr            { return slog.Int(KeyPages, n) }
func Assets(n int) slog.Attr           { return slog.Int(KeyAssets, n) }
func Skipped(n int) slog.Attr          { return slog.Int(KeySkipped, n) }
func DurationMS(ms float64) slog.Attr  { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
