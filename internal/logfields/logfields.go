package logfields

import "log/slog"

// Canonical log field name constants to avoid drift across packages.
const (
	KeyPath       = "path"
	KeyFile       = "file"
	KeyField      = "field"
	KeyValue      = "value"
	KeyDocID      = "doc_id"
	KeyDocuments  = "documents"
	KeyFormat     = "format"
	KeyDurationMS = "duration_ms"
	KeyError      = "error"
)

// Simple helpers returning slog.Attr. Keeping each granular means callers can compose.
func Path(p string) slog.Attr         { return slog.String(KeyPath, p) }
func File(f string) slog.Attr         { return slog.String(KeyFile, f) }
func Field(name string) slog.Attr     { return slog.String(KeyField, name) }
func Value(v string) slog.Attr        { return slog.String(KeyValue, v) }
func DocID(id string) slog.Attr       { return slog.String(KeyDocID, id) }
func Documents(n int) slog.Attr       { return slog.Int(KeyDocuments, n) }
func Format(f string) slog.Attr       { return slog.String(KeyFormat, f) }
func DurationMS(ms float64) slog.Attr { return slog.Float64(KeyDurationMS, ms) }
func Error(err error) slog.Attr {
	if err == nil {
		return slog.String(KeyError, "")
	}
	return slog.String(KeyError, err.Error())
}
