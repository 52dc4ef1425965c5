package dataset

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"

	"github.com/google/uuid"
	"gopkg.in/natefinch/lumberjack.v2"
)

// customJSONHandler is a custom slog handler that outputs records in JSON
// format with time in "2006-01-02 15:04:05" format and without the log
// level field. All attributes are written at the top level of the object.
type customJSONHandler struct {
	opts slog.HandlerOptions // handler options (not actively used, but stored)
	out  io.Writer           // target writer for JSON record output
}

// NewCustomJSONHandler creates a new instance of customJSONHandler.
// Parameters:
// - out: writer where JSON records will be written (e.g., file)
// - opts: slog.HandlerOptions (can be nil)
//
// Returns a ready-to-use handler.
func NewCustomJSONHandler(out io.Writer, opts *slog.HandlerOptions) *customJSONHandler {
	if opts == nil {
		opts = &slog.HandlerOptions{}
	}

	return &customJSONHandler{
		opts: *opts,
		out:  out,
	}
}

// Handle implements the slog.Handler interface: serializes a record to
// JSON with the required time format and without the log level.
// Each record is written as a separate line (JSONL format).
func (h *customJSONHandler) Handle(_ context.Context, r slog.Record) error {
	attrs := make(map[string]interface{})

	attrs["time"] = r.Time.Format("2006-01-02 15:04:05")

	r.Attrs(func(a slog.Attr) bool {
		if a.Key != "" && a.Value.Any() != nil {
			attrs[a.Key] = a.Value.Any()
		}

		return true
	})

	data, err := json.Marshal(attrs)
	if err != nil {
		return err
	}

	_, err = h.out.Write(append(data, '\n'))
	return err
}

// WithAttrs is not supported
func (h *customJSONHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	panic("WithAttrs is not supported by customJSONHandler")
}

// WithGroup is not supported
func (h *customJSONHandler) WithGroup(name string) slog.Handler {
	panic("WithGroup is not supported by customJSONHandler")
}

// Enabled determines whether the handler should process a record of the
// given level. Always returns true — all levels are allowed.
func (h *customJSONHandler) Enabled(_ context.Context, _ slog.Level) bool {
	return true
}

// JsonReportRepository appends completed analysis runs to a JSON-lines
// report file with rotation and compression via lumberjack. Each line
// carries a unique run id so downstream consumers can reference a run.
type JsonReportRepository struct {
	lumberjack *lumberjack.Logger // rotating file writer
	logger     *slog.Logger       // structured logger with custom output
}

// NewJsonReportRepository creates a new repository for report recording.
// Parameters:
// - file: path to the file where runs are written
// - maxSize: maximum file size in MB before rotation
// - maxBackups: maximum number of old files to keep
//
// Returns a pointer to an initialized repository.
func NewJsonReportRepository(file string, maxSize, maxBackups int) *JsonReportRepository {
	repo := JsonReportRepository{}
	repo.lumberjack = &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		Compress:   true,
	}

	handler := NewCustomJSONHandler(repo.lumberjack, &slog.HandlerOptions{
		Level: slog.LevelInfo,
	})
	repo.logger = slog.New(handler)
	return &repo
}

// Append records one analysis run: its kind ("matchup", "defense",
// "versus"), the input file it was computed from, and the score mapping.
// A fresh uuid identifies the run. Thread-safe thanks to lumberjack and
// slog.
func (r *JsonReportRepository) Append(kind string, input string, result any) {
	r.logger.Info("", "run", uuid.NewString(), "kind", kind, "input", input, "result", result)
}

// Close closes the underlying file. Should be called when shutting down
// to ensure write completion and rotation of the last file.
func (r *JsonReportRepository) Close() {
	r.lumberjack.Close()
}
