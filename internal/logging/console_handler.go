package logging

import (
	"context"
	"io"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"
	"sync"
	"time"
)

const consoleTimestampLayout = "2006-01-02 15:04:05"

// consoleHandler writes one human-readable line per record:
//
//	2025-01-02 15:04:05 INFO api: request served [req 1b4e28ba] status=200
//
// Attributes added through With are rendered once and reused.
type consoleHandler struct {
	out       *lockedWriter
	level     slog.Leveler
	addSource bool

	component string
	requestID string
	fields    []byte
	prefix    string
}

type lockedWriter struct {
	mu sync.Mutex
	w  io.Writer
}

func (lw *lockedWriter) write(p []byte) error {
	lw.mu.Lock()
	defer lw.mu.Unlock()
	_, err := lw.w.Write(p)
	return err
}

func newConsoleHandler(w io.Writer, level slog.Leveler, addSource bool) slog.Handler {
	return &consoleHandler{out: &lockedWriter{w: w}, level: level, addSource: addSource}
}

func (h *consoleHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

func (h *consoleHandler) Handle(_ context.Context, record slog.Record) error {
	component, requestID := h.component, h.requestID
	var fields []byte
	record.Attrs(func(attr slog.Attr) bool {
		fields = h.appendAttr(fields, h.prefix, attr, &component, &requestID)
		return true
	})

	ts := record.Time
	if ts.IsZero() {
		ts = time.Now()
	}

	line := make([]byte, 0, 96+len(h.fields)+len(fields))
	line = ts.Local().AppendFormat(line, consoleTimestampLayout)
	line = append(line, ' ')
	line = append(line, levelLabel(record.Level)...)
	line = append(line, ' ')
	if component != "" {
		line = append(line, component...)
		line = append(line, ": "...)
	}
	if msg := strings.TrimSpace(record.Message); msg != "" {
		line = append(line, msg...)
	} else {
		line = append(line, "(no message)"...)
	}
	if requestID != "" {
		line = append(line, " [req "...)
		line = append(line, shortID(requestID)...)
		line = append(line, ']')
	}
	if h.addSource {
		if src := record.Source(); src != nil && src.File != "" {
			line = append(line, " ["...)
			line = append(line, filepath.Base(src.File)...)
			line = append(line, ':')
			line = strconv.AppendInt(line, int64(src.Line), 10)
			line = append(line, ']')
		}
	}
	line = append(line, h.fields...)
	line = append(line, fields...)
	line = append(line, '\n')

	return h.out.write(line)
}

func (h *consoleHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	if len(attrs) == 0 {
		return h
	}
	next := *h
	next.fields = append([]byte(nil), h.fields...)
	for _, attr := range attrs {
		next.fields = next.appendAttr(next.fields, next.prefix, attr, &next.component, &next.requestID)
	}
	return &next
}

func (h *consoleHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return h
	}
	next := *h
	next.prefix = h.prefix + name + "."
	return &next
}

// appendAttr renders attr as " key=value". Top-level component and
// correlation id attributes are lifted into the line header instead.
func (h *consoleHandler) appendAttr(dst []byte, prefix string, attr slog.Attr, component, requestID *string) []byte {
	attr.Value = attr.Value.Resolve()
	if attr.Equal(slog.Attr{}) {
		return dst
	}
	if attr.Value.Kind() == slog.KindGroup {
		inner := prefix
		if attr.Key != "" {
			inner = prefix + attr.Key + "."
		}
		for _, child := range attr.Value.Group() {
			dst = h.appendAttr(dst, inner, child, component, requestID)
		}
		return dst
	}
	if prefix == "" {
		switch attr.Key {
		case FieldComponent:
			*component = valueText(attr.Value)
			return dst
		case FieldCorrelationID:
			*requestID = valueText(attr.Value)
			return dst
		}
	}
	dst = append(dst, ' ')
	dst = append(dst, prefix...)
	dst = append(dst, attr.Key...)
	dst = append(dst, '=')
	return appendValue(dst, attr.Value)
}

// valueText is the unquoted text form of v.
func valueText(v slog.Value) string {
	switch v.Kind() {
	case slog.KindString:
		return v.String()
	case slog.KindTime:
		return v.Time().Local().Format(consoleTimestampLayout)
	case slog.KindAny:
		if err, ok := v.Any().(error); ok {
			return err.Error()
		}
	}
	return v.String()
}

func appendValue(dst []byte, v slog.Value) []byte {
	switch v.Kind() {
	case slog.KindInt64:
		return strconv.AppendInt(dst, v.Int64(), 10)
	case slog.KindUint64:
		return strconv.AppendUint(dst, v.Uint64(), 10)
	case slog.KindFloat64:
		return strconv.AppendFloat(dst, v.Float64(), 'f', -1, 64)
	case slog.KindBool:
		return strconv.AppendBool(dst, v.Bool())
	case slog.KindDuration:
		return append(dst, v.Duration().String()...)
	}
	text := valueText(v)
	if needsQuotes(text) {
		return strconv.AppendQuote(dst, text)
	}
	return append(dst, text...)
}

func needsQuotes(s string) bool {
	if s == "" {
		return true
	}
	return strings.ContainsFunc(s, func(r rune) bool {
		return r <= ' ' || r == '=' || r == '"'
	})
}

// shortID trims UUID request ids to their first block.
func shortID(id string) string {
	if head, _, ok := strings.Cut(id, "-"); ok && head != "" {
		return head
	}
	return id
}

func levelLabel(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return "ERROR"
	case level >= slog.LevelWarn:
		return "WARN"
	case level >= slog.LevelInfo:
		return "INFO"
	default:
		return "DEBUG"
	}
}
