package observability

import (
	"fmt"
	"log"
	"strings"
	"time"
)

// Logger is the minimal structured logging contract used across the
// analysis pipeline. Implementations must be safe for use from a single
// goroutine; the pipeline never logs concurrently.
type Logger interface {
	Debug(msg string, fields ...Field)
	Info(msg string, fields ...Field)
	Warn(msg string, fields ...Field)
	Error(msg string, fields ...Field)
	With(fields ...Field) Logger
}

type Field interface {
	Key() string
	Value() interface{}
}

type stringField struct{ key, val string }

func (f stringField) Key() string        { return f.key }
func (f stringField) Value() interface{} { return f.val }

type intField struct {
	key string
	val int
}

func (f intField) Key() string        { return f.key }
func (f intField) Value() interface{} { return f.val }

type float64Field struct {
	key string
	val float64
}

func (f float64Field) Key() string        { return f.key }
func (f float64Field) Value() interface{} { return f.val }

type durationField struct {
	key string
	val time.Duration
}

func (f durationField) Key() string        { return f.key }
func (f durationField) Value() interface{} { return f.val }

type errorField struct {
	key string
	err error
}

func (f errorField) Key() string        { return f.key }
func (f errorField) Value() interface{} { return f.err }

func String(key, value string) Field             { return stringField{key, value} }
func Int(key string, value int) Field            { return intField{key, value} }
func Float64(key string, value float64) Field    { return float64Field{key, value} }
func Duration(key string, d time.Duration) Field { return durationField{key, d} }
func Error(key string, err error) Field          { return errorField{key, err} }

type NopLogger struct{}

func (NopLogger) Debug(string, ...Field) {}
func (NopLogger) Info(string, ...Field)  {}
func (NopLogger) Warn(string, ...Field)  {}
func (NopLogger) Error(string, ...Field) {}
func (NopLogger) With(...Field) Logger   { return NopLogger{} }

// StdLogger writes structured entries through a standard library logger.
type StdLogger struct {
	l      *log.Logger
	prefix []Field
}

// NewStdLogger wraps l; a nil l uses the process default logger.
func NewStdLogger(l *log.Logger) *StdLogger {
	if l == nil {
		l = log.Default()
	}
	return &StdLogger{l: l}
}

func (s *StdLogger) Debug(msg string, fields ...Field) { s.emit("DEBUG", msg, fields) }
func (s *StdLogger) Info(msg string, fields ...Field)  { s.emit("INFO", msg, fields) }
func (s *StdLogger) Warn(msg string, fields ...Field)  { s.emit("WARN", msg, fields) }
func (s *StdLogger) Error(msg string, fields ...Field) { s.emit("ERROR", msg, fields) }

func (s *StdLogger) With(fields ...Field) Logger {
	prefix := make([]Field, 0, len(s.prefix)+len(fields))
	prefix = append(prefix, s.prefix...)
	prefix = append(prefix, fields...)
	return &StdLogger{l: s.l, prefix: prefix}
}

func (s *StdLogger) emit(level, msg string, fields []Field) {
	var b strings.Builder
	b.WriteString(level)
	b.WriteByte(' ')
	b.WriteString(msg)
	for _, f := range s.prefix {
		fmt.Fprintf(&b, " %s=%v", f.Key(), f.Value())
	}
	for _, f := range fields {
		fmt.Fprintf(&b, " %s=%v", f.Key(), f.Value())
	}
	s.l.Print(b.String())
}

// Standard metric names emitted by the pipeline.
const (
	MetricLayoutTime  = "analyze.layout.duration"
	MetricFormulaTime = "analyze.formula.duration"
	MetricOCRTime     = "analyze.ocr.duration"
	MetricTableTime   = "analyze.table.duration"
	MetricGCTime      = "analyze.gc.duration"
	MetricPageCount   = "analyze.pages.count"
	MetricRegionCount = "analyze.regions.count"
)
