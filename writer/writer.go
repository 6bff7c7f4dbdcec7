// Package writer implements the canonical writer (§4.4): turning
// SimpleValue content into the literal text STON source uses for it. It
// is grounded on schema/generator.go's Generator — a small struct driving
// string construction through a type switch and plain fmt.Sprintf calls,
// with no reflection-based marshaling anywhere in the path.
package writer

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/Alphish/ston-go/model"
	"github.com/Alphish/ston-go/validate"
)

// UnsupportedFormatError reports that a write routine cannot emit content
// in the requested form: the content does not satisfy the corresponding
// SimpleValue grammar, or the requested base identifier or precision
// cannot be used for it.
type UnsupportedFormatError struct {
	DataType model.DataType
	Err      error
}

func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("cannot write %s literal: %s", e.DataType, e.Err)
}

func (e *UnsupportedFormatError) Unwrap() error {
	return e.Err
}

// Writer accumulates canonical STON literal text onto a sink, the way
// Generator accumulates DDL statement strings onto its ddls slice - a
// thin, stateless-per-call pass over already-validated content.
type Writer struct {
	sink   io.Writer
	logger *slog.Logger
}

// Option configures a Writer at construction time.
type Option func(*Writer)

// WithLogger overrides the default logger (slog.Default()). The Writer
// emits no log records of its own.
func WithLogger(logger *slog.Logger) Option {
	return func(w *Writer) { w.logger = logger }
}

// New builds a Writer over sink.
func New(sink io.Writer, opts ...Option) *Writer {
	w := &Writer{sink: sink, logger: slog.Default()}
	for _, opt := range opts {
		opt(w)
	}
	return w
}

// Write emits s verbatim.
func (w *Writer) Write(s string) error {
	_, err := io.WriteString(w.sink, s)
	return err
}

// WriteLine emits s followed by a newline.
func (w *Writer) WriteLine(s string) error {
	return w.Write(s + "\n")
}

const (
	nullLiteral = "n"
)

// WriteNullLiteral emits the null literal.
func (w *Writer) WriteNullLiteral() error {
	return w.Write(nullLiteral)
}

// WriteTextLiteral writes content as a double-quoted string literal.
func (w *Writer) WriteTextLiteral(content string) error {
	return w.writeStringLiteral(content, '"')
}

// WriteCodeLiteral writes content as a backtick-delimited code literal,
// escaped the same way as a text literal (the backtick is the escaped
// delimiter), so token.ScanStringContent reads the content back.
func (w *Writer) WriteCodeLiteral(content string) error {
	return w.writeStringLiteral(content, '`')
}

// WriteNamedLiteral writes content as a bare CANUN path literal.
func (w *Writer) WriteNamedLiteral(content string) error {
	if !model.IsCanunPath(content) {
		return &UnsupportedFormatError{
			DataType: model.Named,
			Err:      &validate.MalformedContentError{DataType: model.Named, Reason: "named content must be a dot-separated sequence of CANUN identifiers"},
		}
	}
	return w.Write(content)
}

func (w *Writer) writeStringLiteral(content string, delimiter rune) error {
	var buf strings.Builder
	buf.WriteRune(delimiter)
	for _, r := range content {
		switch r {
		case delimiter:
			buf.WriteByte('\\')
			buf.WriteRune(r)
		case '\\':
			buf.WriteString(`\\`)
		case '\n':
			buf.WriteString(`\n`)
		case '\r':
			buf.WriteString(`\r`)
		case '\t':
			buf.WriteString(`\t`)
		default:
			if r < 0x20 {
				buf.WriteString(fmt.Sprintf(`\u%04x`, r))
				continue
			}
			buf.WriteRune(r)
		}
	}
	buf.WriteRune(delimiter)
	return w.Write(buf.String())
}
