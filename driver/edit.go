package driver

import (
	"fmt"
	"strings"

	"github.com/nihei9/durum/tree"
)

type EditError struct {
	message string
}

func newEditError(message string) *EditError {
	return &EditError{
		message: message,
	}
}

func (e *EditError) Error() string {
	return e.message
}

var (
	ErrSpanOutOfBounds     = newEditError("an edit span exceeds the buffer")
	ErrPositionOutOfBounds = newEditError("an edit position exceeds the buffer")
	ErrSessionClosed       = newEditError("the session no longer accepts edits")
	ErrEditQueueFull       = newEditError("the edit queue is full")
)

// Edit is one operation against a text buffer. The set of operations is
// closed: Update, Insert, and Delete.
type Edit interface {
	applyTo(b *TextBuffer) error
}

// Update replaces the text covered by Span with NewText.
type Update struct {
	Span    tree.Span
	NewText string
}

// Insert places NewText at Pos without replacing anything.
type Insert struct {
	Pos     int
	NewText string
}

// Delete removes the text covered by Span.
type Delete struct {
	Span tree.Span
}

// TextBuffer holds the text a session parses. Every edit is validated
// against the current length before it is applied; an invalid edit leaves
// the buffer untouched.
type TextBuffer struct {
	text string
}

func NewTextBuffer(text string) *TextBuffer {
	return &TextBuffer{
		text: text,
	}
}

func (b *TextBuffer) Text() string {
	return b.text
}

func (b *TextBuffer) Len() int {
	return len(b.text)
}

func (b *TextBuffer) Apply(e Edit) error {
	return e.applyTo(b)
}

func (e Update) applyTo(b *TextBuffer) error {
	if err := b.checkSpan(e.Span); err != nil {
		return err
	}
	b.text = b.text[:e.Span.Start] + e.NewText + b.text[e.Span.End:]
	return nil
}

func (e Insert) applyTo(b *TextBuffer) error {
	if e.Pos < 0 || e.Pos > len(b.text) {
		return fmt.Errorf("%w; length: %v, position: %v", ErrPositionOutOfBounds, len(b.text), e.Pos)
	}
	var sb strings.Builder
	sb.Grow(len(b.text) + len(e.NewText))
	sb.WriteString(b.text[:e.Pos])
	sb.WriteString(e.NewText)
	sb.WriteString(b.text[e.Pos:])
	b.text = sb.String()
	return nil
}

func (e Delete) applyTo(b *TextBuffer) error {
	if err := b.checkSpan(e.Span); err != nil {
		return err
	}
	b.text = b.text[:e.Span.Start] + b.text[e.Span.End:]
	return nil
}

func (b *TextBuffer) checkSpan(s tree.Span) error {
	if s.Start < 0 || s.End < s.Start || s.End > len(b.text) {
		return fmt.Errorf("%w; length: %v, span: [%v, %v)", ErrSpanOutOfBounds, len(b.text), s.Start, s.End)
	}
	return nil
}
