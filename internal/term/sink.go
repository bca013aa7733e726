// Package term provides the terminal capabilities the rain renderer consumes:
// an output sink for queued escape-sequence writes and terminal size discovery.
package term

import (
	"bufio"
	"fmt"
	"io"

	"github.com/muesli/termenv"
)

// Sink accepts the drawing operations a frame is composed of. Operations are
// queued; nothing is guaranteed to reach the terminal until Flush.
type Sink interface {
	SetForeground(r, g, b uint8) error
	SetBackground(r, g, b uint8) error
	Print(ch rune) error
	// MoveTo positions the cursor at the zero-based cell (x, y).
	MoveTo(x, y int) error
	HideCursor() error
	ShowCursor() error
	// Reset clears any active color attributes.
	Reset() error
	Flush() error
}

// ANSISink implements Sink by buffering ANSI escape sequences and writing
// them out on Flush.
type ANSISink struct {
	w *bufio.Writer
}

// NewANSISink returns a sink that emits ANSI sequences to out.
func NewANSISink(out io.Writer) *ANSISink {
	return &ANSISink{w: bufio.NewWriter(out)}
}

func (s *ANSISink) SetForeground(r, g, b uint8) error {
	return s.writeColor(r, g, b, false)
}

func (s *ANSISink) SetBackground(r, g, b uint8) error {
	return s.writeColor(r, g, b, true)
}

func (s *ANSISink) writeColor(r, g, b uint8, bg bool) error {
	c := termenv.RGBColor(fmt.Sprintf("#%02x%02x%02x", r, g, b))
	_, err := s.w.WriteString(termenv.CSI + c.Sequence(bg) + "m")
	return err
}

func (s *ANSISink) Print(ch rune) error {
	_, err := s.w.WriteRune(ch)
	return err
}

func (s *ANSISink) MoveTo(x, y int) error {
	// The control sequence is 1-based, row before column.
	_, err := fmt.Fprintf(s.w, termenv.CSI+termenv.CursorPositionSeq, y+1, x+1)
	return err
}

func (s *ANSISink) HideCursor() error {
	_, err := s.w.WriteString(termenv.CSI + termenv.HideCursorSeq)
	return err
}

func (s *ANSISink) ShowCursor() error {
	_, err := s.w.WriteString(termenv.CSI + termenv.ShowCursorSeq)
	return err
}

func (s *ANSISink) Reset() error {
	_, err := s.w.WriteString(termenv.CSI + termenv.ResetSeq + "m")
	return err
}

func (s *ANSISink) Flush() error {
	return s.w.Flush()
}

// EnterAltScreen switches to the alternate screen buffer so the rain does not
// clobber the user's scrollback. Not part of Sink: it is issued once at
// startup, not per frame.
func (s *ANSISink) EnterAltScreen() error {
	_, err := s.w.WriteString(termenv.CSI + termenv.AltScreenSeq)
	return err
}

// ExitAltScreen restores the primary screen buffer.
func (s *ANSISink) ExitAltScreen() error {
	_, err := s.w.WriteString(termenv.CSI + termenv.ExitAltScreenSeq)
	return err
}
