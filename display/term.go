package display

import (
	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyterm"
)

// Term is a scrolling text pane over a rectangular region of a
// framebuffer, used for event logs.
type Term struct {
	t *tinyterm.Terminal
}

// NewTerm builds a terminal covering the given displayer region.
func NewTerm(d tinyterm.Displayer, font tinyfont.Fonter, fontHeight, fontOffset int16) *Term {
	t := tinyterm.NewTerminal(d)
	t.Configure(&tinyterm.Config{
		Font:       font,
		FontHeight: fontHeight,
		FontOffset: fontOffset,
	})
	return &Term{t: t}
}

// Println writes one line to the terminal.
func (t *Term) Println(args ...interface{}) {
	t.t.Println(args...)
}

// Printf writes formatted text to the terminal.
func (t *Term) Printf(format string, args ...interface{}) {
	t.t.Printf(format, args...)
}
