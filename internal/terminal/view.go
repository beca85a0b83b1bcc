package terminal

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"

	"github.com/GregMSThompson/chat-client/internal/messages"
)

const (
	promptMarker = "> "

	// prompts have no length limit; this only bounds a single line in memory
	maxLineBytes = 16 << 20
)

// View is a line-oriented stand-in for the page: every line read from in is
// one form submission, and the response region is whatever gets printed.
type View struct {
	in   *bufio.Scanner
	out  io.Writer
	msgs messages.Catalogue

	mu      sync.Mutex
	prompt  string
	enabled bool
	submit  func()
}

func New(in io.Reader, out io.Writer, msgs messages.Catalogue) *View {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &View{
		in:      scanner,
		out:     out,
		msgs:    msgs,
		enabled: true,
	}
}

func (v *View) PromptValue() string {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.prompt
}

func (v *View) Alert(message string) {
	fmt.Fprintf(v.out, "! %s\n", message)
}

func (v *View) SetSubmitEnabled(enabled bool) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.enabled = enabled
}

func (v *View) SubmitEnabled() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.enabled
}

func (v *View) SetLoading(visible bool) {
	if visible {
		fmt.Fprintln(v.out, v.msgs.Loading)
	}
}

// SetResponseText prints text verbatim. Clearing has nothing to undo on a
// terminal, so the empty string prints nothing.
func (v *View) SetResponseText(text string) {
	if text == "" {
		return
	}
	fmt.Fprintln(v.out, text)
}

func (v *View) SetResponseHTML(markup string) {
	text, err := HTMLToText(markup)
	if err != nil {
		text = markup
	}
	if text != "" {
		fmt.Fprintln(v.out, text)
	}
}

func (v *View) OnSubmit(handler func()) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.submit = handler
}

// Run feeds lines to the submit handler until input ends or ctx is done.
// Lines arriving while the submit control is disabled are ignored, as a
// disabled button would ignore clicks.
func (v *View) Run(ctx context.Context) error {
	fmt.Fprint(v.out, promptMarker)
	for v.in.Scan() {
		if err := ctx.Err(); err != nil {
			return err
		}

		v.mu.Lock()
		handler, enabled := v.submit, v.enabled
		if enabled {
			v.prompt = v.in.Text()
		}
		v.mu.Unlock()

		if handler != nil && enabled {
			handler()
		}
		fmt.Fprint(v.out, promptMarker)
	}
	fmt.Fprintln(v.out)
	return v.in.Err()
}
