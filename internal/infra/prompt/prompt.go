// Package prompt implements domain.Confirmer for terminals and plain streams.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-isatty"

	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/tui"
)

// Ensure both confirmers implement domain.Confirmer.
var (
	_ domain.Confirmer = (*LineConfirmer)(nil)
	_ domain.Confirmer = (*TeaConfirmer)(nil)
)

// New returns a TeaConfirmer when in and out are both terminals,
// otherwise a LineConfirmer reading from in.
func New(in io.Reader, out io.Writer) domain.Confirmer {
	if IsTerminal(in) && IsTerminal(out) {
		return NewTeaConfirmer(in, out)
	}
	return NewLineConfirmer(in, out)
}

// IsTerminal reports whether v is a file attached to a terminal.
func IsTerminal(v any) bool {
	f, ok := v.(*os.File)
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}

// LineConfirmer asks on out and reads one answer line from in.
type LineConfirmer struct {
	in  *bufio.Reader
	out io.Writer
}

// NewLineConfirmer creates a LineConfirmer.
func NewLineConfirmer(in io.Reader, out io.Writer) *LineConfirmer {
	return &LineConfirmer{in: bufio.NewReader(in), out: out}
}

// Confirm prints "<question> (y/n): " and returns true only for y or Y.
// End of input counts as no.
func (c *LineConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	if err := ctx.Err(); err != nil {
		return false, err
	}
	if _, err := fmt.Fprintf(c.out, "%s (y/n): ", question); err != nil {
		return false, fmt.Errorf("write prompt: %w", err)
	}

	line, err := c.in.ReadString('\n')
	if err != nil && !errors.Is(err, io.EOF) {
		return false, fmt.Errorf("read answer: %w", err)
	}
	if errors.Is(err, io.EOF) && line == "" {
		_, _ = fmt.Fprintln(c.out)
		return false, nil
	}
	return strings.EqualFold(strings.TrimSpace(line), "y"), nil
}

// TeaConfirmer runs a one-shot bubbletea prompt.
type TeaConfirmer struct {
	in  io.Reader
	out io.Writer
}

// NewTeaConfirmer creates a TeaConfirmer.
func NewTeaConfirmer(in io.Reader, out io.Writer) *TeaConfirmer {
	return &TeaConfirmer{in: in, out: out}
}

// Confirm runs the prompt until the user answers. Interrupts count as no.
func (c *TeaConfirmer) Confirm(ctx context.Context, question string) (bool, error) {
	model := tui.NewConfirmModel(question)
	p := tea.NewProgram(model,
		tea.WithContext(ctx),
		tea.WithInput(c.in),
		tea.WithOutput(c.out),
	)

	final, err := p.Run()
	if err != nil {
		return false, fmt.Errorf("run confirm prompt: %w", err)
	}
	m, ok := final.(*tui.ConfirmModel)
	return ok && m.Confirmed(), nil
}
