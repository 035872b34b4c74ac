package cli

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/runoshun/next-issue/internal/domain"
	"github.com/runoshun/next-issue/internal/tui"
)

// ruleWidth is the width of section separators.
const ruleWidth = 80

// style names a console text style.
type style int

const (
	styleBold style = iota
	styleInfo
	styleWarn
	styleSuccess
	styleError
	styleAccent
	styleMuted
)

// printer writes styled lines to a single writer.
// Colors are only emitted when the writer is a color-capable terminal.
type printer struct {
	w        io.Writer
	renderer *lipgloss.Renderer
	styles   map[style]lipgloss.Style
}

func newPrinter(w io.Writer) *printer {
	r := lipgloss.NewRenderer(w)
	return &printer{
		w:        w,
		renderer: r,
		styles: map[style]lipgloss.Style{
			styleBold:    r.NewStyle().Bold(true),
			styleInfo:    r.NewStyle().Foreground(tui.Colors.Secondary),
			styleWarn:    r.NewStyle().Foreground(tui.Colors.Warning),
			styleSuccess: r.NewStyle().Foreground(tui.Colors.Success),
			styleError:   r.NewStyle().Foreground(tui.Colors.Error),
			styleAccent:  r.NewStyle().Bold(true).Foreground(tui.Colors.Primary),
			styleMuted:   r.NewStyle().Foreground(tui.Colors.Muted),
		},
	}
}

func (p *printer) render(s style, text string) string {
	return p.styles[s].Render(text)
}

// line writes one styled line.
func (p *printer) line(s style, format string, args ...any) {
	_, _ = fmt.Fprintln(p.w, p.render(s, fmt.Sprintf(format, args...)))
}

func (p *printer) blank() {
	_, _ = fmt.Fprintln(p.w)
}

func (p *printer) rule() {
	p.line(styleBold, "%s", strings.Repeat("=", ruleWidth))
}

// section writes a title framed by rules, preceded and followed by a blank line.
func (p *printer) section(title string) {
	p.blank()
	p.rule()
	p.line(styleBold, "%s", title)
	p.rule()
	p.blank()
}

// status renders a padded status label in its status color.
func (p *printer) status(status domain.IssueStatus, width int) string {
	label := fmt.Sprintf("%-*s", width, status.Display())
	return p.renderer.NewStyle().Foreground(tui.StatusColor(status)).Render(label)
}
