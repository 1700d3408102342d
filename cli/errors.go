package cli

import (
	"errors"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/recount-app/recount/parser"
)

var (
	errCaretStyle   = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#FF5F87", Dark: "#FF5F87"})
	errContextStyle = lipgloss.NewStyle().Foreground(lipgloss.AdaptiveColor{Light: "#808080", Dark: "#808080"})
)

// ErrorRenderer renders errors with terminal styling and source context.
type ErrorRenderer struct {
	source []byte
}

// NewErrorRenderer creates a renderer with source content for context.
func NewErrorRenderer(source []byte) *ErrorRenderer {
	return &ErrorRenderer{source: source}
}

// Render formats a single error with styling and context. Errors that
// carry a document position get a source excerpt with a caret under the
// offending column; everything else falls back to the plain message.
func (r *ErrorRenderer) Render(err error) string {
	var parseErr *parser.ParseError
	if errors.As(err, &parseErr) && r.source != nil {
		return r.renderWithSourceContext(parseErr.Line, parseErr.Column, parseErr.Error())
	}

	var lexErr *parser.LexError
	if errors.As(err, &lexErr) && r.source != nil {
		return r.renderWithSourceContext(lexErr.Line, lexErr.Column, lexErr.Error())
	}

	return err.Error()
}

func (r *ErrorRenderer) renderWithSourceContext(line, column int, message string) string {
	var buf strings.Builder

	buf.WriteString(errorStyle.Render(message))
	buf.WriteString("\n\n")

	sourceLines := strings.Split(string(r.source), "\n")

	startLine := line - 3
	endLine := line + 1

	if startLine < 0 {
		startLine = 0
	}
	if endLine >= len(sourceLines) {
		endLine = len(sourceLines) - 1
	}

	for i := startLine; i <= endLine; i++ {
		if i >= len(sourceLines) {
			break
		}
		buf.WriteString("   ")
		buf.WriteString(errContextStyle.Render(sourceLines[i]))
		buf.WriteByte('\n')

		if i == line-1 && column > 0 {
			buf.WriteString("   ")
			for j := 0; j < column-1; j++ {
				buf.WriteByte(' ')
			}
			buf.WriteString(errCaretStyle.Render("^"))
			buf.WriteByte('\n')
		}
	}

	return buf.String()
}
