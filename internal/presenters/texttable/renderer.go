package texttable

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/brandstat-labs/brandstat-cli/internal/core/domain"
	"github.com/brandstat-labs/brandstat-cli/internal/core/ports/driven"
)

// Ensure Renderer implements the port.
var _ driven.TableRenderer = (*Renderer)(nil)

// DefaultPlaceholder replaces missing numeric values when the caller
// does not configure one. Never empty, so an unrated brand cannot be
// mistaken for a zero rating.
const DefaultPlaceholder = "N/A"

// Formats lists the accepted table format names.
func Formats() []string {
	return []string{"github", "ascii", "grid", "rounded", "plain"}
}

// Renderer formats report rows as a monospace text table.
type Renderer struct{}

// New creates a renderer.
func New() *Renderer {
	return &Renderer{}
}

// Render builds the table. Float cells always carry two decimals;
// nil floats render as the placeholder. Empty rows produce a valid
// headers-only table.
func (r *Renderer) Render(headers []string, rows [][]any, opts driven.RenderOptions) (string, error) {
	placeholder := opts.Placeholder
	if placeholder == "" {
		placeholder = DefaultPlaceholder
	}

	cells := make([][]string, 0, len(rows))
	for _, row := range rows {
		out := make([]string, 0, len(row))
		for _, c := range row {
			out = append(out, formatCell(c, placeholder))
		}
		cells = append(cells, out)
	}

	t := table.New().
		StyleFunc(func(_, _ int) lipgloss.Style {
			return lipgloss.NewStyle().Padding(0, 1)
		}).
		Headers(headers...).
		Rows(cells...)

	if err := applyFormat(t, opts.Format); err != nil {
		return "", err
	}
	return t.Render(), nil
}

// applyFormat maps a format name onto a border style.
func applyFormat(t *table.Table, format string) error {
	switch format {
	case "", "github":
		t.Border(lipgloss.MarkdownBorder()).BorderTop(false).BorderBottom(false)
	case "ascii":
		t.Border(lipgloss.ASCIIBorder())
	case "grid":
		t.Border(lipgloss.NormalBorder())
	case "rounded":
		t.Border(lipgloss.RoundedBorder())
	case "plain":
		t.Border(lipgloss.HiddenBorder()).
			BorderTop(false).BorderBottom(false).
			BorderLeft(false).BorderRight(false).
			BorderColumn(false).BorderRow(false).BorderHeader(false)
	default:
		return domain.NewConfigError("unknown table format %q (available: github, ascii, grid, rounded, plain)", format)
	}
	return nil
}

func formatCell(v any, placeholder string) string {
	switch c := v.(type) {
	case nil:
		return placeholder
	case *float64:
		if c == nil {
			return placeholder
		}
		return strconv.FormatFloat(*c, 'f', 2, 64)
	case float64:
		return strconv.FormatFloat(c, 'f', 2, 64)
	case int:
		return strconv.Itoa(c)
	case string:
		return c
	default:
		return fmt.Sprint(c)
	}
}
