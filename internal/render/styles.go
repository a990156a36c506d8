package render

import (
	"io"

	"github.com/MKhiriev/go-cloud-config/models"
	"github.com/charmbracelet/lipgloss"
)

const divider = "──────────────────────────────────────────────────────"

type styles struct {
	title      lipgloss.Style
	key        lipgloss.Style
	source     lipgloss.Style
	overridden lipgloss.Style
	values     map[models.Kind]lipgloss.Style
}

// newStyles binds the styles to w so that colors are dropped when w is not a
// terminal.
func newStyles(w io.Writer) styles {
	r := lipgloss.NewRenderer(w)
	return styles{
		title:      r.NewStyle().Bold(true),
		key:        r.NewStyle().Bold(true),
		source:     r.NewStyle().Faint(true),
		overridden: r.NewStyle().Faint(true).Strikethrough(true),
		values: map[models.Kind]lipgloss.Style{
			models.KindNull:   r.NewStyle().Faint(true).Italic(true),
			models.KindString: r.NewStyle().Foreground(lipgloss.Color("2")),
			models.KindNumber: r.NewStyle().Foreground(lipgloss.Color("4")),
			models.KindBool:   r.NewStyle().Foreground(lipgloss.Color("5")),
		},
	}
}
