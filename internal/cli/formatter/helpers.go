package formatter

import (
	"strings"
	"time"

	"github.com/avollmer/siteplan/internal/domain"
	"github.com/charmbracelet/lipgloss"
)

// RenderBox wraps content in a rounded-border box with an optional title.
func RenderBox(title string, content string) string {
	boxStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorDim).
		PaddingLeft(2).
		PaddingRight(2).
		PaddingTop(1).
		PaddingBottom(1)

	if title != "" {
		titleRendered := StyleHeader.Render(strings.ToUpper(title))
		return boxStyle.Render(titleRendered + "\n\n" + content)
	}

	return boxStyle.Render(content)
}

// CategoryBadge returns a styled label for a project category.
func CategoryBadge(c domain.ProjectCategory) string {
	switch c {
	case domain.CategoryNewBuilding:
		return StyleGreen.Render("NEW BUILD")
	case domain.CategoryOldBuilding:
		return StyleYellow.Render("OLD BUILD")
	case domain.CategoryRefurbished:
		return StyleBlue.Render("REFURB")
	default:
		return StyleDim.Render("--")
	}
}

// TruncID returns the first 8 characters of an ID, dimmed.
func TruncID(id string) string {
	if len(id) > 8 {
		id = id[:8]
	}
	return StyleDim.Render(id)
}

// FormatDate renders a date in the short ISO form used across the CLI.
func FormatDate(t time.Time) string {
	if t.IsZero() {
		return Dim("--")
	}
	return StyleFg.Render(t.Format("2006-01-02"))
}
