package formatter

import (
	"fmt"
	"strings"

	"github.com/avollmer/siteplan/internal/domain"
	"github.com/avollmer/siteplan/internal/service"
)

// FormatProjectList renders a styled project list inside a bordered box.
func FormatProjectList(projects []*domain.Project) string {
	if len(projects) == 0 {
		return RenderBox("Projects", Dim("No projects yet."))
	}

	headers := []string{"ID", "TITLE", "CLIENT", "CATEGORY", "START", "END"}
	rows := make([][]string, 0, len(projects))

	for _, p := range projects {
		client := p.Client
		if strings.TrimSpace(client) == "" {
			client = Dim("--")
		}
		rows = append(rows, []string{
			TruncID(string(p.ID)),
			Bold(p.Title),
			client,
			CategoryBadge(p.Category),
			FormatDate(p.Start),
			FormatDate(p.End),
		})
	}

	return RenderBox("Projects", RenderTable(headers, rows))
}

// FormatProjectDetail renders a single project card.
func FormatProjectDetail(p *domain.Project) string {
	var b strings.Builder

	b.WriteString(StyleBold.Render(p.Title) + "\n")
	b.WriteString(CategoryBadge(p.Category) + "\n\n")

	write := func(label, value string) {
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(label), value))
	}
	write("ID      ", TruncID(string(p.ID)))
	write("NUMBER  ", StyleFg.Render(p.ProjectNumber))
	write("CLIENT  ", StyleFg.Render(p.Client))
	write("START   ", FormatDate(p.Start))
	write("END     ", FormatDate(p.End))
	if p.Address.City != "" {
		write("ADDRESS ", StyleFg.Render(fmt.Sprintf("%s %s, %s %s",
			p.Address.Street, p.Address.HouseNumber, p.Address.ZipCode, p.Address.City)))
	}

	return RenderBox("", b.String())
}

// FormatImportResult renders per-entity counts of an import or copy.
func FormatImportResult(res *service.ImportResult) string {
	var b strings.Builder

	if res.ProjectCreated {
		b.WriteString(StyleGreen.Render("● Project created") + "  " + TruncID(string(res.ProjectID)) + "\n\n")
	} else {
		b.WriteString(StyleBlue.Render("● Merged into existing project") + "  " + TruncID(string(res.ProjectID)) + "\n\n")
	}

	counts := []struct {
		label string
		n     int
	}{
		{"Participants", res.Participants},
		{"Crafts", res.Crafts},
		{"Working areas", res.WorkAreas},
		{"Milestones", res.Milestones},
		{"Tasks", res.Tasks},
		{"Day cards", res.DayCards},
		{"Topics", res.Topics},
		{"Messages", res.Messages},
		{"Relations", res.Relations},
	}

	for _, c := range counts {
		n := fmt.Sprintf("%d", c.n)
		if c.n == 0 {
			n = Dim(n)
		} else {
			n = StyleFg.Render(n)
		}
		b.WriteString(fmt.Sprintf("%s  %s\n", StyleDim.Render(fmt.Sprintf("%-14s", c.label)), n))
	}

	return RenderBox("Import", strings.TrimRight(b.String(), "\n"))
}
