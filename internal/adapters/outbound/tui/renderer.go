package tui

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/abdidvp/pkgkraft/internal/domain"
	"github.com/abdidvp/pkgkraft/internal/domain/scoring"
)

// ── warm palette ──
var (
	accent    = lipgloss.Color("#D97706") // amber
	fg        = lipgloss.Color("#E8E6E3") // warm light gray
	dim       = lipgloss.Color("#6B7280") // muted gray
	faint     = lipgloss.Color("#3F3F46") // very dim
	success   = lipgloss.Color("#22C55E") // green
	danger    = lipgloss.Color("#EF4444") // red
	warning   = lipgloss.Color("#F59E0B") // amber-yellow
	skipColor = lipgloss.Color("#4B5563") // dark gray
)

var (
	headerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(accent).
			Align(lipgloss.Center)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(accent).
			Padding(1, 4).
			Align(lipgloss.Center).
			Width(68)

	gradeColors = map[string]lipgloss.Color{
		"A+": success,
		"A":  success,
		"B":  lipgloss.Color("#A3E635"), // lime
		"C":  warning,
		"D":  lipgloss.Color("#FB923C"), // orange
		"F":  danger,
	}

	dimStyle      = lipgloss.NewStyle().Foreground(dim)
	faintStyle    = lipgloss.NewStyle().Foreground(faint)
	passStyle     = lipgloss.NewStyle().Foreground(success)
	failStyle     = lipgloss.NewStyle().Foreground(danger)
	warnStyle     = lipgloss.NewStyle().Foreground(warning)
	skipStyle     = lipgloss.NewStyle().Foreground(skipColor)
	titleStyle    = lipgloss.NewStyle().Bold(true).Foreground(fg)
	separatorLine = faintStyle.Render(strings.Repeat("─", 64))
)

// RenderReport formats a single package report for the terminal.
func RenderReport(report *domain.Report) string {
	var b strings.Builder

	// ── Header ──
	grade := report.Grade()
	title := headerStyle.Render("pkgkraft")
	subtitle := dimStyle.Render("Package Metadata Score")
	scoreLine := fmt.Sprintf("%s / %s", formatPoints(report.Overall.Achieved), formatPoints(report.Overall.Maximum))
	scoreStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(scoreLine)
	gradeStyled := lipgloss.NewStyle().
		Bold(true).
		Foreground(gradeColor(grade)).
		Render(grade)

	body := title + "\n" + subtitle
	if ident := identity(report); ident != "" {
		body += "\n" + dimStyle.Render(ident)
	}
	body += "\n\n" + scoreStyled + "  " + gradeStyled

	b.WriteString(boxStyle.Render(body))
	b.WriteString("\n\n")

	// ── Rules ──
	b.WriteString("  " + titleStyle.Render("Rules") + "  " + coloredBar(report.Overall.Percent(), 20) + "\n\n")
	for _, key := range report.Keys() {
		renderRule(&b, key, report.Scores[key])
	}
	for _, key := range report.Skipped {
		fmt.Fprintf(&b, "    %s %s %s\n",
			skipStyle.Render("○"),
			skipStyle.Render(padRight(key, 44)),
			skipStyle.Render("skipped"),
		)
	}

	b.WriteString("\n")
	b.WriteString("  " + separatorLine)
	b.WriteString("\n\n")

	// ── Summary ──
	missed := 0
	for _, res := range report.Scores {
		if !res.Full() {
			missed++
		}
	}
	if missed == 0 {
		b.WriteString("  " + passStyle.Render("Every rule passed.") + "\n")
	} else {
		b.WriteString("  " + warnStyle.Render(fmt.Sprintf("%d of %d rules missed points.", missed, len(report.Scores))) + "\n")
	}

	b.WriteString("\n")
	return b.String()
}

// RenderWorkspace formats one summary line per workspace package followed by
// the combined total.
func RenderWorkspace(reports []domain.PackageReport) string {
	if len(reports) == 0 {
		return "  " + dimStyle.Render("No packages found.") + "\n"
	}

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Workspace") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 64)) + "\n\n")

	var total domain.ScoreResult
	for _, pr := range reports {
		r := pr.Report
		total.Achieved += r.Overall.Achieved
		total.Maximum += r.Overall.Maximum

		name := r.Package
		if name == "" {
			name = pr.Path
		}
		grade := r.Grade()
		scoreStyled := lipgloss.NewStyle().
			Foreground(scoreColor(r.Overall.Percent())).
			Render(fmt.Sprintf("%s/%s", formatPoints(r.Overall.Achieved), formatPoints(r.Overall.Maximum)))

		fmt.Fprintf(&b, "  %s %s  %s  %s\n",
			coloredBar(r.Overall.Percent(), 12),
			titleStyle.Render(padRight(name, 36)),
			scoreStyled,
			lipgloss.NewStyle().Foreground(gradeColor(grade)).Render(grade),
		)
	}

	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("total"),
		fmt.Sprintf("%s/%s", formatPoints(total.Achieved), formatPoints(total.Maximum)))
	return b.String()
}

// RenderRules lists the registered rules and what each one looks for.
func RenderRules(rules []scoring.Rule) string {
	var b strings.Builder
	b.WriteString("\n")
	b.WriteString("  " + titleStyle.Render("Rules") + "\n")
	b.WriteString("  " + faintStyle.Render(strings.Repeat("─", 64)) + "\n\n")

	var total float64
	for _, r := range rules {
		total += r.Max
		fmt.Fprintf(&b, "  %s %s  %s\n",
			titleStyle.Render(padRight(r.Name, 42)),
			dimStyle.Render(padRight(formatPoints(r.Max), 3)),
			faintStyle.Render(r.Description),
		)
	}
	b.WriteString("\n")
	fmt.Fprintf(&b, "  %s %s\n", dimStyle.Render("maximum"), formatPoints(total))
	return b.String()
}

func renderRule(b *strings.Builder, key string, res domain.ScoreResult) {
	name := padRight(key, 44)

	var icon string
	pct := res.Percent()
	switch {
	case pct >= 100:
		icon = passStyle.Render("●")
	case pct > 0:
		icon = warnStyle.Render("●")
	default:
		icon = failStyle.Render("●")
	}

	score := dimStyle.Render(fmt.Sprintf("%s/%s", formatPoints(res.Achieved), formatPoints(res.Maximum)))
	fmt.Fprintf(b, "    %s %s %s\n", icon, name, score)
}

func identity(report *domain.Report) string {
	parts := []string{}
	if report.PURL != "" {
		parts = append(parts, report.PURL)
	} else if report.Package != "" {
		parts = append(parts, report.Package)
	}
	if report.CommitHash != "" {
		hash := report.CommitHash
		if len(hash) > 7 {
			hash = hash[:7]
		}
		parts = append(parts, hash)
	}
	return strings.Join(parts, "  ")
}

func formatPoints(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

func coloredBar(score, width int) string {
	filled := max(0, min(score*width/100, width))
	empty := width - filled

	color := scoreColor(score)
	filledStr := lipgloss.NewStyle().Foreground(color).Render(strings.Repeat("█", filled))
	emptyStr := lipgloss.NewStyle().Foreground(faint).Render(strings.Repeat("░", empty))
	return filledStr + emptyStr
}

func scoreColor(score int) lipgloss.Color {
	switch {
	case score >= 80:
		return success
	case score >= 60:
		return lipgloss.Color("#A3E635") // lime
	case score >= 40:
		return warning
	default:
		return danger
	}
}

func padRight(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return s + strings.Repeat(" ", width-len(s))
}

func gradeColor(grade string) lipgloss.Color {
	if c, ok := gradeColors[grade]; ok {
		return c
	}
	return fg
}
