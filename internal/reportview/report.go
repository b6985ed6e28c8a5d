package reportview

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/rowanmc/mccore/internal/diagnose"
)

// Render renders a diagnose.Report the way the CLI's `diagnose` command
// prints it: a title bar, a clean-install line when there are no issues,
// and otherwise one styled row per issue grouped by role.
func Render(report *diagnose.Report) string {
	var b strings.Builder

	header := fmt.Sprintf("Diagnostic report: %s", report.VersionID)
	b.WriteString(titleStyle.Render(header))
	b.WriteString("\n")
	b.WriteString(subtleStyle.Render(report.MinecraftLocation))
	b.WriteString("\n\n")

	if len(report.Issues) == 0 {
		b.WriteString(successStyle.Render("✓ No problems found"))
		return b.String()
	}

	byRole := make(map[diagnose.IssueRole][]diagnose.Issue)
	var roleOrder []diagnose.IssueRole
	for _, issue := range report.Issues {
		if _, seen := byRole[issue.Role]; !seen {
			roleOrder = append(roleOrder, issue.Role)
		}
		byRole[issue.Role] = append(byRole[issue.Role], issue)
	}

	for _, role := range roleOrder {
		issues := byRole[role]
		b.WriteString(mutedStyle.Render(fmt.Sprintf("%s (%d)", roleLabel(role), len(issues))))
		b.WriteString("\n")
		for _, issue := range issues {
			b.WriteString(renderIssue(issue))
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

func renderIssue(issue diagnose.Issue) string {
	var icon string
	var style lipgloss.Style
	switch issue.Type {
	case diagnose.Missing:
		icon, style = "✗", errorStyle
	case diagnose.Corrupted:
		icon, style = "!", warnStyle
	default:
		icon, style = "?", mutedStyle
	}

	label := issue.File
	if issue.LibraryName != "" {
		label = issue.LibraryName
	} else if issue.AssetName != "" {
		label = issue.AssetName
	}

	line := fmt.Sprintf("  %s %s: %s", icon, issue.Type, label)
	rendered := style.Render(line)
	if issue.Hint != "" {
		rendered += "\n" + mutedStyle.Render("      "+issue.Hint)
	}
	return rendered
}

func roleLabel(role diagnose.IssueRole) string {
	switch role {
	case diagnose.RoleVersionJSON:
		return "Version manifest"
	case diagnose.RoleMinecraftJar:
		return "Client jar"
	case diagnose.RoleAssetIndex:
		return "Asset index"
	case diagnose.RoleAsset:
		return "Assets"
	case diagnose.RoleLibrary:
		return "Libraries"
	default:
		return string(role)
	}
}
