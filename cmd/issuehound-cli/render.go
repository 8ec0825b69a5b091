package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"

	"issuehound/internal/adapters/github"
	"issuehound/internal/core/facets"
)

var (
	titleStyle  = lipgloss.NewStyle().Bold(true)
	numberStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("6"))
	repoStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("8"))
	labelStyle  = lipgloss.NewStyle().Foreground(lipgloss.Color("5"))
	newStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("2")).Bold(true)
	dimStyle    = lipgloss.NewStyle().Faint(true)
)

// issueLine renders one result row: number, title, repo, labels, age, comments
func issueLine(it github.Issue, seen bool) string {
	var b strings.Builder

	b.WriteString(numberStyle.Render(fmt.Sprintf("#%d", it.Number)))
	b.WriteString(" ")
	b.WriteString(titleStyle.Render(it.Title))
	if !seen {
		b.WriteString(" ")
		b.WriteString(newStyle.Render("new"))
	}
	b.WriteString("\n    ")
	b.WriteString(repoStyle.Render(repoOf(it)))

	if age := ageOf(it.CreatedAt); age != "" {
		b.WriteString(dimStyle.Render("  opened " + age))
	}
	if it.Comments > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("  %s comments", humanize.Comma(int64(it.Comments)))))
	}
	if len(it.Labels) > 0 {
		names := make([]string, 0, len(it.Labels))
		for _, l := range it.Labels {
			names = append(names, l.Name)
		}
		b.WriteString("  ")
		b.WriteString(labelStyle.Render(strings.Join(names, ", ")))
	}
	return b.String()
}

// renderBody renders issue Markdown for the terminal
func renderBody(body string) string {
	if strings.TrimSpace(body) == "" {
		return dimStyle.Render("(no description)")
	}
	out, err := glamour.Render(body, "dark")
	if err != nil {
		return body
	}
	return out
}

// repoOf extracts owner/name from the issue's repository API URL
func repoOf(it github.Issue) string {
	if rs := facets.ExtractRepositories([]string{it.RepositoryURL}); len(rs) == 1 {
		return rs[0]
	}
	return it.RepositoryURL
}

// ageOf humanizes the created timestamp, empty when unparseable
func ageOf(created string) string {
	t, err := time.Parse(time.RFC3339, created)
	if err != nil {
		return ""
	}
	return humanize.Time(t)
}
