package facets

import "strings"

// DefaultColor is used for baseline labels with no known color
const DefaultColor = "cccccc"

// commonColors maps well-known label names to their conventional colors
var commonColors = map[string]string{
	"bug":              "d73a4a",
	"enhancement":      "a2eeef",
	"question":         "d876e3",
	"help wanted":      "008672",
	"good first issue": "7057ff",
	"documentation":    "0075ca",
	"duplicate":        "cfd3d7",
	"wontfix":          "ffffff",
	"beginner":         "7057ff",
	"easy":             "0e8a16",
	"medium":           "fbca04",
	"hard":             "d93f0b",
}

// ColorFor returns the conventional color for a label name, or DefaultColor
func ColorFor(name string) string {
	if c, ok := commonColors[strings.ToLower(name)]; ok {
		return c
	}
	return DefaultColor
}

// StaticLabels is the compact baseline taxonomy shown before any discovery
// Specific type/status/priority values are separate filter dimensions
var StaticLabels = []string{
	"good first issue",
	"help wanted",
	"bug",
	"enhancement",
	"documentation",
	"feature request",
	"beginner",
	"easy",
	"medium",
	"hard",
	"wontfix",
	"duplicate",
	"question",
	"security",
	"performance",
	"testing",
	"accessibility",
	"design",
	"ui/ux",
	"refactoring",
	"technical debt",
	"breaking change",
	"needs review",
	"dependencies",
	"devops",
	"infrastructure",
	"mobile",
	"api",
	"frontend",
	"backend",
	"first-timers-only",
	"up-for-grabs",
	"starter",
	"low-hanging-fruit",
	"blocked",
	"stale",
}

// Priorities are the selectable priority filter values
var Priorities = []string{"Critical", "High", "Medium", "Low"}

// FallbackLanguages is the minimal language list used until sampling or the
// persisted discovery set provides better coverage
var FallbackLanguages = []string{
	"C", "C#", "C++", "CSS", "Dart", "Go", "HTML", "Java",
	"JavaScript", "Kotlin", "PHP", "Python", "Ruby", "Rust",
	"Scala", "Shell", "Swift", "TypeScript", "Vue",
}
