// Package raw reads environment variables during bootstrap
// It must stay dependency free, the logger configures itself from it
package raw

import (
	"os"
	"strconv"
	"strings"
)

// Conf reads env vars under a composed prefix such as "IH_API_"
type Conf struct{ prefix string }

// New returns the root Conf with no prefix
func New() Conf { return Conf{} }

// Prefix narrows the view by appending p to the current prefix
func (c Conf) Prefix(p string) Conf { return Conf{prefix: c.prefix + p} }

// Get returns the trimmed value of the prefixed var, or def when unset
func (c Conf) Get(key, def string) string {
	v := strings.TrimSpace(os.Getenv(c.prefix + key))
	if v == "" {
		return def
	}
	return v
}

// GetBool treats "1", "true" and "yes" as true, anything else as false
func (c Conf) GetBool(key string, def bool) bool {
	switch strings.ToLower(c.Get(key, "")) {
	case "":
		return def
	case "1", "true", "yes":
		return true
	default:
		return false
	}
}

// GetInt parses a non negative integer, falling back to def on anything else
func (c Conf) GetInt(key string, def int) int {
	s := c.Get(key, "")
	if s == "" {
		return def
	}
	n, err := strconv.Atoi(s)
	if err != nil || n < 0 {
		return def
	}
	return n
}
