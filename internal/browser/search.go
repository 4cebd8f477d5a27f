package browser

import (
	"strings"

	"github.com/uchiverify/site/internal/content"
)

// NormalizeQuery lower-cases and trims a raw search query.
func NormalizeQuery(q string) string {
	return strings.ToLower(strings.TrimSpace(q))
}

// Matches reports whether e matches an already normalized query. The empty
// query matches everything. Absent descriptions never match.
func Matches(e content.Entry, q string) bool {
	if q == "" {
		return true
	}
	if strings.Contains(strings.ToLower(e.Label), q) {
		return true
	}
	if e.Description != "" && strings.Contains(strings.ToLower(e.Description), q) {
		return true
	}
	return strings.Contains(strings.ToLower(e.Text), q)
}

// Search returns the ids of the entries of c that match the raw query, in
// collection order.
func Search(c *content.Collection, query string) []string {
	q := NormalizeQuery(query)
	ids := []string{}
	for _, e := range c.All() {
		if Matches(e, q) {
			ids = append(ids, e.ID)
		}
	}
	return ids
}
