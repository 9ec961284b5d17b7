package news

import (
	"fmt"
	"strings"
	"time"
	"unicode"
)

// Article is a news post. LeagueName is read-only and filled on listing.
type Article struct {
	ID          string
	Slug        string
	Title       string
	Summary     string
	Body        string
	ImageURL    string
	LeagueID    string
	LeagueName  string
	IsPublished bool
	PublishedAt *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// Query narrows published article listings.
type Query struct {
	LeagueID string
	Limit    int
}

func (a Article) Validate() error {
	if a.ID == "" {
		return fmt.Errorf("article id is required")
	}
	if strings.TrimSpace(a.Title) == "" {
		return fmt.Errorf("article title is required")
	}
	if a.Slug == "" || Slugify(a.Slug) != a.Slug {
		return fmt.Errorf("article slug %q is invalid", a.Slug)
	}
	if a.IsPublished && a.PublishedAt == nil {
		return fmt.Errorf("published article requires published time")
	}

	return nil
}

// Slugify lowercases value and joins its letter and digit runs with '-'.
func Slugify(value string) string {
	var b strings.Builder
	pendingDash := false
	for _, r := range strings.ToLower(value) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			if pendingDash && b.Len() > 0 {
				b.WriteByte('-')
			}
			pendingDash = false
			b.WriteRune(r)
			continue
		}
		pendingDash = true
	}
	return b.String()
}
