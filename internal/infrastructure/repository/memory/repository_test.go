package memory

import (
	"context"
	"testing"
	"time"

	"github.com/riskibarqy/matchday/internal/domain/ad"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/news"
)

func TestDefaultSeedIsValid(t *testing.T) {
	seed := DefaultSeed(time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))

	for _, l := range seed.Leagues {
		if err := l.Validate(); err != nil {
			t.Fatalf("league %s: %v", l.ID, err)
		}
	}
	for _, tm := range seed.Teams {
		if err := tm.Validate(); err != nil {
			t.Fatalf("team %s: %v", tm.ID, err)
		}
	}
	for _, p := range seed.Players {
		if err := p.Validate(); err != nil {
			t.Fatalf("player %s: %v", p.ID, err)
		}
	}
	for _, m := range seed.Matches {
		if err := m.Validate(); err != nil {
			t.Fatalf("match %s: %v", m.ID, err)
		}
	}
	for _, img := range seed.Images {
		if err := img.Validate(); err != nil {
			t.Fatalf("image %s: %v", img.ID, err)
		}
	}
	for _, a := range seed.Articles {
		if err := a.Validate(); err != nil {
			t.Fatalf("article %s: %v", a.ID, err)
		}
	}
}

func TestMatchRepository_ListFiltersAndOrders(t *testing.T) {
	ctx := context.Background()
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	repo := NewMatchRepository(SeedMatches(now))

	completed, err := repo.List(ctx, match.Filter{
		LeagueID: LeagueIDEthiopianPremier,
		Statuses: []match.Status{match.StatusCompleted},
	})
	if err != nil {
		t.Fatalf("list matches: %v", err)
	}
	if len(completed) != 2 || completed[0].ID != "eth-m-001" || completed[1].ID != "eth-m-002" {
		t.Fatalf("unexpected completed matches: %+v", completed)
	}

	all, _ := repo.List(ctx, match.Filter{})
	for i := 1; i < len(all); i++ {
		if all[i].KickoffAt.Before(all[i-1].KickoffAt) {
			t.Fatalf("matches not ordered by kickoff at %d", i)
		}
	}

	if err := repo.Delete(ctx, MatchIDLiveDerby); err != nil {
		t.Fatalf("delete match: %v", err)
	}
	got, err := repo.ListByIDs(ctx, []string{MatchIDLiveDerby, "eth-m-004"})
	if err != nil {
		t.Fatalf("list by ids: %v", err)
	}
	if len(got) != 1 || got[0].ID != "eth-m-004" {
		t.Fatalf("unexpected matches after delete: %+v", got)
	}
}

func TestAdRepository_ListServableAttachesCampaign(t *testing.T) {
	ctx := context.Background()
	images := SeedImages()
	images = append(images, ad.Image{ID: "orphan", CampaignID: "missing", IsActive: true, SizeType: ad.SizeFull, TargetPages: []string{ad.PageAll}, ImageURL: "x"})
	images = append(images, ad.Image{ID: "disabled", CampaignID: "cmp-bank", IsActive: false, SizeType: ad.SizeFull, TargetPages: []string{ad.PageAll}, ImageURL: "x"})
	repo := NewAdRepository(SeedCampaigns(), images)

	servable, err := repo.ListServable(ctx)
	if err != nil {
		t.Fatalf("list servable: %v", err)
	}

	byID := make(map[string]ad.Image, len(servable))
	for _, img := range servable {
		byID[img.ID] = img
	}
	if _, ok := byID["disabled"]; ok {
		t.Fatalf("inactive image must not be servable")
	}
	if byID["orphan"].Campaign != nil {
		t.Fatalf("orphan image must not carry a campaign")
	}
	if c := byID["img-bank-inline"].Campaign; c == nil || c.ID != "cmp-bank" || c.Priority != 5 {
		t.Fatalf("unexpected campaign on joined image: %+v", c)
	}

	if err := repo.DeleteCampaign(ctx, "cmp-bank"); err != nil {
		t.Fatalf("delete campaign: %v", err)
	}
	left, _ := repo.ListImagesByCampaign(ctx, "cmp-bank")
	if len(left) != 0 {
		t.Fatalf("expected campaign images removed, got %d", len(left))
	}
}

func TestNewsRepository_ListPublished(t *testing.T) {
	ctx := context.Background()
	leagues := NewLeagueRepository(SeedLeagues())
	older := time.Date(2025, 9, 1, 0, 0, 0, 0, time.UTC)
	articles := append(SeedArticles(), news.Article{
		ID: "art-003", Slug: "older", Title: "Older", IsPublished: true, PublishedAt: &older,
	})
	repo := NewNewsRepository(articles, leagues)

	items, err := repo.ListPublished(ctx, news.Query{Limit: 10})
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	if len(items) != 2 || items[0].ID != "art-001" || items[1].ID != "art-003" {
		t.Fatalf("unexpected articles: %+v", items)
	}
	if items[0].LeagueName != "Ethiopian Premier League" {
		t.Fatalf("expected league name to be joined, got %q", items[0].LeagueName)
	}

	filtered, _ := repo.ListPublished(ctx, news.Query{LeagueID: LeagueIDPremierLeague})
	if len(filtered) != 0 {
		t.Fatalf("expected no premier league articles, got %d", len(filtered))
	}
}

func TestParseSeed(t *testing.T) {
	raw := []byte(`
leagues:
  - id: l1
    name: Higher League
    country_code: ET
    season: "2026"
teams:
  - {id: t1, league_id: l1, name: Adama City}
  - {id: t2, league_id: l1, name: Hawassa City}
matches:
  - id: m1
    league_id: l1
    home_team_id: t1
    away_team_id: t2
    kickoff_at: 2026-02-01T13:00:00Z
    status: second_half
    match_started_at: 2026-02-01T13:00:00Z
    second_half_started_at: 2026-02-01T14:02:00Z
campaigns:
  - {id: c1, name: Sponsor, is_active: true, priority: 3, end_date: 2026-12-31T00:00:00Z}
images:
  - id: i1
    campaign_id: c1
    is_active: true
    size_type: inline
    target_pages: [home]
    image_url: https://cdn.example/i1.png
articles:
  - {id: a1, title: "Adama win again", is_published: true, published_at: 2026-02-02T08:00:00Z}
`)

	seed, err := ParseSeed(raw)
	if err != nil {
		t.Fatalf("parse seed: %v", err)
	}
	if len(seed.Leagues) != 1 || len(seed.Teams) != 2 || len(seed.Matches) != 1 || len(seed.Images) != 1 {
		t.Fatalf("unexpected seed sizes: %+v", seed)
	}
	m := seed.Matches[0]
	if m.Status != match.StatusSecondHalf || m.SecondHalfStartedAt == nil {
		t.Fatalf("unexpected match: %+v", m)
	}
	if seed.Campaigns[0].EndDate == nil || seed.Campaigns[0].EndDate.Year() != 2026 {
		t.Fatalf("unexpected campaign end date: %v", seed.Campaigns[0].EndDate)
	}
	if seed.Articles[0].Slug != "adama-win-again" {
		t.Fatalf("unexpected derived slug: %s", seed.Articles[0].Slug)
	}
}

func TestParseSeed_RejectsInvalidRows(t *testing.T) {
	_, err := ParseSeed([]byte("images:\n  - {id: i1, campaign_id: c1, size_type: banner, target_pages: [home], image_url: x}\n"))
	if err == nil {
		t.Fatalf("expected invalid size type to be rejected")
	}
}
