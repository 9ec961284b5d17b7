package memory

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/riskibarqy/matchday/internal/domain/ad"
	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/news"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/team"
)

type seedFile struct {
	Leagues []struct {
		ID          string `yaml:"id"`
		Name        string `yaml:"name"`
		CountryCode string `yaml:"country_code"`
		Season      string `yaml:"season"`
		IsDefault   bool   `yaml:"is_default"`
	} `yaml:"leagues"`
	Teams []struct {
		ID       string `yaml:"id"`
		LeagueID string `yaml:"league_id"`
		Name     string `yaml:"name"`
		Short    string `yaml:"short"`
		LogoURL  string `yaml:"logo_url"`
	} `yaml:"teams"`
	Players []struct {
		ID          string `yaml:"id"`
		TeamID      string `yaml:"team_id"`
		Name        string `yaml:"name"`
		Position    string `yaml:"position"`
		ShirtNumber int    `yaml:"shirt_number"`
		Nationality string `yaml:"nationality"`
		ImageURL    string `yaml:"image_url"`
	} `yaml:"players"`
	Matches []struct {
		ID                  string     `yaml:"id"`
		LeagueID            string     `yaml:"league_id"`
		HomeTeamID          string     `yaml:"home_team_id"`
		AwayTeamID          string     `yaml:"away_team_id"`
		Round               int        `yaml:"round"`
		KickoffAt           time.Time  `yaml:"kickoff_at"`
		Venue               string     `yaml:"venue"`
		Status              string     `yaml:"status"`
		Minute              int        `yaml:"minute"`
		HomeScore           *int       `yaml:"home_score"`
		AwayScore           *int       `yaml:"away_score"`
		MatchStartedAt      *time.Time `yaml:"match_started_at"`
		SecondHalfStartedAt *time.Time `yaml:"second_half_started_at"`
		ExtraTimeStartedAt  *time.Time `yaml:"extra_time_started_at"`
	} `yaml:"matches"`
	Campaigns []struct {
		ID        string     `yaml:"id"`
		Name      string     `yaml:"name"`
		IsActive  bool       `yaml:"is_active"`
		Priority  int        `yaml:"priority"`
		StartDate *time.Time `yaml:"start_date"`
		EndDate   *time.Time `yaml:"end_date"`
		ClickURL  string     `yaml:"click_url"`
	} `yaml:"campaigns"`
	Images []struct {
		ID            string   `yaml:"id"`
		CampaignID    string   `yaml:"campaign_id"`
		IsActive      bool     `yaml:"is_active"`
		DisplayOrder  int      `yaml:"display_order"`
		SizeType      string   `yaml:"size_type"`
		TargetPages   []string `yaml:"target_pages"`
		ImageURL      string   `yaml:"image_url"`
		ImageURLLarge string   `yaml:"image_url_large"`
		ImageURLSmall string   `yaml:"image_url_small"`
		AltTextEN     string   `yaml:"alt_text_en"`
		AltTextAM     string   `yaml:"alt_text_am"`
		LinkURL       string   `yaml:"link_url"`
	} `yaml:"images"`
	Articles []struct {
		ID          string     `yaml:"id"`
		Slug        string     `yaml:"slug"`
		Title       string     `yaml:"title"`
		Summary     string     `yaml:"summary"`
		Body        string     `yaml:"body"`
		ImageURL    string     `yaml:"image_url"`
		LeagueID    string     `yaml:"league_id"`
		IsPublished bool       `yaml:"is_published"`
		PublishedAt *time.Time `yaml:"published_at"`
	} `yaml:"articles"`
}

// LoadSeedFile reads a YAML seed. Sections left out of the file are empty.
func LoadSeedFile(path string) (Seed, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Seed{}, fmt.Errorf("read seed file: %w", err)
	}
	return ParseSeed(raw)
}

func ParseSeed(raw []byte) (Seed, error) {
	var file seedFile
	if err := yaml.Unmarshal(raw, &file); err != nil {
		return Seed{}, fmt.Errorf("decode seed file: %w", err)
	}

	var seed Seed
	for _, row := range file.Leagues {
		item := league.League{ID: row.ID, Name: row.Name, CountryCode: row.CountryCode, Season: row.Season, IsDefault: row.IsDefault}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed league %q: %w", row.ID, err)
		}
		seed.Leagues = append(seed.Leagues, item)
	}
	for _, row := range file.Teams {
		item := team.Team{ID: row.ID, LeagueID: row.LeagueID, Name: row.Name, Short: row.Short, LogoURL: row.LogoURL}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed team %q: %w", row.ID, err)
		}
		seed.Teams = append(seed.Teams, item)
	}
	for _, row := range file.Players {
		item := player.Player{
			ID: row.ID, TeamID: row.TeamID, Name: row.Name, Position: player.Position(row.Position),
			ShirtNumber: row.ShirtNumber, Nationality: row.Nationality, ImageURL: row.ImageURL,
		}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed player %q: %w", row.ID, err)
		}
		seed.Players = append(seed.Players, item)
	}
	for _, row := range file.Matches {
		status, err := match.ParseStatus(row.Status)
		if err != nil {
			return Seed{}, fmt.Errorf("seed match %q: %w", row.ID, err)
		}
		item := match.Match{
			ID: row.ID, LeagueID: row.LeagueID, HomeTeamID: row.HomeTeamID, AwayTeamID: row.AwayTeamID,
			Round: row.Round, KickoffAt: row.KickoffAt, Venue: row.Venue, Status: status, Minute: row.Minute,
			HomeScore: row.HomeScore, AwayScore: row.AwayScore,
			MatchStartedAt: row.MatchStartedAt, SecondHalfStartedAt: row.SecondHalfStartedAt, ExtraTimeStartedAt: row.ExtraTimeStartedAt,
		}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed match %q: %w", row.ID, err)
		}
		seed.Matches = append(seed.Matches, item)
	}
	for _, row := range file.Campaigns {
		item := ad.Campaign{
			ID: row.ID, Name: row.Name, IsActive: row.IsActive, Priority: row.Priority,
			StartDate: row.StartDate, EndDate: row.EndDate, ClickURL: row.ClickURL,
		}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed campaign %q: %w", row.ID, err)
		}
		seed.Campaigns = append(seed.Campaigns, item)
	}
	for _, row := range file.Images {
		item := ad.Image{
			ID: row.ID, CampaignID: row.CampaignID, IsActive: row.IsActive, DisplayOrder: row.DisplayOrder,
			SizeType: ad.SizeType(row.SizeType), TargetPages: row.TargetPages,
			ImageURL: row.ImageURL, ImageURLLarge: row.ImageURLLarge, ImageURLSmall: row.ImageURLSmall,
			AltTextEN: row.AltTextEN, AltTextAM: row.AltTextAM, LinkURL: row.LinkURL,
		}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed ad image %q: %w", row.ID, err)
		}
		seed.Images = append(seed.Images, item)
	}
	for _, row := range file.Articles {
		item := news.Article{
			ID: row.ID, Slug: row.Slug, Title: row.Title, Summary: row.Summary, Body: row.Body,
			ImageURL: row.ImageURL, LeagueID: row.LeagueID, IsPublished: row.IsPublished, PublishedAt: row.PublishedAt,
		}
		if item.Slug == "" {
			item.Slug = news.Slugify(item.Title)
		}
		if err := item.Validate(); err != nil {
			return Seed{}, fmt.Errorf("seed article %q: %w", row.ID, err)
		}
		seed.Articles = append(seed.Articles, item)
	}

	return seed, nil
}
