package memory

import (
	"time"

	"github.com/riskibarqy/matchday/internal/domain/ad"
	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/news"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/team"
)

const (
	LeagueIDEthiopianPremier = "eth-premier-league-2025"
	LeagueIDPremierLeague    = "eng-premier-league-2025"

	MatchIDLiveDerby = "eth-m-003"
)

// Seed is the full data set the memory repositories start from.
type Seed struct {
	Leagues   []league.League
	Teams     []team.Team
	Players   []player.Player
	Matches   []match.Match
	Campaigns []ad.Campaign
	Images    []ad.Image
	Articles  []news.Article
}

// Repositories holds one memory repository per aggregate.
type Repositories struct {
	Leagues *LeagueRepository
	Teams   *TeamRepository
	Players *PlayerRepository
	Matches *MatchRepository
	Ads     *AdRepository
	News    *NewsRepository
}

func NewRepositories(seed Seed) Repositories {
	leagues := NewLeagueRepository(seed.Leagues)
	return Repositories{
		Leagues: leagues,
		Teams:   NewTeamRepository(seed.Teams),
		Players: NewPlayerRepository(seed.Players),
		Matches: NewMatchRepository(seed.Matches),
		Ads:     NewAdRepository(seed.Campaigns, seed.Images),
		News:    NewNewsRepository(seed.Articles, leagues),
	}
}

// DefaultSeed returns demo data. The live derby kicked off 23 minutes
// before now so the clock has something to show.
func DefaultSeed(now time.Time) Seed {
	return Seed{
		Leagues:   SeedLeagues(),
		Teams:     SeedTeams(),
		Players:   SeedPlayers(),
		Matches:   SeedMatches(now),
		Campaigns: SeedCampaigns(),
		Images:    SeedImages(),
		Articles:  SeedArticles(),
	}
}

func SeedLeagues() []league.League {
	return []league.League{
		{
			ID:          LeagueIDEthiopianPremier,
			Name:        "Ethiopian Premier League",
			CountryCode: "ET",
			Season:      "2025/2026",
			IsDefault:   true,
		},
		{
			ID:          LeagueIDPremierLeague,
			Name:        "Premier League",
			CountryCode: "GB",
			Season:      "2025/2026",
		},
	}
}

func SeedTeams() []team.Team {
	return []team.Team{
		{ID: "eth-giorgis", LeagueID: LeagueIDEthiopianPremier, Name: "Saint George", Short: "STG"},
		{ID: "eth-bunna", LeagueID: LeagueIDEthiopianPremier, Name: "Ethiopia Bunna", Short: "BUN"},
		{ID: "eth-fasil", LeagueID: LeagueIDEthiopianPremier, Name: "Fasil Kenema", Short: "FAS"},
		{ID: "eth-bahirdar", LeagueID: LeagueIDEthiopianPremier, Name: "Bahir Dar Kenema", Short: "BDK"},
		{ID: "eng-ars", LeagueID: LeagueIDPremierLeague, Name: "Arsenal", Short: "ARS"},
		{ID: "eng-liv", LeagueID: LeagueIDPremierLeague, Name: "Liverpool", Short: "LIV"},
	}
}

func SeedPlayers() []player.Player {
	return []player.Player{
		{ID: "eth-p-001", TeamID: "eth-giorgis", Name: "Fasil Gebremichael", Position: player.PositionGoalkeeper, ShirtNumber: 1, Nationality: "ET"},
		{ID: "eth-p-002", TeamID: "eth-giorgis", Name: "Gatoch Panom", Position: player.PositionMidfielder, ShirtNumber: 8, Nationality: "ET"},
		{ID: "eth-p-003", TeamID: "eth-giorgis", Name: "Getaneh Kebede", Position: player.PositionForward, ShirtNumber: 9, Nationality: "ET"},
		{ID: "eth-p-004", TeamID: "eth-bunna", Name: "Abel Mamo", Position: player.PositionDefender, ShirtNumber: 4, Nationality: "ET"},
		{ID: "eth-p-005", TeamID: "eth-bunna", Name: "Abubeker Nassir", Position: player.PositionForward, ShirtNumber: 10, Nationality: "ET"},
		{ID: "eth-p-006", TeamID: "eth-fasil", Name: "Amanuel Yohannes", Position: player.PositionMidfielder, ShirtNumber: 6, Nationality: "ET"},
		{ID: "eth-p-007", TeamID: "eth-bahirdar", Name: "Mujib Kassim", Position: player.PositionForward, ShirtNumber: 11, Nationality: "ET"},
		{ID: "eng-p-001", TeamID: "eng-ars", Name: "Bukayo Saka", Position: player.PositionForward, ShirtNumber: 7, Nationality: "GB"},
		{ID: "eng-p-002", TeamID: "eng-liv", Name: "Virgil van Dijk", Position: player.PositionDefender, ShirtNumber: 4, Nationality: "NL"},
	}
}

func SeedMatches(now time.Time) []match.Match {
	now = now.UTC()
	day := 24 * time.Hour
	week := 7 * day
	liveStart := now.Add(-23 * time.Minute)

	return []match.Match{
		{
			ID: "eth-m-001", LeagueID: LeagueIDEthiopianPremier, Round: 1,
			HomeTeamID: "eth-giorgis", AwayTeamID: "eth-bunna",
			KickoffAt: now.Add(-2 * week), Venue: "Addis Ababa Stadium",
			Status: match.StatusCompleted, Minute: 90, HomeScore: intPtr(2), AwayScore: intPtr(1),
		},
		{
			ID: "eth-m-002", LeagueID: LeagueIDEthiopianPremier, Round: 1,
			HomeTeamID: "eth-fasil", AwayTeamID: "eth-bahirdar",
			KickoffAt: now.Add(-2 * week), Venue: "Fasiledes Stadium",
			Status: match.StatusCompleted, Minute: 90, HomeScore: intPtr(0), AwayScore: intPtr(0),
		},
		{
			ID: MatchIDLiveDerby, LeagueID: LeagueIDEthiopianPremier, Round: 2,
			HomeTeamID: "eth-bunna", AwayTeamID: "eth-fasil",
			KickoffAt: liveStart, Venue: "Addis Ababa Stadium",
			Status: match.StatusLive, HomeScore: intPtr(1), AwayScore: intPtr(0),
			MatchStartedAt: &liveStart,
		},
		{
			ID: "eth-m-004", LeagueID: LeagueIDEthiopianPremier, Round: 2,
			HomeTeamID: "eth-bahirdar", AwayTeamID: "eth-giorgis",
			KickoffAt: now.Add(3 * day), Venue: "Bahir Dar Stadium",
			Status: match.StatusScheduled,
		},
		{
			ID: "eng-m-001", LeagueID: LeagueIDPremierLeague, Round: 1,
			HomeTeamID: "eng-ars", AwayTeamID: "eng-liv",
			KickoffAt: now.Add(week), Venue: "Emirates Stadium",
			Status: match.StatusPostponed,
		},
	}
}

func SeedCampaigns() []ad.Campaign {
	return []ad.Campaign{
		{ID: "cmp-telecom", Name: "Telecom season sponsor", IsActive: true, Priority: 10, ClickURL: "https://telecom.example.et"},
		{ID: "cmp-bank", Name: "Bank matchday", IsActive: true, Priority: 5, ClickURL: "https://bank.example.et"},
		{ID: "cmp-archived", Name: "Last season", IsActive: false, Priority: 50},
	}
}

func SeedImages() []ad.Image {
	return []ad.Image{
		{
			ID: "img-telecom-hero", CampaignID: "cmp-telecom", IsActive: true, DisplayOrder: 1,
			SizeType: ad.SizeFull, TargetPages: []string{ad.PageAll},
			ImageURLLarge: "https://cdn.example.et/ads/telecom-hero-1600.jpg",
			ImageURLSmall: "https://cdn.example.et/ads/telecom-hero-640.jpg",
			AltTextEN:     "Stay connected all season", AltTextAM: "ሙሉ የውድድር ዘመን ይገናኙ",
		},
		{
			ID: "img-bank-sidebar", CampaignID: "cmp-bank", IsActive: true, DisplayOrder: 1,
			SizeType: ad.SizeSidebar, TargetPages: []string{"home", "news"},
			ImageURL:  "https://cdn.example.et/ads/bank-sidebar.png",
			AltTextAM: "የባንክ ማስታወቂያ",
		},
		{
			ID: "img-bank-inline", CampaignID: "cmp-bank", IsActive: true, DisplayOrder: 2,
			SizeType: ad.SizeInline, TargetPages: []string{"matches"},
			ImageURL: "https://cdn.example.et/ads/bank-inline.png",
			LinkURL:  "https://bank.example.et/matchday",
		},
		{
			ID: "img-archived", CampaignID: "cmp-archived", IsActive: true,
			SizeType: ad.SizePopup, TargetPages: []string{ad.PageAll},
			ImageURL: "https://cdn.example.et/ads/old.png",
		},
	}
}

func SeedArticles() []news.Article {
	published := time.Date(2025, 10, 12, 18, 30, 0, 0, time.UTC)
	return []news.Article{
		{
			ID: "art-001", Slug: "saint-george-edge-bunna-in-opener", Title: "Saint George edge Bunna in opener",
			Summary: "A late winner settles the Addis derby.", Body: "Saint George opened the season with a 2-1 win.",
			LeagueID: LeagueIDEthiopianPremier, IsPublished: true, PublishedAt: &published,
		},
		{
			ID: "art-002", Slug: "transfer-window-preview", Title: "Transfer window preview",
			Summary: "Who moves before the deadline.", IsPublished: false,
		},
	}
}

func intPtr(v int) *int {
	return &v
}
