package httpapi

import (
	"context"

	"github.com/riskibarqy/matchday/internal/domain/ad"
	"github.com/riskibarqy/matchday/internal/domain/league"
	"github.com/riskibarqy/matchday/internal/domain/match"
	"github.com/riskibarqy/matchday/internal/domain/news"
	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/standing"
	"github.com/riskibarqy/matchday/internal/domain/team"
	"github.com/riskibarqy/matchday/internal/usecase"
)

type leagueRequest struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	Name        string `json:"name" validate:"required,max=120"`
	CountryCode string `json:"countryCode" validate:"required,max=8"`
	Season      string `json:"season" validate:"required,max=20"`
	IsDefault   bool   `json:"isDefault"`
}

type teamRequest struct {
	ID       string `json:"id" validate:"omitempty,max=64"`
	LeagueID string `json:"leagueId" validate:"required"`
	Name     string `json:"name" validate:"required,max=120"`
	Short    string `json:"short" validate:"omitempty,max=10"`
	LogoURL  string `json:"logoUrl" validate:"omitempty,url"`
}

type playerRequest struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	TeamID      string `json:"teamId" validate:"required"`
	Name        string `json:"name" validate:"required,max=120"`
	Position    string `json:"position" validate:"required,oneof=GK DEF MID FWD"`
	ShirtNumber int    `json:"shirtNumber" validate:"gte=0,lte=99"`
	Nationality string `json:"nationality" validate:"omitempty,max=60"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
}

type matchRequest struct {
	ID         string `json:"id" validate:"omitempty,max=64"`
	LeagueID   string `json:"leagueId" validate:"required"`
	HomeTeamID string `json:"homeTeamId" validate:"required"`
	AwayTeamID string `json:"awayTeamId" validate:"required,nefield=HomeTeamID"`
	Round      int    `json:"round" validate:"gte=0"`
	KickoffAt  string `json:"kickoffAt" validate:"required"`
	Venue      string `json:"venue" validate:"omitempty,max=120"`
}

type matchStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

type matchScoreRequest struct {
	HomeScore *int `json:"homeScore" validate:"required,gte=0"`
	AwayScore *int `json:"awayScore" validate:"required,gte=0"`
}

type newsRequest struct {
	ID          string `json:"id" validate:"omitempty,max=64"`
	Slug        string `json:"slug" validate:"omitempty,max=160"`
	Title       string `json:"title" validate:"required,max=200"`
	Summary     string `json:"summary" validate:"omitempty,max=500"`
	Body        string `json:"body"`
	ImageURL    string `json:"imageUrl" validate:"omitempty,url"`
	LeagueID    string `json:"leagueId"`
	IsPublished bool   `json:"isPublished"`
	PublishedAt string `json:"publishedAt"`
}

type adCampaignRequest struct {
	ID        string `json:"id" validate:"omitempty,max=64"`
	Name      string `json:"name" validate:"required,max=120"`
	IsActive  *bool  `json:"isActive"`
	Priority  int    `json:"priority"`
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
	ClickURL  string `json:"clickUrl" validate:"omitempty,url"`
}

type adImageRequest struct {
	ID            string   `json:"id" validate:"omitempty,max=64"`
	CampaignID    string   `json:"campaignId"`
	IsActive      *bool    `json:"isActive"`
	DisplayOrder  int      `json:"displayOrder"`
	SizeType      string   `json:"sizeType" validate:"required,oneof=full sidebar inline popup"`
	TargetPages   []string `json:"targetPages" validate:"required,min=1,dive,required"`
	ImageURL      string   `json:"imageUrl" validate:"omitempty,url"`
	ImageURLLarge string   `json:"imageUrlLarge" validate:"omitempty,url"`
	ImageURLSmall string   `json:"imageUrlSmall" validate:"omitempty,url"`
	AltTextEN     string   `json:"altTextEn" validate:"omitempty,max=200"`
	AltTextAM     string   `json:"altTextAm" validate:"omitempty,max=200"`
	LinkURL       string   `json:"linkUrl" validate:"omitempty,url"`
}

type leagueDTO struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	CountryCode string `json:"countryCode"`
	Season      string `json:"season"`
	IsDefault   bool   `json:"isDefault"`
}

type teamDTO struct {
	ID       string `json:"id"`
	LeagueID string `json:"leagueId"`
	Name     string `json:"name"`
	Short    string `json:"short"`
	LogoURL  string `json:"logoUrl,omitempty"`
}

type playerDTO struct {
	ID          string `json:"id"`
	TeamID      string `json:"teamId"`
	Name        string `json:"name"`
	Position    string `json:"position"`
	ShirtNumber int    `json:"shirtNumber"`
	Nationality string `json:"nationality,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
}

type standingDTO struct {
	Position       int    `json:"position"`
	TeamID         string `json:"teamId"`
	TeamName       string `json:"teamName"`
	Played         int    `json:"played"`
	Won            int    `json:"won"`
	Draw           int    `json:"draw"`
	Lost           int    `json:"lost"`
	GoalsFor       int    `json:"goalsFor"`
	GoalsAgainst   int    `json:"goalsAgainst"`
	GoalDifference int    `json:"goalDifference"`
	Points         int    `json:"points"`
	Form           string `json:"form"`
}

type clockDTO struct {
	MatchID    string `json:"matchId"`
	Status     string `json:"status"`
	Minute     int    `json:"minute"`
	Running    bool   `json:"running"`
	ComputedAt string `json:"computedAt"`
}

type matchDTO struct {
	ID                  string   `json:"id"`
	LeagueID            string   `json:"leagueId"`
	HomeTeamID          string   `json:"homeTeamId"`
	AwayTeamID          string   `json:"awayTeamId"`
	Round               int      `json:"round"`
	KickoffAt           string   `json:"kickoffAt"`
	Venue               string   `json:"venue,omitempty"`
	Status              string   `json:"status"`
	Minute              int      `json:"minute"`
	HomeScore           *int     `json:"homeScore"`
	AwayScore           *int     `json:"awayScore"`
	MatchStartedAt      string   `json:"matchStartedAt,omitempty"`
	SecondHalfStartedAt string   `json:"secondHalfStartedAt,omitempty"`
	ExtraTimeStartedAt  string   `json:"extraTimeStartedAt,omitempty"`
	Clock               clockDTO `json:"clock"`
}

type matchDetailDTO struct {
	Match    matchDTO  `json:"match"`
	League   leagueDTO `json:"league"`
	HomeTeam teamDTO   `json:"homeTeam"`
	AwayTeam teamDTO   `json:"awayTeam"`
}

type newsDTO struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Summary     string `json:"summary,omitempty"`
	Body        string `json:"body,omitempty"`
	ImageURL    string `json:"imageUrl,omitempty"`
	LeagueID    string `json:"leagueId,omitempty"`
	LeagueName  string `json:"leagueName,omitempty"`
	IsPublished bool   `json:"isPublished"`
	PublishedAt string `json:"publishedAt,omitempty"`
}

// adCreativeDTO is the public slot payload.
type adCreativeDTO struct {
	ID         string `json:"id"`
	Image      string `json:"image"`
	ImageSmall string `json:"imageSmall"`
	Alt        string `json:"alt"`
	Link       string `json:"link"`
	SizeType   string `json:"sizeType"`
}

type adCampaignDTO struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	IsActive  bool   `json:"isActive"`
	Priority  int    `json:"priority"`
	StartDate string `json:"startDate,omitempty"`
	EndDate   string `json:"endDate,omitempty"`
	ClickURL  string `json:"clickUrl,omitempty"`
	CreatedAt string `json:"createdAt"`
	UpdatedAt string `json:"updatedAt"`
}

type adImageDTO struct {
	ID            string   `json:"id"`
	CampaignID    string   `json:"campaignId"`
	IsActive      bool     `json:"isActive"`
	DisplayOrder  int      `json:"displayOrder"`
	SizeType      string   `json:"sizeType"`
	TargetPages   []string `json:"targetPages"`
	ImageURL      string   `json:"imageUrl,omitempty"`
	ImageURLLarge string   `json:"imageUrlLarge,omitempty"`
	ImageURLSmall string   `json:"imageUrlSmall,omitempty"`
	AltTextEN     string   `json:"altTextEn,omitempty"`
	AltTextAM     string   `json:"altTextAm,omitempty"`
	LinkURL       string   `json:"linkUrl,omitempty"`
	CreatedAt     string   `json:"createdAt"`
	UpdatedAt     string   `json:"updatedAt"`
}

func leagueToDTO(v league.League) leagueDTO {
	return leagueDTO{
		ID:          v.ID,
		Name:        v.Name,
		CountryCode: v.CountryCode,
		Season:      v.Season,
		IsDefault:   v.IsDefault,
	}
}

func teamToDTO(v team.Team) teamDTO {
	return teamDTO{
		ID:       v.ID,
		LeagueID: v.LeagueID,
		Name:     v.Name,
		Short:    v.Short,
		LogoURL:  v.LogoURL,
	}
}

func playerToDTO(v player.Player) playerDTO {
	return playerDTO{
		ID:          v.ID,
		TeamID:      v.TeamID,
		Name:        v.Name,
		Position:    string(v.Position),
		ShirtNumber: v.ShirtNumber,
		Nationality: v.Nationality,
		ImageURL:    v.ImageURL,
	}
}

func standingToDTO(v standing.Standing) standingDTO {
	return standingDTO{
		Position:       v.Position,
		TeamID:         v.TeamID,
		TeamName:       v.TeamName,
		Played:         v.Played,
		Won:            v.Won,
		Draw:           v.Draw,
		Lost:           v.Lost,
		GoalsFor:       v.GoalsFor,
		GoalsAgainst:   v.GoalsAgainst,
		GoalDifference: v.GoalDifference,
		Points:         v.Points,
		Form:           v.Form,
	}
}

func clockToDTO(v match.Snapshot) clockDTO {
	return clockDTO{
		MatchID:    v.MatchID,
		Status:     string(v.Status),
		Minute:     v.Minute,
		Running:    v.Running,
		ComputedAt: formatTime(v.ComputedAt),
	}
}

func matchToDTO(v match.Match, clock match.Snapshot) matchDTO {
	return matchDTO{
		ID:                  v.ID,
		LeagueID:            v.LeagueID,
		HomeTeamID:          v.HomeTeamID,
		AwayTeamID:          v.AwayTeamID,
		Round:               v.Round,
		KickoffAt:           formatTime(v.KickoffAt),
		Venue:               v.Venue,
		Status:              string(v.Status),
		Minute:              clock.Minute,
		HomeScore:           v.HomeScore,
		AwayScore:           v.AwayScore,
		MatchStartedAt:      formatOptionalTime(v.MatchStartedAt),
		SecondHalfStartedAt: formatOptionalTime(v.SecondHalfStartedAt),
		ExtraTimeStartedAt:  formatOptionalTime(v.ExtraTimeStartedAt),
		Clock:               clockToDTO(clock),
	}
}

func matchDetailToDTO(v usecase.MatchDetail) matchDetailDTO {
	return matchDetailDTO{
		Match:    matchToDTO(v.Match, v.Clock),
		League:   leagueToDTO(v.League),
		HomeTeam: teamToDTO(v.HomeTeam),
		AwayTeam: teamToDTO(v.AwayTeam),
	}
}

func newsToDTO(v news.Article, withBody bool) newsDTO {
	out := newsDTO{
		ID:          v.ID,
		Slug:        v.Slug,
		Title:       v.Title,
		Summary:     v.Summary,
		ImageURL:    v.ImageURL,
		LeagueID:    v.LeagueID,
		LeagueName:  v.LeagueName,
		IsPublished: v.IsPublished,
		PublishedAt: formatOptionalTime(v.PublishedAt),
	}
	if withBody {
		out.Body = v.Body
	}
	return out
}

func creativesToDTO(ctx context.Context, items []ad.Creative) []adCreativeDTO {
	_, span := startSpan(ctx, "httpapi.creativesToDTO")
	defer span.End()

	out := make([]adCreativeDTO, 0, len(items))
	for _, item := range items {
		out = append(out, adCreativeDTO{
			ID:         item.ID,
			Image:      item.Image,
			ImageSmall: item.ImageSmall,
			Alt:        item.Alt,
			Link:       item.Link,
			SizeType:   string(item.SizeType),
		})
	}
	return out
}

func adCampaignToDTO(v ad.Campaign) adCampaignDTO {
	return adCampaignDTO{
		ID:        v.ID,
		Name:      v.Name,
		IsActive:  v.IsActive,
		Priority:  v.Priority,
		StartDate: formatOptionalTime(v.StartDate),
		EndDate:   formatOptionalTime(v.EndDate),
		ClickURL:  v.ClickURL,
		CreatedAt: formatTime(v.CreatedAt),
		UpdatedAt: formatTime(v.UpdatedAt),
	}
}

func adImageToDTO(v ad.Image) adImageDTO {
	pages := v.TargetPages
	if pages == nil {
		pages = []string{}
	}
	return adImageDTO{
		ID:            v.ID,
		CampaignID:    v.CampaignID,
		IsActive:      v.IsActive,
		DisplayOrder:  v.DisplayOrder,
		SizeType:      string(v.SizeType),
		TargetPages:   pages,
		ImageURL:      v.ImageURL,
		ImageURLLarge: v.ImageURLLarge,
		ImageURLSmall: v.ImageURLSmall,
		AltTextEN:     v.AltTextEN,
		AltTextAM:     v.AltTextAM,
		LinkURL:       v.LinkURL,
		CreatedAt:     formatTime(v.CreatedAt),
		UpdatedAt:     formatTime(v.UpdatedAt),
	}
}
