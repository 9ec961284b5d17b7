package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/stretchr/testify/mock"

	"github.com/riskibarqy/matchday/internal/domain/ad"
	"github.com/riskibarqy/matchday/internal/infrastructure/repository/memory"
	admock "github.com/riskibarqy/matchday/internal/mocks/domain/ad"
	"github.com/riskibarqy/matchday/internal/platform/id"
)

type servedRecord struct {
	page  string
	size  ad.SizeType
	count int
}

type recordingAdObserver struct {
	records []servedRecord
}

func (o *recordingAdObserver) ObserveAdsServed(page string, sizeType ad.SizeType, count int) {
	o.records = append(o.records, servedRecord{page: page, size: sizeType, count: count})
}

func TestAdService_Serve(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := memory.NewAdRepository(memory.SeedCampaigns(), memory.SeedImages())
	observer := &recordingAdObserver{}
	svc := NewAdService(repo, id.NewSequenceGenerator("ad"), clockwork.NewFakeClockAt(now), observer)

	got, err := svc.Serve(t.Context(), " Matches ", "inline")
	if err != nil {
		t.Fatalf("serve: %v", err)
	}
	// Telecom (priority 10, full on all pages) outranks bank (priority 5, inline on matches).
	if len(got) != 2 || got[0].ID != "img-telecom-hero" || got[1].ID != "img-bank-inline" {
		t.Fatalf("unexpected creatives: %+v", got)
	}
	if got[0].Image != "https://cdn.example.et/ads/telecom-hero-1600.jpg" || got[0].Link != "https://telecom.example.et" {
		t.Fatalf("unexpected telecom creative: %+v", got[0])
	}
	if got[1].Alt != ad.DefaultAlt || got[1].Link != "https://bank.example.et/matchday" {
		t.Fatalf("unexpected bank creative: %+v", got[1])
	}

	sidebar, err := svc.Serve(t.Context(), "matches", "sidebar")
	if err != nil {
		t.Fatalf("serve sidebar: %v", err)
	}
	if len(sidebar) != 0 {
		t.Fatalf("expected no sidebar creatives on matches, got %+v", sidebar)
	}

	if len(observer.records) != 2 || observer.records[0] != (servedRecord{page: "matches", size: ad.SizeInline, count: 2}) {
		t.Fatalf("unexpected observations: %+v", observer.records)
	}
}

func TestAdService_Serve_ValidatesInputWithoutLoading(t *testing.T) {
	repo := admock.NewRepository(t)
	svc := NewAdService(repo, nil, nil, nil)

	if _, err := svc.Serve(t.Context(), "home", "banner"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for unknown size, got %v", err)
	}
	if _, err := svc.Serve(t.Context(), "  ", "full"); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for empty page, got %v", err)
	}
}

func TestAdService_Serve_RepositoryFailure(t *testing.T) {
	repo := admock.NewRepository(t)
	svc := NewAdService(repo, nil, nil, nil)
	boom := errors.New("connection reset")

	repo.
		On("ListServable", mock.Anything).
		Return(nil, boom).
		Once()

	_, err := svc.Serve(t.Context(), "home", "full")
	if !errors.Is(err, boom) {
		t.Fatalf("expected repository error to be wrapped, got %v", err)
	}
}

func TestAdService_ImageRequiresCampaign(t *testing.T) {
	repo := admock.NewRepository(t)
	svc := NewAdService(repo, id.NewSequenceGenerator("img"), nil, nil)

	repo.
		On("GetCampaign", mock.MatchedBy(func(context.Context) bool { return true }), "missing").
		Return(ad.Campaign{}, false, nil).
		Once()

	_, err := svc.CreateImage(t.Context(), ad.Image{
		CampaignID:  "missing",
		SizeType:    ad.SizeFull,
		TargetPages: []string{"home"},
		ImageURL:    "https://cdn.example/x.png",
	})
	if !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected ErrNotFound, got %v", err)
	}
}

func TestAdService_CampaignAndImageLifecycle(t *testing.T) {
	now := time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)
	repo := memory.NewAdRepository(nil, nil)
	svc := NewAdService(repo, id.NewSequenceGenerator("ad"), clockwork.NewFakeClockAt(now), nil)

	campaign, err := svc.CreateCampaign(t.Context(), ad.Campaign{Name: "Cup final", IsActive: true, Priority: 1})
	if err != nil {
		t.Fatalf("create campaign: %v", err)
	}
	if campaign.ID != "ad-1" || !campaign.CreatedAt.Equal(now) {
		t.Fatalf("unexpected campaign: %+v", campaign)
	}

	img, err := svc.CreateImage(t.Context(), ad.Image{
		CampaignID:  campaign.ID,
		IsActive:    true,
		SizeType:    ad.SizePopup,
		TargetPages: []string{" Home ", "home", ""},
		ImageURL:    "https://cdn.example/final.png",
	})
	if err != nil {
		t.Fatalf("create image: %v", err)
	}
	if len(img.TargetPages) != 1 || img.TargetPages[0] != "home" {
		t.Fatalf("expected normalized pages, got %v", img.TargetPages)
	}

	if _, err := svc.CreateCampaign(t.Context(), ad.Campaign{ID: campaign.ID, Name: "dup"}); !errors.Is(err, ErrConflict) {
		t.Fatalf("expected ErrConflict, got %v", err)
	}

	end := now.Add(-time.Hour)
	start := now
	if _, err := svc.UpdateCampaign(t.Context(), ad.Campaign{ID: campaign.ID, Name: "bad", StartDate: &start, EndDate: &end}); !errors.Is(err, ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput for inverted window, got %v", err)
	}

	served, _ := svc.Serve(t.Context(), "home", "popup")
	if len(served) != 1 || served[0].ID != img.ID {
		t.Fatalf("expected created image to be served, got %+v", served)
	}

	if err := svc.DeleteCampaign(t.Context(), campaign.ID); err != nil {
		t.Fatalf("delete campaign: %v", err)
	}
	if _, err := svc.GetImage(t.Context(), img.ID); !errors.Is(err, ErrNotFound) {
		t.Fatalf("expected image removed with campaign, got %v", err)
	}
}
