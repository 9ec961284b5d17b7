package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/jonboulle/clockwork"

	"github.com/riskibarqy/matchday/internal/domain/ad"
	"github.com/riskibarqy/matchday/internal/platform/id"
)

// AdServeObserver records how many creatives each slot request returned.
type AdServeObserver interface {
	ObserveAdsServed(page string, sizeType ad.SizeType, count int)
}

type AdService struct {
	repo     ad.Repository
	ids      id.Generator
	clock    clockwork.Clock
	observer AdServeObserver
}

func NewAdService(repo ad.Repository, ids id.Generator, clock clockwork.Clock, observer AdServeObserver) *AdService {
	if clock == nil {
		clock = clockwork.NewRealClock()
	}
	return &AdService{
		repo:     repo,
		ids:      ids,
		clock:    clock,
		observer: observer,
	}
}

// Serve returns the ranked creatives for one page slot.
func (s *AdService) Serve(ctx context.Context, page, sizeType string) ([]ad.Creative, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AdService.Serve")
	defer span.End()

	page = strings.ToLower(strings.TrimSpace(page))
	if page == "" {
		return nil, fmt.Errorf("%w: page is required", ErrInvalidInput)
	}
	size, err := ad.ParseSizeType(sizeType)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	images, err := s.repo.ListServable(ctx)
	if err != nil {
		return nil, fmt.Errorf("list servable ad images: %w", err)
	}

	creatives := ad.Select(images, page, size, s.clock.Now())
	if s.observer != nil {
		s.observer.ObserveAdsServed(page, size, len(creatives))
	}
	return creatives, nil
}

func (s *AdService) ListCampaigns(ctx context.Context) ([]ad.Campaign, error) {
	items, err := s.repo.ListCampaigns(ctx)
	if err != nil {
		return nil, fmt.Errorf("list ad campaigns: %w", err)
	}
	return items, nil
}

func (s *AdService) GetCampaign(ctx context.Context, campaignID string) (ad.Campaign, error) {
	campaignID, err := requireID("campaign", campaignID)
	if err != nil {
		return ad.Campaign{}, err
	}
	item, exists, err := s.repo.GetCampaign(ctx, campaignID)
	if err != nil {
		return ad.Campaign{}, fmt.Errorf("get ad campaign: %w", err)
	}
	if !exists {
		return ad.Campaign{}, fmt.Errorf("%w: campaign=%s", ErrNotFound, campaignID)
	}
	return item, nil
}

func (s *AdService) CreateCampaign(ctx context.Context, item ad.Campaign) (ad.Campaign, error) {
	var err error
	if item.ID, err = ensureID(s.ids, item.ID); err != nil {
		return ad.Campaign{}, err
	}
	if err := item.Validate(); err != nil {
		return ad.Campaign{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	_, exists, err := s.repo.GetCampaign(ctx, item.ID)
	if err != nil {
		return ad.Campaign{}, fmt.Errorf("get ad campaign: %w", err)
	}
	if exists {
		return ad.Campaign{}, fmt.Errorf("%w: campaign=%s already exists", ErrConflict, item.ID)
	}

	now := s.clock.Now().UTC()
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.repo.CreateCampaign(ctx, item); err != nil {
		return ad.Campaign{}, fmt.Errorf("create ad campaign: %w", err)
	}
	return item, nil
}

func (s *AdService) UpdateCampaign(ctx context.Context, item ad.Campaign) (ad.Campaign, error) {
	current, err := s.GetCampaign(ctx, item.ID)
	if err != nil {
		return ad.Campaign{}, err
	}
	if err := item.Validate(); err != nil {
		return ad.Campaign{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = s.clock.Now().UTC()
	if err := s.repo.UpdateCampaign(ctx, item); err != nil {
		return ad.Campaign{}, fmt.Errorf("update ad campaign: %w", err)
	}
	return item, nil
}

func (s *AdService) DeleteCampaign(ctx context.Context, campaignID string) error {
	item, err := s.GetCampaign(ctx, campaignID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteCampaign(ctx, item.ID); err != nil {
		return fmt.Errorf("delete ad campaign: %w", err)
	}
	return nil
}

func (s *AdService) ListImages(ctx context.Context, campaignID string) ([]ad.Image, error) {
	if _, err := s.GetCampaign(ctx, campaignID); err != nil {
		return nil, err
	}
	items, err := s.repo.ListImagesByCampaign(ctx, campaignID)
	if err != nil {
		return nil, fmt.Errorf("list ad images: %w", err)
	}
	return items, nil
}

func (s *AdService) GetImage(ctx context.Context, imageID string) (ad.Image, error) {
	imageID, err := requireID("ad image", imageID)
	if err != nil {
		return ad.Image{}, err
	}
	item, exists, err := s.repo.GetImage(ctx, imageID)
	if err != nil {
		return ad.Image{}, fmt.Errorf("get ad image: %w", err)
	}
	if !exists {
		return ad.Image{}, fmt.Errorf("%w: ad image=%s", ErrNotFound, imageID)
	}
	return item, nil
}

func (s *AdService) CreateImage(ctx context.Context, item ad.Image) (ad.Image, error) {
	var err error
	if item.ID, err = ensureID(s.ids, item.ID); err != nil {
		return ad.Image{}, err
	}
	item.TargetPages = normalizePages(item.TargetPages)
	if err := item.Validate(); err != nil {
		return ad.Image{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.GetCampaign(ctx, item.CampaignID); err != nil {
		return ad.Image{}, err
	}
	_, exists, err := s.repo.GetImage(ctx, item.ID)
	if err != nil {
		return ad.Image{}, fmt.Errorf("get ad image: %w", err)
	}
	if exists {
		return ad.Image{}, fmt.Errorf("%w: ad image=%s already exists", ErrConflict, item.ID)
	}

	now := s.clock.Now().UTC()
	item.Campaign = nil
	item.CreatedAt = now
	item.UpdatedAt = now
	if err := s.repo.CreateImage(ctx, item); err != nil {
		return ad.Image{}, fmt.Errorf("create ad image: %w", err)
	}
	return item, nil
}

func (s *AdService) UpdateImage(ctx context.Context, item ad.Image) (ad.Image, error) {
	current, err := s.GetImage(ctx, item.ID)
	if err != nil {
		return ad.Image{}, err
	}
	item.TargetPages = normalizePages(item.TargetPages)
	if err := item.Validate(); err != nil {
		return ad.Image{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if _, err := s.GetCampaign(ctx, item.CampaignID); err != nil {
		return ad.Image{}, err
	}

	item.Campaign = nil
	item.CreatedAt = current.CreatedAt
	item.UpdatedAt = s.clock.Now().UTC()
	if err := s.repo.UpdateImage(ctx, item); err != nil {
		return ad.Image{}, fmt.Errorf("update ad image: %w", err)
	}
	return item, nil
}

func (s *AdService) DeleteImage(ctx context.Context, imageID string) error {
	item, err := s.GetImage(ctx, imageID)
	if err != nil {
		return err
	}
	if err := s.repo.DeleteImage(ctx, item.ID); err != nil {
		return fmt.Errorf("delete ad image: %w", err)
	}
	return nil
}

func normalizePages(pages []string) []string {
	seen := make(map[string]struct{}, len(pages))
	out := make([]string, 0, len(pages))
	for _, p := range pages {
		p = strings.ToLower(strings.TrimSpace(p))
		if p == "" {
			continue
		}
		if _, ok := seen[p]; ok {
			continue
		}
		seen[p] = struct{}{}
		out = append(out, p)
	}
	return out
}
