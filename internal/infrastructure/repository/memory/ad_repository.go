package memory

import (
	"context"
	"sort"

	"github.com/riskibarqy/matchday/internal/domain/ad"
)

type AdRepository struct {
	campaigns *table[ad.Campaign]
	images    *table[ad.Image]
}

func NewAdRepository(campaigns []ad.Campaign, images []ad.Image) *AdRepository {
	return &AdRepository{
		campaigns: newTable(campaigns, func(c ad.Campaign) string { return c.ID }),
		images:    newTable(images, func(i ad.Image) string { return i.ID }),
	}
}

func (r *AdRepository) ListCampaigns(_ context.Context) ([]ad.Campaign, error) {
	out := r.campaigns.filter(nil)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Priority > out[j].Priority })
	return out, nil
}

func (r *AdRepository) GetCampaign(_ context.Context, campaignID string) (ad.Campaign, bool, error) {
	c, ok := r.campaigns.get(campaignID)
	return c, ok, nil
}

func (r *AdRepository) CreateCampaign(_ context.Context, item ad.Campaign) error {
	r.campaigns.upsert(item.ID, item)
	return nil
}

func (r *AdRepository) UpdateCampaign(_ context.Context, item ad.Campaign) error {
	r.campaigns.upsert(item.ID, item)
	return nil
}

func (r *AdRepository) DeleteCampaign(_ context.Context, campaignID string) error {
	owned := r.images.filter(func(i ad.Image) bool { return i.CampaignID == campaignID })
	ids := make([]string, 0, len(owned))
	for _, img := range owned {
		ids = append(ids, img.ID)
	}
	r.images.remove(ids...)
	r.campaigns.remove(campaignID)
	return nil
}

func (r *AdRepository) ListImagesByCampaign(_ context.Context, campaignID string) ([]ad.Image, error) {
	out := r.images.filter(func(i ad.Image) bool { return i.CampaignID == campaignID })
	sort.SliceStable(out, func(i, j int) bool { return out[i].DisplayOrder < out[j].DisplayOrder })
	return out, nil
}

func (r *AdRepository) GetImage(_ context.Context, imageID string) (ad.Image, bool, error) {
	img, ok := r.images.get(imageID)
	return img, ok, nil
}

func (r *AdRepository) CreateImage(_ context.Context, item ad.Image) error {
	item.Campaign = nil
	r.images.upsert(item.ID, item)
	return nil
}

func (r *AdRepository) UpdateImage(_ context.Context, item ad.Image) error {
	item.Campaign = nil
	r.images.upsert(item.ID, item)
	return nil
}

func (r *AdRepository) DeleteImage(_ context.Context, imageID string) error {
	r.images.remove(imageID)
	return nil
}

// ListServable joins active images with their campaign. Images whose
// campaign is missing are returned without one.
func (r *AdRepository) ListServable(_ context.Context) ([]ad.Image, error) {
	out := r.images.filter(func(i ad.Image) bool { return i.IsActive })
	for i := range out {
		if c, ok := r.campaigns.get(out[i].CampaignID); ok {
			campaign := c
			out[i].Campaign = &campaign
		}
		out[i].TargetPages = append([]string(nil), out[i].TargetPages...)
	}
	return out, nil
}
