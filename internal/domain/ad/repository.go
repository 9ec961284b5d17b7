package ad

import "context"

// Repository describes campaign and creative persistence needs from use cases.
type Repository interface {
	ListCampaigns(ctx context.Context) ([]Campaign, error)
	GetCampaign(ctx context.Context, campaignID string) (Campaign, bool, error)
	CreateCampaign(ctx context.Context, item Campaign) error
	UpdateCampaign(ctx context.Context, item Campaign) error
	// DeleteCampaign also removes the campaign's images.
	DeleteCampaign(ctx context.Context, campaignID string) error

	ListImagesByCampaign(ctx context.Context, campaignID string) ([]Image, error)
	GetImage(ctx context.Context, imageID string) (Image, bool, error)
	CreateImage(ctx context.Context, item Image) error
	UpdateImage(ctx context.Context, item Image) error
	DeleteImage(ctx context.Context, imageID string) error

	// ListServable returns active images with their campaign attached.
	ListServable(ctx context.Context) ([]Image, error)
}
