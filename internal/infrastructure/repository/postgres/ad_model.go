package postgres

import (
	"time"

	"github.com/lib/pq"
)

type adCampaignTableModel struct {
	ID        int64      `db:"id"`
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	IsActive  bool       `db:"is_active"`
	Priority  int        `db:"priority"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	ClickURL  string     `db:"click_url"`
	CreatedAt time.Time  `db:"created_at"`
	UpdatedAt time.Time  `db:"updated_at"`
	DeletedAt *time.Time `db:"deleted_at"`
}

type adCampaignWriteModel struct {
	PublicID  string     `db:"public_id"`
	Name      string     `db:"name"`
	IsActive  bool       `db:"is_active"`
	Priority  int        `db:"priority"`
	StartDate *time.Time `db:"start_date"`
	EndDate   *time.Time `db:"end_date"`
	ClickURL  string     `db:"click_url"`
	UpdatedAt time.Time  `db:"updated_at"`
}

type adImageTableModel struct {
	ID            int64          `db:"id"`
	PublicID      string         `db:"public_id"`
	CampaignID    string         `db:"campaign_public_id"`
	IsActive      bool           `db:"is_active"`
	DisplayOrder  int            `db:"display_order"`
	SizeType      string         `db:"size_type"`
	TargetPages   pq.StringArray `db:"target_pages"`
	ImageURL      string         `db:"image_url"`
	ImageURLLarge string         `db:"image_url_large"`
	ImageURLSmall string         `db:"image_url_small"`
	AltTextEN     string         `db:"alt_text_en"`
	AltTextAM     string         `db:"alt_text_am"`
	LinkURL       string         `db:"link_url"`
	CreatedAt     time.Time      `db:"created_at"`
	UpdatedAt     time.Time      `db:"updated_at"`
	DeletedAt     *time.Time     `db:"deleted_at"`
}

type adImageWriteModel struct {
	PublicID      string         `db:"public_id"`
	CampaignID    string         `db:"campaign_public_id"`
	IsActive      bool           `db:"is_active"`
	DisplayOrder  int            `db:"display_order"`
	SizeType      string         `db:"size_type"`
	TargetPages   pq.StringArray `db:"target_pages"`
	ImageURL      string         `db:"image_url"`
	ImageURLLarge string         `db:"image_url_large"`
	ImageURLSmall string         `db:"image_url_small"`
	AltTextEN     string         `db:"alt_text_en"`
	AltTextAM     string         `db:"alt_text_am"`
	LinkURL       string         `db:"link_url"`
	UpdatedAt     time.Time      `db:"updated_at"`
}

// adServableRow is one image joined with its campaign.
type adServableRow struct {
	PublicID          string         `db:"public_id"`
	CampaignID        string         `db:"campaign_public_id"`
	IsActive          bool           `db:"is_active"`
	DisplayOrder      int            `db:"display_order"`
	SizeType          string         `db:"size_type"`
	TargetPages       pq.StringArray `db:"target_pages"`
	ImageURL          string         `db:"image_url"`
	ImageURLLarge     string         `db:"image_url_large"`
	ImageURLSmall     string         `db:"image_url_small"`
	AltTextEN         string         `db:"alt_text_en"`
	AltTextAM         string         `db:"alt_text_am"`
	LinkURL           string         `db:"link_url"`
	CampaignName      string         `db:"campaign_name"`
	CampaignIsActive  bool           `db:"campaign_is_active"`
	CampaignPriority  int            `db:"campaign_priority"`
	CampaignStartDate *time.Time     `db:"campaign_start_date"`
	CampaignEndDate   *time.Time     `db:"campaign_end_date"`
	CampaignClickURL  string         `db:"campaign_click_url"`
}
