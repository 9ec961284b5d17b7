package ad

import (
	"fmt"
	"strings"
	"time"
)

type SizeType string

const (
	SizeFull    SizeType = "full"
	SizeSidebar SizeType = "sidebar"
	SizeInline  SizeType = "inline"
	SizePopup   SizeType = "popup"
)

// PageAll targets every page.
const PageAll = "all"

const (
	DefaultAlt  = "Advertisement"
	DefaultLink = "#"
)

func ParseSizeType(value string) (SizeType, error) {
	size := SizeType(strings.ToLower(strings.TrimSpace(value)))
	switch size {
	case SizeFull, SizeSidebar, SizeInline, SizePopup:
		return size, nil
	default:
		return "", fmt.Errorf("invalid ad size type: %q", value)
	}
}

// Campaign groups creatives sharing schedule, priority and click target.
type Campaign struct {
	ID        string
	Name      string
	IsActive  bool
	Priority  int
	StartDate *time.Time
	EndDate   *time.Time
	ClickURL  string
	CreatedAt time.Time
	UpdatedAt time.Time
}

func (c Campaign) Validate() error {
	if c.ID == "" {
		return fmt.Errorf("campaign id is required")
	}
	if strings.TrimSpace(c.Name) == "" {
		return fmt.Errorf("campaign name is required")
	}
	if c.StartDate != nil && c.EndDate != nil && c.EndDate.Before(*c.StartDate) {
		return fmt.Errorf("campaign end date is before start date")
	}

	return nil
}

// Image is one creative. Campaign is attached when the image is loaded for
// serving and is nil when the parent campaign could not be resolved.
type Image struct {
	ID            string
	CampaignID    string
	Campaign      *Campaign
	IsActive      bool
	DisplayOrder  int
	SizeType      SizeType
	TargetPages   []string
	ImageURL      string
	ImageURLLarge string
	ImageURLSmall string
	AltTextEN     string
	AltTextAM     string
	LinkURL       string
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (i Image) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("ad image id is required")
	}
	if i.CampaignID == "" {
		return fmt.Errorf("ad image campaign id is required")
	}
	if _, err := ParseSizeType(string(i.SizeType)); err != nil {
		return err
	}
	if len(i.TargetPages) == 0 {
		return fmt.Errorf("ad image target pages are required")
	}
	if i.ImageURL == "" && i.ImageURLLarge == "" && i.ImageURLSmall == "" {
		return fmt.Errorf("ad image url is required")
	}

	return nil
}

// Creative is the display record returned to page slots.
type Creative struct {
	ID         string
	Image      string
	ImageSmall string
	Alt        string
	Link       string
	SizeType   SizeType
}
