package ad

import (
	"slices"
	"sort"
	"time"
)

// Select returns the creatives eligible for the (page, sizeType) slot at now,
// ordered by campaign priority descending then display order ascending.
// Full-size creatives also fill inline slots; no other size substitutes.
func Select(images []Image, page string, sizeType SizeType, now time.Time) []Creative {
	eligible := make([]Image, 0, len(images))
	for _, img := range images {
		if !img.IsActive || img.Campaign == nil || !img.Campaign.IsActive {
			continue
		}
		if !fitsSlot(img.SizeType, sizeType) {
			continue
		}
		if !targetsPage(img.TargetPages, page) {
			continue
		}
		if !inWindow(*img.Campaign, now) {
			continue
		}
		eligible = append(eligible, img)
	}

	sort.SliceStable(eligible, func(i, j int) bool {
		pi, pj := eligible[i].Campaign.Priority, eligible[j].Campaign.Priority
		if pi != pj {
			return pi > pj
		}
		return eligible[i].DisplayOrder < eligible[j].DisplayOrder
	})

	out := make([]Creative, 0, len(eligible))
	for _, img := range eligible {
		out = append(out, toCreative(img))
	}
	return out
}

func fitsSlot(imageSize, requested SizeType) bool {
	if imageSize == requested {
		return true
	}
	return imageSize == SizeFull && requested == SizeInline
}

func targetsPage(pages []string, page string) bool {
	return slices.Contains(pages, page) || slices.Contains(pages, PageAll)
}

func inWindow(c Campaign, now time.Time) bool {
	if c.StartDate != nil && c.StartDate.After(now) {
		return false
	}
	if c.EndDate != nil && c.EndDate.Before(now) {
		return false
	}
	return true
}

func toCreative(img Image) Creative {
	return Creative{
		ID:         img.ID,
		Image:      firstNonEmpty(img.ImageURLLarge, img.ImageURL),
		ImageSmall: firstNonEmpty(img.ImageURLSmall, img.ImageURL),
		Alt:        firstNonEmpty(img.AltTextEN, img.AltTextAM, DefaultAlt),
		Link:       firstNonEmpty(img.LinkURL, img.Campaign.ClickURL, DefaultLink),
		SizeType:   img.SizeType,
	}
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if v != "" {
			return v
		}
	}
	return ""
}
