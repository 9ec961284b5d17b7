package ad

import (
	"testing"
	"time"
)

var now = time.Date(2026, 5, 1, 12, 0, 0, 0, time.UTC)

func ptrTime(t time.Time) *time.Time {
	return &t
}

func activeCampaign(id string, priority int) *Campaign {
	return &Campaign{ID: id, Name: id, IsActive: true, Priority: priority, ClickURL: "https://" + id + ".example"}
}

func image(id string, campaign *Campaign, size SizeType, pages ...string) Image {
	img := Image{
		ID:          id,
		Campaign:    campaign,
		IsActive:    true,
		SizeType:    size,
		TargetPages: pages,
		ImageURL:    "https://cdn.example/" + id + ".png",
	}
	if campaign != nil {
		img.CampaignID = campaign.ID
	}
	return img
}

func ids(creatives []Creative) []string {
	out := make([]string, 0, len(creatives))
	for _, c := range creatives {
		out = append(out, c.ID)
	}
	return out
}

func equalIDs(got []string, want ...string) bool {
	if len(got) != len(want) {
		return false
	}
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}

func TestSelect_DropsInactiveCampaignAndHonoursWildcard(t *testing.T) {
	inactive := activeCampaign("c1", 1)
	inactive.IsActive = false

	got := Select([]Image{
		image("home-only", inactive, SizeFull, "home"),
		image("everywhere", activeCampaign("c2", 1), SizeFull, PageAll),
	}, "news", SizeFull, now)

	if !equalIDs(ids(got), "everywhere") {
		t.Fatalf("unexpected creatives: %v", ids(got))
	}
}

func TestSelect_DropsInactiveImageAndMissingCampaign(t *testing.T) {
	off := image("off", activeCampaign("c1", 1), SizeFull, PageAll)
	off.IsActive = false

	got := Select([]Image{off, image("orphan", nil, SizeFull, PageAll)}, "home", SizeFull, now)
	if len(got) != 0 {
		t.Fatalf("expected no creatives, got %v", ids(got))
	}
	if got == nil {
		t.Fatalf("expected empty non-nil result")
	}
}

func TestSelect_PriorityBeatsDisplayOrder(t *testing.T) {
	low := image("low", activeCampaign("c5", 5), SizeSidebar, "home")
	low.DisplayOrder = 0
	high := image("high", activeCampaign("c10", 10), SizeSidebar, "home")
	high.DisplayOrder = 99

	got := Select([]Image{low, high}, "home", SizeSidebar, now)
	if !equalIDs(ids(got), "high", "low") {
		t.Fatalf("unexpected order: %v", ids(got))
	}
}

func TestSelect_DisplayOrderBreaksTiesStably(t *testing.T) {
	campaign := activeCampaign("c1", 3)
	a := image("a", campaign, SizePopup, "home")
	a.DisplayOrder = 2
	b := image("b", campaign, SizePopup, "home")
	b.DisplayOrder = 1
	c := image("c", campaign, SizePopup, "home")
	c.DisplayOrder = 2

	got := Select([]Image{a, b, c}, "home", SizePopup, now)
	if !equalIDs(ids(got), "b", "a", "c") {
		t.Fatalf("unexpected order: %v", ids(got))
	}
}

func TestSelect_SizeFallbackIsOneDirectional(t *testing.T) {
	campaign := activeCampaign("c1", 1)
	full := image("full", campaign, SizeFull, PageAll)
	inline := image("inline", campaign, SizeInline, PageAll)
	sidebar := image("sidebar", campaign, SizeSidebar, PageAll)

	gotInline := Select([]Image{full, inline, sidebar}, "home", SizeInline, now)
	if !equalIDs(ids(gotInline), "full", "inline") {
		t.Fatalf("unexpected inline slot creatives: %v", ids(gotInline))
	}

	gotFull := Select([]Image{full, inline, sidebar}, "home", SizeFull, now)
	if !equalIDs(ids(gotFull), "full") {
		t.Fatalf("unexpected full slot creatives: %v", ids(gotFull))
	}
}

func TestSelect_DateWindow(t *testing.T) {
	expired := activeCampaign("expired", 1)
	expired.EndDate = ptrTime(now.Add(-24 * time.Hour))
	running := activeCampaign("running", 1)
	running.EndDate = ptrTime(now.Add(24 * time.Hour))
	running.StartDate = ptrTime(now.Add(-24 * time.Hour))
	upcoming := activeCampaign("upcoming", 1)
	upcoming.StartDate = ptrTime(now.Add(time.Hour))
	boundary := activeCampaign("boundary", 1)
	boundary.StartDate = ptrTime(now)
	boundary.EndDate = ptrTime(now)

	images := []Image{
		image("expired", expired, SizeInline, "matches"),
		image("running", running, SizeInline, "matches"),
		image("upcoming", upcoming, SizeInline, "matches"),
		image("boundary", boundary, SizeInline, "matches"),
	}
	got := Select(images, "matches", SizeInline, now)
	if !equalIDs(ids(got), "running", "boundary") {
		t.Fatalf("unexpected creatives: %v", ids(got))
	}
	if got := Select(images, "home", SizeInline, now); len(got) != 0 {
		t.Fatalf("expected untargeted page to get nothing, got %v", ids(got))
	}
}

func TestSelect_DisplayFieldFallbacks(t *testing.T) {
	campaign := activeCampaign("c1", 1)

	legacy := image("legacy", campaign, SizeFull, PageAll)
	legacy.DisplayOrder = 0

	rich := image("rich", campaign, SizeFull, PageAll)
	rich.DisplayOrder = 1
	rich.ImageURLLarge = "large.png"
	rich.ImageURLSmall = "small.png"
	rich.AltTextEN = "Buy now"
	rich.AltTextAM = "አሁን ይግዙ"
	rich.LinkURL = "https://shop.example"

	amharic := image("amharic", campaign, SizeFull, PageAll)
	amharic.DisplayOrder = 2
	amharic.AltTextAM = "ማስታወቂያ"

	noLink := image("no-link", &Campaign{ID: "c2", Name: "c2", IsActive: true}, SizeFull, PageAll)
	noLink.DisplayOrder = 3

	got := Select([]Image{legacy, rich, amharic, noLink}, "home", SizeFull, now)
	if len(got) != 4 {
		t.Fatalf("expected 4 creatives, got %d", len(got))
	}

	want := []Creative{
		{ID: "legacy", Image: legacy.ImageURL, ImageSmall: legacy.ImageURL, Alt: DefaultAlt, Link: campaign.ClickURL, SizeType: SizeFull},
		{ID: "rich", Image: "large.png", ImageSmall: "small.png", Alt: "Buy now", Link: "https://shop.example", SizeType: SizeFull},
		{ID: "amharic", Image: amharic.ImageURL, ImageSmall: amharic.ImageURL, Alt: "ማስታወቂያ", Link: campaign.ClickURL, SizeType: SizeFull},
		{ID: "no-link", Image: noLink.ImageURL, ImageSmall: noLink.ImageURL, Alt: DefaultAlt, Link: DefaultLink, SizeType: SizeFull},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("creative %d mismatch:\nwant %+v\ngot  %+v", i, want[i], got[i])
		}
	}
}

func TestParseSizeType(t *testing.T) {
	if got, err := ParseSizeType(" Inline "); err != nil || got != SizeInline {
		t.Fatalf("unexpected parse result: %s %v", got, err)
	}
	if _, err := ParseSizeType("banner"); err == nil {
		t.Fatalf("expected error for unknown size type")
	}
}
