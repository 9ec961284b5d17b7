package news

import "testing"

func TestSlugify(t *testing.T) {
	tests := map[string]string{
		"Derby Day: City 2-1 United!": "derby-day-city-2-1-united",
		"  leading spaces":            "leading-spaces",
		"Ethiopian Premier League":    "ethiopian-premier-league",
		"---":                         "",
		"ቡና ዋንጫ":                      "ቡና-ዋንጫ",
	}
	for in, want := range tests {
		if got := Slugify(in); got != want {
			t.Fatalf("Slugify(%q)=%q want %q", in, got, want)
		}
	}
}
