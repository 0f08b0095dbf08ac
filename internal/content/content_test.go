package content

import "testing"

func TestLoad(t *testing.T) {
	site, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	if site.SiteName != "Sandwich Society" {
		t.Errorf("SiteName = %q, want %q", site.SiteName, "Sandwich Society")
	}
	if len(site.About.Highlights) != 4 {
		t.Errorf("len(About.Highlights) = %d, want 4", len(site.About.Highlights))
	}
	if len(site.AllTimeRewards) != 5 {
		t.Errorf("len(AllTimeRewards) = %d, want 5", len(site.AllTimeRewards))
	}
	if len(site.WeeklyRewards) != 5 {
		t.Errorf("len(WeeklyRewards) = %d, want 5", len(site.WeeklyRewards))
	}
	if len(site.Terms) == 0 {
		t.Error("Terms is empty")
	}
	if len(site.JoinSteps) == 0 {
		t.Error("JoinSteps is empty")
	}
}

func TestLoad_TiersOrderedAscending(t *testing.T) {
	site, err := Load()
	if err != nil {
		t.Fatalf("Load() error = %v", err)
	}

	for name, tiers := range map[string][]RewardTier{
		"AllTimeRewards": site.AllTimeRewards,
		"WeeklyRewards":  site.WeeklyRewards,
	} {
		for i := 1; i < len(tiers); i++ {
			if tiers[i].Points <= tiers[i-1].Points {
				t.Errorf("%s not ascending at index %d: %d then %d",
					name, i, tiers[i-1].Points, tiers[i].Points)
			}
		}
		// Top tier lines up with the progress-bar ceiling.
		if top := tiers[len(tiers)-1].Points; top != 100 {
			t.Errorf("%s top tier = %d, want 100", name, top)
		}
	}
}
