package templates

import (
	"context"
	"strings"
	"testing"

	"github.com/sandwichsociety/pointsite/internal/content"
)

func testSite(t *testing.T) *content.Site {
	t.Helper()
	site, err := content.Load()
	if err != nil {
		t.Fatalf("content.Load() error = %v", err)
	}
	return site
}

func renderHome(t *testing.T, site *content.Site) string {
	t.Helper()
	var b strings.Builder
	if err := Home(site).Render(context.Background(), &b); err != nil {
		t.Fatalf("Home().Render() error = %v", err)
	}
	return b.String()
}

func TestHome_ContainsAllSections(t *testing.T) {
	html := renderHome(t, testSite(t))

	for _, want := range []string{
		`id="check"`,
		`id="rewards"`,
		`id="join"`,
		`id="about"`,
		`id="terms"`,
		`id="points-form"`,
		"All-Time Points",
		"Weekly Points",
		"Redeemable Rewards",
		"/static/app.js",
		"/static/styles.css",
	} {
		if !strings.Contains(html, want) {
			t.Errorf("rendered page missing %q", want)
		}
	}
}

func TestHome_RendersContentCopy(t *testing.T) {
	site := testSite(t)
	html := renderHome(t, site)

	if !strings.Contains(html, site.About.Heading) {
		t.Errorf("page missing about heading %q", site.About.Heading)
	}
	for _, tier := range site.AllTimeRewards {
		if !strings.Contains(html, tier.Reward) {
			t.Errorf("page missing reward %q", tier.Reward)
		}
	}
	if !strings.Contains(html, site.Footer) {
		t.Errorf("page missing footer %q", site.Footer)
	}
}

func TestHome_EscapesCopy(t *testing.T) {
	site := testSite(t)
	site.About.Blurb = `<script>alert("x")</script>`

	html := renderHome(t, site)

	if strings.Contains(html, site.About.Blurb) {
		t.Error("blurb rendered without escaping")
	}
	if !strings.Contains(html, "&lt;script&gt;") {
		t.Error("blurb not escaped as expected")
	}
}
