// Package templates renders the site's pages as templ components. The page
// is one static document; the points checker on it talks to the JSON API
// from a small client script.
package templates

import (
	"context"
	"fmt"
	"io"

	"github.com/a-h/templ"
	"github.com/sandwichsociety/pointsite/internal/content"
)

// esc is a shorthand for HTML-escaping dynamic copy.
func esc(s string) string { return templ.EscapeString(s) }

// Home renders the full landing page: header, points checker, rewards,
// how-to-join, about, terms and footer.
func Home(site *content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>%s</title>
<link rel="stylesheet" href="/static/styles.css">
</head>
<body>
`, esc(site.SiteName)); err != nil {
			return err
		}

		sections := []templ.Component{
			header(site),
			checkerSection(site),
			rewardsSection(site),
			joinSection(site),
			aboutSection(site),
			termsSection(site),
			footer(site),
		}
		for _, c := range sections {
			if err := c.Render(ctx, w); err != nil {
				return err
			}
		}

		_, err := io.WriteString(w, "<script src=\"/static/app.js\"></script>\n</body>\n</html>\n")
		return err
	})
}

func header(site *content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<header class="site-header">
<div class="container nav-row">
<a class="logo" href="/">%s</a>
<nav class="site-nav">
<a href="#check">Check Points</a>
<a href="#rewards">Rewards</a>
<a href="#join">How to Join</a>
<a href="#about">About</a>
<a href="#terms">Terms</a>
</nav>
</div>
</header>
`, esc(site.SiteName))
		return err
	})
}

func checkerSection(site *content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, `<section id="check" class="section checker">
<div class="container">
<h1>%s</h1>
<p class="prompt">%s</p>
<form id="points-form" class="points-form" autocomplete="off">
<input type="text" id="username" name="username" placeholder="Your username" aria-label="Username">
<button type="submit">Check Points</button>
</form>
<p id="points-error" class="error hidden" role="alert"></p>
<div id="points-result" class="points-result hidden">
<div class="points-card">
<h3>All-Time Points</h3>
<p class="points-value"><span id="alltime-value">0</span> pts</p>
<div class="progress"><div id="alltime-bar" class="progress-fill"></div></div>
<p class="progress-label" id="alltime-label"></p>
</div>
<div class="points-card">
<h3>Weekly Points</h3>
<p class="points-value"><span id="weekly-value">0</span> pts</p>
<div class="progress"><div id="weekly-bar" class="progress-fill"></div></div>
<p class="progress-label" id="weekly-label"></p>
</div>
</div>
</div>
</section>
`, esc(site.Checker.Heading), esc(site.Checker.Prompt))
		return err
	})
}

func rewardsSection(site *content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="rewards" class="section">
<div class="container">
<h2>Redeemable Rewards</h2>
<div class="rewards-grid">
`); err != nil {
			return err
		}
		if err := rewardTable("All-Time Rewards", site.AllTimeRewards).Render(ctx, w); err != nil {
			return err
		}
		if err := rewardTable("Weekly Rewards", site.WeeklyRewards).Render(ctx, w); err != nil {
			return err
		}
		if _, err := io.WriteString(w, "</div>\n<div class=\"point-system\">\n<h4>Point System:</h4>\n<ul>\n"); err != nil {
			return err
		}
		for _, line := range site.PointSystem {
			if _, err := fmt.Fprintf(w, "<li>%s</li>\n", esc(line)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ul>\n</div>\n</div>\n</section>\n")
		return err
	})
}

func rewardTable(title string, tiers []content.RewardTier) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, "<div class=\"reward-card\">\n<h3>%s</h3>\n<table class=\"reward-table\">\n", esc(title)); err != nil {
			return err
		}
		for _, tier := range tiers {
			if _, err := fmt.Fprintf(w, "<tr><td class=\"tier-points\">%d pts</td><td>%s</td></tr>\n",
				tier.Points, esc(tier.Reward)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</table>\n</div>\n")
		return err
	})
}

func joinSection(site *content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="join" class="section">
<div class="container">
<h2>How to Join</h2>
<ol class="join-steps">
`); err != nil {
			return err
		}
		for _, step := range site.JoinSteps {
			if _, err := fmt.Fprintf(w, "<li>%s</li>\n", esc(step)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ol>\n</div>\n</section>\n")
		return err
	})
}

func aboutSection(site *content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := fmt.Fprintf(w, `<section id="about" class="section">
<div class="container">
<h2>%s</h2>
<p class="blurb">%s</p>
<div class="highlights">
`, esc(site.About.Heading), esc(site.About.Blurb)); err != nil {
			return err
		}
		for _, h := range site.About.Highlights {
			if _, err := fmt.Fprintf(w, "<div class=\"highlight\">%s</div>\n", esc(h)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</div>\n</div>\n</section>\n")
		return err
	})
}

func termsSection(site *content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		if _, err := io.WriteString(w, `<section id="terms" class="section">
<div class="container">
<h2>Terms &amp; Conditions</h2>
<ol class="terms-list">
`); err != nil {
			return err
		}
		for _, term := range site.Terms {
			if _, err := fmt.Fprintf(w, "<li>%s</li>\n", esc(term)); err != nil {
				return err
			}
		}
		_, err := io.WriteString(w, "</ol>\n</div>\n</section>\n")
		return err
	})
}

func footer(site *content.Site) templ.Component {
	return templ.ComponentFunc(func(ctx context.Context, w io.Writer) error {
		_, err := fmt.Fprintf(w, "<footer class=\"site-footer\">\n<div class=\"container\">%s</div>\n</footer>\n", esc(site.Footer))
		return err
	})
}
