// Package content holds the static marketing copy for the site: about
// section, reward tiers, joining steps and terms. The copy lives in an
// embedded YAML file so wording and tiers can change without touching
// template code.
package content

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed content.yaml
var contentYAML []byte

// Site is the full page copy.
type Site struct {
	SiteName string `yaml:"site_name"`
	Tagline  string `yaml:"tagline"`
	Footer   string `yaml:"footer"`

	About struct {
		Heading    string   `yaml:"heading"`
		Blurb      string   `yaml:"blurb"`
		Highlights []string `yaml:"highlights"`
	} `yaml:"about"`

	Checker struct {
		Heading string `yaml:"heading"`
		Prompt  string `yaml:"prompt"`
	} `yaml:"checker"`

	JoinSteps   []string `yaml:"join_steps"`
	PointSystem []string `yaml:"point_system"`

	AllTimeRewards []RewardTier `yaml:"all_time_rewards"`
	WeeklyRewards  []RewardTier `yaml:"weekly_rewards"`

	Terms []string `yaml:"terms"`
}

// RewardTier is one row of a rewards table.
type RewardTier struct {
	Points int    `yaml:"points"`
	Reward string `yaml:"reward"`
}

// Load parses the embedded copy. An error here is a build problem, not a
// runtime condition; main treats it as fatal.
func Load() (*Site, error) {
	site := &Site{}
	if err := yaml.Unmarshal(contentYAML, site); err != nil {
		return nil, fmt.Errorf("content: parse embedded copy: %w", err)
	}

	if site.SiteName == "" {
		return nil, fmt.Errorf("content: site_name is empty")
	}
	if len(site.AllTimeRewards) == 0 || len(site.WeeklyRewards) == 0 {
		return nil, fmt.Errorf("content: reward tiers are empty")
	}

	return site, nil
}
