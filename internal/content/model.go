// Package content is the read-only store of everything the portfolio page
// displays.
package content

import "html/template"

// Profile is the site owner's personal information.
type Profile struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Tagline  string `yaml:"tagline"`
	Bio      string `yaml:"bio"`
	Location string `yaml:"location"`
	Email    string `yaml:"email"`
	Avatar   string `yaml:"avatar"`

	BioHTML template.HTML `yaml:"-"`
}

// Skill is one entry of the skills panel.
type Skill struct {
	Name     string `yaml:"name"`
	Level    int    `yaml:"level"`
	Category string `yaml:"category"`
}

// SkillGroup is a category with its skills in source order.
type SkillGroup struct {
	Category string
	Skills   []Skill
}

// Project is one gallery entry.
type Project struct {
	ID           int      `yaml:"id"`
	Title        string   `yaml:"title"`
	Description  string   `yaml:"description"`
	Image        string   `yaml:"image"`
	Technologies []string `yaml:"technologies"`
	RepoURL      string   `yaml:"github"`
	DemoURL      string   `yaml:"demo"`
	Category     string   `yaml:"category"`
	Featured     bool     `yaml:"featured"`
}

// Experience is one position on the about timeline.
type Experience struct {
	ID           int      `yaml:"id"`
	Company      string   `yaml:"company"`
	Position     string   `yaml:"position"`
	Duration     string   `yaml:"duration"`
	Description  string   `yaml:"description"`
	Technologies []string `yaml:"technologies"`

	DescriptionHTML template.HTML `yaml:"-"`
}

// SocialLink points at one of the owner's profiles.
type SocialLink struct {
	Name string `yaml:"name"`
	URL  string `yaml:"url"`
	Icon string `yaml:"icon"`
}

// Feature is one highlight card in the about section.
type Feature struct {
	Icon        string `yaml:"icon"`
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
}

// Stat is a headline number in the about section.
type Stat struct {
	Number string `yaml:"number"`
	Label  string `yaml:"label"`
}

// LanguageShare is a slice of the GitHub language chart.
type LanguageShare struct {
	Name       string `yaml:"name"`
	Percentage int    `yaml:"percentage"`
	Color      string `yaml:"color"`
}

// GitHubStats are the numbers shown next to the skills panel.
type GitHubStats struct {
	Username      string          `yaml:"username"`
	PublicRepos   int             `yaml:"publicRepos"`
	Followers     int             `yaml:"followers"`
	Following     int             `yaml:"following"`
	TotalStars    int             `yaml:"totalStars"`
	TotalForks    int             `yaml:"totalForks"`
	Contributions int             `yaml:"contributions"`
	Languages     []LanguageShare `yaml:"languages"`
}

// Timing is the entrance animation of one page element, in seconds.
type Timing struct {
	Duration float64 `yaml:"duration"`
	Delay    float64 `yaml:"delay"`
	Stagger  float64 `yaml:"stagger"`
	Easing   string  `yaml:"easing"`
}

// document is the on-disk shape of the content file.
type document struct {
	Profile     Profile           `yaml:"profile"`
	Skills      []Skill           `yaml:"skills"`
	Projects    []Project         `yaml:"projects"`
	Experience  []Experience      `yaml:"experience"`
	SocialLinks []SocialLink      `yaml:"socialLinks"`
	Features    []Feature         `yaml:"features"`
	Stats       []Stat            `yaml:"stats"`
	Exploring   []string          `yaml:"exploring"`
	GitHub      GitHubStats       `yaml:"github"`
	Motion      map[string]Timing `yaml:"motion"`
}
