package content

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"os"
	"strings"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	gmhtml "github.com/yuin/goldmark/renderer/html"
	"gopkg.in/yaml.v3"
)

//go:embed data/portfolio.yaml
var embedded embed.FS

// ProjectCategories are the categories a project may declare.
var ProjectCategories = []string{"Web", "Mobile", "UI/UX"}

// Store holds the parsed content. Every accessor returns a copy.
type Store struct {
	doc document
}

// Default loads the content compiled into the binary.
func Default() (*Store, error) {
	data, err := embedded.ReadFile("data/portfolio.yaml")
	if err != nil {
		return nil, fmt.Errorf("error reading embedded content: %w", err)
	}
	return Parse(data)
}

// Load reads a content file from disk. An empty path loads the embedded
// content.
func Load(path string) (*Store, error) {
	if path == "" {
		return Default()
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading content file %s: %w", path, err)
	}
	s, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content file %s: %w", path, err)
	}
	return s, nil
}

// Parse decodes and validates a YAML content document and renders its
// Markdown fields.
func Parse(data []byte) (*Store, error) {
	var doc document
	if err := yaml.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("error unmarshalling content: %w", err)
	}
	if err := validate(&doc); err != nil {
		return nil, err
	}

	md := goldmark.New(
		goldmark.WithExtensions(extension.GFM),
		goldmark.WithRendererOptions(gmhtml.WithHardWraps()),
	)
	var err error
	if doc.Profile.BioHTML, err = render(md, doc.Profile.Bio); err != nil {
		return nil, fmt.Errorf("rendering bio: %w", err)
	}
	for i := range doc.Experience {
		exp := &doc.Experience[i]
		if exp.DescriptionHTML, err = render(md, exp.Description); err != nil {
			return nil, fmt.Errorf("rendering experience %d: %w", exp.ID, err)
		}
	}
	return &Store{doc: doc}, nil
}

func render(md goldmark.Markdown, src string) (template.HTML, error) {
	var buf bytes.Buffer
	if err := md.Convert([]byte(src), &buf); err != nil {
		return "", err
	}
	return template.HTML(buf.String()), nil
}

func validate(doc *document) error {
	if strings.TrimSpace(doc.Profile.Name) == "" {
		return fmt.Errorf("profile name is required")
	}
	seen := make(map[int]bool, len(doc.Projects))
	for _, p := range doc.Projects {
		if seen[p.ID] {
			return fmt.Errorf("duplicate project id %d", p.ID)
		}
		seen[p.ID] = true
		if !validCategory(p.Category) {
			return fmt.Errorf("project %d: invalid category %q (must be one of %s)",
				p.ID, p.Category, strings.Join(ProjectCategories, ", "))
		}
	}
	for _, s := range doc.Skills {
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("skill %s: level %d out of range 0-100", s.Name, s.Level)
		}
	}
	return nil
}

func validCategory(c string) bool {
	for _, v := range ProjectCategories {
		if v == c {
			return true
		}
	}
	return false
}

func (s *Store) Profile() Profile { return s.doc.Profile }

func (s *Store) Skills() []Skill { return append([]Skill(nil), s.doc.Skills...) }

// SkillGroups groups skills by category. Groups appear in the order their
// category is first seen.
func (s *Store) SkillGroups() []SkillGroup {
	var groups []SkillGroup
	index := map[string]int{}
	for _, sk := range s.doc.Skills {
		i, ok := index[sk.Category]
		if !ok {
			i = len(groups)
			index[sk.Category] = i
			groups = append(groups, SkillGroup{Category: sk.Category})
		}
		groups[i].Skills = append(groups[i].Skills, sk)
	}
	return groups
}

func (s *Store) Projects() []Project {
	out := make([]Project, len(s.doc.Projects))
	for i, p := range s.doc.Projects {
		p.Technologies = append([]string(nil), p.Technologies...)
		out[i] = p
	}
	return out
}

func (s *Store) Experience() []Experience {
	out := make([]Experience, len(s.doc.Experience))
	for i, e := range s.doc.Experience {
		e.Technologies = append([]string(nil), e.Technologies...)
		out[i] = e
	}
	return out
}

func (s *Store) SocialLinks() []SocialLink {
	return append([]SocialLink(nil), s.doc.SocialLinks...)
}

func (s *Store) Features() []Feature { return append([]Feature(nil), s.doc.Features...) }

func (s *Store) Stats() []Stat { return append([]Stat(nil), s.doc.Stats...) }

func (s *Store) Exploring() []string { return append([]string(nil), s.doc.Exploring...) }

func (s *Store) GitHub() GitHubStats {
	g := s.doc.GitHub
	g.Languages = append([]LanguageShare(nil), g.Languages...)
	return g
}

// Motion returns the animation timing table keyed by element name.
func (s *Store) Motion() map[string]Timing {
	out := make(map[string]Timing, len(s.doc.Motion))
	for k, v := range s.doc.Motion {
		out[k] = v
	}
	return out
}
