// Package projects filters the project gallery by category.
package projects

import (
	"fmt"

	"github.com/Zachkp/portfolio/internal/content"
)

// Category selects which projects the gallery shows.
type Category string

const (
	// CategoryAll shows every project.
	CategoryAll    Category = "All"
	CategoryWeb    Category = "Web"
	CategoryMobile Category = "Mobile"
	CategoryUIUX   Category = "UI/UX"
)

// Categories returns the selectable categories in display order.
func Categories() []Category {
	return []Category{CategoryAll, CategoryWeb, CategoryMobile, CategoryUIUX}
}

// IsValid checks if the category is one of Categories.
func (c Category) IsValid() bool {
	switch c {
	case CategoryAll, CategoryWeb, CategoryMobile, CategoryUIUX:
		return true
	default:
		return false
	}
}

func (c Category) String() string { return string(c) }

// ParseCategory parses a category name. The empty string means All.
func ParseCategory(s string) (Category, error) {
	if s == "" {
		return CategoryAll, nil
	}
	c := Category(s)
	if !c.IsValid() {
		return "", fmt.Errorf("invalid category: %s (must be All, Web, Mobile, or UI/UX)", s)
	}
	return c, nil
}

// Matches reports whether p belongs to the category.
func (c Category) Matches(p content.Project) bool {
	return c == CategoryAll || string(c) == p.Category
}

// Filter returns the projects in category c, preserving their order. The
// input slice is never modified.
func Filter(all []content.Project, c Category) []content.Project {
	if c == CategoryAll {
		return append([]content.Project(nil), all...)
	}
	out := make([]content.Project, 0, len(all))
	for _, p := range all {
		if c.Matches(p) {
			out = append(out, p)
		}
	}
	return out
}

// Featured returns the featured projects, preserving their order.
func Featured(all []content.Project) []content.Project {
	var out []content.Project
	for _, p := range all {
		if p.Featured {
			out = append(out, p)
		}
	}
	return out
}

// FilterState is the gallery's selected category.
type FilterState struct {
	Selected Category
}

// NewFilterState starts with every project visible.
func NewFilterState() *FilterState {
	return &FilterState{Selected: CategoryAll}
}

// SetCategory selects c and returns the projects now visible.
func (f *FilterState) SetCategory(all []content.Project, c Category) ([]content.Project, error) {
	if !c.IsValid() {
		return nil, fmt.Errorf("invalid category: %s", c)
	}
	f.Selected = c
	return f.Visible(all), nil
}

// Visible returns the projects matching the selected category.
func (f *FilterState) Visible(all []content.Project) []content.Project {
	return Filter(all, f.Selected)
}
