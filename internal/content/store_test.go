package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	assert.Equal(t, "Pavithran Rajasekar", s.Profile().Name)
	assert.Contains(t, string(s.Profile().BioHTML), "<p>")
	require.Len(t, s.Projects(), 6)
	assert.Equal(t, "E-Commerce Platform", s.Projects()[0].Title)
	assert.Len(t, s.Experience(), 3)
	assert.Contains(t, string(s.Experience()[0].DescriptionHTML), "<strong>100k+ users</strong>")
	assert.Len(t, s.SocialLinks(), 4)
	assert.NotEmpty(t, s.Motion()["nav"].Easing)
}

func TestSkillGroups_FirstSeenOrder(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	var cats []string
	for _, g := range s.SkillGroups() {
		cats = append(cats, g.Category)
	}
	assert.Equal(t, []string{"Frontend", "Backend", "Database", "Design", "Cloud", "DevOps"}, cats)
	assert.Equal(t, "React", s.SkillGroups()[0].Skills[0].Name)
	assert.Equal(t, "TypeScript", s.SkillGroups()[0].Skills[1].Name)
}

func TestAccessorsReturnCopies(t *testing.T) {
	s, err := Default()
	require.NoError(t, err)

	ps := s.Projects()
	ps[0].Title = "mutated"
	ps[0].Technologies[0] = "mutated"
	assert.Equal(t, "E-Commerce Platform", s.Projects()[0].Title)
	assert.Equal(t, "React", s.Projects()[0].Technologies[0])

	m := s.Motion()
	delete(m, "nav")
	assert.Contains(t, s.Motion(), "nav")
}

func TestParse_Validation(t *testing.T) {
	tests := []struct {
		name string
		yaml string
		err  string
	}{
		{
			name: "missing name",
			yaml: "profile: {title: x}",
			err:  "profile name is required",
		},
		{
			name: "bad category",
			yaml: "profile: {name: a}\nprojects: [{id: 1, category: Desktop}]",
			err:  "invalid category",
		},
		{
			name: "duplicate id",
			yaml: "profile: {name: a}\nprojects: [{id: 1, category: Web}, {id: 1, category: Web}]",
			err:  "duplicate project id 1",
		},
		{
			name: "skill level",
			yaml: "profile: {name: a}\nskills: [{name: Go, level: 120}]",
			err:  "out of range",
		},
		{
			name: "malformed",
			yaml: "profile: [",
			err:  "unmarshalling",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Parse([]byte(tt.yaml))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.err)
		})
	}
}

func TestLoad_FromFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("profile: {name: Zach, bio: hi}\n"), 0o644))

	s, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Zach", s.Profile().Name)
	assert.Empty(t, s.Projects())

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.Error(t, err)
}
