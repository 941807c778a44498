package content

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/russwtaylor/portfolio/internal/typewriter"
)

func TestDefault(t *testing.T) {
	c := Default()
	require.NoError(t, c.Validate())
	assert.Equal(t, []string{"Web Developer", "Software Engineer", "Creative Coder"}, c.Phrases)
	assert.Contains(t, string(c.AboutHTML()), "<strong>Apex</strong>")
	require.Len(t, c.Projects, 2)
	assert.Equal(t, "project-link-1", c.Projects[0].Link)
	assert.Equal(t, "project-link-2", c.Projects[1].Link)
	assert.Equal(t, "your-github-profile", c.Contact.GitHub)
}

func TestParse(t *testing.T) {
	tests := []struct {
		name    string
		yaml    string
		wantErr string
		check   func(t *testing.T, c *Content)
	}{
		{
			name: "overrides keep unset defaults",
			yaml: "name: Ada Lovelace\nphrases: [Analyst, Programmer]\n",
			check: func(t *testing.T, c *Content) {
				assert.Equal(t, "Ada Lovelace", c.Name)
				assert.Equal(t, []string{"Analyst", "Programmer"}, c.Phrases)
				assert.Equal(t, "russ@russwtaylor.com", c.Contact.Email)
			},
		},
		{
			name: "projects replace defaults",
			yaml: "projects:\n  - title: Engine\n    description: Difference engine\n    link: https://example.com\n",
			check: func(t *testing.T, c *Content) {
				require.Len(t, c.Projects, 1)
				assert.Equal(t, "https://example.com", c.Projects[0].Link)
			},
		},
		{
			name: "about markdown escapes raw html",
			yaml: "about: \"Hello <script>alert(1)</script> *world*\"\n",
			check: func(t *testing.T, c *Content) {
				html := string(c.AboutHTML())
				assert.Contains(t, html, "<em>world</em>")
				assert.NotContains(t, html, "<script>")
			},
		},
		{name: "empty phrase list", yaml: "phrases: []\n", wantErr: "phrases"},
		{name: "blank phrase", yaml: "phrases: [Go, \"\"]\n", wantErr: "phrases"},
		{name: "blank name", yaml: "name: \" \"\n", wantErr: "name is required"},
		{name: "untitled project", yaml: "projects:\n  - description: x\n", wantErr: "project 1"},
		{name: "bad yaml", yaml: "name: [", wantErr: "parse yaml"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, err := Parse([]byte(tt.yaml))
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			tt.check(t, c)
		})
	}
}

func TestParse_PhraseErrorsWrapAnimatorErrors(t *testing.T) {
	_, err := Parse([]byte("phrases: []\n"))
	assert.ErrorIs(t, err, typewriter.ErrNoPhrases)
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()

	c, err := Load(filepath.Join(dir, "missing.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default().Name, c.Name)

	path := filepath.Join(dir, "content.yaml")
	require.NoError(t, os.WriteFile(path, []byte("name: Grace Hopper\n"), 0o644))
	c, err = Load(path)
	require.NoError(t, err)
	assert.Equal(t, "Grace Hopper", c.Name)

	require.NoError(t, os.WriteFile(path, []byte("phrases: []\n"), 0o644))
	_, err = Load(path)
	assert.ErrorContains(t, err, path)
}
