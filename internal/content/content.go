// Package content holds the copy shown on the portfolio page and loads
// overrides for it from a YAML file.
package content

import (
	"bytes"
	"errors"
	"fmt"
	"html/template"
	"os"
	"strings"
	"sync"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"gopkg.in/yaml.v3"

	"github.com/russwtaylor/portfolio/internal/typewriter"
)

type Project struct {
	Title       string `yaml:"title" json:"title"`
	Description string `yaml:"description" json:"description"`
	Link        string `yaml:"link" json:"link,omitempty"`
}

type Contact struct {
	Email    string `yaml:"email" json:"email,omitempty"`
	LinkedIn string `yaml:"linkedin" json:"linkedin,omitempty"`
	GitHub   string `yaml:"github" json:"github,omitempty"`
}

// Content is everything the page renders that is not layout.
type Content struct {
	Name     string    `yaml:"name"`
	Title    string    `yaml:"title"`
	Avatar   string    `yaml:"avatar"`
	About    string    `yaml:"about"` // markdown
	Phrases  []string  `yaml:"phrases"`
	Projects []Project `yaml:"projects"`
	Contact  Contact   `yaml:"contact"`

	aboutHTML template.HTML
}

var (
	markdownOnce sync.Once
	markdown     goldmark.Markdown
)

func markdownParser() goldmark.Markdown {
	markdownOnce.Do(func() {
		markdown = goldmark.New(goldmark.WithExtensions(extension.GFM))
	})
	return markdown
}

// Default returns the built-in copy.
func Default() *Content {
	c := &Content{
		Name:  "Russell Taylor",
		Title: "Salesforce Developer",
		About: `I am an experienced Salesforce Developer with over 6 years of expertise in designing and
implementing customized Salesforce solutions. My passion for technology and problem-solving drives
me to continuously innovate and optimize Salesforce environments for diverse business needs.

With a strong foundation in **Apex**, **Visualforce**, **Lightning Components**, and integrations,
I excel in creating seamless user experiences and robust, scalable systems.`,
		Phrases: []string{"Web Developer", "Software Engineer", "Creative Coder"},
		Projects: []Project{
			{Title: "Project 1", Description: "Description of project 1.", Link: "project-link-1"},
			{Title: "Project 2", Description: "Description of project 2.", Link: "project-link-2"},
		},
		Contact: Contact{
			Email:    "russ@russwtaylor.com",
			LinkedIn: "https://www.linkedin.com/in/russelltaylor812/",
			GitHub:   "your-github-profile",
		},
	}
	if err := c.render(); err != nil {
		panic(err)
	}
	return c
}

// Load reads content from path. A missing file yields Default.
func Load(path string) (*Content, error) {
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return Default(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("read content %s: %w", path, err)
	}
	c, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("content %s: %w", path, err)
	}
	return c, nil
}

// Parse overlays YAML data on the defaults. Lists in data replace the
// default lists rather than extending them.
func Parse(data []byte) (*Content, error) {
	c := Default()
	if err := yaml.Unmarshal(data, c); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	if err := c.render(); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Content) Validate() error {
	if strings.TrimSpace(c.Name) == "" {
		return errors.New("name is required")
	}
	if _, err := typewriter.New(c.Phrases); err != nil {
		return fmt.Errorf("phrases: %w", err)
	}
	for i, p := range c.Projects {
		if strings.TrimSpace(p.Title) == "" {
			return fmt.Errorf("project %d: title is required", i+1)
		}
	}
	return nil
}

// AboutHTML is the About text rendered from markdown. Raw HTML in the
// source is escaped.
func (c *Content) AboutHTML() template.HTML {
	return c.aboutHTML
}

func (c *Content) render() error {
	var buf bytes.Buffer
	if err := markdownParser().Convert([]byte(c.About), &buf); err != nil {
		return fmt.Errorf("render about: %w", err)
	}
	c.aboutHTML = template.HTML(buf.String())
	return nil
}
