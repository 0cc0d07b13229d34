package content

import (
	_ "embed"
	"fmt"
	"strings"

	"go.yaml.in/yaml/v3"
)

//go:embed content.yaml
var document []byte

type Meta struct {
	Title             string `yaml:"title"`
	Description       string `yaml:"description"`
	Keywords          string `yaml:"keywords"`
	Author            string `yaml:"author"`
	SocialTitle       string `yaml:"social_title"`
	SocialDescription string `yaml:"social_description"`
	TwitterCard       string `yaml:"twitter_card"`
}

type Skill struct {
	Name  string `yaml:"name"`
	Level int    `yaml:"level"`
	Color string `yaml:"color"`
}

type Experience struct {
	Period      string   `yaml:"period"`
	Title       string   `yaml:"title"`
	Company     string   `yaml:"company"`
	Description []string `yaml:"description"`
}

type Contact struct {
	Intro    string `yaml:"intro"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Address  string `yaml:"address"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}

// MailTo is the mailto: link for the contact email.
func (c Contact) MailTo() string {
	return "mailto:" + c.Email
}

// Tel is the tel: link for the contact phone, spaces stripped.
func (c Contact) Tel() string {
	return "tel:" + strings.ReplaceAll(c.Phone, " ", "")
}

// Content is everything on the page that does not come from GitHub.
type Content struct {
	Meta            Meta         `yaml:"meta"`
	Name            string       `yaml:"name"`
	FullName        string       `yaml:"full_name"`
	Initials        string       `yaml:"initials"`
	Headline        string       `yaml:"headline"`
	Tagline         string       `yaml:"tagline"`
	About           []string     `yaml:"about"`
	Location        string       `yaml:"location"`
	Availability    string       `yaml:"availability"`
	YearsExperience string       `yaml:"years_experience"`
	Skills          []Skill      `yaml:"skills"`
	Experiences     []Experience `yaml:"experiences"`
	Contact         Contact      `yaml:"contact"`
	Footer          string       `yaml:"footer"`
}

// Load parses the embedded content document.
func Load() (*Content, error) {
	return Parse(document)
}

// Parse decodes and validates a content document.
func Parse(data []byte) (*Content, error) {
	var c Content
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("parsing content: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func (c *Content) Validate() error {
	if c.Name == "" {
		return fmt.Errorf("content: name is required")
	}
	for i, s := range c.Skills {
		if s.Name == "" {
			return fmt.Errorf("content: skill %d has no name", i)
		}
		if s.Level < 0 || s.Level > 100 {
			return fmt.Errorf("content: skill %q level %d outside 0..100", s.Name, s.Level)
		}
	}
	for i, e := range c.Experiences {
		if e.Title == "" {
			return fmt.Errorf("content: experience %d has no title", i)
		}
	}
	return nil
}
