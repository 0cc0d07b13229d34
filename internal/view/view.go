package view

import (
	"html/template"

	"github.com/kongnyuysido/portfolio/internal/content"
	"github.com/kongnyuysido/portfolio/internal/models"
	"github.com/kongnyuysido/portfolio/internal/motion"
	"github.com/kongnyuysido/portfolio/internal/repos"
)

const (
	NoDescription = "No description available"
	NoLanguage    = "Unknown"
)

// Sections in page order. The ids double as nav anchors and reveal targets.
var Sections = []string{"about", "skills", "projects", "experience", "contact"}

var navLabels = map[string]string{
	"about":      "About",
	"skills":     "Skills",
	"projects":   "Projects",
	"experience": "Experience",
	"contact":    "Contact",
}

type NavItem struct {
	ID    string
	Label string
}

// Layer is one parallax layer: its initial inline style and the transform
// encoded for the browser script.
type Layer struct {
	Style template.CSS
	Attr  string
}

type SkillBar struct {
	content.Skill
	Delay    string
	Revealed bool
}

type Job struct {
	content.Experience
	Delay string
}

type Card struct {
	ID          int64
	Title       string
	Description string
	URL         string
	Homepage    string
	HasHomepage bool
	Language    string
	Stars       int
	Forks       int
	Topics      []string
	Delay       string
}

// Projects is the model of the projects section.
type Projects struct {
	Loading bool
	Cards   []Card
}

// Page is everything the templates need to draw the portfolio.
type Page struct {
	*content.Content
	Nav        []NavItem
	Tel        template.URL
	Background Layer
	Foreground Layer
	Revealed   map[string]bool
	Skills     []SkillBar
	Jobs       []Job
	Projects   Projects
}

// Renderer builds page models. Scroll and Visibility are injected so pages
// can be rendered headlessly.
type Renderer struct {
	Content    *content.Content
	Scroll     motion.ScrollSource
	Visibility motion.VisibilitySource
}

func NewRenderer(c *content.Content) *Renderer {
	return &Renderer{
		Content:    c,
		Scroll:     motion.FixedScroll(0),
		Visibility: motion.NoneVisible,
	}
}

// Page builds the full page model for the given loader state.
func (r *Renderer) Page(state repos.State) Page {
	y := r.Scroll.ScrollY()
	reveal := motion.NewReveal(r.Visibility)

	p := Page{
		Content: r.Content,
		Tel:     template.URL(r.Content.Contact.Tel()),
		Background: layer(motion.HeroBackground, y),
		Foreground: layer(motion.HeroForeground, y),
		Revealed: map[string]bool{},
		Projects: ProjectsFor(state),
	}

	for _, id := range Sections {
		p.Nav = append(p.Nav, NavItem{ID: id, Label: navLabels[id]})
		p.Revealed[id] = reveal.Revealed(id)
	}
	for i, s := range r.Content.Skills {
		p.Skills = append(p.Skills, SkillBar{
			Skill:    s,
			Delay:    motion.Stagger(i, 0.1),
			Revealed: p.Revealed["skills"],
		})
	}
	for i, e := range r.Content.Experiences {
		p.Jobs = append(p.Jobs, Job{Experience: e, Delay: motion.Stagger(i, 0.2)})
	}
	return p
}

func layer(t motion.Transform, y float64) Layer {
	return Layer{Style: template.CSS(t.Style(y)), Attr: t.Attr()}
}

// ProjectsFor maps the loader state onto the projects section. Anything short
// of Settled shows the progress indicator.
func ProjectsFor(state repos.State) Projects {
	settled, ok := state.(repos.Settled)
	if !ok {
		return Projects{Loading: true}
	}

	cards := make([]Card, 0, len(settled.Repos))
	for i, repo := range settled.Repos {
		cards = append(cards, NewCard(repo, i))
	}
	return Projects{Cards: cards}
}

func NewCard(repo models.RepositorySummary, index int) Card {
	language := repo.Language
	if language == "" {
		language = NoLanguage
	}
	return Card{
		ID:          repo.ID,
		Title:       Title(repo.Name),
		Description: orDefault(repo.Description, NoDescription),
		URL:         repo.HTMLURL,
		Homepage:    orDefault(repo.Homepage, ""),
		HasHomepage: repo.HasHomepage(),
		Language:    language,
		Stars:       repo.Stars,
		Forks:       repo.Forks,
		Topics:      Topics(repo.Topics),
		Delay:       motion.Stagger(index, 0.1),
	}
}
