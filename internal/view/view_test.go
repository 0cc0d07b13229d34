package view_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kongnyuysido/portfolio/internal/content"
	"github.com/kongnyuysido/portfolio/internal/models"
	"github.com/kongnyuysido/portfolio/internal/motion"
	"github.com/kongnyuysido/portfolio/internal/repos"
	"github.com/kongnyuysido/portfolio/internal/view"
)

func ptr(s string) *string { return &s }

func TestTitle(t *testing.T) {
	testCases := []struct {
		Input    string
		Expected string
	}{
		{Input: "my-cool-app", Expected: "My Cool App"},
		{Input: "portfolio", Expected: "Portfolio"},
		{Input: "next.js-blog", Expected: "Next.Js Blog"},
		{Input: "snake_case-repo", Expected: "Snake_case Repo"},
		{Input: "already Title", Expected: "Already Title"},
		{Input: "", Expected: ""},
	}

	for _, tc := range testCases {
		t.Run(tc.Input, func(t *testing.T) {
			assert.Equal(t, tc.Expected, view.Title(tc.Input))
		})
	}
}

func TestTopicsKeepsFirstThree(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, view.Topics([]string{"a", "b", "c", "d"}))
	assert.Equal(t, []string{"a"}, view.Topics([]string{"a"}))
	assert.Empty(t, view.Topics(nil))
}

func TestProjectsWhileLoading(t *testing.T) {
	for _, state := range []repos.State{repos.Idle{}, repos.Loading{}} {
		t.Run(state.Phase(), func(t *testing.T) {
			p := view.ProjectsFor(state)
			assert.True(t, p.Loading)
			assert.Empty(t, p.Cards)
		})
	}
}

func TestProjectsSettled(t *testing.T) {
	list := []models.RepositorySummary{
		{ID: 2, Name: "b-repo", Topics: []string{"x"}},
		{ID: 1, Name: "a-repo"},
		{ID: 3, Name: "c-repo"},
	}

	p := view.ProjectsFor(repos.Settled{Repos: list})
	assert.False(t, p.Loading)
	require.Len(t, p.Cards, 3)

	// Endpoint order is kept.
	assert.Equal(t, int64(2), p.Cards[0].ID)
	assert.Equal(t, int64(1), p.Cards[1].ID)
	assert.Equal(t, int64(3), p.Cards[2].ID)
	assert.Equal(t, "0.2s", p.Cards[2].Delay)
}

func TestProjectsSettledEmpty(t *testing.T) {
	p := view.ProjectsFor(repos.Settled{})
	assert.False(t, p.Loading)
	assert.Empty(t, p.Cards)
}

func TestNewCard(t *testing.T) {
	t.Run("fallbacks", func(t *testing.T) {
		card := view.NewCard(models.RepositorySummary{
			Name:    "my-cool-app",
			HTMLURL: "https://github.com/KONGNYUYSIDO/my-cool-app",
			Topics:  []string{"a", "b", "c", "d"},
		}, 0)

		assert.Equal(t, "My Cool App", card.Title)
		assert.Equal(t, view.NoDescription, card.Description)
		assert.Equal(t, view.NoLanguage, card.Language)
		assert.False(t, card.HasHomepage)
		assert.Empty(t, card.Homepage)
		assert.Equal(t, []string{"a", "b", "c"}, card.Topics)
		assert.Equal(t, "https://github.com/KONGNYUYSIDO/my-cool-app", card.URL)
	})

	t.Run("populated", func(t *testing.T) {
		card := view.NewCard(models.RepositorySummary{
			Name:        "site",
			Description: ptr("My site"),
			Homepage:    ptr("https://example.com"),
			Language:    "Go",
			Stars:       7,
			Forks:       2,
		}, 1)

		assert.Equal(t, "My site", card.Description)
		assert.True(t, card.HasHomepage)
		assert.Equal(t, "https://example.com", card.Homepage)
		assert.Equal(t, "Go", card.Language)
		assert.Equal(t, 7, card.Stars)
		assert.Equal(t, 2, card.Forks)
		assert.Equal(t, "0.1s", card.Delay)
	})

	t.Run("empty_homepage", func(t *testing.T) {
		card := view.NewCard(models.RepositorySummary{Name: "x", Homepage: ptr("")}, 0)
		assert.False(t, card.HasHomepage)
	})
}

func TestRendererPage(t *testing.T) {
	c, err := content.Load()
	require.NoError(t, err)

	r := &view.Renderer{
		Content:    c,
		Scroll:     motion.FixedScroll(150),
		Visibility: motion.VisibleSet{"about": true, "skills": true},
	}
	p := r.Page(repos.Loading{})

	assert.True(t, p.Projects.Loading)
	assert.Equal(t, "transform: translateY(-25px)", string(p.Background.Style))
	assert.Equal(t, "transform: translateY(12.5px)", string(p.Foreground.Style))
	assert.Equal(t, "0,300,0,-50", p.Background.Attr)

	assert.True(t, p.Revealed["about"])
	assert.True(t, p.Revealed["skills"])
	assert.False(t, p.Revealed["contact"])

	require.Len(t, p.Nav, len(view.Sections))
	assert.Equal(t, view.NavItem{ID: "about", Label: "About"}, p.Nav[0])

	require.Len(t, p.Skills, len(c.Skills))
	assert.True(t, p.Skills[0].Revealed)
	assert.Equal(t, "0.3s", p.Skills[3].Delay)
	require.Len(t, p.Jobs, len(c.Experiences))
	assert.Equal(t, "0.2s", p.Jobs[1].Delay)
	assert.Equal(t, "tel:+237651833988", string(p.Tel))
}

func TestRendererIsPure(t *testing.T) {
	c, err := content.Load()
	require.NoError(t, err)

	r := view.NewRenderer(c)
	state := repos.Settled{Repos: []models.RepositorySummary{{ID: 1, Name: "x"}}}

	assert.Equal(t, r.Page(state), r.Page(state))
	assert.Equal(t, "transform: translateY(0px)", string(r.Page(state).Background.Style))
}
