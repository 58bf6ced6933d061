package display

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/hammamikhairi/fridgechef/internal/domain"
)

// ── Output styles (soft palette) ─────────────────────────────────

var (
	// BannerStyle — muted slate for the startup banner.
	BannerStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	// Recipe name — soft mint.
	titleStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bbf7d0")).
			Bold(true)

	// Primary text — light zinc.
	primaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#d4d4d8"))

	// Secondary text — dimmed zinc for hints and metadata.
	secondaryStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#71717a"))

	// Section headers — soft sky blue.
	sectionStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#bae6fd"))

	// Errors — soft coral.
	errorStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#fca5a5"))

	promptStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#94a3b8"))

	userInputEchoStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#a1a1aa"))

	barStyle = lipgloss.NewStyle().
			Background(lipgloss.Color("#27272a")).
			Foreground(lipgloss.Color("#a1a1aa"))
)

// Render projects a view state onto display text. Pure — no I/O, no
// mutation, safe to call from anywhere.
func Render(vs domain.ViewState) string {
	switch vs.Phase {
	case domain.PhaseLoading:
		return secondaryStyle.Render("  Generating your recipe...")
	case domain.PhaseError:
		return errorStyle.Render("  " + vs.Message)
	case domain.PhaseResult:
		return renderRecipe(vs.Recipe)
	default:
		return secondaryStyle.Render("  Add ingredients, then type 'generate'.")
	}
}

// renderRecipe lays out a full recipe. Every scalar is shown verbatim;
// optional sections disappear entirely when absent.
func renderRecipe(r *domain.Recipe) string {
	if r == nil {
		return ""
	}

	var b strings.Builder

	b.WriteString(titleStyle.Render("  " + r.Name))
	b.WriteString("\n")
	if r.Description != "" {
		b.WriteString(primaryStyle.Render("  " + r.Description))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	// Fixed 4-cell info grid. Values stay as the service sent them.
	grid := fmt.Sprintf("  Prep: %s   Cook: %s   Serves: %s   Difficulty: %s",
		r.PrepTime, r.CookTime, r.Servings, r.Difficulty)
	b.WriteString(secondaryStyle.Render(grid))
	b.WriteString("\n\n")

	b.WriteString(sectionStyle.Render("  Ingredients"))
	b.WriteString("\n")
	for _, ing := range r.Ingredients {
		line := strings.TrimRight(fmt.Sprintf("  - %s %s %s", ing.Item, ing.Amount, ing.Unit), " ")
		b.WriteString(primaryStyle.Render(line))
		b.WriteString("\n")
	}
	b.WriteString("\n")

	b.WriteString(sectionStyle.Render("  Instructions"))
	b.WriteString("\n")
	for _, step := range r.Instructions {
		// The step label is the service's own numbering, shown as-is.
		b.WriteString(primaryStyle.Render(fmt.Sprintf("  %d. %s", step.Step, step.Instruction)))
		b.WriteString("\n")
	}

	if len(r.Tips) > 0 {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("  Tips"))
		b.WriteString("\n")
		for _, tip := range r.Tips {
			b.WriteString(secondaryStyle.Render("  * " + tip))
			b.WriteString("\n")
		}
	}

	if r.Nutrition != nil {
		b.WriteString("\n")
		b.WriteString(sectionStyle.Render("  Nutrition (per serving)"))
		b.WriteString("\n")
		n := r.Nutrition
		b.WriteString(secondaryStyle.Render(fmt.Sprintf("  Calories: %s   Protein: %s   Carbs: %s   Fat: %s",
			n.Calories, n.Protein, n.Carbs, n.Fat)))
		b.WriteString("\n")
	}

	return strings.TrimRight(b.String(), "\n")
}

// RenderStatusBar builds the one-line status bar shown above the
// prompt: current phase plus a compact form summary.
func RenderStatusBar(vs domain.ViewState, ingredients, restrictions int, cuisine domain.Cuisine, meal domain.Meal, ct domain.CookingTime, width int) string {
	parts := []string{fmt.Sprintf("[%s]", vs.Phase)}
	parts = append(parts, fmt.Sprintf("basket: %d", ingredients))
	if restrictions > 0 {
		parts = append(parts, fmt.Sprintf("diet: %d", restrictions))
	}
	if cuisine != "" {
		parts = append(parts, "cuisine: "+string(cuisine))
	}
	if meal != "" {
		parts = append(parts, "meal: "+string(meal))
	}
	if ct != "" {
		parts = append(parts, "time: "+string(ct))
	}

	line := " " + strings.Join(parts, " · ")
	if width > len(line) {
		line += strings.Repeat(" ", width-len(line))
	}
	return barStyle.Render(line)
}
