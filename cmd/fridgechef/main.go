// fridgechef — turn whatever is in your fridge into a recipe.
//
// Usage:
//
//	fridgechef [-verbose] [-quiet] [-service-url http://host:port]
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	stdlog "log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/joho/godotenv"

	"github.com/hammamikhairi/fridgechef/internal/api"
	"github.com/hammamikhairi/fridgechef/internal/config"
	"github.com/hammamikhairi/fridgechef/internal/conversation"
	"github.com/hammamikhairi/fridgechef/internal/display"
	"github.com/hammamikhairi/fridgechef/internal/domain"
	"github.com/hammamikhairi/fridgechef/internal/form"
	"github.com/hammamikhairi/fridgechef/internal/logger"
	"github.com/hammamikhairi/fridgechef/internal/orchestrator"
)

func main() {
	_ = godotenv.Load()

	verbose := flag.Bool("verbose", false, "enable verbose/debug logging")
	quiet := flag.Bool("quiet", false, "disable all logging")
	logFile := flag.String("log-file", ".fridgechef-logs/fridgechef.log", "file to write logs to (use \"stderr\" to log to console)")
	serviceURL := flag.String("service-url", "", "recipe service base URL (overrides "+config.EnvServiceURL+")")
	flag.Parse()

	// Configure logger.
	logLevel := logger.LevelNormal
	if *verbose {
		logLevel = logger.LevelVerbose
	}
	if *quiet {
		logLevel = logger.LevelOff
	}

	// Direct logs to a file by default so the REPL stays clean.
	var logOut io.Writer = os.Stderr
	if *logFile != "" && *logFile != "stderr" {
		dir := filepath.Dir(*logFile)
		if dir != "" && dir != "." {
			os.MkdirAll(dir, 0o755)
		}
		f, err := os.OpenFile(*logFile, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: could not open log file %s: %v (falling back to stderr)\n", *logFile, err)
		} else {
			logOut = f
			defer f.Close()
		}
	}

	// Keep third-party stdlib logging off the terminal too.
	stdlog.SetOutput(logOut)
	stdlog.SetFlags(stdlog.Ltime)

	log := logger.New(logLevel, logOut)

	// Set up context — cancelled when the UI quits.
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	// Wire dependencies.
	baseURL := config.ServiceURL(*serviceURL)
	client := api.NewClient(baseURL, log)
	formState := form.New(log)
	parser := conversation.NewKeywordParser(log)
	ui := display.NewUI()

	app := &cliApp{
		form:      formState,
		parser:    parser,
		assistant: client,
		log:       log,
		ui:        ui,
	}

	// Every view-state transition refreshes the status bar; settlements
	// additionally print into the scrollback.
	app.orch = orchestrator.New(formState, client, log,
		orchestrator.WithTransitionHook(app.onTransition),
	)

	log.Info("recipe service: %s", baseURL)

	// Reachability probe — informational only, the user can still type.
	go func() {
		pingCtx, pingCancel := context.WithTimeout(ctx, 5*time.Second)
		defer pingCancel()
		if err := client.Ping(pingCtx); err != nil {
			log.Warn("recipe service unreachable at startup: %v", err)
		} else {
			log.Info("recipe service is up")
		}
	}()

	fmt.Println(display.RenderBanner())
	fmt.Println(display.BannerStyle.Render("  Type ingredients with 'add <name>', then 'generate'."))
	fmt.Println(display.BannerStyle.Render("  Type 'help' for commands, 'quit' to exit."))
	fmt.Println()

	// Run app logic in a background goroutine.
	go func() {
		ui.WaitReady()
		app.run(ctx)
		ui.Quit()
	}()

	// Bubble Tea owns the terminal — blocks until quit.
	if err := ui.Run(); err != nil {
		log.Error("display: %v", err)
	}
	cancel()
}

type cliApp struct {
	form      *form.State
	orch      *orchestrator.Orchestrator
	parser    domain.CommandParser
	assistant domain.Assistant
	log       *logger.Logger
	ui        *display.UI
}

// onTransition mirrors every view-state change into the UI: the status
// bar always, the scrollback on settlements. Runs on the orchestrator's
// goroutine — all UI calls here are thread-safe.
func (a *cliApp) onTransition(vs domain.ViewState) {
	a.ui.SetState(vs)

	switch vs.Phase {
	case domain.PhaseResult:
		a.ui.Println("")
		a.ui.PrintBlock(display.Render(vs))
		a.ui.Println("")
		a.ui.PrintHint("Type 'generate' for another take, or 'reset' to start over.")
	case domain.PhaseError:
		a.ui.PrintErr(vs.Message)
	}
}

// pushSummary refreshes the form counters in the status bar.
func (a *cliApp) pushSummary() {
	a.ui.SetSummary(display.FormSummary{
		Ingredients:  len(a.form.Ingredients()),
		Restrictions: len(a.form.Restrictions()),
		Cuisine:      a.form.Cuisine(),
		Meal:         a.form.Meal(),
		CookingTime:  a.form.CookingTime(),
	})
}

func (a *cliApp) run(ctx context.Context) {
	a.pushSummary()

	uiCh := a.ui.InputChan()

	for {
		var input string
		var ok bool

		select {
		case <-ctx.Done():
			return
		case input, ok = <-uiCh:
			if !ok {
				return
			}
		}

		input = strings.TrimSpace(input)
		if input == "" {
			continue
		}

		cmd, err := a.parser.Parse(ctx, input)
		if err != nil {
			a.log.Error("parsing input: %v", err)
			continue
		}

		a.log.Debug("command: %s (payload=%q)", cmd.Type, cmd.Payload)

		if a.handleCommand(ctx, cmd) {
			return
		}
	}
}

// handleCommand dispatches one parsed command. Returns true to quit.
func (a *cliApp) handleCommand(ctx context.Context, cmd *domain.Command) bool {
	switch cmd.Type {
	case domain.CmdAddIngredient:
		a.addIngredient(cmd.Payload)
	case domain.CmdRemoveIngredient:
		a.removeIngredient(cmd.Payload)
	case domain.CmdAddRestriction:
		a.addRestriction(cmd.Payload)
	case domain.CmdRemoveRestriction:
		a.removeRestriction(cmd.Payload)
	case domain.CmdSetCuisine:
		a.setCuisine(cmd.Payload)
	case domain.CmdSetMeal:
		a.setMeal(cmd.Payload)
	case domain.CmdSetCookingTime:
		a.setCookingTime(cmd.Payload)
	case domain.CmdGenerate:
		a.generate(ctx)
	case domain.CmdReset:
		a.reset()
	case domain.CmdStatus:
		a.status()
	case domain.CmdOptions:
		a.showOptions()
	case domain.CmdHelp:
		a.showHelp()
	case domain.CmdAsk:
		a.ask(ctx, cmd.Payload)
	case domain.CmdQuit:
		a.ui.PrintChat("Happy cooking!")
		// Brief pause so the goodbye lands before teardown.
		time.Sleep(150 * time.Millisecond)
		return true
	case domain.CmdUnknown:
		a.ui.PrintHint(fmt.Sprintf("Didn't catch that (%q). Type 'help' for commands.", cmd.Payload))
	}
	return false
}

func (a *cliApp) addIngredient(text string) {
	a.form.SetPendingIngredient(text)
	if a.form.AddIngredient() {
		a.ui.PrintLine(fmt.Sprintf("Added %s (basket: %d).", text, len(a.form.Ingredients())))
	} else {
		a.ui.PrintHint(fmt.Sprintf("%s is already in the basket.", strings.TrimSpace(text)))
	}
	a.pushSummary()
}

func (a *cliApp) removeIngredient(text string) {
	if a.form.RemoveIngredient(strings.TrimSpace(text)) {
		a.ui.PrintLine(fmt.Sprintf("Removed %s (basket: %d).", text, len(a.form.Ingredients())))
	} else {
		a.ui.PrintHint(fmt.Sprintf("%s isn't in the basket.", strings.TrimSpace(text)))
	}
	a.pushSummary()
}

func (a *cliApp) addRestriction(text string) {
	a.form.SetPendingRestriction(text)
	if a.form.AddRestriction() {
		a.ui.PrintLine(fmt.Sprintf("Noted: %s.", text))
	} else {
		a.ui.PrintHint(fmt.Sprintf("%s is already noted.", strings.TrimSpace(text)))
	}
	a.pushSummary()
}

func (a *cliApp) removeRestriction(text string) {
	if a.form.RemoveRestriction(strings.TrimSpace(text)) {
		a.ui.PrintLine(fmt.Sprintf("Dropped restriction: %s.", text))
	} else {
		a.ui.PrintHint(fmt.Sprintf("%s wasn't a noted restriction.", strings.TrimSpace(text)))
	}
	a.pushSummary()
}

// isClear matches the ways users ask to unset a preference.
func isClear(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "any", "none", "clear", "unset":
		return true
	}
	return false
}

func (a *cliApp) setCuisine(text string) {
	if isClear(text) {
		a.form.SetCuisine("")
		a.ui.PrintLine("Cuisine preference cleared.")
		a.pushSummary()
		return
	}

	c, err := domain.ParseCuisine(text)
	if err != nil {
		a.ui.PrintErr(fmt.Sprintf("Unknown cuisine %q. Try one of: %s.", text, joinCuisines()))
		return
	}
	a.form.SetCuisine(c)
	a.ui.PrintLine(fmt.Sprintf("Cuisine set to %s.", c))
	a.pushSummary()
}

func (a *cliApp) setMeal(text string) {
	if isClear(text) {
		a.form.SetMeal("")
		a.ui.PrintLine("Meal preference cleared.")
		a.pushSummary()
		return
	}

	m, err := domain.ParseMeal(text)
	if err != nil {
		a.ui.PrintErr(fmt.Sprintf("Unknown meal type %q. Try one of: %s.", text, joinMeals()))
		return
	}
	a.form.SetMeal(m)
	a.ui.PrintLine(fmt.Sprintf("Meal set to %s.", m))
	a.pushSummary()
}

func (a *cliApp) setCookingTime(text string) {
	if strings.EqualFold(strings.TrimSpace(text), "clear") || strings.EqualFold(strings.TrimSpace(text), "unset") {
		a.form.SetCookingTime("")
		a.ui.PrintLine("Cooking-time preference cleared.")
		a.pushSummary()
		return
	}

	ct, err := domain.ParseCookingTime(text)
	if err != nil {
		a.ui.PrintErr(fmt.Sprintf("Unknown cooking time %q. Try one of: %s.", text, joinTimes()))
		return
	}
	a.form.SetCookingTime(ct)
	a.ui.PrintLine(fmt.Sprintf("Cooking time set to %s.", ct))
	a.pushSummary()
}

func (a *cliApp) generate(ctx context.Context) {
	err := a.orch.Generate(ctx)
	switch {
	case err == nil:
		a.ui.PrintHint("Working on it...")
	case errors.Is(err, domain.ErrGenerationInFlight):
		a.ui.PrintHint("Hang on — still cooking up the last one.")
	case errors.Is(err, domain.ErrEmptyBasket):
		// The validation message already arrived via the transition hook.
	default:
		a.log.Error("generate: %v", err)
	}
}

func (a *cliApp) reset() {
	a.form.Reset()
	a.orch.Reset()
	a.pushSummary()
	a.ui.PrintLine("Fresh start — basket, preferences, and results cleared.")
}

func (a *cliApp) status() {
	ings := a.form.Ingredients()
	a.ui.PrintHeader("Basket")
	if len(ings) == 0 {
		a.ui.PrintHint("(empty — 'add <ingredient>' to fill it)")
	}
	for i, ing := range ings {
		a.ui.PrintLine(fmt.Sprintf("[%d] %s", i+1, ing))
	}

	if rests := a.form.Restrictions(); len(rests) > 0 {
		a.ui.PrintHeader("Dietary restrictions")
		for _, r := range rests {
			a.ui.PrintLine("- " + r)
		}
	}

	var prefs []string
	if c := a.form.Cuisine(); c != "" {
		prefs = append(prefs, "cuisine: "+string(c))
	}
	if m := a.form.Meal(); m != "" {
		prefs = append(prefs, "meal: "+string(m))
	}
	if ct := a.form.CookingTime(); ct != "" {
		prefs = append(prefs, "time: "+string(ct))
	}
	if len(prefs) > 0 {
		a.ui.PrintHint(strings.Join(prefs, " · "))
	}

	if vs := a.orch.State(); vs.Phase == domain.PhaseResult {
		a.ui.Println("")
		a.ui.PrintBlock(display.Render(vs))
	}
}

func (a *cliApp) showOptions() {
	a.ui.PrintHeader("Cuisines")
	a.ui.PrintLine(joinCuisines())
	a.ui.PrintHeader("Meals")
	a.ui.PrintLine(joinMeals())
	a.ui.PrintHeader("Cooking times")
	a.ui.PrintLine(joinTimes())
}

func (a *cliApp) ask(ctx context.Context, question string) {
	a.ui.PrintHint("Asking the chef...")

	answer, err := a.assistant.Ask(ctx, question)
	if err != nil {
		var svcErr *domain.ServiceError
		if errors.As(err, &svcErr) && svcErr.Message != "" {
			a.ui.PrintErr(svcErr.Message)
			return
		}
		a.log.Error("chat failed: %v", err)
		a.ui.PrintErr("Failed to reach the chef. Please try again.")
		return
	}

	a.ui.PrintChat(answer)
}

func (a *cliApp) showHelp() {
	a.ui.PrintHeader("Commands:")
	a.ui.PrintLine("  add <name>        Put an ingredient in the basket")
	a.ui.PrintLine("  remove <name>     Take an ingredient out")
	a.ui.PrintLine("  diet <name>       Note a dietary restriction (e.g. vegetarian)")
	a.ui.PrintLine("  undiet <name>     Drop a noted restriction")
	a.ui.PrintLine("  cuisine <name>    Prefer a cuisine ('cuisine any' to clear)")
	a.ui.PrintLine("  meal <name>       Prefer a meal type ('meal any' to clear)")
	a.ui.PrintLine("  time <label>      Prefer a cooking time ('time clear' to unset)")
	a.ui.PrintLine("  generate / cook   Ask for a recipe from the basket")
	a.ui.PrintLine("  status / basket   Show the current form and last recipe")
	a.ui.PrintLine("  options           List the supported preference values")
	a.ui.PrintLine("  reset / clear     Empty the form and the result")
	a.ui.PrintLine("  help              Show this message")
	a.ui.PrintLine("  quit / exit       Leave")
	a.ui.Println("")
	a.ui.PrintHint("Anything that looks like a question goes to the chef assistant.")
}

func joinCuisines() string {
	var out []string
	for _, c := range domain.Cuisines() {
		out = append(out, string(c))
	}
	return strings.Join(out, ", ")
}

func joinMeals() string {
	var out []string
	for _, m := range domain.Meals() {
		out = append(out, string(m))
	}
	return strings.Join(out, ", ")
}

func joinTimes() string {
	var out []string
	for _, ct := range domain.CookingTimes() {
		out = append(out, string(ct))
	}
	return strings.Join(out, ", ")
}
