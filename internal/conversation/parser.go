// Package conversation turns raw REPL input into structured commands.
package conversation

import (
	"context"
	"regexp"
	"strings"

	"github.com/hammamikhairi/fridgechef/internal/domain"
	"github.com/hammamikhairi/fridgechef/internal/logger"
)

// Compile-time interface check.
var _ domain.CommandParser = (*KeywordParser)(nil)

// KeywordParser matches user input to commands using keywords and
// simple patterns. Swap this out for an LLM-backed parser when ready.
type KeywordParser struct {
	log      *logger.Logger
	bare     []bareRule
	prefixed []prefixRule
}

// bareRule matches a whole line ("generate", "status", ...).
type bareRule struct {
	regex *regexp.Regexp
	cmd   domain.CommandType
}

// prefixRule matches "<verb> <argument>" and carries the argument as
// the command payload.
type prefixRule struct {
	regex *regexp.Regexp
	cmd   domain.CommandType
}

// NewKeywordParser creates a keyword-based command parser.
func NewKeywordParser(log *logger.Logger) *KeywordParser {
	p := &KeywordParser{log: log}
	p.bare = []bareRule{
		{regexp.MustCompile(`(?i)^(generate|cook|make it|g)$`), domain.CmdGenerate},
		{regexp.MustCompile(`(?i)^(reset|clear|start over)$`), domain.CmdReset},
		{regexp.MustCompile(`(?i)^(status|basket|show)$`), domain.CmdStatus},
		{regexp.MustCompile(`(?i)^(options|choices)$`), domain.CmdOptions},
		{regexp.MustCompile(`(?i)^(help|h|\?)$`), domain.CmdHelp},
		{regexp.MustCompile(`(?i)^(quit|exit|q)$`), domain.CmdQuit},
	}
	p.prefixed = []prefixRule{
		{regexp.MustCompile(`(?i)^(?:add|i have|got)\s+(.+)$`), domain.CmdAddIngredient},
		{regexp.MustCompile(`(?i)^(?:remove|drop|no more)\s+(.+)$`), domain.CmdRemoveIngredient},
		{regexp.MustCompile(`(?i)^(?:diet|restrict)\s+(.+)$`), domain.CmdAddRestriction},
		{regexp.MustCompile(`(?i)^(?:undiet|unrestrict)\s+(.+)$`), domain.CmdRemoveRestriction},
		{regexp.MustCompile(`(?i)^cuisine\s+(.+)$`), domain.CmdSetCuisine},
		{regexp.MustCompile(`(?i)^meal\s+(.+)$`), domain.CmdSetMeal},
		{regexp.MustCompile(`(?i)^time\s+(.+)$`), domain.CmdSetCookingTime},
	}
	return p
}

// Parse converts user input into a command.
func (p *KeywordParser) Parse(ctx context.Context, input string) (*domain.Command, error) {
	trimmed := strings.TrimSpace(input)
	if trimmed == "" {
		return &domain.Command{Type: domain.CmdUnknown}, nil
	}

	p.log.Debug("parsing input: %q", trimmed)

	for _, rule := range p.bare {
		if rule.regex.MatchString(trimmed) {
			p.log.Debug("matched command: %s", rule.cmd)
			return &domain.Command{Type: rule.cmd}, nil
		}
	}

	for _, rule := range p.prefixed {
		if m := rule.regex.FindStringSubmatch(trimmed); m != nil {
			arg := strings.TrimSpace(m[1])
			p.log.Debug("matched command: %s (payload=%q)", rule.cmd, arg)
			return &domain.Command{Type: rule.cmd, Payload: arg}, nil
		}
	}

	// Free-form questions go to the chat assistant.
	if isQuestion(trimmed) {
		return &domain.Command{Type: domain.CmdAsk, Payload: trimmed}, nil
	}

	p.log.Debug("no match, returning unknown command")
	return &domain.Command{Type: domain.CmdUnknown, Payload: trimmed}, nil
}

// questionPrefixes are common English question starters.
var questionPrefixes = []string{
	"how", "what", "why", "when", "where", "who",
	"can", "could", "should", "would", "will", "do", "does", "is", "are",
	"tell me", "explain",
}

// isQuestion returns true if the input looks like a question.
func isQuestion(s string) bool {
	if strings.HasSuffix(s, "?") {
		return true
	}
	lower := strings.ToLower(s)
	for _, prefix := range questionPrefixes {
		if strings.HasPrefix(lower, prefix+" ") || lower == prefix {
			return true
		}
	}
	return false
}
