package domain

// CommandType classifies what the user wants to do.
type CommandType int

const (
	CmdUnknown CommandType = iota
	CmdAddIngredient
	CmdRemoveIngredient
	CmdAddRestriction
	CmdRemoveRestriction
	CmdSetCuisine
	CmdSetMeal
	CmdSetCookingTime
	CmdGenerate
	CmdReset
	CmdStatus
	CmdOptions
	CmdHelp
	CmdQuit
	CmdAsk // free-form question for the chat assistant
)

// String returns a human-readable command name.
func (c CommandType) String() string {
	switch c {
	case CmdAddIngredient:
		return "add_ingredient"
	case CmdRemoveIngredient:
		return "remove_ingredient"
	case CmdAddRestriction:
		return "add_restriction"
	case CmdRemoveRestriction:
		return "remove_restriction"
	case CmdSetCuisine:
		return "set_cuisine"
	case CmdSetMeal:
		return "set_meal"
	case CmdSetCookingTime:
		return "set_cooking_time"
	case CmdGenerate:
		return "generate"
	case CmdReset:
		return "reset"
	case CmdStatus:
		return "status"
	case CmdOptions:
		return "options"
	case CmdHelp:
		return "help"
	case CmdQuit:
		return "quit"
	case CmdAsk:
		return "ask"
	default:
		return "unknown"
	}
}

// Command is a parsed user action. Payload carries the argument for
// commands that take one (the ingredient text, the cuisine name, the
// question).
type Command struct {
	Type    CommandType
	Payload string
}
