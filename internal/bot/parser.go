package bot

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

const (
	COMMAND_GET_PLAYER = iota
	COMMAND_GET_ONLINE = iota
	COMMAND_GET_WEAPON = iota
	COMMAND_HELP       = iota
)

const (
	PARSEID_OK                     = iota
	PARSEID_NO_BOT_PREFIX          = iota
	PARSEID_NO_COMMAND             = iota
	PARSEID_COMMAND_NOT_RECOGNISED = iota
	PARSEID_NO_INPUT               = iota
)

// Plain text replies for commands missing their argument
var missingArgument map[int]string = map[int]string{
	COMMAND_GET_PLAYER: "*Missing username!*",
	COMMAND_GET_WEAPON: "*Missing weapon ID!*",
}

type Command struct {
	Name      string
	Arguments []string
}

type ParseResult struct {
	command      int
	parseid      int
	errorMessage string
	input        Command
}

// Returns the first argument, which is the only one any command reads
func (result ParseResult) argument() string {
	if len(result.input.Arguments) == 0 {
		return ""
	}
	return result.input.Arguments[0]
}

// Split a message into command name and arguments, without matching the name
func Tokenize(prefix string, message string) (Command, bool) {

	if prefix == "" || !strings.HasPrefix(message, prefix) {
		return Command{}, false
	}
	rest := message[len(prefix):]

	// The command name has to follow the prefix immediately
	if first, _ := utf8.DecodeRuneInString(rest); rest == "" || unicode.IsSpace(first) {
		return Command{}, true
	}
	words := strings.Fields(rest)
	return Command{Name: words[0], Arguments: words[1:]}, true
}

func Parse(prefix string, message string) ParseResult {

	noInput := func(command int, input Command) ParseResult {
		return ParseResult{command: command, parseid: PARSEID_NO_INPUT, errorMessage: missingArgument[command], input: input}
	}

	input, ok := Tokenize(prefix, message)
	if !ok {
		return ParseResult{parseid: PARSEID_NO_BOT_PREFIX}
	}
	if input.Name == "" {
		return ParseResult{parseid: PARSEID_NO_COMMAND}
	}

	// Names are matched exactly, case included
	switch input.Name {
	case "getPlayer":
		// !getPlayer <username>
		command := COMMAND_GET_PLAYER
		if len(input.Arguments) == 0 {
			return noInput(command, input)
		}
		return ParseResult{command: command, parseid: PARSEID_OK, input: input}
	case "getOnline":
		// !getOnline
		return ParseResult{command: COMMAND_GET_ONLINE, parseid: PARSEID_OK, input: input}
	case "getWeapon":
		// !getWeapon <weapon_id>
		command := COMMAND_GET_WEAPON
		if len(input.Arguments) == 0 {
			return noInput(command, input)
		}
		return ParseResult{command: command, parseid: PARSEID_OK, input: input}
	case "help":
		// !help
		return ParseResult{command: COMMAND_HELP, parseid: PARSEID_OK, input: input}
	default:
		return ParseResult{parseid: PARSEID_COMMAND_NOT_RECOGNISED, input: input}
	}
}
