package command

import (
	"errors"
	"strings"
	"unicode"
)

// ErrParse covers malformed input such as an unterminated quote. The
// dispatcher turns it into the generic parse response.
var ErrParse = errors.New("could not parse command")

// parsedLine is one tokenized command: a verb, its positional arguments, and
// flagged argument lists ("-u a b" etc.). Flag values run until the next flag
// token or end of line.
type parsedLine struct {
	Verb  string
	Args  []string
	Flags map[string][]string
}

func parseLine(input string) (parsedLine, error) {
	line := parsedLine{Flags: make(map[string][]string)}

	tokens, err := splitCommandLine(input)
	if err != nil {
		return line, err
	}
	if len(tokens) == 0 {
		return line, nil
	}

	line.Verb = tokens[0]

	flag := ""
	for _, token := range tokens[1:] {
		if len(token) > 1 && strings.HasPrefix(token, "-") {
			flag = token
			if _, ok := line.Flags[flag]; !ok {
				line.Flags[flag] = []string{}
			}
			continue
		}
		if flag != "" {
			line.Flags[flag] = append(line.Flags[flag], token)
			continue
		}
		line.Args = append(line.Args, token)
	}

	return line, nil
}

// splitCommandLine splits a line into tokens, treating quoted substrings as
// single tokens with the quotes stripped. Both quote styles are accepted;
// quoting one style inside the other keeps the inner characters literal.
func splitCommandLine(input string) ([]string, error) {
	var tokens []string
	var current strings.Builder
	var inSingleQuote, inDoubleQuote bool
	inToken := false

	for _, char := range input {
		switch {
		case char == '\'' && !inDoubleQuote:
			inSingleQuote = !inSingleQuote
			inToken = true

		case char == '"' && !inSingleQuote:
			inDoubleQuote = !inDoubleQuote
			inToken = true

		case unicode.IsSpace(char) && !inSingleQuote && !inDoubleQuote:
			if inToken {
				tokens = append(tokens, current.String())
				current.Reset()
				inToken = false
			}

		default:
			current.WriteRune(char)
			inToken = true
		}
	}

	if inSingleQuote || inDoubleQuote {
		return nil, ErrParse
	}

	if inToken {
		tokens = append(tokens, current.String())
	}

	return tokens, nil
}
