package app

import "strings"

// Command represents a parsed prompt command.
type Command struct {
	Name string
	Args string
}

// ParseCommand parses a command string. A leading ':' is ignored.
func ParseCommand(input string) Command {
	input = strings.TrimPrefix(strings.TrimSpace(input), ":")
	parts := strings.SplitN(strings.TrimSpace(input), " ", 2)
	cmd := Command{Name: strings.ToLower(parts[0])}
	if len(parts) > 1 {
		cmd.Args = strings.TrimSpace(parts[1])
	}
	return cmd
}
