package domain

import "strings"

// ExecCommand represents an external command to be executed.
// This type is used to pass command information between layers
// without exposing implementation details.
type ExecCommand struct {
	Program string
	Dir     string
	Args    []string
}

// NewCommand creates an ExecCommand for a program with arguments.
func NewCommand(program string, args []string, dir string) *ExecCommand {
	return &ExecCommand{
		Program: program,
		Args:    args,
		Dir:     dir,
	}
}

// String renders the command line for display and logging.
// Arguments containing whitespace or quotes are single-quoted.
func (c *ExecCommand) String() string {
	parts := make([]string, 0, len(c.Args)+1)
	parts = append(parts, quoteArg(c.Program))
	for _, a := range c.Args {
		parts = append(parts, quoteArg(a))
	}
	return strings.Join(parts, " ")
}

func quoteArg(a string) string {
	if a == "" {
		return "''"
	}
	if strings.ContainsAny(a, " \t\n\"'\\$`#&|;<>()*?") {
		return "'" + strings.ReplaceAll(a, "'", `'\''`) + "'"
	}
	return a
}

// Environment is a command prefix that runs tools inside the project's
// environment, e.g. ["ddev", "exec"]. An empty prefix runs tools directly.
type Environment struct {
	Exec []string
}

// Wrap returns cmd rewritten to run through the environment prefix.
func (e Environment) Wrap(cmd *ExecCommand) *ExecCommand {
	if len(e.Exec) == 0 {
		return cmd
	}
	args := make([]string, 0, len(e.Exec)+len(cmd.Args))
	args = append(args, e.Exec[1:]...)
	args = append(args, cmd.Program)
	args = append(args, cmd.Args...)
	return &ExecCommand{
		Program: e.Exec[0],
		Args:    args,
		Dir:     cmd.Dir,
	}
}
