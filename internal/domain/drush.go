package domain

// DefaultDrushBinary is the drush executable used when none is configured.
const DefaultDrushBinary = "drush"

// DrushOption is a single --name=value option passed to drush.
// A Value of "true" renders as a bare flag.
type DrushOption struct {
	Name  string
	Value string
}

// DrushCommand builds a drush invocation from a command name, arguments and options.
// Options keep the order in which they were set; setting an existing option replaces its value.
type DrushCommand struct {
	Binary    string
	Command   string
	Arguments []string
	Options   []DrushOption
}

// NewDrushCommand creates a builder for the given drush command.
func NewDrushCommand(binary, command string) *DrushCommand {
	if binary == "" {
		binary = DefaultDrushBinary
	}
	return &DrushCommand{Binary: binary, Command: command}
}

// WithArguments appends positional arguments.
func (d *DrushCommand) WithArguments(args ...string) *DrushCommand {
	d.Arguments = append(d.Arguments, args...)
	return d
}

// WithOption sets an option, replacing any previous value for the same name.
func (d *DrushCommand) WithOption(name, value string) *DrushCommand {
	for i := range d.Options {
		if d.Options[i].Name == name {
			d.Options[i].Value = value
			return d
		}
	}
	d.Options = append(d.Options, DrushOption{Name: name, Value: value})
	return d
}

// Build returns the command to execute in dir.
func (d *DrushCommand) Build(dir string) *ExecCommand {
	args := make([]string, 0, 1+len(d.Arguments)+len(d.Options))
	if d.Command != "" {
		args = append(args, d.Command)
	}
	args = append(args, d.Arguments...)
	for _, opt := range d.Options {
		if opt.Value == "true" {
			args = append(args, "--"+opt.Name)
			continue
		}
		args = append(args, "--"+opt.Name+"="+opt.Value)
	}
	return NewCommand(d.Binary, args, dir)
}

// UserLookupOption maps a login lookup type (id, name, mail) to the drush
// user:login option name.
func UserLookupOption(lookupType string) (string, bool) {
	switch lookupType {
	case "id":
		return "uid", true
	case "name":
		return "name", true
	case "mail":
		return "mail", true
	}
	return "", false
}
