package tor

import "github.com/teranos/expandgen/errors"

// ErrDuplicateSubcommand is returned when a second subcommand is set.
var ErrDuplicateSubcommand = errors.New("tor: subcommand already set")

// Command collects the flags and optional subcommand of one tor invocation.
type Command struct {
	subcommand TorSubcommand
	flags      []TorFlag
}

// NewCommand returns an empty command.
func NewCommand() *Command {
	return &Command{}
}

// NewCommandWithSubcommand returns a command running sub.
func NewCommandWithSubcommand(sub TorSubcommand) *Command {
	return &Command{subcommand: sub}
}

// Subcommand sets the subcommand. A command has at most one.
func (c *Command) Subcommand(sub TorSubcommand) (*Command, error) {
	if c.subcommand != nil {
		return c, errors.Wrapf(ErrDuplicateSubcommand, "cannot add %s", ExpandTorSubcommandCLI(sub))
	}
	c.subcommand = sub
	return c, nil
}

// Flag appends f. Flags are rendered in the order they were added.
func (c *Command) Flag(f TorFlag) *Command {
	c.flags = append(c.flags, f)
	return c
}

// Flags returns the flags added so far.
func (c *Command) Flags() []TorFlag {
	return c.flags
}

// Args returns the tokens of the invocation: "tor", the tokens of every flag,
// then the subcommand's tokens. A flag rendered by a custom function, such as
// Log, contributes its whole CLI string as one element (Log "notice"), so the
// result is not an argv that can be passed to exec unchanged when such flags
// are present.
func (c *Command) Args() []string {
	args := append([]string{"tor"}, ExpandTorFlagArgs(c.flags...)...)
	if c.subcommand != nil {
		args = append(args, c.subcommand.Expand()...)
	}
	return args
}

// String renders the invocation for display, one CLI-joined string per flag.
func (c *Command) String() string {
	s := "tor"
	for _, f := range c.flags {
		s += " " + f.ExpandCLI()
	}
	if c.subcommand != nil {
		s += " " + c.subcommand.ExpandCLI()
	}
	return s
}
