package dispatchers

import (
	"io"
	"os"
)

// HandlerFunc executes a leaf command with the arguments remaining after
// token resolution. The returned error decides the process exit status:
// nil is 0, a *usage.Error carries its own code, anything else is 1.
type HandlerFunc func(args []string, cctx *Context) error

// Kind tags a Command as a leaf or an internal group node.
type Kind int

const (
	KindLeaf Kind = iota
	KindGroup
)

// Command is one named entry in a Group. Leaves carry a handler and a
// format capability mask; group commands carry a nested Group and route
// the remaining tokens into it.
type Command struct {
	Token   string
	Summary string
	// Usage holds the synopsis on the first line, followed by optional
	// description lines rendered by the help output.
	Usage   []string
	Kind    Kind
	Formats FormatMask
	Next    *Group
	Run     HandlerFunc
}

// IsGroup reports whether the command routes into a nested group.
func (c *Command) IsGroup() bool { return c.Kind == KindGroup }

// Group is an ordered collection of commands routed at one level of the
// hierarchy. Declaration order is significant: ambiguity diagnostics and
// help listings follow it.
type Group struct {
	Usage    string
	Info     string
	Commands []*Command
}

// NewLeaf constructs an executable leaf command.
func NewLeaf(token, summary string, usage []string, formats FormatMask, run HandlerFunc) *Command {
	return &Command{
		Token:   token,
		Summary: summary,
		Usage:   usage,
		Kind:    KindLeaf,
		Formats: formats,
		Run:     run,
	}
}

// NewGroupCommand constructs an internal node owning a nested group.
func NewGroupCommand(token, summary string, next *Group) *Command {
	return &Command{
		Token:   token,
		Summary: summary,
		Kind:    KindGroup,
		Formats: FormatMaskAll,
		Next:    next,
	}
}

// Names returns the command tokens in declaration order.
func (g *Group) Names() []string {
	names := make([]string, len(g.Commands))
	for i, cmd := range g.Commands {
		names[i] = cmd.Token
	}
	return names
}

// Lookup returns the command with the exact token, or nil.
func (g *Group) Lookup(token string) *Command {
	for _, cmd := range g.Commands {
		if cmd.Token == token {
			return cmd
		}
	}
	return nil
}

// Context is the per-invocation dispatch state. It is constructed once in
// main and passed by reference through the parser, the dispatcher, the
// format negotiator and the leaf handlers; it is never package state.
type Context struct {
	// Format is the requested output format. Written by the global
	// option parser (last --format wins), read everywhere else.
	Format OutputFormat

	Stdout io.Writer
	Stderr io.Writer
}

// NewContext returns a Context with the default text format, wired to the
// process streams.
func NewContext() *Context {
	return &Context{
		Format: FormatText,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
}
