package mothur

import (
	"context"
	"fmt"
	"strings"

	"github.com/campenr/mothur-go/service/params"
)

// reservedPrefix marks names that are never forwarded to mothur.
const reservedPrefix = "_"

// Param is a named command argument. Positional and named arguments may be
// mixed in one Call; named ones keep their supplied order.
type Param struct {
	Name  string
	Value interface{}
}

// P is shorthand for constructing a named argument.
func P(name string, value interface{}) Param {
	return Param{Name: name, Value: value}
}

// Command is a pending mothur invocation built by chaining name segments.
// Mothur command names are dot-delimited, so
//
//	session.Command("summary").Sub("seqs")
//
// and
//
//	session.Command("summary.seqs")
//
// are equivalent. Calling executes the command against the session.
type Command struct {
	session *Session
	name    string
}

// Command starts a command chain for the given (possibly dotted) name.
func (s *Session) Command(name string) *Command {
	return &Command{session: s, name: name}
}

// Sub appends a name segment, returning a new pending command.
func (c *Command) Sub(name string) *Command {
	return &Command{session: c.session, name: c.name + "." + name}
}

// Name returns the accumulated dot-delimited command name.
func (c *Command) Name() string {
	return c.name
}

// String implements fmt.Stringer.
func (c *Command) String() string {
	return fmt.Sprintf("%s.%s", c.session, c.name)
}

// Call executes the pending command. Values of type Param become named
// arguments, everything else is positional. Mothur is the sole authority on
// command validity; only names that can never be commands (reserved prefix,
// empty segments) are rejected locally.
func (c *Command) Call(ctx context.Context, args ...interface{}) error {
	if err := validateName(c.name); err != nil {
		return err
	}
	var positional []interface{}
	var named []params.KeyValue
	for _, arg := range args {
		if param, ok := arg.(Param); ok {
			named = append(named, params.KeyValue{Key: param.Name, Value: param.Value})
			continue
		}
		positional = append(positional, arg)
	}
	return c.session.run(ctx, c.name, positional, named)
}

func validateName(name string) error {
	if name == "" {
		return fmt.Errorf("%w: empty name", ErrInvalidCommand)
	}
	for _, segment := range strings.Split(name, ".") {
		if segment == "" {
			return fmt.Errorf("%w: %q has an empty segment", ErrInvalidCommand, name)
		}
		if strings.HasPrefix(segment, reservedPrefix) {
			return fmt.Errorf("%w: %q uses the reserved %q prefix", ErrInvalidCommand, name, reservedPrefix)
		}
	}
	return nil
}
