// Package batch assembles the ordered command script submitted to mothur in a
// single batch-mode invocation. Besides the user command the script carries
// the bookkeeping commands that pin the logfile, re-assert the session's
// current directories and files, and dump the resulting state via
// get.current().
package batch

import (
	"fmt"
	"sort"
	"strings"
)

// Separator joins script commands for single-shot submission.
const Separator = "; "

// seedExempt lists commands that reject a seed argument.
var seedExempt = map[string]bool{
	"help": true,
}

// Invocation describes the user command to embed in the script.
type Invocation struct {
	// Name is the dot-delimited command name, e.g. "summary.seqs".
	Name string
	// Args is the already formatted argument string, possibly empty.
	Args string
}

// State is a snapshot of the session's current directories and files taken
// at script assembly time.
type State struct {
	Dirs  map[string]string
	Files map[string]string
}

// Script is an ordered list of mothur commands plus the rendered base
// command, which the output classifier needs to detect the user segment.
type Script struct {
	commands []string
	base     string
}

// Build assembles the script: set.logfile first, then set.dir and
// set.current when the session carries state, then the user command with an
// optional trailing seed, and finally get.current().
func Build(invocation Invocation, state State, logfile string, seed *int) *Script {
	base := baseCommand(invocation, seed)
	commands := []string{fmt.Sprintf("set.logfile(name=%s, append=T)", logfile)}
	if len(state.Dirs) > 0 {
		commands = append(commands, fmt.Sprintf("set.dir(%s)", joinPairs(state.Dirs)))
	}
	if len(state.Files) > 0 {
		commands = append(commands, fmt.Sprintf("set.current(%s)", joinPairs(state.Files)))
	}
	commands = append(commands, base, "get.current()")
	return &Script{commands: commands, base: base}
}

// Commands returns the ordered script commands.
func (s *Script) Commands() []string {
	return s.commands
}

// Base returns the rendered user command, seed included.
func (s *Script) Base() string {
	return s.base
}

// Batch returns the script joined for mothur's batch-mode argument, without
// the leading '#'.
func (s *Script) Batch() string {
	return strings.Join(s.commands, Separator)
}

func baseCommand(invocation Invocation, seed *int) string {
	args := invocation.Args
	if seed != nil && !seedExempt[invocation.Name] {
		seedArg := fmt.Sprintf("seed=%d", *seed)
		if args == "" {
			args = seedArg
		} else {
			args += "," + seedArg
		}
	}
	return fmt.Sprintf("%s(%s)", invocation.Name, args)
}

// joinPairs renders a key=value list in key order so that repeated calls with
// identical state produce identical scripts.
func joinPairs(pairs map[string]string) string {
	keys := make([]string, 0, len(pairs))
	for key := range pairs {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	items := make([]string, 0, len(keys))
	for _, key := range keys {
		items = append(items, key+"="+pairs[key])
	}
	return strings.Join(items, ", ")
}
