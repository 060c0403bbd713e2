package runner

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"
)

// Sentinel substrings scraped from mothur's line-oriented output. The
// warning/error markers follow the protocol mothur emits as of the 1.39 line
// ("<^>" for warnings, "***" for errors); "Invalid command." is additionally
// treated as an error because mothur itself does not flag it as one.
const (
	warningMarker        = "<^>"
	errorMarker          = "***"
	invalidCommandMarker = "Invalid command."

	currentFilesHeader = "Current files saved by mothur:"
	outputFilesHeader  = "Output File Names:"

	promptPrefix   = "mothur > "
	getCurrentEcho = "mothur > get.current()"
)

// currentDirHeaders maps mothur's directory announcement phrases to the
// session's directory role keys. The path is the last whitespace-delimited
// token on the announcing line.
var currentDirHeaders = map[string]string{
	"Current input directory saved by mothur:":   "input",
	"Current output directory saved by mothur:":  "output",
	"Current default directory saved by mothur:": "tempdefault",
}

// Outcome carries everything the classifier extracted from one run.
type Outcome struct {
	Dirs        map[string]string
	Files       map[string]string
	OutputFiles map[string][]string
	WarningSeen bool
	ErrorSeen   bool
	ReturnCode  int
}

// Scanner is the finite-state line classifier for one invocation. It tracks
// whether the stream is inside the user segment (between the echoed base
// command and the echoed trailing get.current()), accumulates extracted
// state into an Outcome, and echoes lines to the configured writer according
// to the verbosity policy.
//
// Detection of the user segment is a literal substring match of the echoed
// base command; no anchoring is applied, matching what the scraped protocol
// allows.
type Scanner struct {
	base      string
	verbosity int
	lineLimit int
	echo      io.Writer

	userSegment        bool
	parsingCurrentFile bool
	parsingOutputFile  bool
	truncated          bool
	lineCount          int

	outcome *Outcome
}

// NewScanner creates a classifier for a run of the given base command. The
// verbosity and line limit are validated here rather than at session
// construction so that a misconfigured session fails on use, not on creation.
func NewScanner(base string, verbosity, lineLimit int, echo io.Writer) (*Scanner, error) {
	if verbosity < 0 || verbosity > 2 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidVerbosity, verbosity)
	}
	if lineLimit < -1 {
		return nil, fmt.Errorf("%w, got %d", ErrInvalidLineLimit, lineLimit)
	}
	if echo == nil {
		echo = io.Discard
	}
	return &Scanner{
		base:      base,
		verbosity: verbosity,
		lineLimit: lineLimit,
		echo:      echo,
		outcome: &Outcome{
			Dirs:        map[string]string{},
			Files:       map[string]string{},
			OutputFiles: map[string][]string{},
		},
	}, nil
}

// Outcome returns the accumulated classification result.
func (s *Scanner) Outcome() *Outcome {
	return s.outcome
}

// Line classifies a single output line and optionally echoes it. Lines that
// match no sentinel are skipped silently; classification is best effort and
// never fails.
func (s *Scanner) Line(line string) {
	if strings.Contains(line, warningMarker) {
		s.outcome.WarningSeen = true
	}
	if strings.Contains(line, errorMarker) || strings.Contains(line, invalidCommandMarker) {
		s.outcome.ErrorSeen = true
	}

	if strings.Contains(line, promptPrefix+s.base) {
		s.userSegment = true
	} else if strings.Contains(line, getCurrentEcho) {
		s.userSegment = false
	}
	if s.userSegment {
		s.lineCount++
	}

	for header, role := range currentDirHeaders {
		if strings.Contains(line, header) {
			fields := strings.Fields(line)
			if len(fields) > 0 {
				s.outcome.Dirs[role] = fields[len(fields)-1]
			}
		}
	}

	// a blank line terminates both listing blocks
	if line == "" {
		s.parsingCurrentFile = false
		s.parsingOutputFile = false
	}
	if s.parsingCurrentFile {
		if pair := strings.SplitN(line, "=", 2); len(pair) == 2 {
			s.outcome.Files[pair[0]] = pair[1]
		}
	}
	if s.parsingOutputFile {
		s.classifyOutputFile(line)
	}

	// header checks come after block parsing so the header line itself is
	// never treated as an entry
	if strings.Contains(line, currentFilesHeader) {
		s.parsingCurrentFile = true
	}
	if s.userSegment && strings.Contains(line, outputFilesHeader) {
		s.parsingOutputFile = true
	}

	s.echoLine(line)

	// truncation takes effect on the line after the count first exceeds the
	// limit, so with a limit of zero exactly the echoed base command shows
	if s.userSegment && s.lineLimit != -1 && s.lineCount > s.lineLimit {
		s.truncated = true
	}
}

func (s *Scanner) classifyOutputFile(line string) {
	name := strings.TrimSpace(line)
	if name == "" {
		return
	}
	extension := strings.TrimPrefix(filepath.Ext(name), ".")
	if extension == "" {
		return
	}
	s.outcome.OutputFiles[extension] = append(s.outcome.OutputFiles[extension], name)
}

// echoLine applies the live echo policy: verbosity 0 prints nothing,
// verbosity 1 prints the user segment plus anything after a warning or error
// was seen, verbosity 2 prints everything. Truncation suppresses echoing
// within the user segment only; classification is unaffected.
func (s *Scanner) echoLine(line string) {
	if s.verbosity == 0 {
		return
	}
	if s.truncated && s.userSegment {
		return
	}
	if s.verbosity == 1 && !(s.userSegment || s.outcome.WarningSeen || s.outcome.ErrorSeen) {
		return
	}
	fmt.Fprintln(s.echo, line)
}
