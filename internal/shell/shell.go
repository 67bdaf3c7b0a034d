// Package shell runs the interactive command loop on top of a trie.
package shell

import (
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
	"unicode"
	"unicode/utf8"

	"github.com/chzyer/readline"
	"github.com/rs/zerolog"
	"github.com/samber/lo"

	"github.com/AndreiStanimir/trie-shell-go/internal/trie"
)

const (
	defaultErrorPrefix = "Error! "
	indent             = "        "
)

// LineReader is the input side of a session. *readline.Instance satisfies it.
type LineReader interface {
	Readline() (string, error)
}

// Shell parses command lines and applies them to its current trie.
type Shell struct {
	trie      *trie.Trie
	out       io.Writer
	log       zerolog.Logger
	errPrefix string
	commands  []command
	done      bool
}

// Option configures a Shell.
type Option func(*Shell)

// WithLogger sets the logger used for dispatched and rejected commands.
func WithLogger(l zerolog.Logger) Option {
	return func(s *Shell) {
		s.log = l
	}
}

// WithErrorPrefix sets the text printed in front of every error message.
func WithErrorPrefix(prefix string) Option {
	return func(s *Shell) {
		s.errPrefix = prefix
	}
}

// New returns a shell with an empty trie that writes its output to out.
func New(out io.Writer, opts ...Option) *Shell {
	s := &Shell{
		trie:      trie.New(),
		out:       out,
		log:       zerolog.Nop(),
		errPrefix: defaultErrorPrefix,
	}
	s.commands = commandTable()
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Done reports whether the quit command was executed.
func (s *Shell) Done() bool {
	return s.done
}

// Run reads and executes lines until quit or end of input. An interrupt
// discards the line being edited.
func (s *Shell) Run(r LineReader) error {
	for !s.done {
		line, err := r.Readline()
		switch {
		case errors.Is(err, readline.ErrInterrupt):
			continue
		case errors.Is(err, io.EOF):
			return nil
		case err != nil:
			return fmt.Errorf("read line: %w", err)
		}
		s.Execute(line)
	}
	return nil
}

// Execute runs a single command line. Commands are picked by their first
// letter, case-insensitively, so "a", "add" and "ADD" are the same.
func (s *Shell) Execute(line string) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return
	}
	name, args := fields[0], fields[1:]

	first, _ := utf8.DecodeRuneInString(name)
	first = unicode.ToLower(first)
	cmd, ok := lo.Find(s.commands, func(c command) bool {
		return rune(c.name[0]) == first
	})
	if !ok {
		s.log.Info().Str("input", name).Msg("unknown command")
		s.errorf("'%s' is an unknown command. Enter 'help' for help.", name)
		return
	}

	s.log.Debug().Str("command", cmd.name).Strs("args", args).Msg("dispatch")
	cmd.run(s, args)
}

// Completer completes command names for a readline terminal.
func (s *Shell) Completer() *readline.PrefixCompleter {
	items := lo.Map(s.commands, func(c command, _ int) readline.PrefixCompleterInterface {
		return readline.PcItem(c.name)
	})
	return readline.NewPrefixCompleter(items...)
}

func (s *Shell) println(a ...any) {
	fmt.Fprintln(s.out, a...)
}

func (s *Shell) errorf(format string, a ...any) {
	fmt.Fprint(s.out, s.errPrefix)
	fmt.Fprintf(s.out, format, a...)
	fmt.Fprintln(s.out)
}

// rejected reports an error returned by the trie for malformed input.
func (s *Shell) rejected(err error) {
	s.log.Info().Err(err).Msg("input rejected")
	switch {
	case errors.Is(err, trie.ErrInvalidKey):
		s.errorf("<name> must consist of the lowercase letters a-z.")
	case errors.Is(err, trie.ErrInvalidValue):
		s.errorf("<points> must be a non-negative integer.")
	default:
		s.errorf("%v", err)
	}
}

// name returns the first argument, reporting an error if there is none.
func (s *Shell) name(args []string) (string, bool) {
	if len(args) < 1 {
		s.errorf("missing <name>.")
		return "", false
	}
	return args[0], true
}

// nameAndPoints parses "<name> <points>". Only presence and integer syntax
// are checked here; the trie decides whether the values are acceptable.
func (s *Shell) nameAndPoints(args []string) (string, int, bool) {
	name, ok := s.name(args)
	if !ok {
		return "", 0, false
	}
	if len(args) < 2 {
		s.errorf("missing <points>.")
		return "", 0, false
	}
	points, err := strconv.Atoi(args[1])
	if err != nil {
		s.log.Info().Err(err).Str("points", args[1]).Msg("input rejected")
		s.errorf("<points> must be a non-negative integer.")
		return "", 0, false
	}
	return name, points, true
}
