package shell

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/AndreiStanimir/trie-shell-go/internal/trie"
)

type command struct {
	name  string
	usage string
	help  string
	run   func(s *Shell, args []string)
}

// commandTable lists the commands in help order. First letters must be unique.
func commandTable() []command {
	return []command{
		{name: "new", help: "Creates a new trie and discards the old one.", run: (*Shell).newTrie},
		{name: "add", usage: "<name> <points>", help: "Adds the <points> of the student <name> to the trie.", run: (*Shell).add},
		{name: "change", usage: "<name> <points>", help: "Changes the existing points of the student <name> to <points>.", run: (*Shell).change},
		{name: "delete", usage: "<name>", help: "Deletes the student <name> from the trie.", run: (*Shell).remove},
		{name: "points", usage: "<name>", help: "Prints the points of the student <name>.", run: (*Shell).points},
		{name: "trie", help: "Prints the trie in depth-first order.", run: (*Shell).print},
		{name: "help", help: "Shows this help.", run: (*Shell).help},
		{name: "quit", help: "Ends the session.", run: (*Shell).quit},
	}
}

func (s *Shell) newTrie(_ []string) {
	s.trie = trie.New()
}

func (s *Shell) add(args []string) {
	name, points, ok := s.nameAndPoints(args)
	if !ok {
		return
	}
	added, err := s.trie.Add(name, points)
	if err != nil {
		s.rejected(err)
		return
	}
	if !added {
		s.errorf("'%s' is already in the trie.", name)
	}
}

func (s *Shell) change(args []string) {
	name, points, ok := s.nameAndPoints(args)
	if !ok {
		return
	}
	changed, err := s.trie.Change(name, points)
	if err != nil {
		s.rejected(err)
		return
	}
	if !changed {
		s.errorf("'%s' is not in the trie.", name)
	}
}

func (s *Shell) remove(args []string) {
	name, ok := s.name(args)
	if !ok {
		return
	}
	removed, err := s.trie.Remove(name)
	if err != nil {
		s.rejected(err)
		return
	}
	if !removed {
		s.errorf("'%s' is not in the trie.", name)
	}
}

func (s *Shell) points(args []string) {
	name, ok := s.name(args)
	if !ok {
		return
	}
	v, found, err := s.trie.Value(name)
	if err != nil {
		s.rejected(err)
		return
	}
	if !found {
		s.errorf("'%s' is not in the trie.", name)
		return
	}
	s.println(strconv.Itoa(v))
}

func (s *Shell) print(_ []string) {
	if err := s.trie.Fprint(s.out); err != nil {
		s.log.Error().Err(err).Msg("print trie")
		return
	}
	s.println()
}

func (s *Shell) help(_ []string) {
	var b strings.Builder
	b.WriteString("Commands:\n\n")
	for _, c := range s.commands {
		b.WriteString(strings.TrimSpace(c.name + " " + c.usage))
		fmt.Fprintf(&b, "\n%s%s\n\n", indent, c.help)
	}
	b.WriteString("Arguments:\n\n")
	fmt.Fprintf(&b, "<name>\n%sA name written in the lowercase letters a-z.\n\n", indent)
	fmt.Fprintf(&b, "<points>\n%sA non-negative integer.\n", indent)
	fmt.Fprint(s.out, b.String())
}

func (s *Shell) quit(_ []string) {
	s.done = true
}
