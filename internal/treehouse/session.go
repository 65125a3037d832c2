package treehouse

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/log"
)

const prompt = "Hello, what is your name?"

// Session is one evening at the treehouse door.
type Session struct {
	roster *Roster
	logger *log.Logger
}

// NewSession creates a session over the roster. A nil logger discards logs.
func NewSession(roster *Roster, logger *log.Logger) *Session {
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Session{roster: roster, logger: logger}
}

// Run prompts for names on out and reads them from in until an empty name
// or end of input, then prints the final visitor list.
func (s *Session) Run(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)

	for {
		if _, err := fmt.Fprintln(out, prompt); err != nil {
			return fmt.Errorf("treehouse: prompt: %w", err)
		}
		if !scanner.Scan() {
			if err := scanner.Err(); err != nil {
				return fmt.Errorf("treehouse: read name: %w", err)
			}
			s.logger.Debug("input closed")
			break
		}

		name := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if name == "" {
			break
		}

		if v, ok := s.roster.Find(name); ok {
			s.logger.Debug("known visitor", "name", name, "action", v.Action.Kind)
			if err := v.Greet(out); err != nil {
				return err
			}
			continue
		}

		if _, err := fmt.Fprintf(out, "%s is not on the visitor list.\n", name); err != nil {
			return fmt.Errorf("treehouse: %w", err)
		}
		s.roster.Admit(name)
		s.logger.Info("admitted on probation", "name", name, "roster", s.roster.Len())
	}

	return s.printRoster(out)
}

func (s *Session) printRoster(out io.Writer) error {
	var b strings.Builder
	b.WriteString("Visitor list:\n")
	for _, v := range s.roster.Visitors() {
		fmt.Fprintf(&b, "  %s\n", v)
	}
	if _, err := io.WriteString(out, b.String()); err != nil {
		return fmt.Errorf("treehouse: print roster: %w", err)
	}
	return nil
}
