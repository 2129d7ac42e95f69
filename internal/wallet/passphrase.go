package wallet

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"golang.org/x/term"
)

// Passphrase lazily resolves a keystore passphrase from an environment variable or
// by prompting on the terminal. The value is cached after the first successful read.
type Passphrase struct {
	envVar string
	prompt io.Writer

	once  sync.Once
	value string
	err   error
}

// NewPassphrase checks envVar before prompting on stderr.
func NewPassphrase(envVar string) *Passphrase {
	return &Passphrase{envVar: strings.TrimSpace(envVar), prompt: os.Stderr}
}

// Get returns the passphrase.
func (s *Passphrase) Get() (string, error) {
	s.once.Do(func() {
		if s.envVar != "" {
			if value, ok := os.LookupEnv(s.envVar); ok {
				if strings.TrimSpace(value) == "" {
					s.err = fmt.Errorf("%s is set but empty", s.envVar)
					return
				}
				s.value = value
				return
			}
		}

		fd := int(os.Stdin.Fd())
		if !term.IsTerminal(fd) {
			if s.envVar != "" {
				s.err = fmt.Errorf("keystore passphrase required; set %s or run interactively", s.envVar)
			} else {
				s.err = errors.New("keystore passphrase required and no terminal available")
			}
			return
		}

		fmt.Fprint(s.prompt, "Keystore passphrase: ")
		raw, err := term.ReadPassword(fd)
		fmt.Fprintln(s.prompt)
		if err != nil {
			s.err = fmt.Errorf("read passphrase: %w", err)
			return
		}
		if strings.TrimSpace(string(raw)) == "" {
			s.err = errors.New("keystore passphrase cannot be empty")
			return
		}
		s.value = string(raw)
	})
	return s.value, s.err
}
