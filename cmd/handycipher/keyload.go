package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/ombreve/handycipher/internal/handy"
	"github.com/pkg/errors"
	"golang.org/x/term"
)

// loadKey resolves the 51-character Handycipher key for this run: either the
// exact 51 bytes of the keyfile named by config.KeyFile, or (when no keyfile
// is given) a password read from the terminal and put through key
// derivation (SPEC_FULL.md §4.2, §4.8).
func loadKey(config *Config) (string, error) {
	if config.KeyFile != "" {
		return loadKeyFile(config.KeyFile)
	}
	password, err := readPassword()
	if err != nil {
		return "", err
	}
	return handy.KeyFromPassword(password), nil
}

func loadKeyFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", errors.Wrap(err, "handy: cannot read key file")
	}
	key := strings.TrimRight(string(data), "\n")
	if err := handy.ValidateKey(key); err != nil {
		return "", err
	}
	return key, nil
}

// readPassword prompts for a password on the controlling terminal with echo
// disabled. When no terminal is attached to stdin it falls back to a plain,
// echoed read and warns that the input was not hidden.
func readPassword() (string, error) {
	if term.IsTerminal(int(os.Stdin.Fd())) {
		fmt.Fprint(os.Stderr, "password: ")
		data, err := term.ReadPassword(int(os.Stdin.Fd()))
		fmt.Fprintln(os.Stderr)
		if err != nil {
			return "", errors.Wrap(err, "handy: cannot read password")
		}
		return string(data), nil
	}

	warning("no terminal attached -- password will be echoed")
	reader := bufio.NewReader(os.Stdin)
	line, err := reader.ReadString('\n')
	if err != nil && line == "" {
		return "", errors.Wrap(err, "handy: cannot read password")
	}
	return strings.TrimRight(line, "\n"), nil
}
