// Copyright (c) 2024 The Flokicoin developers
// Distributed under the MIT software license, see the accompanying
// file COPYING or http://www.opensource.org/licenses/mit-license.php.

// Package clip copies pin digests to the user's clipboard.
package clip

import (
	"bytes"
	"encoding/base64"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"runtime"
	"strings"

	"github.com/atotto/clipboard"
	"golang.org/x/term"
)

type Method string

const (
	MethodOSC52       Method = "osc52"
	MethodAtotto      Method = "go-clipboard"
	MethodOSCommand   Method = "os-command"
	MethodUnsupported Method = "unsupported"
)

// osc52MaxBytes is a payload size most terminals accept.
const osc52MaxBytes = 8 * 1024

var ErrEmpty = errors.New("nothing to copy")

type strategy struct {
	method Method
	copy   func(text string) error
}

// CopyText copies text with the first method that works and returns it.
func CopyText(text string) (Method, error) {
	if text == "" {
		return MethodUnsupported, ErrEmpty
	}

	var errs []error
	for _, s := range strategies(runtime.GOOS) {
		err := s.copy(text)
		if err == nil {
			return s.method, nil
		}
		errs = append(errs, fmt.Errorf("%s: %w", s.method, err))
	}
	return MethodUnsupported, fmt.Errorf("could not copy: %w", errors.Join(errs...))
}

// strategies orders the copy methods for goos. Native clipboards are
// reliable on desktops; OSC 52 also works over SSH on unix terminals.
func strategies(goos string) []strategy {
	osc52 := strategy{MethodOSC52, copyOSC52}
	atotto := strategy{MethodAtotto, clipboard.WriteAll}
	command := strategy{MethodOSCommand, func(text string) error { return copyCommand(goos, text) }}

	switch goos {
	case "darwin", "windows":
		return []strategy{atotto, command, osc52}
	default:
		return []strategy{osc52, atotto, command}
	}
}

func copyOSC52(text string) error {
	if !term.IsTerminal(int(os.Stdout.Fd())) {
		return errors.New("stdout is not a terminal")
	}
	if t := os.Getenv("TERM"); t == "" || t == "dumb" {
		return errors.New("terminal does not support OSC 52")
	}
	if len(text) > osc52MaxBytes {
		return errors.New("payload too large for OSC 52")
	}
	return writeOSC52(os.Stdout, text, os.Getenv)
}

func writeOSC52(w io.Writer, text string, getenv func(string) string) error {
	seq := "\x1b]52;c;" + base64.StdEncoding.EncodeToString([]byte(text)) + "\x07"

	switch {
	case getenv("TMUX") != "":
		seq = "\x1bPtmux;\x1b" + strings.ReplaceAll(seq, "\x1b", "\x1b\x1b") + "\x1b\\"
	case getenv("STY") != "":
		seq = "\x1bP" + seq + "\x1b\\"
	}

	_, err := io.WriteString(w, seq)
	return err
}

func copyCommand(goos, text string) error {
	var cmd *exec.Cmd
	switch goos {
	case "darwin":
		cmd = exec.Command("pbcopy")
	case "windows":
		cmd = exec.Command("cmd", "/c", "clip")
	default:
		return errors.New("no built-in clipboard command for this OS")
	}
	cmd.Stdin = bytes.NewBufferString(text)
	cmd.Stdout = io.Discard
	cmd.Stderr = io.Discard
	return cmd.Run()
}
