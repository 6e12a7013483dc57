package main

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/pterm/pterm"
)

// prompter collects input for the seat that is acting
type prompter interface {
	Select(prompt string, options []string) (string, error)
	Int(prompt string, def int) (int, error)
	Confirm(prompt string) (bool, error)
}

// ptermPrompter is used when stdin is a terminal
type ptermPrompter struct{}

func (ptermPrompter) Select(prompt string, options []string) (string, error) {
	return pterm.DefaultInteractiveSelect.WithDefaultText(prompt).WithOptions(options).Show()
}

func (ptermPrompter) Int(prompt string, def int) (int, error) {
	for {
		s, err := pterm.DefaultInteractiveTextInput.WithDefaultText(prompt).WithDefaultValue(strconv.Itoa(def)).Show()
		if err != nil {
			return 0, err
		}

		n, err := strconv.Atoi(strings.TrimSpace(s))
		if err == nil {
			return n, nil
		}

		pterm.Error.Printfln("%q is not a number", s)
	}
}

func (ptermPrompter) Confirm(prompt string) (bool, error) {
	return pterm.DefaultInteractiveConfirm.WithDefaultText(prompt).WithDefaultValue(true).Show()
}

// linePrompter reads one answer per line, for piped input
type linePrompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func newLinePrompter(r io.Reader, w io.Writer) *linePrompter {
	return &linePrompter{
		in:  bufio.NewScanner(r),
		out: w,
	}
}

func (l *linePrompter) readLine() (string, error) {
	if !l.in.Scan() {
		if err := l.in.Err(); err != nil {
			return "", err
		}

		return "", io.EOF
	}

	return strings.TrimSpace(l.in.Text()), nil
}

// Select accepts the option text or its 1-based number
func (l *linePrompter) Select(prompt string, options []string) (string, error) {
	for {
		_, _ = fmt.Fprintln(l.out, prompt)
		for i, option := range options {
			_, _ = fmt.Fprintf(l.out, "  %d) %s\n", i+1, option)
		}

		line, err := l.readLine()
		if err != nil {
			return "", err
		}

		if n, err := strconv.Atoi(line); err == nil && n >= 1 && n <= len(options) {
			return options[n-1], nil
		}

		for _, option := range options {
			if strings.EqualFold(option, line) {
				return option, nil
			}
		}

		_, _ = fmt.Fprintf(l.out, "unknown option %q\n", line)
	}
}

// Int returns def for an empty line
func (l *linePrompter) Int(prompt string, def int) (int, error) {
	for {
		_, _ = fmt.Fprintf(l.out, "%s [%d]: ", prompt, def)

		line, err := l.readLine()
		if err != nil {
			return 0, err
		}

		if line == "" {
			return def, nil
		}

		n, err := strconv.Atoi(line)
		if err == nil {
			return n, nil
		}

		_, _ = fmt.Fprintf(l.out, "%q is not a number\n", line)
	}
}

// Confirm treats anything but n or no as yes
func (l *linePrompter) Confirm(prompt string) (bool, error) {
	_, _ = fmt.Fprintf(l.out, "%s [Y/n]: ", prompt)

	line, err := l.readLine()
	if err != nil {
		return false, err
	}

	switch strings.ToLower(line) {
	case "n", "no":
		return false, nil
	default:
		return true, nil
	}
}
