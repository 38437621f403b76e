package cmd

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// terminalPrompter asks on the terminal. With assumeYes set every
// confirmation is accepted without asking.
type terminalPrompter struct {
	in        *bufio.Reader
	out       io.Writer
	assumeYes bool
}

func newTerminalPrompter(in io.Reader, out io.Writer, assumeYes bool) *terminalPrompter {
	return &terminalPrompter{in: bufio.NewReader(in), out: out, assumeYes: assumeYes}
}

func (p *terminalPrompter) Confirm(message string) bool {
	if p.assumeYes {
		return true
	}
	fmt.Fprintf(p.out, "%s [y/N]: ", message)
	answer, _ := p.in.ReadString('\n')
	answer = strings.ToLower(strings.TrimSpace(answer))
	return answer == "y" || answer == "yes"
}

func (p *terminalPrompter) Warn(message string) {
	fmt.Fprintf(p.out, "Warning: %s\n", message)
}
