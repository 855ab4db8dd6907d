// Command loomstack is a minimal REPL over the stack-program core: it
// tokenizes a whitespace-separated sequence of primitive names/numbers,
// drives them through pkg/loom, and prints the resulting stack. The lexer,
// parser, and full language CLI are out of scope for this module; this is
// just enough of an entry point to exercise the evaluator interactively.
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"

	"github.com/loomlang/loom/internal/value"
	"github.com/loomlang/loom/pkg/loom"
)

func main() {
	m := loom.New()
	interactive := isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())

	scanner := bufio.NewScanner(os.Stdin)
	for {
		if interactive {
			fmt.Fprint(os.Stderr, "loom> ")
		}
		if !scanner.Scan() {
			break
		}
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if line == "quit" || line == "exit" {
			break
		}
		runLine(m, line)
	}
}

func runLine(m *loom.Machine, line string) {
	for _, tok := range strings.Fields(line) {
		if n, err := strconv.ParseFloat(tok, 64); err == nil {
			m.Push(value.Num(n))
			continue
		}
		if err := m.Run(tok); err != nil {
			fmt.Fprintf(os.Stderr, "error: %v (stack depth was %s)\n", err, humanize.Comma(int64(m.StackSize())))
			return
		}
	}
	printStack(m)
}

func printStack(m *loom.Machine) {
	stack := m.Stack()
	cells := make([]string, len(stack))
	for i, v := range stack {
		cells[i] = v.Display()
	}
	fmt.Println(strings.Join(cells, " "))
}
