package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/mattn/go-isatty"
	"github.com/peterh/liner"
	"github.com/shabbyrobe/go-frac/internal/logger"
)

const prompt = "frac> "

// repl reads from a liner prompt when stdin is a terminal, and plain lines
// otherwise so that scripts can be piped in.
func repl(e *evaluator, out output, w io.Writer) error {
	if !isatty.IsTerminal(os.Stdin.Fd()) && !isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		return script(e, out, os.Stdin, w)
	}

	cli := liner.NewLiner()
	defer cli.Close()
	cli.SetCtrlCAborts(true)

	for {
		line, err := cli.Prompt(prompt)
		switch err {
		case nil:
		case liner.ErrPromptAborted:
			continue
		case io.EOF:
			fmt.Fprintln(w)
			return nil
		default:
			return err
		}

		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		cli.AppendHistory(line)
		if isQuit(line) {
			return nil
		}
		evalLine(e, out, w, line)
	}
}

// script evaluates one expression per line from r. Blank lines and lines
// starting with '#' are skipped. Errors are reported and reading continues.
func script(e *evaluator, out output, r io.Reader, w io.Writer) error {
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if isQuit(line) {
			return nil
		}
		evalLine(e, out, w, line)
	}
	return scanner.Err()
}

func evalLine(e *evaluator, out output, w io.Writer, line string) {
	v, err := e.line(line)
	if err != nil {
		logger.Verbosef("eval %q failed: %v", line, err)
		fmt.Fprintf(w, "error: %v\n", err)
		return
	}
	if err := out.write(w, v); err != nil {
		logger.Errorf("write: %v", err)
	}
}

func isQuit(line string) bool {
	return line == "exit" || line == "quit"
}
