package prune

// ABOUTME: Context-aware confirmation gate. Prints the removal summary and only
// ABOUTME: proceeds when the user types exactly "y".

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"time"
)

// thresholdLayout renders instants as DD/MM/YYYY HH:MM:SS.
const thresholdLayout = "02/01/2006 15:04:05"

// answer is the outcome of reading the confirmation line.
type answer struct {
	line string
	err  error
}

// readAnswer reads one line from input with its line terminator ("\n" or
// "\r\n") stripped. A final line without a terminator counts; an empty input
// yields "". It gives up as soon as ctx is done, leaving the reader goroutine
// blocked on input until the process exits.
func readAnswer(ctx context.Context, input io.Reader) (string, error) {
	ch := make(chan answer, 1)
	go func() {
		line, err := bufio.NewReader(input).ReadString('\n')
		if errors.Is(err, io.EOF) {
			err = nil
		}
		ch <- answer{line: strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), err: err}
	}()

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a := <-ch:
		return a.line, a.err
	}
}

// Prompt builds the confirmation message for removing entries of dir older
// than threshold, shown in local time.
func Prompt(threshold time.Time, dir string) string {
	return fmt.Sprintf("Removing all files older than %s in %q. Enter \"y\" to confirm. ",
		threshold.Local().Format(thresholdLayout), dir)
}

// Confirm writes prompt to output and reads one line from input. It returns nil
// only for the exact answer "y"; "Y", "yes", " y" and empty input are refused.
// A refusal, an unreadable input or a cancelled context yields a KindCancelled
// error carrying the read or context error as its cause.
func Confirm(ctx context.Context, prompt string, input io.Reader, output io.Writer) error {
	fmt.Fprint(output, prompt) //nolint:errcheck // best-effort output
	line, err := readAnswer(ctx, input)
	if err != nil {
		return newError(KindCancelled, "", err)
	}
	if line != "y" {
		return newError(KindCancelled, "", nil)
	}
	return nil
}
