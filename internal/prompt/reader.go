// Package prompt reads validated values from an interactive console.
//
// Each Read method writes its prompt, reads one line and repeats until the
// line is acceptable. There is no retry limit; a human operator is expected
// to correct the input. Cancelling the context unblocks a pending read.
package prompt

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"math"
	"strconv"
	"strings"

	"github.com/kilianp07/ecogrid/core/model"
	"github.com/kilianp07/ecogrid/infra/logger"
)

// ErrInputClosed is returned when the input ends before a valid value is read.
var ErrInputClosed = errors.New("input closed")

const (
	msgEmpty       = "Input cannot be empty. Please try again."
	msgNonNegative = "Invalid input. Must be a positive number. Try again."
)

type lineResult struct {
	text string
	err  error
}

// Reader prompts on out and reads answers from in.
type Reader struct {
	in  *bufio.Reader
	out io.Writer
	log logger.Logger
	// pending holds a read left in flight by a cancelled ask, so that at most
	// one goroutine reads from in at a time.
	pending chan lineResult
}

// NewReader returns a Reader. A nil logger disables rejection logging.
func NewReader(in io.Reader, out io.Writer, log logger.Logger) *Reader {
	if log == nil {
		log = logger.NopLogger{}
	}
	return &Reader{in: bufio.NewReader(in), out: out, log: log}
}

// ReadNonEmptyString returns the first line that is not blank. The line is
// returned without its terminator but otherwise unchanged.
func (r *Reader) ReadNonEmptyString(ctx context.Context, prompt string) (string, error) {
	for {
		line, err := r.ask(ctx, prompt)
		if err != nil {
			return "", err
		}
		if strings.TrimSpace(line) != "" {
			return line, nil
		}
		if err := r.reject(prompt, line, "empty", msgEmpty); err != nil {
			return "", err
		}
	}
}

// ReadNonNegativeNumber returns the first line that parses to a finite number >= 0.
func (r *Reader) ReadNonNegativeNumber(ctx context.Context, prompt string) (float64, error) {
	for {
		line, err := r.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, ok := parseNumber(line)
		if ok && v >= 0 {
			return v, nil
		}
		reason := "negative"
		if !ok {
			reason = "not a number"
		}
		if err := r.reject(prompt, line, reason, msgNonNegative); err != nil {
			return 0, err
		}
	}
}

// ReadNumberInRange returns the first line that parses to a number in [lo, hi].
func (r *Reader) ReadNumberInRange(ctx context.Context, prompt string, lo, hi float64) (float64, error) {
	if math.IsNaN(lo) || math.IsNaN(hi) || lo > hi {
		return 0, fmt.Errorf("%w: empty range [%v, %v]", model.ErrInvalidArgument, lo, hi)
	}
	msg := fmt.Sprintf("Invalid input. Must be between %s and %s. Try again.",
		model.FormatKW(lo), model.FormatKW(hi))
	for {
		line, err := r.ask(ctx, prompt)
		if err != nil {
			return 0, err
		}
		v, ok := parseNumber(line)
		if ok && v >= lo && v <= hi {
			return v, nil
		}
		reason := "out of range"
		if !ok {
			reason = "not a number"
		}
		if err := r.reject(prompt, line, reason, msg); err != nil {
			return 0, err
		}
	}
}

func (r *Reader) ask(ctx context.Context, prompt string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if _, err := io.WriteString(r.out, prompt); err != nil {
		return "", err
	}
	if r.pending == nil {
		ch := make(chan lineResult, 1)
		go func() {
			text, err := r.in.ReadString('\n')
			ch <- lineResult{text: text, err: err}
		}()
		r.pending = ch
	}
	var res lineResult
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res = <-r.pending:
		r.pending = nil
	}
	line, err := res.text, res.err
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", err
		}
		if line == "" {
			return "", fmt.Errorf("%w while waiting for %q", ErrInputClosed, strings.TrimSpace(prompt))
		}
	}
	return strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r"), nil
}

func (r *Reader) reject(prompt, line, reason, msg string) error {
	r.log.Debugw("input rejected", map[string]any{
		"prompt": strings.TrimSpace(prompt),
		"input":  line,
		"reason": reason,
	})
	_, err := fmt.Fprintln(r.out, msg)
	return err
}

func parseNumber(s string) (float64, bool) {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}
