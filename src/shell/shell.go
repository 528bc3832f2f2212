// Package shell is a thin terminal front end: it reads keys, submits requests and nothing else.
package shell

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strconv"
	"strings"
	"time"

	"elevsim/src/types"

	"github.com/eiannone/keyboard"
)

// Number of consecutive 'a' keys that start the kickoff scenario.
const kickoffPresses = 3

type Submitter interface {
	Submit(origin int, dir types.Direction, destination int) bool
}

var ErrBadCommand = errors.New("bad command")

// Kickoff submits a request from floor 3 down to 2, and one tick later a request from floor
// 10 down to the ground floor. The returned timer can be stopped to cancel the second one.
func Kickoff(sub Submitter, interval time.Duration) *time.Timer {
	sub.Submit(3, types.Down, 2)
	return time.AfterFunc(interval, func() {
		sub.Submit(10, types.Down, 1)
	})
}

// ParseCommand parses "u <origin> <destination>" or "d <origin> <destination>".
func ParseCommand(line string) (types.Request, error) {
	fields := strings.Fields(line)
	if len(fields) != 3 {
		return types.Request{}, fmt.Errorf("%w: %q, expected u|d <origin> <destination>", ErrBadCommand, line)
	}
	var dir types.Direction
	switch strings.ToLower(fields[0]) {
	case "u", "up":
		dir = types.Up
	case "d", "down":
		dir = types.Down
	default:
		return types.Request{}, fmt.Errorf("%w: unknown direction %q", ErrBadCommand, fields[0])
	}
	origin, err := strconv.Atoi(fields[1])
	if err != nil {
		return types.Request{}, fmt.Errorf("%w: origin: %w", ErrBadCommand, err)
	}
	destination, err := strconv.Atoi(fields[2])
	if err != nil {
		return types.Request{}, fmt.Errorf("%w: destination: %w", ErrBadCommand, err)
	}
	return types.Request{Origin: origin, Dir: dir, Destination: destination}, nil
}

type Shell struct {
	sub         Submitter
	out         io.Writer
	interval    time.Duration
	line        []rune
	easterCount int
	kickoff     *time.Timer
}

func New(sub Submitter, out io.Writer, interval time.Duration) *Shell {
	return &Shell{sub: sub, out: out, interval: interval}
}

// HandleKey processes one key press and reports whether the shell should quit.
func (s *Shell) HandleKey(char rune, key keyboard.Key) bool {
	if char == 'a' || char == 'A' {
		s.easterCount++
		if s.easterCount == kickoffPresses {
			s.easterCount = 0
			slog.Info("Kickoff triggered")
			s.kickoff = Kickoff(s.sub, s.interval)
		}
		return false
	}
	s.easterCount = 0

	switch key {
	case keyboard.KeyEsc, keyboard.KeyCtrlC:
		return true
	case keyboard.KeyEnter:
		return s.submitLine()
	case keyboard.KeyBackspace, keyboard.KeyBackspace2:
		if len(s.line) > 0 {
			s.line = s.line[:len(s.line)-1]
		}
	case keyboard.KeySpace:
		s.line = append(s.line, ' ')
	default:
		if char != 0 {
			s.line = append(s.line, char)
		}
	}
	return false
}

func (s *Shell) submitLine() bool {
	line := strings.TrimSpace(string(s.line))
	s.line = s.line[:0]
	if line == "" {
		return false
	}
	if line == "q" || line == "quit" {
		return true
	}
	req, err := ParseCommand(line)
	if err != nil {
		fmt.Fprintf(s.out, "\n%v\n", err)
		return false
	}
	if !s.sub.Submit(req.Origin, req.Dir, req.Destination) {
		fmt.Fprintf(s.out, "\nrejected %s\n", req)
	}
	return false
}

// Line returns the command typed so far.
func (s *Shell) Line() string {
	return string(s.line)
}

// Run reads keys from the terminal until the user quits or ctx is cancelled.
func (s *Shell) Run(ctx context.Context) error {
	keyEvents, err := keyboard.GetKeys(16)
	if err != nil {
		return fmt.Errorf("open keyboard: %w", err)
	}
	defer keyboard.Close()
	defer func() {
		if s.kickoff != nil {
			s.kickoff.Stop()
		}
	}()

	fmt.Fprintln(s.out, "u|d <origin> <destination> + Enter to request, q or Esc to quit")
	for {
		select {
		case <-ctx.Done():
			return nil
		case event := <-keyEvents:
			if event.Err != nil {
				return fmt.Errorf("read key: %w", event.Err)
			}
			if s.HandleKey(event.Rune, event.Key) {
				return nil
			}
		}
	}
}
