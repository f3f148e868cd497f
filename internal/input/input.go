package input

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
)

// MaxLineBytes bounds a single message line.
const MaxLineBytes = 4 * 1024 * 1024

var ErrNoInput = errors.New("input: no message lines")

type Options struct {
	// CommentPrefix marks lines to skip. Empty disables comment handling.
	CommentPrefix string
}

func DefaultOptions() Options {
	return Options{CommentPrefix: "#"}
}

// Line is one message line and its 1-based position in the source.
type Line struct {
	Number int
	Text   string
}

// ReadLines returns the trimmed, non-blank, non-comment lines of r.
func ReadLines(r io.Reader, opts Options) ([]Line, error) {
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), MaxLineBytes)

	var lines []Line
	n := 0
	for sc.Scan() {
		n++
		text := strings.TrimSpace(sc.Text())
		if text == "" {
			continue
		}
		if opts.CommentPrefix != "" && strings.HasPrefix(text, opts.CommentPrefix) {
			continue
		}
		lines = append(lines, Line{Number: n, Text: text})
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("input read failed at line %d: %w", n+1, err)
	}
	return lines, nil
}

func ReadFile(path string, opts Options) ([]Line, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("input load failed (%s): %w", path, err)
	}
	defer f.Close()
	return ReadLines(f, opts)
}

// FromArgs wraps literal messages given on a command line.
func FromArgs(args []string) []Line {
	lines := make([]Line, 0, len(args))
	for i, arg := range args {
		text := strings.TrimSpace(arg)
		if text == "" {
			continue
		}
		lines = append(lines, Line{Number: i + 1, Text: text})
	}
	return lines
}

func First(lines []Line) (Line, error) {
	if len(lines) == 0 {
		return Line{}, ErrNoInput
	}
	return lines[0], nil
}
