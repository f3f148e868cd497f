package input

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadLinesSkipsCommentsAndBlanks(t *testing.T) {
	src := "# sample messages\n\nD2FE28\r\n  # indented comment\n  38006F45291200  \n"
	lines, err := ReadLines(strings.NewReader(src), DefaultOptions())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	want := []Line{{Number: 3, Text: "D2FE28"}, {Number: 5, Text: "38006F45291200"}}
	if len(lines) != len(want) {
		t.Fatalf("lines=%+v", lines)
	}
	for i := range want {
		if lines[i] != want[i] {
			t.Fatalf("line[%d]=%+v want %+v", i, lines[i], want[i])
		}
	}
}

func TestReadLinesWithoutCommentPrefix(t *testing.T) {
	lines, err := ReadLines(strings.NewReader("#A\nB\n"), Options{})
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(lines) != 2 || lines[0].Text != "#A" {
		t.Fatalf("lines=%+v", lines)
	}
}

func TestReadLinesLongLine(t *testing.T) {
	long := strings.Repeat("F", 200*1024)
	lines, err := ReadLines(strings.NewReader(long+"\n"), DefaultOptions())
	if err != nil {
		t.Fatalf("read: %v", err)
	}
	if len(lines) != 1 || len(lines[0].Text) != len(long) {
		t.Fatalf("long line not preserved")
	}
}

func TestReadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "day16.in")
	if err := os.WriteFile(path, []byte("C200B40A82\n"), 0o600); err != nil {
		t.Fatalf("write: %v", err)
	}
	lines, err := ReadFile(path, DefaultOptions())
	if err != nil {
		t.Fatalf("read file: %v", err)
	}
	first, err := First(lines)
	if err != nil || first.Text != "C200B40A82" || first.Number != 1 {
		t.Fatalf("first=%+v err=%v", first, err)
	}
	if _, err := ReadFile(filepath.Join(t.TempDir(), "missing"), DefaultOptions()); !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("expected not-exist error, got %v", err)
	}
}

func TestFirstAndFromArgs(t *testing.T) {
	if _, err := First(nil); !errors.Is(err, ErrNoInput) {
		t.Fatalf("expected ErrNoInput, got %v", err)
	}
	lines := FromArgs([]string{" D2FE28 ", "", "C200B40A82"})
	if len(lines) != 2 || lines[0].Text != "D2FE28" || lines[1].Number != 3 {
		t.Fatalf("lines=%+v", lines)
	}
}
