package export

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestWriteTwoPoints(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []float64{0.0, 1.0}, []float64{1.0, 2.0}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	expected := "t,y(t)\n0,1\n1,2\n"
	if buf.String() != expected {
		t.Errorf("got %q, expected %q", buf.String(), expected)
	}
}

func TestWriteFractionalValues(t *testing.T) {
	var buf bytes.Buffer
	if err := Write(&buf, []float64{0.0, 0.25, 0.5}, []float64{1.0, 1.125, 1.5}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	lines := strings.Split(strings.TrimSuffix(buf.String(), "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("expected 4 lines, got %d", len(lines))
	}
	if lines[0] != "t,y(t)" {
		t.Errorf("unexpected header %q", lines[0])
	}
	if lines[2] != "0.25,1.125" {
		t.Errorf("unexpected row %q", lines[2])
	}
}

func TestWriteLengthMismatch(t *testing.T) {
	var buf bytes.Buffer
	err := Write(&buf, []float64{0.0, 1.0}, []float64{1.0})
	if err == nil {
		t.Fatal("expected error for mismatched lengths")
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "solution.csv")
	if err := WriteFile(path, []float64{0.0, 1.0}, []float64{1.0, 2.0}); err != nil {
		t.Fatalf("write failed: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "t,y(t)\n0,1\n1,2\n" {
		t.Errorf("unexpected file contents %q", string(data))
	}
}

func TestWriteFileBadPath(t *testing.T) {
	err := WriteFile(filepath.Join(t.TempDir(), "no", "such", "dir.csv"), []float64{0}, []float64{1})
	if err == nil {
		t.Fatal("expected error for unwritable path")
	}
}
