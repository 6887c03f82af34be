package progress

import (
	"bytes"
	"strings"
	"testing"
)

func TestBarRendersLabel(t *testing.T) {
	var buf bytes.Buffer
	fn := Bar(&buf)

	fn(1, 2, "generating walks", "walk")
	fn(2, 2, "generating walks", "walk")

	out := buf.String()
	if out == "" {
		t.Fatal("bar wrote nothing")
	}
	if !strings.Contains(out, "generating walks") {
		t.Errorf("bar output missing label: %q", out)
	}
}

func TestBarDrawsNothingWithoutEvents(t *testing.T) {
	var buf bytes.Buffer
	Bar(&buf)

	if buf.Len() != 0 {
		t.Errorf("bar wrote %q before any event", buf.String())
	}
}
