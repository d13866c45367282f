package cli

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_Empty(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTableTo(&buf, "ID", "PREFIX")
	tbl.Flush()

	if buf.Len() != 0 {
		t.Errorf("empty table produced output: %q", buf.String())
	}
}

func TestTable_HeadersAndRows(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTableTo(&buf, "ID", "PREFIX")
	tbl.Row("5", "GUEST")
	tbl.Row("7", "VISITOR")
	tbl.Flush()

	out := buf.String()
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Fatalf("got %d lines, want 4:\n%s", len(lines), out)
	}
	if !strings.HasPrefix(lines[0], "ID") {
		t.Errorf("first line should be headers, got %q", lines[0])
	}
	if !strings.HasPrefix(lines[1], "--") {
		t.Errorf("second line should be divider, got %q", lines[1])
	}
	if !strings.Contains(lines[2], "GUEST") || !strings.Contains(lines[3], "VISITOR") {
		t.Errorf("rows missing values:\n%s", out)
	}
}
