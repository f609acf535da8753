package formatter

import (
	"bytes"
	"strings"
	"testing"
)

func TestTable_BasicOutput(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "ARTIFACT", "KIND", "SCORE")
	tbl.AddRow("AGENTS.md", "agent", "0.72")
	tbl.AddRow("deploy.md", "instruction", "0.91")
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()

	if !strings.Contains(out, "ARTIFACT") || !strings.Contains(out, "KIND") || !strings.Contains(out, "SCORE") {
		t.Errorf("missing headers in output:\n%s", out)
	}
	if !strings.Contains(out, "----") {
		t.Errorf("missing separator in output:\n%s", out)
	}
	if !strings.Contains(out, "AGENTS.md") || !strings.Contains(out, "deploy.md") {
		t.Errorf("missing data rows in output:\n%s", out)
	}

	// Header, separator, and two data rows.
	lines := strings.Split(strings.TrimRight(out, "\n"), "\n")
	if len(lines) != 4 {
		t.Errorf("expected 4 lines, got %d:\n%s", len(lines), out)
	}
}

func TestTable_EmptyTable(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "A", "B")
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	// No rows added means no output at all, not even headers.
	if buf.Len() != 0 {
		t.Errorf("expected empty output for table with no rows, got:\n%s", buf.String())
	}
}

func TestTable_MaxWidth(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "TARGET", "RATIONALE")
	tbl.SetMaxWidth(1, 12)
	tbl.AddRow("AGENTS.md", "this rationale is far too long to display")
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	if !strings.Contains(out, "this rati...") {
		t.Errorf("expected truncated rationale, got:\n%s", out)
	}
	if strings.Contains(out, "too long to display") {
		t.Errorf("rationale should have been truncated:\n%s", out)
	}
}

func TestTable_MissingValues(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "A", "B", "C")
	tbl.AddRow("only-one")
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(buf.String(), "only-one") {
		t.Errorf("expected value in output:\n%s", buf.String())
	}
}

func TestTable_TruncateMaxLessThanThree(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "ID", "VALUE")
	tbl.SetMaxWidth(0, 2)
	tbl.AddRow("abcdef", "ok")
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	out := buf.String()
	// With max <= 3 there is no room for an ellipsis.
	if strings.Contains(out, "...") {
		t.Errorf("max <= 3 should not add '...' suffix:\n%s", out)
	}
	if strings.Contains(out, "abcdef") {
		t.Errorf("ID should have been truncated:\n%s", out)
	}
}

func TestTable_TruncateExactlyAtMax(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "ID", "VALUE")
	tbl.SetMaxWidth(0, 5)
	tbl.AddRow("abcde", "ok")
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	if !strings.Contains(buf.String(), "abcde") {
		t.Errorf("string at exactly max should not be truncated:\n%s", buf.String())
	}
}

func TestTable_SeparatorMatchesHeaderLength(t *testing.T) {
	var buf bytes.Buffer
	tbl := NewTable(&buf, "KIND", "COGNITIVE")
	tbl.AddRow("agent", "0.80")
	if err := tbl.Render(); err != nil {
		t.Fatalf("Render: %v", err)
	}

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	if len(lines) < 2 {
		t.Fatalf("expected at least 2 lines, got %d", len(lines))
	}

	sepFields := strings.Fields(lines[1])
	if len(sepFields) != 2 {
		t.Fatalf("expected 2 separator fields, got %d: %q", len(sepFields), lines[1])
	}
	if sepFields[0] != "----" {
		t.Errorf("expected 4 dashes for KIND, got %q", sepFields[0])
	}
	if sepFields[1] != "---------" {
		t.Errorf("expected 9 dashes for COGNITIVE, got %q", sepFields[1])
	}
}
