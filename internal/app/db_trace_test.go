package app

import (
	"strings"
	"testing"
)

func TestFormatDBQueryForTrace(t *testing.T) {
	got := formatDBQueryForTrace("  SELECT *\n\tFROM frames\n  WHERE game_public_id = $1  ")
	if got != "SELECT * FROM frames WHERE game_public_id = $1" {
		t.Fatalf("unexpected formatted query: %q", got)
	}

	long := "SELECT " + strings.Repeat("a", maxTracedQueryLength)
	got = formatDBQueryForTrace(long)
	if len(got) != maxTracedQueryLength+3 || !strings.HasSuffix(got, "...") {
		t.Fatalf("expected truncated query, got length %d", len(got))
	}
}
