package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func runCLI(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var out bytes.Buffer
	rootCmd.SetOut(&out)
	rootCmd.SetErr(&out)
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetArgs(nil)
		leaderboardFlags.seed = ""
		rootFlags.locale = "en"
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestLeaderboardCommand(t *testing.T) {
	out, err := runCLI(t, "leaderboard")
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 6 {
		t.Fatalf("expected header plus 5 rows, got %d:\n%s", len(lines), out)
	}
	if !strings.Contains(lines[1], "Shiva") || !strings.Contains(lines[1], "Rs 15,420") || !strings.Contains(lines[1], "bronze,silver,gold") {
		t.Fatalf("unexpected leader row: %q", lines[1])
	}
}

func TestLeaderboardCommandWithSeed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "roster.yaml")
	doc := "interns:\n  - name: Low\n    email: low@example.com\n    donationsRaised: 10\n  - name: High\n    email: high@example.com\n    donationsRaised: 2000\n"
	if err := os.WriteFile(path, []byte(doc), 0o600); err != nil {
		t.Fatalf("write seed: %v", err)
	}
	out, err := runCLI(t, "leaderboard", "--seed", path)
	if err != nil {
		t.Fatalf("leaderboard: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 3 || !strings.Contains(lines[1], "High") || !strings.Contains(lines[2], "-") {
		t.Fatalf("unexpected output:\n%s", out)
	}
}

func TestTiersCommand(t *testing.T) {
	out, err := runCLI(t, "tiers", "6000")
	if err != nil {
		t.Fatalf("tiers: %v", err)
	}
	if !strings.Contains(out, "[x] Silver Supporter") || !strings.Contains(out, "[ ] Gold Champion") {
		t.Fatalf("unexpected tier marks:\n%s", out)
	}
	if !strings.Contains(out, "Next: Gold Champion, Rs 4,000 to go (60.0%)") {
		t.Fatalf("unexpected progress line:\n%s", out)
	}

	out, err = runCLI(t, "tiers", "25000")
	if err != nil || !strings.Contains(out, "Top tier reached: Platinum Legend") {
		t.Fatalf("tiers top: %v\n%s", err, out)
	}

	if _, err := runCLI(t, "tiers", "-5"); err == nil {
		t.Fatalf("expected error for negative donations")
	}
}
