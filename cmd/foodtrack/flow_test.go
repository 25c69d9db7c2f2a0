package foodtrack

import (
	"path/filepath"
	"strings"
	"testing"
)

func TestDailyTrackingFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodtrack.db")

	out := runCommand(t, path, "add", "calories", "450")
	if !strings.Contains(out, "Added 450 kcal") {
		t.Fatalf("expected calorie confirmation, got: %s", out)
	}

	out = runCommand(t, path, "add", "protein", "12,5")
	if !strings.Contains(out, "Added 12,5g protein") {
		t.Fatalf("expected protein confirmation, got: %s", out)
	}

	runCommand(t, path, "supplement", "creatine")

	out = runCommand(t, path, "today")
	if !strings.Contains(out, "Calories: 450 kcal") {
		t.Fatalf("expected today's calories, got: %s", out)
	}
	if !strings.Contains(out, "Protein: 12,5g") {
		t.Fatalf("expected today's protein, got: %s", out)
	}
	if !strings.Contains(out, "Creatine: taken") {
		t.Fatalf("expected creatine taken, got: %s", out)
	}
	if !strings.Contains(out, "Fish oil: not taken") {
		t.Fatalf("expected fish oil untouched, got: %s", out)
	}

	out = runCommand(t, path, "history")
	if !strings.Contains(out, "Today") {
		t.Fatalf("expected today's history header, got: %s", out)
	}
	if !strings.Contains(out, "450 cal added manually") {
		t.Fatalf("expected calorie history entry, got: %s", out)
	}
	if !strings.Contains(out, "12,5g protein added manually") {
		t.Fatalf("expected protein history entry, got: %s", out)
	}
}

func TestAddZeroAmountIsNoOp(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodtrack.db")

	for _, args := range [][]string{
		{"add", "calories", "0"},
		{"add", "calories", "lots"},
		{"add", "protein", "0"},
		{"add", "protein", "abc"},
	} {
		out := runCommand(t, path, args...)
		if !strings.Contains(out, "Nothing added.") {
			t.Fatalf("expected no-op for %v, got: %s", args, out)
		}
	}

	out := runCommand(t, path, "history")
	if !strings.Contains(out, "No entries yet.") {
		t.Fatalf("expected empty history after no-ops, got: %s", out)
	}
}

func TestFavouritesFlow(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodtrack.db")

	out := runCommand(t, path, "favourite", "list", "--sort", "alpha")
	if !strings.Contains(out, "Banana") || !strings.Contains(out, "Oatmeal") {
		t.Fatalf("expected seeded defaults, got: %s", out)
	}

	out = runCommand(t, path, "favourite", "add", "--name", "Protein Shake", "--calories", "220", "--protein", "40")
	if !strings.Contains(out, "Added favourite 5") {
		t.Fatalf("expected id 5 for new favourite, got: %s", out)
	}

	out = runCommand(t, path, "favourite", "log", "Greek Yogurt", "--servings", "2")
	if !strings.Contains(out, "Added Greek Yogurt (300 kcal, 30g protein)") {
		t.Fatalf("expected scaled favourite log, got: %s", out)
	}
	if !strings.Contains(out, "Today: 300 kcal | 30g protein") {
		t.Fatalf("expected updated totals from subscription, got: %s", out)
	}

	out = runCommand(t, path, "history")
	if !strings.Contains(out, "Greek Yogurt - 300 cal, 30g protein") {
		t.Fatalf("expected favourite history entry, got: %s", out)
	}

	runCommand(t, path, "favourite", "remove", "5")
	runCommandExpectError(t, path, "favourite", "log", "Protein Shake")

	runCommandExpectError(t, path, "favourite", "add", "--name", "   ", "--calories", "10")
}

func TestResetRequiresForce(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodtrack.db")

	runCommand(t, path, "add", "calories", "600")

	out := runCommand(t, path, "reset")
	if !strings.Contains(out, "--force") {
		t.Fatalf("expected confirmation hint, got: %s", out)
	}
	out = runCommand(t, path, "today")
	if !strings.Contains(out, "Calories: 600 kcal") {
		t.Fatalf("expected data untouched without --force, got: %s", out)
	}

	runCommand(t, path, "reset", "--force")
	out = runCommand(t, path, "today")
	if !strings.Contains(out, "Calories: 0 kcal") {
		t.Fatalf("expected reset calories, got: %s", out)
	}
}

func TestNoteAndThemeAndAdmin(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodtrack.db")

	runCommand(t, path, "note", "set", "salmon", "for", "dinner")
	out := runCommand(t, path, "note")
	if !strings.Contains(out, "salmon for dinner") {
		t.Fatalf("expected note text, got: %s", out)
	}

	out = runCommand(t, path, "theme", "dark")
	if !strings.Contains(out, "Theme: dark") {
		t.Fatalf("expected dark theme, got: %s", out)
	}

	out = runCommand(t, path, "admin", "keys")
	if !strings.Contains(out, "foodNotes") || !strings.Contains(out, "theme_preference") {
		t.Fatalf("expected persisted keys listed, got: %s", out)
	}

	out = runCommand(t, path, "admin", "get", "theme_preference")
	if !strings.Contains(out, "true") {
		t.Fatalf("expected raw theme JSON, got: %s", out)
	}

	out = runCommand(t, path, "admin", "wipe")
	if !strings.Contains(out, "--force") {
		t.Fatalf("expected wipe confirmation hint, got: %s", out)
	}
	runCommand(t, path, "admin", "wipe", "--force")
	out = runCommand(t, path, "admin", "keys")
	if !strings.Contains(out, "No keys stored.") {
		t.Fatalf("expected empty storage after wipe, got: %s", out)
	}
}

func TestHistoryClear(t *testing.T) {
	path := filepath.Join(t.TempDir(), "foodtrack.db")

	runCommand(t, path, "add", "calories", "300")
	out := runCommand(t, path, "history", "clear")
	if !strings.Contains(out, "History cleared.") {
		t.Fatalf("expected clear confirmation, got: %s", out)
	}
	out = runCommand(t, path, "history")
	if !strings.Contains(out, "No entries yet.") {
		t.Fatalf("expected empty history, got: %s", out)
	}
}
