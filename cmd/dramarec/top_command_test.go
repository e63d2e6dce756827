package main

import (
	"encoding/json"
	"testing"

	"dramarec/internal/api"
)

func TestTopFirstPage(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"top"}, env.configPath)
	if err != nil {
		t.Fatalf("top: %v", err)
	}
	requireContains(t, out, "page 1 of 2")
	requireContains(t, out, "1. Mystery Box")
	requireContains(t, out, "10.0/10")
	requireContains(t, out, "5. 2gether")
}

func TestTopSecondPageNumbersContinue(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"top", "--page", "2"}, env.configPath)
	if err != nil {
		t.Fatalf("top --page 2: %v", err)
	}
	requireContains(t, out, "6. Cooking Crush")
	requireContains(t, out, "7. KinnPorsche")
	requireContains(t, out, "unrated")
}

func TestTopPastLastPage(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"top", "--page", "3"}, env.configPath)
	if err != nil {
		t.Fatalf("top --page 3: %v", err)
	}
	requireContains(t, out, "No dramas on page 3")
}

func TestTopJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"top", "--per-page", "3", "--json"}, env.configPath)
	if err != nil {
		t.Fatalf("top --json: %v", err)
	}
	var resp api.TopRatedResponse
	if err := json.Unmarshal([]byte(out), &resp); err != nil {
		t.Fatalf("decode output %q: %v", out, err)
	}
	if resp.TotalPages != 3 || len(resp.Results) != 3 {
		t.Fatalf("unexpected response: %+v", resp)
	}
	if resp.Results[1].Title != "Bad Buddy" || resp.Results[2].Title != "Semantic Error" {
		t.Fatalf("ties should keep catalog order: %+v", resp.Results)
	}
}

func TestTopRejectsInvalidPage(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"top", "--page", "0"}, env.configPath); err == nil {
		t.Fatal("expected error for page 0")
	}
}
