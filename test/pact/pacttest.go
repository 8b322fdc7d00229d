//go:build pact
// +build pact

package pacttest

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

// Participants of the two contracts this repo takes part in: the encyclopedia consumes
// the pet management API, and the web client consumes the encyclopedia API.
const (
	PetManagementProvider = "pet-management-api"
	EncyclopediaConsumer  = "pet-encyclopedia"

	EncyclopediaProvider = "pet-encyclopedia-api"
	WebConsumer          = "pet-encyclopedia-web"
)

const (
	StatePetsExist   = "dog and cat breeds exist"
	StatePetBySlug   = "pet with slug golden-retriever exists"
	StatePetMissing  = "no pet with slug unknown-breed"
	StateGallerySeed = "gallery holds the seed items"
	StateNoVideoJob  = "no video job with id missing-job"
)

const (
	ExistingSlug = "golden-retriever"
	MissingSlug  = "unknown-breed"
	MissingJobID = "missing-job"
)

// PactDir returns the workspace-level directory for generated pact files.
func PactDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "pacts")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact dir: %v", err)
	}
	return dir
}

// PactFile returns the canonical pact file path for a consumer/provider pair.
func PactFile(t testing.TB, consumer, provider string) string {
	t.Helper()
	return filepath.Join(PactDir(t), consumer+"-"+provider+".json")
}

// LogDir returns the log output directory for pact-go.
func LogDir(t testing.TB) string {
	t.Helper()
	dir := filepath.Join(projectRoot(t), "bin", "pact-logs")
	if err := os.MkdirAll(dir, 0o755); err != nil {
		t.Fatalf("create pact log dir: %v", err)
	}
	return dir
}

// ExamplePet is the curated record served by the pet management API in contract tests.
func ExamplePet() map[string]any {
	return map[string]any{
		"id":          101,
		"name":        "Golden Retriever",
		"slug":        ExistingSlug,
		"excerpt":     "Friendly and eager to please.",
		"description": "<p>A sporting breed from Scotland.</p>",
		"height":      "51-61 cm",
		"weight":      "25-34 kg",
		"lifespan":    "10-12 years",
		"story":       "Bred as a gundog.",
		"groups": []map[string]any{
			{"id": 1, "name": "Dog", "slug": "dog"},
			{"id": 7, "name": "Sporting", "slug": "sporting"},
		},
		"featured_image": map[string]any{
			"id":     9,
			"url":    "https://pets.example/uploads/golden.jpg",
			"medium": "https://pets.example/uploads/golden-300x300.jpg",
			"alt":    "Golden Retriever",
		},
	}
}

// projectRoot walks up from this file to the workspace root.
func projectRoot(t testing.TB) string {
	t.Helper()
	_, file, _, ok := runtime.Caller(0)
	if !ok {
		t.Fatal("cannot determine caller for pact paths")
	}
	return filepath.Clean(filepath.Join(filepath.Dir(file), "..", ".."))
}
