package service_test

import (
	"errors"
	"testing"

	"github.com/lshigami/Lorikeets/internal/service"
)

func TestExtractJSONObject_CleanJSON(t *testing.T) {
	t.Parallel()

	obj, err := service.ExtractJSONObject(`{"ratings":7,"feedback":"ok"}`)
	if err != nil {
		t.Fatalf("ExtractJSONObject returned error: %v", err)
	}
	if got, want := obj["ratings"], float64(7); got != want {
		t.Errorf("ratings=%v, want %v", got, want)
	}
	if got, want := obj["feedback"], "ok"; got != want {
		t.Errorf("feedback=%v, want %v", got, want)
	}
}

func TestExtractJSONObject_FencedWithEmbeddedNewlines(t *testing.T) {
	t.Parallel()

	raw := "```json\n{\"ratings\":5,\n\"feedback\":\"fine\"}\n```"
	obj, err := service.ExtractJSONObject(raw)
	if err != nil {
		t.Fatalf("ExtractJSONObject returned error: %v", err)
	}
	if got, want := obj["ratings"], float64(5); got != want {
		t.Errorf("ratings=%v, want %v", got, want)
	}
	if got, want := obj["feedback"], "fine"; got != want {
		t.Errorf("feedback=%v, want %v", got, want)
	}
}

func TestExtractJSONObject_SurroundingProse(t *testing.T) {
	t.Parallel()

	raw := "Sure! Here is your evaluation:\n`{\"ratings\":9,\"feedback\":\"solid\"}`\nHope that helps."
	obj, err := service.ExtractJSONObject(raw)
	if err != nil {
		t.Fatalf("ExtractJSONObject returned error: %v", err)
	}
	if got, want := obj["ratings"], float64(9); got != want {
		t.Errorf("ratings=%v, want %v", got, want)
	}
}

func TestExtractJSONObject_NoJSONPresent(t *testing.T) {
	t.Parallel()

	_, err := service.ExtractJSONObject("Sure! Here you go: no json at all")
	if err == nil {
		t.Fatal("ExtractJSONObject returned nil error, want ExtractionError")
	}
	var extractionErr *service.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("error is %T, want *service.ExtractionError", err)
	}
	if got, want := extractionErr.Reason, "no JSON object present"; got != want {
		t.Errorf("Reason=%q, want %q", got, want)
	}
}

func TestExtractJSONObject_MalformedJSONKeepsCandidate(t *testing.T) {
	t.Parallel()

	_, err := service.ExtractJSONObject(`{"ratings":7,"feedback":}`)
	if err == nil {
		t.Fatal("ExtractJSONObject returned nil error, want ExtractionError")
	}
	var extractionErr *service.ExtractionError
	if !errors.As(err, &extractionErr) {
		t.Fatalf("error is %T, want *service.ExtractionError", err)
	}
	if got, want := extractionErr.Reason, "malformed JSON"; got != want {
		t.Errorf("Reason=%q, want %q", got, want)
	}
	// The candidate substring must be preserved for diagnosis.
	if got, want := extractionErr.Candidate, `{"ratings":7,"feedback":}`; got != want {
		t.Errorf("Candidate=%q, want %q", got, want)
	}
}

func TestExtractJSONObject_Idempotent(t *testing.T) {
	t.Parallel()

	first, err := service.ExtractJSONObject(`{"ratings":7,"feedback":"ok"}`)
	if err != nil {
		t.Fatalf("first pass returned error: %v", err)
	}
	// Feeding equivalent clean JSON through again yields the same object.
	second, err := service.ExtractJSONObject(`{"ratings":7,"feedback":"ok"}`)
	if err != nil {
		t.Fatalf("second pass returned error: %v", err)
	}
	if first["ratings"] != second["ratings"] || first["feedback"] != second["feedback"] {
		t.Errorf("passes disagree: %v vs %v", first, second)
	}
}
