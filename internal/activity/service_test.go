package activity

import (
	"context"
	"strings"
	"testing"
)

func TestService_AppendRequiresChurchAndType(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	if err := svc.Append(context.Background(), Entry{Type: TypeVoice}); err == nil {
		t.Fatalf("expected error")
	}
	if err := svc.Append(context.Background(), Entry{ChurchID: "c1"}); err == nil {
		t.Fatalf("expected error")
	}
}

func TestService_LogVoiceTurnFillsDefaults(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	md := TurnMetadata{
		CallSID:      "CA123",
		From:         "+15551234567",
		SpeechResult: "when is the service",
		Reply:        "Our worship services are on Sundays.",
	}
	if err := svc.LogVoiceTurn(context.Background(), "c1", md); err != nil {
		t.Fatalf("unexpected err: %v", err)
	}

	entries := repo.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.ID == "" {
		t.Fatalf("expected generated id")
	}
	if e.Type != TypeVoice || e.Status != StatusCompleted {
		t.Fatalf("unexpected type/status: %q %q", e.Type, e.Status)
	}
	if e.CreatedAt.IsZero() {
		t.Fatalf("expected created_at")
	}
	if !strings.Contains(e.Metadata, "CA123") || !strings.Contains(e.Metadata, "when is the service") {
		t.Fatalf("expected metadata to carry call sid and transcript: %s", e.Metadata)
	}
	if !strings.Contains(e.Description, "when is the service") {
		t.Fatalf("expected description to summarize caller input: %s", e.Description)
	}
}

func TestService_TruncatesLongDescriptions(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	long := strings.Repeat("hallelujah ", 100)
	err := svc.Append(context.Background(), Entry{
		ChurchID:    "c1",
		Type:        TypeVoice,
		Description: long,
	})
	if err != nil {
		t.Fatalf("unexpected err: %v", err)
	}
	got := repo.Entries()[0].Description
	if len([]rune(got)) > DescriptionLimit {
		t.Fatalf("description not truncated: %d runes", len([]rune(got)))
	}
	if !strings.HasSuffix(got, "...") {
		t.Fatalf("expected ellipsis suffix, got %q", got[len(got)-10:])
	}
}

func TestTruncate(t *testing.T) {
	if got := Truncate("short", 10); got != "short" {
		t.Fatalf("unexpected: %q", got)
	}
	if got := Truncate("abcdef", 5); got != "ab..." {
		t.Fatalf("unexpected: %q", got)
	}
	if got := Truncate("abcdef", 0); got != "" {
		t.Fatalf("unexpected: %q", got)
	}
}

func TestService_ListRecentScopesByChurch(t *testing.T) {
	repo := NewMemoryRepo()
	svc := NewService(repo)

	for _, church := range []string{"a", "b", "a"} {
		if err := svc.LogVoiceTurn(context.Background(), church, TurnMetadata{SpeechResult: "hi"}); err != nil {
			t.Fatalf("append: %v", err)
		}
	}

	got, err := svc.ListRecent(context.Background(), "a", 10)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(got) != 2 {
		t.Fatalf("expected 2 entries for church a, got %d", len(got))
	}
	for _, e := range got {
		if e.ChurchID != "a" {
			t.Fatalf("leaked entry from another church: %+v", e)
		}
	}
}
