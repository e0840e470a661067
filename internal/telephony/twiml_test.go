package telephony

import (
	"strings"
	"testing"

	"grace-voice/internal/voice"
)

func TestRenderGreeting(t *testing.T) {
	doc, err := RenderGreeting("church-1", "Welcome to First Baptist.")
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if !strings.Contains(doc, "Welcome to First Baptist.") {
		t.Fatalf("expected greeting spoken first: %s", doc)
	}
	if n := strings.Count(doc, "<Gather"); n != 1 {
		t.Fatalf("expected exactly one gather, got %d: %s", n, doc)
	}
	if !strings.Contains(doc, "tenantId=church-1") {
		t.Fatalf("expected gather action to carry tenantId: %s", doc)
	}
	if !strings.Contains(doc, "<Redirect") || !strings.Contains(doc, "/voice/incoming") {
		t.Fatalf("expected no-input redirect back to entry point: %s", doc)
	}
	if !strings.Contains(doc, `speechTimeout="auto"`) {
		t.Fatalf("expected auto speech timeout: %s", doc)
	}
}

func TestRenderGreetingRequiresChurch(t *testing.T) {
	if _, err := RenderGreeting("", "hi"); err == nil {
		t.Fatalf("expected error")
	}
}

func TestRenderReplyContinueGathersOnce(t *testing.T) {
	doc, err := RenderReply("church-1", voice.Reply{Text: "Our services are at 9 AM.", Continue: true})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if n := strings.Count(doc, "<Gather"); n != 1 {
		t.Fatalf("expected exactly one gather, got %d: %s", n, doc)
	}
	if !strings.Contains(doc, "/voice/turn?tenantId=church-1") {
		t.Fatalf("expected gather to loop back to same turn endpoint with same tenant: %s", doc)
	}
	if !strings.Contains(doc, "<Hangup") {
		t.Fatalf("expected trailing hangup so the call always terminates: %s", doc)
	}
	// The reply must be spoken before any gather.
	if strings.Index(doc, "Our services are at 9 AM.") > strings.Index(doc, "<Gather") {
		t.Fatalf("expected reply spoken before gather: %s", doc)
	}
}

func TestRenderReplyTerminalIsSpeakAndHangupOnly(t *testing.T) {
	doc, err := RenderReply("church-1", voice.Reply{Text: "Have a blessed day!", Continue: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(doc, "<Gather") || strings.Contains(doc, "<Redirect") {
		t.Fatalf("terminal reply must not gather or redirect: %s", doc)
	}
	if !strings.Contains(doc, "Have a blessed day!") || !strings.Contains(doc, "<Hangup") {
		t.Fatalf("expected say then hangup: %s", doc)
	}
}

func TestRenderReplyEscapesMarkup(t *testing.T) {
	doc, err := RenderReply("church-1", voice.Reply{Text: `I heard you say: <goodbye> & "thanks"`, Continue: false})
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if strings.Contains(doc, "<goodbye>") {
		t.Fatalf("expected transcript content to be XML-escaped: %s", doc)
	}
}

func TestRenderUnavailableNeverContinues(t *testing.T) {
	doc := RenderUnavailable()
	if strings.Contains(doc, "<Gather") || strings.Contains(doc, "<Redirect") {
		t.Fatalf("unavailable document must not contain a continuation: %s", doc)
	}
	if !strings.Contains(doc, "<Say") || !strings.Contains(doc, "<Hangup") {
		t.Fatalf("expected apology say and hangup: %s", doc)
	}
}

func TestTurnActionEscapesChurchID(t *testing.T) {
	got := TurnAction("a b&c")
	if got != "/voice/turn?tenantId=a+b%26c" {
		t.Fatalf("unexpected action: %q", got)
	}
}
