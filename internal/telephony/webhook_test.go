package telephony

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func formRequest(t *testing.T, target, body string) *http.Request {
	t.Helper()
	r := httptest.NewRequest(http.MethodPost, target, strings.NewReader(body))
	r.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	return r
}

func TestParseVoiceTurn(t *testing.T) {
	r := formRequest(t, "/voice/turn?tenantId=c1",
		"SpeechResult=when+is+the+service&CallSid=CA123&From=%2B15551234567&To=%2B15557654321&Caller=%2B15551234567")

	form, err := ParseVoiceTurn(r)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if form.SpeechResult != "when is the service" {
		t.Fatalf("unexpected transcript: %q", form.SpeechResult)
	}
	if form.CallSid != "CA123" || form.From != "+15551234567" || form.To != "+15557654321" {
		t.Fatalf("unexpected form: %+v", form)
	}

	turn := form.ToTurn("c1")
	if turn.ChurchID != "c1" || turn.Transcript != "when is the service" || turn.CallSID != "CA123" {
		t.Fatalf("unexpected turn: %+v", turn)
	}
	if turn.CallerName != "+15551234567" {
		t.Fatalf("expected caller label fallback to Caller field, got %q", turn.CallerName)
	}
}

func TestParseVoiceTurnMissingSpeech(t *testing.T) {
	r := formRequest(t, "/voice/turn?tenantId=c1", "CallSid=CA123")

	form, err := ParseVoiceTurn(r)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if form.SpeechResult != "" {
		t.Fatalf("expected empty transcript, got %q", form.SpeechResult)
	}
}

func TestParseStatusCallback(t *testing.T) {
	r := formRequest(t, "/voice/status?tenantId=c1",
		"CallSid=CA123&CallStatus=Completed&CallDuration=42&From=%2B15551234567")

	form, err := ParseStatusCallback(r)
	if err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if form.CallStatus != "completed" {
		t.Fatalf("expected lower-cased status, got %q", form.CallStatus)
	}
	if form.DurationSeconds != 42 {
		t.Fatalf("expected duration 42, got %d", form.DurationSeconds)
	}
	if !form.Terminal() {
		t.Fatalf("completed must be terminal")
	}
}

func TestStatusCallbackTerminal(t *testing.T) {
	for status, want := range map[string]bool{
		"completed":   true,
		"busy":        true,
		"failed":      true,
		"no-answer":   true,
		"canceled":    true,
		"ringing":     false,
		"in-progress": false,
		"queued":      false,
		"":            false,
	} {
		f := StatusCallbackForm{CallStatus: status}
		if f.Terminal() != want {
			t.Fatalf("status %q: expected terminal=%v", status, want)
		}
	}
}
