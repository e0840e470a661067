package voice

import (
	"strings"
	"testing"
)

func TestClassify_ServiceTimes(t *testing.T) {
	c := NewKeywordClassifier()

	for _, transcript := range []string{
		"What time is the service?",
		"WHEN IS SERVICE",
		"do you have worship on sundays",
	} {
		got := c.Classify(transcript)
		if !got.Continue {
			t.Fatalf("%q: expected continue=true", transcript)
		}
		if !strings.Contains(got.Text, "Sundays at 9 AM") {
			t.Fatalf("%q: expected service schedule, got %q", transcript, got.Text)
		}
	}
}

func TestClassify_FirstMatchWins(t *testing.T) {
	c := NewKeywordClassifier()

	// Contains both a service-time keyword and a farewell keyword; the
	// earlier rule must win and the call must stay open.
	got := c.Classify("what's the service time, ok goodbye")
	if !got.Continue {
		t.Fatalf("expected continue=true, farewell rule must not be reached")
	}
	if !strings.Contains(got.Text, "worship services") {
		t.Fatalf("expected service reply, got %q", got.Text)
	}
}

func TestClassify_RulePriorityOrder(t *testing.T) {
	c := NewKeywordClassifier()

	cases := []struct {
		transcript string
		want       string
		cont       bool
	}{
		{"where is your location", addressReply, true},
		{"can I talk to the pastor", pastorReply, true},
		{"please pray for my family", prayerReply, true},
		{"I have a prayer request", prayerReply, true},
		{"thank you, goodbye", farewellReply, false},
		// address outranks pastor when both are present
		{"what's the address of the pastor's office", addressReply, true},
	}
	for _, tc := range cases {
		got := c.Classify(tc.transcript)
		if got.Text != tc.want {
			t.Fatalf("%q: got %q, want %q", tc.transcript, got.Text, tc.want)
		}
		if got.Continue != tc.cont {
			t.Fatalf("%q: got continue=%v, want %v", tc.transcript, got.Continue, tc.cont)
		}
	}
}

func TestClassify_GenericEchoesTranscript(t *testing.T) {
	c := NewKeywordClassifier()

	got := c.Classify("do you have a youth group")
	if !got.Continue {
		t.Fatalf("expected continue=true for generic reply")
	}
	if !strings.Contains(got.Text, "do you have a youth group") {
		t.Fatalf("expected transcript echoed back, got %q", got.Text)
	}
}

func TestClassify_Deterministic(t *testing.T) {
	c := NewKeywordClassifier()

	first := c.Classify("please pray for me")
	for i := 0; i < 10; i++ {
		if got := c.Classify("please pray for me"); got != first {
			t.Fatalf("classification not deterministic: %+v vs %+v", got, first)
		}
	}
}
