package telephony

import (
	"bytes"
	"encoding/xml"
	"errors"
	"net/url"

	"grace-voice/internal/voice"
)

// Minimal TwiML (Twilio Markup Language) response builder.
// It intentionally avoids any provider SDK dependency.
//
// Only the verbs the call flow needs are modeled: Say, Gather, Redirect,
// Hangup. Every generated document ends in a guaranteed termination path
// (Hangup, or Redirect back to a handler that itself terminates), so a call
// can never hang silently even if the provider drops a callback.

type twimlResponse struct {
	XMLName xml.Name `xml:"Response"`
	Verbs   []any    `xml:",any"`
}

type twimlSay struct {
	XMLName  xml.Name `xml:"Say"`
	Voice    string   `xml:"voice,attr,omitempty"`
	Language string   `xml:"language,attr,omitempty"`
	Text     string   `xml:",chardata"`
}

type twimlGather struct {
	XMLName       xml.Name  `xml:"Gather"`
	Input         string    `xml:"input,attr"`
	Action        string    `xml:"action,attr"`
	Method        string    `xml:"method,attr"`
	Timeout       int       `xml:"timeout,attr"`
	SpeechTimeout string    `xml:"speechTimeout,attr"`
	Say           *twimlSay `xml:"Say,omitempty"`
}

type twimlRedirect struct {
	XMLName xml.Name `xml:"Redirect"`
	Method  string   `xml:"method,attr,omitempty"`
	URL     string   `xml:",chardata"`
}

type twimlHangup struct {
	XMLName xml.Name `xml:"Hangup"`
}

const (
	sayVoice    = "alice"
	sayLanguage = "en-US"

	gatherInput       = "speech"
	speechTimeoutAuto = "auto"

	// Seconds of silence before the provider gives up gathering.
	greetingGatherTimeout = 10
	turnGatherTimeout     = 5

	incomingPath = "/voice/incoming"
	turnPath     = "/voice/turn"
)

const (
	greetingPrompt     = "How can I help you today?"
	greetingNoInput    = "I didn't hear anything. Please try again."
	continuePrompt     = "Is there anything else I can help you with?"
	continueNoInput    = "Thank you for calling. Have a wonderful day!"
	unavailableMessage = "Thank you for calling. Please try again later."
)

func say(text string) *twimlSay {
	return &twimlSay{Voice: sayVoice, Language: sayLanguage, Text: text}
}

// TurnAction is the webhook URL the provider posts the next utterance to.
// The church ID rides in the URL; it is the only conversation state this
// service carries between turns.
func TurnAction(churchID string) string {
	return turnPath + "?tenantId=" + url.QueryEscape(churchID)
}

func incomingAction(churchID string) string {
	return incomingPath + "?tenantId=" + url.QueryEscape(churchID)
}

// RenderGreeting produces the markup for a fresh inbound call: speak the
// greeting, gather the first utterance, and loop back to the entry point
// if nothing was captured.
func RenderGreeting(churchID, greeting string) (string, error) {
	if churchID == "" {
		return "", errors.New("telephony: church id required for greeting")
	}
	var r twimlResponse
	r.Verbs = append(r.Verbs,
		say(greeting),
		&twimlGather{
			Input:         gatherInput,
			Action:        TurnAction(churchID),
			Method:        "POST",
			Timeout:       greetingGatherTimeout,
			SpeechTimeout: speechTimeoutAuto,
			Say:           say(greetingPrompt),
		},
		say(greetingNoInput),
		&twimlRedirect{Method: "POST", URL: incomingAction(churchID)},
	)
	return render(r)
}

// RenderReply turns a classified Reply into markup. A continuing reply
// gathers the next utterance against the same turn endpoint; either way the
// document ends with Hangup.
func RenderReply(churchID string, reply voice.Reply) (string, error) {
	if churchID == "" {
		return "", errors.New("telephony: church id required for reply")
	}
	var r twimlResponse
	r.Verbs = append(r.Verbs, say(reply.Text))

	if reply.Continue {
		r.Verbs = append(r.Verbs,
			&twimlGather{
				Input:         gatherInput,
				Action:        TurnAction(churchID),
				Method:        "POST",
				Timeout:       turnGatherTimeout,
				SpeechTimeout: speechTimeoutAuto,
				Say:           say(continuePrompt),
			},
			// Spoken only when the gather window closes with no speech.
			say(continueNoInput),
		)
	}

	r.Verbs = append(r.Verbs, &twimlHangup{})
	return render(r)
}

// RenderUnavailable is the terminal error document: apology, then hangup.
// No gather and no redirect, so an invalid tenant can never loop.
func RenderUnavailable() string {
	out, err := render(twimlResponse{Verbs: []any{
		say(unavailableMessage),
		&twimlHangup{},
	}})
	if err != nil {
		// Static document; encoding cannot realistically fail. Keep a raw
		// fallback so the caller always hears something.
		return xml.Header + "<Response><Hangup/></Response>"
	}
	return out
}

func render(r twimlResponse) (string, error) {
	var buf bytes.Buffer
	buf.WriteString(xml.Header)
	enc := xml.NewEncoder(&buf)
	enc.Indent("", "  ")
	if err := enc.Encode(r); err != nil {
		return "", err
	}
	if err := enc.Flush(); err != nil {
		return "", err
	}
	return buf.String(), nil
}
