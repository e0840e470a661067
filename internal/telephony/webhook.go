package telephony

import (
	"net/http"
	"strconv"
	"strings"

	"grace-voice/internal/voice"
)

// Typed views of the Twilio voice webhook payloads we consume.
// Twilio sends application/x-www-form-urlencoded by default.
// Ref: https://www.twilio.com/docs/voice/twiml
//
// Keep these provider-adapter-only; business logic never reads raw forms.

// VoiceTurnForm is one speech-recognition result plus caller metadata.
type VoiceTurnForm struct {
	SpeechResult string
	CallSid      string
	From         string
	To           string
	Caller       string
	CallerName   string
}

func ParseVoiceTurn(r *http.Request) (VoiceTurnForm, error) {
	if err := r.ParseForm(); err != nil {
		return VoiceTurnForm{}, err
	}
	return VoiceTurnForm{
		SpeechResult: strings.TrimSpace(r.PostFormValue("SpeechResult")),
		CallSid:      r.PostFormValue("CallSid"),
		From:         strings.TrimSpace(r.PostFormValue("From")),
		To:           strings.TrimSpace(r.PostFormValue("To")),
		Caller:       strings.TrimSpace(r.PostFormValue("Caller")),
		CallerName:   strings.TrimSpace(r.PostFormValue("CallerName")),
	}, nil
}

// ToTurn binds the form to a validated church ID.
func (f VoiceTurnForm) ToTurn(churchID string) voice.Turn {
	label := f.CallerName
	if label == "" {
		label = f.Caller
	}
	return voice.Turn{
		ChurchID:   churchID,
		Transcript: f.SpeechResult,
		CallSID:    f.CallSid,
		From:       f.From,
		To:         f.To,
		CallerName: label,
	}
}

// StatusCallbackForm is the call-completion webhook payload.
type StatusCallbackForm struct {
	CallSid         string
	CallStatus      string
	From            string
	To              string
	DurationSeconds int
}

func ParseStatusCallback(r *http.Request) (StatusCallbackForm, error) {
	if err := r.ParseForm(); err != nil {
		return StatusCallbackForm{}, err
	}
	f := StatusCallbackForm{
		CallSid:    r.PostFormValue("CallSid"),
		CallStatus: strings.ToLower(strings.TrimSpace(r.PostFormValue("CallStatus"))),
		From:       strings.TrimSpace(r.PostFormValue("From")),
		To:         strings.TrimSpace(r.PostFormValue("To")),
	}
	if v := r.PostFormValue("CallDuration"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			f.DurationSeconds = n
		}
	}
	return f, nil
}

// Terminal reports whether the call is over from the provider's view.
func (f StatusCallbackForm) Terminal() bool {
	switch f.CallStatus {
	case "completed", "busy", "failed", "no-answer", "canceled":
		return true
	default:
		return false
	}
}
