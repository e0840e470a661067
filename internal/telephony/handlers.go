package telephony

import (
	"errors"
	"net/http"
	"strings"

	"grace-voice/internal/activity"
	"grace-voice/internal/tenant"
	"grace-voice/internal/voice"
	"grace-voice/pkg/logger"

	"github.com/gin-gonic/gin"
)

// VoiceWebhookHandler serves the Twilio voice webhooks: the fresh-call entry
// point, the per-turn speech callback, and the call-status callback.
//
// Tenant scoping: the church ID travels in the webhook query string, is
// validated against the store on every request, and nothing personalized is
// rendered before that gate passes. The handler keeps no state between
// requests; conversation continuity lives in the provider's call session.
//
// Every response is TwiML with HTTP 200 — the provider plays whatever
// document it gets, so error paths answer with apology markup rather than
// error status codes.
type VoiceWebhookHandler struct {
	Tenants    tenant.Store
	Turns      *voice.TurnHandler
	Activities *activity.Service

	// DefaultGreeting is used when neither the request nor the church
	// record supplies one.
	DefaultGreeting string
}

const contentTypeXML = "text/xml; charset=utf-8"

func respondTwiML(c *gin.Context, doc string) {
	c.Header("Content-Type", contentTypeXML)
	c.String(http.StatusOK, doc)
}

// resolveChurch runs the tenant gate. On any failure it answers with the
// terminal unavailable document and reports false; the caller must return
// without doing further work.
func (h VoiceWebhookHandler) resolveChurch(c *gin.Context) (tenant.Church, bool) {
	log := logger.FromGin(c)

	id := strings.TrimSpace(c.Query("tenantId"))
	if id == "" {
		log.Warn("voice webhook missing tenantId")
		respondTwiML(c, RenderUnavailable())
		return tenant.Church{}, false
	}

	church, err := h.Tenants.FindByID(c.Request.Context(), id)
	if err != nil {
		if errors.Is(err, tenant.ErrNotFound) {
			log.Warn("voice webhook for unknown church", "church_id", id)
		} else {
			log.Error("church lookup failed", "church_id", id, "err", err)
		}
		respondTwiML(c, RenderUnavailable())
		return tenant.Church{}, false
	}
	if !church.Callable() {
		log.Warn("voice webhook for suspended church", "church_id", id)
		respondTwiML(c, RenderUnavailable())
		return tenant.Church{}, false
	}
	return church, true
}

// HandleIncomingCall answers a fresh inbound call with the greeting and the
// first speech gather.
func (h VoiceWebhookHandler) HandleIncomingCall(c *gin.Context) {
	log := logger.FromGin(c)

	church, ok := h.resolveChurch(c)
	if !ok {
		return
	}

	greeting := strings.TrimSpace(c.Query("greeting"))
	if greeting == "" {
		greeting = church.Greeting
	}
	if greeting == "" {
		greeting = h.DefaultGreeting
	}

	doc, err := RenderGreeting(church.ID, greeting)
	if err != nil {
		log.Error("greeting render failed", "church_id", church.ID, "err", err)
		respondTwiML(c, RenderUnavailable())
		return
	}
	respondTwiML(c, doc)
}

// HandleTurn processes one speech-recognition result and answers with the
// next markup document.
func (h VoiceWebhookHandler) HandleTurn(c *gin.Context) {
	log := logger.FromGin(c)

	form, err := ParseVoiceTurn(c.Request)
	if err != nil {
		log.Warn("voice turn parse failed", "err", err)
		respondTwiML(c, RenderUnavailable())
		return
	}

	church, ok := h.resolveChurch(c)
	if !ok {
		return
	}

	respondTwiML(c, h.turnMarkup(c, church, form))
}

// turnMarkup classifies the utterance and renders the reply. A panic in
// classification or rendering is converted into the terminal apology
// document so the caller always hears something coherent.
func (h VoiceWebhookHandler) turnMarkup(c *gin.Context, church tenant.Church, form VoiceTurnForm) (doc string) {
	log := logger.FromGin(c)

	defer func() {
		if p := recover(); p != nil {
			log.Error("voice turn panicked", "church_id", church.ID, "call_sid", form.CallSid, "panic", p)
			doc = RenderUnavailable()
		}
	}()

	reply := h.Turns.HandleTurn(c.Request.Context(), form.ToTurn(church.ID))

	doc, err := RenderReply(church.ID, reply)
	if err != nil {
		log.Error("reply render failed", "church_id", church.ID, "err", err)
		return RenderUnavailable()
	}
	return doc
}

// HandleStatus records terminal call statuses into the activity feed.
// Pure logging passthrough: it makes no call-control decisions and always
// acknowledges the webhook.
func (h VoiceWebhookHandler) HandleStatus(c *gin.Context) {
	log := logger.FromGin(c)

	form, err := ParseStatusCallback(c.Request)
	if err != nil {
		log.Warn("status callback parse failed", "err", err)
		c.Status(http.StatusNoContent)
		return
	}
	if !form.Terminal() {
		c.Status(http.StatusNoContent)
		return
	}

	id := strings.TrimSpace(c.Query("tenantId"))
	if id == "" || h.Activities == nil {
		c.Status(http.StatusNoContent)
		return
	}
	if _, err := h.Tenants.FindByID(c.Request.Context(), id); err != nil {
		log.Warn("status callback for unknown church", "church_id", id, "err", err)
		c.Status(http.StatusNoContent)
		return
	}

	err = h.Activities.LogCallCompleted(c.Request.Context(), id, activity.CallMetadata{
		CallSID:         form.CallSid,
		From:            form.From,
		To:              form.To,
		CallStatus:      form.CallStatus,
		DurationSeconds: form.DurationSeconds,
	})
	if err != nil {
		log.Warn("call completion log failed", "church_id", id, "call_sid", form.CallSid, "err", err)
	}
	c.Status(http.StatusNoContent)
}
