package voice

import (
	"context"
	"strings"

	"grace-voice/internal/activity"
	"grace-voice/pkg/logger"
)

// TurnHandler maps one conversation turn to a spoken reply and records the
// interaction. The reply decision is delegated to the Classifier; the log
// write is best-effort and never alters the reply.
//
// Callers must have validated the church before invoking HandleTurn; the
// handler does not branch on church content beyond logging attribution.
type TurnHandler struct {
	classifier Classifier
	activities *activity.Service
}

func NewTurnHandler(classifier Classifier, activities *activity.Service) *TurnHandler {
	return &TurnHandler{classifier: classifier, activities: activities}
}

// HandleTurn produces the reply for one turn.
//
// An empty or blank transcript short-circuits to the fixed fallback reply
// with Continue=false and writes no log entry; there is nothing meaningful
// to attribute.
func (h *TurnHandler) HandleTurn(ctx context.Context, t Turn) Reply {
	if strings.TrimSpace(t.Transcript) == "" {
		return Reply{Text: FallbackReply, Continue: false}
	}

	reply := h.classifier.Classify(t.Transcript)

	if h.activities != nil {
		err := h.activities.LogVoiceTurn(ctx, t.ChurchID, activity.TurnMetadata{
			CallSID:      t.CallSID,
			From:         t.From,
			To:           t.To,
			Caller:       t.CallerName,
			SpeechResult: t.Transcript,
			Reply:        reply.Text,
		})
		if err != nil {
			// The caller still gets the reply; surface the failure
			// operationally only.
			logger.From(ctx).Warn("voice turn log failed",
				"church_id", t.ChurchID,
				"call_sid", t.CallSID,
				"err", err,
			)
		}
	}

	return reply
}
