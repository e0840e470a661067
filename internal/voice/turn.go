package voice

// Turn is one request/response cycle of a conversation: one caller
// utterance plus its routing identifiers. It exists only for the duration
// of a single webhook invocation and is never persisted as-is.
//
// Conversation continuity lives entirely in the telephony provider's call
// session; this service keeps no state between turns.
type Turn struct {
	ChurchID   string
	Transcript string

	// CallSID correlates all turns of one call, for logging only.
	CallSID string

	// Caller metadata, logging only.
	From       string
	To         string
	CallerName string
}
