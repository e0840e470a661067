package voice

import "strings"

// Reply is what the assistant says next and whether it keeps listening.
type Reply struct {
	Text     string `json:"text"`
	Continue bool   `json:"continue"`
}

// Classifier maps one caller utterance to a Reply.
//
// Implementations must be pure: same transcript in, same Reply out, no I/O.
// This is the substitution point for a model-backed NLU later; the webhook
// and markup layers only see this interface.
type Classifier interface {
	Classify(transcript string) Reply
}

// KeywordClassifier answers common church inquiries by ordered, first-match
// substring matching over the lower-cased transcript. The first rule that
// matches wins; later rules are never evaluated.
//
// The rule order is a compatibility contract. It is not a specificity
// ranking; do not reorder or extend without product review.
type KeywordClassifier struct {
	rules []rule
}

type rule struct {
	keywords []string
	reply    Reply
}

const (
	serviceTimesReply = "Our worship services are on Sundays at 9 AM and 11 AM, with Wednesday evening services at 7 PM. We'd love to see you there!"
	addressReply      = "You can find our church address and directions on our website, or I can have someone text you the address. Would you like that?"
	pastorReply       = "I can connect you with our pastoral team. Would you like me to schedule a meeting or have someone call you back during office hours?"
	prayerReply       = "I'd be happy to log your prayer request. Our pastoral team will be notified, and we'll keep you in our prayers."
	farewellReply     = "Thank you for calling. Have a blessed day!"
)

// FallbackReply is spoken when no speech was recognized at all.
// It ends the call; the caller is asked to try again later.
const FallbackReply = "I'm sorry, I didn't understand that. Please try again later."

func NewKeywordClassifier() *KeywordClassifier {
	return &KeywordClassifier{
		rules: []rule{
			{keywords: []string{"service", "worship"}, reply: Reply{Text: serviceTimesReply, Continue: true}},
			{keywords: []string{"address", "location", "direction"}, reply: Reply{Text: addressReply, Continue: true}},
			{keywords: []string{"pastor", "minister"}, reply: Reply{Text: pastorReply, Continue: true}},
			{keywords: []string{"pray"}, reply: Reply{Text: prayerReply, Continue: true}},
			{keywords: []string{"thank you", "goodbye"}, reply: Reply{Text: farewellReply, Continue: false}},
		},
	}
}

func (c *KeywordClassifier) Classify(transcript string) Reply {
	lower := strings.ToLower(transcript)
	for _, r := range c.rules {
		for _, kw := range r.keywords {
			if strings.Contains(lower, kw) {
				return r.reply
			}
		}
	}
	// No rule matched: acknowledge what was heard and keep listening.
	return Reply{
		Text:     "I heard you say: " + transcript + ". I'll make sure someone from our team follows up with you. Is there anything else I can help with?",
		Continue: true,
	}
}
