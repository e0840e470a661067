package telephony

import (
	"crypto/hmac"
	"crypto/sha1"
	"encoding/base64"
	"net/http"
	"net/url"
	"sort"

	"grace-voice/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Twilio signs each webhook with HMAC-SHA1 over the full request URL plus
// the alphabetically sorted POST parameters, keyed by the account auth
// token, and sends the base64 digest in X-Twilio-Signature.
// Ref: https://www.twilio.com/docs/usage/security#validating-requests

const headerTwilioSignature = "X-Twilio-Signature"

// Signature computes the expected signature for a request.
func Signature(authToken, fullURL string, params url.Values) string {
	keys := make([]string, 0, len(params))
	for k := range params {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	mac := hmac.New(sha1.New, []byte(authToken))
	mac.Write([]byte(fullURL))
	for _, k := range keys {
		mac.Write([]byte(k))
		mac.Write([]byte(params.Get(k)))
	}
	return base64.StdEncoding.EncodeToString(mac.Sum(nil))
}

// ValidSignature verifies a webhook signature in constant time.
func ValidSignature(authToken, fullURL string, params url.Values, signature string) bool {
	expected := Signature(authToken, fullURL, params)
	return hmac.Equal([]byte(expected), []byte(signature))
}

// RequireSignature rejects webhook requests whose X-Twilio-Signature does
// not verify. A blank authToken disables the check (local development);
// production config requires it.
//
// publicBaseURL (scheme + host) reconstructs the URL Twilio signed when the
// service sits behind a proxy; when blank the request's own host is used.
func RequireSignature(authToken, publicBaseURL string) gin.HandlerFunc {
	return func(c *gin.Context) {
		if authToken == "" {
			c.Next()
			return
		}

		if err := c.Request.ParseForm(); err != nil {
			c.AbortWithStatusJSON(http.StatusBadRequest, gin.H{"error": "invalid form"})
			return
		}

		fullURL := publicBaseURL
		if fullURL == "" {
			scheme := "http"
			if c.Request.TLS != nil {
				scheme = "https"
			}
			fullURL = scheme + "://" + c.Request.Host
		}
		fullURL += c.Request.URL.RequestURI()

		sig := c.GetHeader(headerTwilioSignature)
		if sig == "" || !ValidSignature(authToken, fullURL, c.Request.PostForm, sig) {
			logger.FromGin(c).Warn("webhook signature rejected", "path", c.Request.URL.Path)
			c.AbortWithStatusJSON(http.StatusForbidden, gin.H{"error": "invalid signature"})
			return
		}
		c.Next()
	}
}
