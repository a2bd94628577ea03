package middleware

import (
	"bytes"
	"io"
	"net/http"

	"snackbot/internal/handler/httperr"
	"snackbot/internal/pkg/config"

	"github.com/gin-gonic/gin"
	"github.com/slack-go/slack"
)

// VerifySlackSignature authenticates inbound Slack requests with the app's
// signing secret. Verification consumes the body, so it is buffered and
// restored for the handlers' form parsing. An empty secret disables the
// check (local development and tests).
func VerifySlackSignature(cfg config.SlackConfig) gin.HandlerFunc {
	return func(c *gin.Context) {
		if cfg.SigningSecret == "" {
			c.Next()
			return
		}

		body, err := io.ReadAll(c.Request.Body)
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Unreadable body", nil)
			return
		}
		c.Request.Body = io.NopCloser(bytes.NewReader(body))

		verifier, err := slack.NewSecretsVerifier(c.Request.Header, cfg.SigningSecret)
		if err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid signature headers", nil)
			return
		}
		if _, err := verifier.Write(body); err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Signature check failed", nil)
			return
		}
		if err := verifier.Ensure(); err != nil {
			httperr.AbortWithError(c, http.StatusUnauthorized, err, "Invalid request signature", nil)
			return
		}

		c.Next()
	}
}
