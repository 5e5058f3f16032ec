package auth

import (
	"strings"

	"github.com/Abraxas-365/jobboard/pkg/logx"
	"github.com/gofiber/fiber/v2"
)

// BearerToken extracts the token from an Authorization header value.
// Anything other than "Bearer <token>" yields "".
func BearerToken(header string) string {
	const prefix = "Bearer "
	if !strings.HasPrefix(header, prefix) {
		return ""
	}
	return strings.TrimSpace(header[len(prefix):])
}

// RequireCredential rejects requests whose bearer token fails the checker.
// It runs before the body is parsed so rejected requests never reach storage.
func RequireCredential(checker CredentialChecker) fiber.Handler {
	return func(c *fiber.Ctx) error {
		token := BearerToken(c.Get(fiber.HeaderAuthorization))
		if err := checker.Check(c.UserContext(), token); err != nil {
			logx.Debugf("admin credential rejected for %s %s: %v", c.Method(), c.Path(), err)
			return ErrUnauthorized()
		}
		return c.Next()
	}
}
