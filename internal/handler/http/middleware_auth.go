package http

import (
	"context"
	"errors"
	"fmt"
	"net/http"

	"github.com/golang-jwt/jwt/v5"
	"github.com/rs/zerolog"

	"github.com/MKhiriev/oc-serve/internal/logger"
	"github.com/MKhiriev/oc-serve/internal/utils"
)

// withAuth is an HTTP middleware that enforces JWT bearer authentication. It
// is installed only when a sign key is configured.
//
// It inspects the incoming "Authorization" header, verifies the bearer token
// against the configured sign key and issuer and, on success, stores the
// token subject in the request context under [utils.SubjectCtxKey] and in
// the request logger before delegating to the next handler.
//
// The middleware rejects requests with HTTP 401 Unauthorized in the following cases:
//   - The "Authorization" header is absent ([ErrEmptyAuthorizationHeader]).
//   - The header value is not a bearer token ([ErrInvalidAuthorizationHeader]).
//   - The token has expired ([ErrTokenIsExpired]).
//   - The token is otherwise invalid or cannot be parsed ([ErrInvalidToken]).
func (h *Handler) withAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get("Authorization")
		if authHeader == "" {
			h.writeError(w, r, ErrEmptyAuthorizationHeader)
			return
		}

		tokenString, err := utils.ParseBearerToken(authHeader)
		if err != nil {
			h.writeError(w, r, err)
			return
		}

		token, err := utils.ValidateAndParseJWTToken(tokenString, h.auth.SignKey, h.auth.Issuer)
		if err != nil {
			if errors.Is(err, jwt.ErrTokenExpired) {
				h.writeError(w, r, fmt.Errorf("%w: %w", ErrTokenIsExpired, err))
				return
			}
			h.writeError(w, r, fmt.Errorf("%w: %w", ErrInvalidToken, err))
			return
		}

		ctx := context.WithValue(r.Context(), utils.SubjectCtxKey, token.Subject)

		l := logger.FromRequest(r).GetChildLogger()
		l.UpdateContext(func(c zerolog.Context) zerolog.Context {
			return c.Str("subject", token.Subject)
		})
		ctx = l.WithContext(ctx)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
