package middlewares

import (
	"context"
	"fmt"
	"medibook-service/internal/pkg/constvars"
	"medibook-service/internal/pkg/exceptions"
	"medibook-service/internal/pkg/utils"
	"net/http"
	"strings"
)

// Authenticate resolves the bearer token to a login session. The session is
// written by the identity service; this middleware only reads it and exposes
// the user id to the handlers.
func (m *Middlewares) Authenticate(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		authHeader := r.Header.Get(constvars.HeaderAuthorization)
		if authHeader == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenMissing(fmt.Errorf("no authorization header")))
			return
		}

		token := strings.TrimPrefix(authHeader, "Bearer ")
		sessionID, err := utils.ParseJWT(token, m.InternalConfig.JWT.Secret)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrTokenInvalidOrExpired(err))
			return
		}

		sessionData, err := m.SessionService.GetSessionData(r.Context(), sessionID)
		if err != nil || sessionData == "" {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(err))
			return
		}

		session, err := m.SessionService.ParseSessionData(r.Context(), sessionData)
		if err != nil {
			utils.BuildErrorResponse(m.Log, w, exceptions.ErrInvalidSession(err))
			return
		}

		ctx := context.WithValue(r.Context(), constvars.CONTEXT_SESSION_DATA_KEY, sessionData)
		ctx = context.WithValue(ctx, constvars.CONTEXT_USER_ID_KEY, session.UserID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
