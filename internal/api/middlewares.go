package api

import (
	"context"
	"fmt"
	"log/slog"
	"net/http"
	"runtime/debug"
	"strconv"

	"github.com/gofrs/uuid/v5"
	"github.com/golang-jwt/jwt/v5/request"
	"github.com/oticaroyal/panel/internal/entity"
	"github.com/oticaroyal/panel/pkg/logger"
)

type TokenParser interface {
	ParseAccessToken(token string) (entity.UserClaims, error)
}

type Middleware struct {
	tokens TokenParser
}

func NewMiddleware(tokens TokenParser) *Middleware {
	return &Middleware{
		tokens: tokens,
	}
}

func (m *Middleware) Log(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetRequestID(r.Context(), uuid.Must(uuid.NewV4()).String())

		headers := ""

		for k, v := range r.Header {
			if k == "Authorization" {
				continue
			}

			headers += fmt.Sprintf("%s: %s,\n", k, v)
		}

		slog.InfoContext(ctx, "incoming request", "method", r.Method, "url", r.URL.String(), "headers", headers)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Recover(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		defer func(ctx context.Context) {
			err := recover()
			if err != nil {
				slog.ErrorContext(ctx, "panic", "error", err, "stack", string(debug.Stack()))
			}
		}(r.Context())
		next.ServeHTTP(w, r)
	})
}

func (m *Middleware) Cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		origin := r.Header.Get("Origin")
		if origin != "" {
			w.Header().Set("Access-Control-Allow-Origin", origin)
		} else {
			w.Header().Set("Access-Control-Allow-Origin", "*")
		}

		w.Header().Set("Access-Control-Allow-Credentials", "true")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization, Origin, Accept, User-Agent, Cache-Control")

		if r.Method == http.MethodOptions {
			return
		}

		next.ServeHTTP(w, r)
	})
}

// WithIP puts the caller address on the logging context, so every
// record emitted while serving the request carries it.
func (m *Middleware) WithIP(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := logger.SetIP(r.Context(), r.RemoteAddr)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) Auth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		accessToken, err := request.BearerExtractor{}.ExtractToken(r)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Token não informado")
			return
		}

		claims, err := m.tokens.ParseAccessToken(accessToken)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Token inválido ou expirado")
			return
		}

		ctx = logger.SetUserID(ctx, strconv.FormatInt(claims.UserID, 10))
		ctx = entity.SetUserToContext(ctx, claims)

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

func (m *Middleware) RequireAdmin(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()

		claims, err := entity.UserFromContext(ctx)
		if err != nil {
			SendErr(ctx, w, http.StatusUnauthorized, err, "Token inválido ou expirado")
			return
		}

		if claims.Role != entity.RoleAdmin {
			SendErr(ctx, w, http.StatusForbidden, entity.ErrForbidden, "Acesso restrito ao administrador")
			return
		}

		next.ServeHTTP(w, r)
	})
}
