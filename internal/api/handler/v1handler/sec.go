package v1handler

import (
	"context"
	"crypto/rsa"
	"fmt"
	"net/http"
	"recruit/internal/config"
	"recruit/pkg/domain"
	"recruit/pkg/serrors"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
)

// CtxKey is the context key type used by this package.
type CtxKey string

// AccountIDKey is the context key under which the authenticated account ID is
// stored after bearer auth succeeds.
const AccountIDKey CtxKey = "accountID"

// SecHandlerOptions configure bearer token verification.
type SecHandlerOptions struct {
	// PublicKey is the PEM-encoded RSA public key tokens are verified against.
	PublicKey string
}

// NewSecHandlerOptions constructs a SecHandlerOptions value from the provided
// application configuration.
func NewSecHandlerOptions(cfg *config.Config) *SecHandlerOptions {
	return &SecHandlerOptions{
		PublicKey: cfg.JWT.PublicKey,
	}
}

// SecHandler resolves bearer tokens into account identities. Tokens are RS256
// JWTs whose subject is the account ID; no other claims are trusted.
type SecHandler struct {
	publicKey *rsa.PublicKey
}

func NewSecHandler(opts *SecHandlerOptions) (*SecHandler, error) {
	key, err := jwt.ParseRSAPublicKeyFromPEM([]byte(opts.PublicKey))
	if err != nil {
		return nil, fmt.Errorf("could not parse RSA public key: %w", err)
	}

	return &SecHandler{publicKey: key}, nil
}

// HandleBearerAuth verifies the token signature, expiry and subject, and
// returns a context carrying the resolved account ID. Any failure yields
// UNAUTHENTICATED; the caller never learns which check failed.
func (s *SecHandler) HandleBearerAuth(ctx context.Context, token string) (context.Context, error) {
	parsed, err := jwt.ParseWithClaims(token, &jwt.RegisteredClaims{}, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodRSA); !ok {
			return nil, fmt.Errorf("unexpected signing method %q", t.Method.Alg())
		}

		return s.publicKey, nil
	})
	if err != nil || !parsed.Valid {
		return ctx, serrors.Wrap(serrors.ErrUnauthenticated, err, "invalid token")
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthenticated, err, "invalid token")
	}
	id, err := uuid.Parse(subject)
	if err != nil {
		return ctx, serrors.Wrap(serrors.ErrUnauthenticated, err, "invalid token subject")
	}

	return context.WithValue(ctx, AccountIDKey, domain.AccountID(id)), nil
}

// Middleware adapts bearer auth to an HTTP middleware. Requests without a
// valid Authorization header are rejected before reaching any handler.
func (s *SecHandler) Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		header := r.Header.Get("Authorization")
		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
			writeError(r.Context(), w, serrors.With(serrors.ErrUnauthenticated, "missing bearer token"))

			return
		}

		ctx, err := s.HandleBearerAuth(r.Context(), parts[1])
		if err != nil {
			writeError(r.Context(), w, err)

			return
		}

		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetAccountIDFromContext returns the authenticated account ID stored by
// HandleBearerAuth, or the zero ID when the request was not authenticated.
func GetAccountIDFromContext(ctx context.Context) domain.AccountID {
	id, _ := ctx.Value(AccountIDKey).(domain.AccountID)

	return id
}
