package auth

import (
	"context"
	"errors"
	"net/http"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/ijalalfrz/flight-price-watch-service/internal/pkg/exception"
)

var ErrUnauthorized = exception.ApplicationError{
	StatusCode: http.StatusUnauthorized,
	Message:    "unauthorized",
}

type contextKey string

const userIDKey contextKey = "user_id"

// Verifier checks HMAC signed access tokens issued by the identity service.
// The subject claim carries the user id.
type Verifier struct {
	secret []byte
}

func NewVerifier(secret string) *Verifier {
	return &Verifier{secret: []byte(secret)}
}

func (v *Verifier) Verify(rawToken string) (uuid.UUID, error) {
	parsed, err := jwt.Parse(rawToken, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("invalid signing method")
		}

		return v.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid {
		return uuid.Nil, ErrUnauthorized
	}

	subject, err := parsed.Claims.GetSubject()
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}

	userID, err := uuid.Parse(subject)
	if err != nil {
		return uuid.Nil, ErrUnauthorized
	}

	return userID, nil
}

// ExtractBearerToken returns the token of an "Authorization: Bearer" header.
func ExtractBearerToken(header string) (string, bool) {
	if !strings.HasPrefix(header, "Bearer ") {
		return "", false
	}

	token := strings.TrimSpace(strings.TrimPrefix(header, "Bearer "))
	if token == "" {
		return "", false
	}

	return token, true
}

func WithUserID(ctx context.Context, userID uuid.UUID) context.Context {
	return context.WithValue(ctx, userIDKey, userID)
}

func UserIDFromContext(ctx context.Context) (uuid.UUID, bool) {
	userID, ok := ctx.Value(userIDKey).(uuid.UUID)
	if !ok || userID == uuid.Nil {
		return uuid.Nil, false
	}

	return userID, true
}
