package identity

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"github.com/golang-jwt/jwt/v5"
	"log/slog"
	"tickto/common"
	"tickto/common/constant"
	"tickto/common/otel"
	"time"
)

const tokenIssuer = "privy.io"

// TokenVerifier checks the provider's ES256 access tokens and yields the user id in the subject.
type TokenVerifier struct {
	AppID string
	Key   *ecdsa.PublicKey

	Leeway time.Duration
}

func NewTokenVerifier(appID string, verificationKeyPEM string) (*TokenVerifier, error) {
	key, err := jwt.ParseECPublicKeyFromPEM([]byte(verificationKeyPEM))
	if err != nil {
		return nil, fmt.Errorf("parse verification key: %w", err)
	}

	return &TokenVerifier{AppID: appID, Key: key, Leeway: 30 * time.Second}, nil
}

func (out *TokenVerifier) VerifyToken(ctx context.Context, token string) (string, error) {
	ctx, span := otel.Tracer.Start(ctx, "TokenVerifier.VerifyToken")
	defer span.End()

	var claims jwt.RegisteredClaims
	_, err := jwt.ParseWithClaims(token, &claims, func(*jwt.Token) (any, error) {
		return out.Key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodES256.Alg()}),
		jwt.WithIssuer(tokenIssuer),
		jwt.WithAudience(out.AppID),
		jwt.WithExpirationRequired(),
		jwt.WithLeeway(out.Leeway),
	)
	if err != nil {
		slog.InfoContext(ctx, "access token rejected", common.ExtractTraceIDFromCtx(ctx), slog.Any(constant.LogFieldErr, err))
		common.UtilSpanError(span, err)
		return "", err
	}

	if claims.Subject == "" {
		err = errors.New("access token has no subject")
		common.UtilSpanError(span, err)
		return "", err
	}

	return claims.Subject, nil
}
