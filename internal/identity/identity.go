package identity

import (
	"context"
	"encoding/base64"
	"errors"
	"fmt"

	firebase "firebase.google.com/go/v4"
	"firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"

	"mealbridge/backend/internal/config"
)

// Identity is the claim set produced by a successful token verification.
type Identity struct {
	Email   string `json:"email"`
	Name    string `json:"name"`
	Picture string `json:"picture"`
}

// Verifier maps a bearer token to a verified Identity or fails.
type Verifier interface {
	Verify(ctx context.Context, token string) (*Identity, error)
}

type firebaseVerifier struct {
	client *auth.Client
}

// NewFirebaseVerifier builds a Verifier backed by the Firebase Admin SDK.
// The service-account credential comes either from a base64-encoded env value
// or a credentials file path.
func NewFirebaseVerifier(ctx context.Context, cfg config.AuthConfig) (Verifier, error) {
	var opt option.ClientOption
	switch {
	case cfg.CredentialsFile != "":
		opt = option.WithCredentialsFile(cfg.CredentialsFile)
	case cfg.KeyBase64 != "":
		key, err := base64.StdEncoding.DecodeString(cfg.KeyBase64)
		if err != nil {
			return nil, errors.New("FIREBASE_SERVICE_ACCOUNT_BASE64 is not valid base64")
		}
		opt = option.WithCredentialsJSON(key)
	default:
		return nil, errors.New("either GOOGLE_APPLICATION_CREDENTIALS or FIREBASE_SERVICE_ACCOUNT_BASE64 must be set")
	}

	conf := &firebase.Config{ProjectID: cfg.ProjectID}
	app, err := firebase.NewApp(ctx, conf, opt)
	if err != nil {
		return nil, fmt.Errorf("initialize firebase app: %w", err)
	}
	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("get firebase auth client: %w", err)
	}
	return &firebaseVerifier{client: client}, nil
}

func (v *firebaseVerifier) Verify(ctx context.Context, token string) (*Identity, error) {
	decoded, err := v.client.VerifyIDToken(ctx, token)
	if err != nil {
		return nil, err
	}
	ident := &Identity{}
	if email, ok := decoded.Claims["email"].(string); ok {
		ident.Email = email
	}
	if name, ok := decoded.Claims["name"].(string); ok {
		ident.Name = name
	}
	if picture, ok := decoded.Claims["picture"].(string); ok {
		ident.Picture = picture
	}
	if ident.Email == "" {
		return nil, errors.New("token has no email claim")
	}
	return ident, nil
}
