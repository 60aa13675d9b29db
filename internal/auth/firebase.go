package auth

import (
	"context"
	"fmt"

	firebase "firebase.google.com/go/v4"
	fbauth "firebase.google.com/go/v4/auth"
	"google.golang.org/api/option"
)

// InitializeFirebase initializes the Firebase Admin SDK and returns an Auth
// client. Used when AUTH_BACKEND=firebase: admin identity lives with the
// provider, not in the local credentials file.
func InitializeFirebase(ctx context.Context, credentialsPath string) (*fbauth.Client, error) {
	if credentialsPath == "" {
		return nil, fmt.Errorf("FIREBASE_CREDENTIALS_PATH is required")
	}

	opt := option.WithCredentialsFile(credentialsPath)
	app, err := firebase.NewApp(ctx, nil, opt)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize Firebase app: %w", err)
	}

	client, err := app.Auth(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get Auth client: %w", err)
	}
	return client, nil
}

// ProviderChangePassword sets a new password on the provider account. The
// old password is not re-verified here; the provider already authenticated
// the bearer of the token that reached this call.
func ProviderChangePassword(ctx context.Context, client *fbauth.Client, uid, newPassword string) error {
	params := (&fbauth.UserToUpdate{}).Password(newPassword)
	if _, err := client.UpdateUser(ctx, uid, params); err != nil {
		return fmt.Errorf("update provider password: %w", err)
	}
	return nil
}

// ProviderResetLink produces the provider's password-reset email link.
func ProviderResetLink(ctx context.Context, client *fbauth.Client, email string) (string, error) {
	link, err := client.PasswordResetLink(ctx, email)
	if err != nil {
		return "", fmt.Errorf("password reset link: %w", err)
	}
	return link, nil
}
