package firebase

import (
	"context"

	"firebase.google.com/go/v4/auth"
)

type FirebaseAuthClient struct {
	client *auth.Client
}

func NewFirebaseAuthClient(client *auth.Client) *FirebaseAuthClient {
	return &FirebaseAuthClient{
		client: client,
	}
}

// VerifyToken validates a Firebase ID token and returns its UID claim.
func (f *FirebaseAuthClient) VerifyToken(ctx context.Context, token string) (string, error) {
	result, err := f.client.VerifyIDToken(ctx, token)
	if err != nil {
		return "", err
	}

	return result.UID, nil
}

// GetUserEmail returns the email registered for the given UID.
func (f *FirebaseAuthClient) GetUserEmail(ctx context.Context, uid string) (string, error) {
	record, err := f.client.GetUser(ctx, uid)
	if err != nil {
		return "", err
	}

	return record.Email, nil
}
