package services

import (
	"context"
	"errors"
	"testing"
	"time"

	"compatron/internal/models"
)

func TestSignUpAndSignIn(t *testing.T) {
	ctx := context.Background()
	tokens := &stubTokens{}
	users := &memUsers{}
	svc := &UserService{UserRepo: users, Tokens: tokens, TokenTTL: 24 * time.Hour}

	resp, err := svc.SignUp(ctx, models.SignInRequest{Username: " ann ", Password: "secret1"})
	if err != nil {
		t.Fatalf("SignUp: %v", err)
	}
	if resp.User.Username != "ann" || resp.Token != "token-1-ann" {
		t.Fatalf("unexpected response %#v", resp)
	}
	if tokens.ttl != 24*time.Hour {
		t.Fatalf("expected ttl to be passed through, got %v", tokens.ttl)
	}
	if users.users[0].Password == "secret1" {
		t.Fatalf("password must be stored hashed")
	}

	if _, err := svc.SignUp(ctx, models.SignInRequest{Username: "ann", Password: "secret2"}); !errors.Is(err, models.ErrDuplicateUsername) {
		t.Fatalf("expected duplicate username, got %v", err)
	}

	if _, err := svc.SignIn(ctx, models.SignInRequest{Username: "ann", Password: "secret1"}); err != nil {
		t.Fatalf("SignIn: %v", err)
	}
	if _, err := svc.SignIn(ctx, models.SignInRequest{Username: "ann", Password: "wrong!"}); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials, got %v", err)
	}
	if _, err := svc.SignIn(ctx, models.SignInRequest{Username: "nobody", Password: "secret1"}); !errors.Is(err, models.ErrInvalidCredentials) {
		t.Fatalf("expected invalid credentials for unknown user, got %v", err)
	}
}

func TestSignUpValidation(t *testing.T) {
	svc := &UserService{UserRepo: &memUsers{}, Tokens: &stubTokens{}}
	cases := []struct {
		req models.SignInRequest
		msg string
	}{
		{models.SignInRequest{Password: "secret1"}, "Username and password are required"},
		{models.SignInRequest{Username: "ann"}, "Username and password are required"},
		{models.SignInRequest{Username: "ann", Password: "12345"}, "Password must be at least 6 characters"},
	}
	for _, tc := range cases {
		_, err := svc.SignUp(context.Background(), tc.req)
		var ve *models.ValidationError
		if !errors.As(err, &ve) || ve.Message != tc.msg {
			t.Fatalf("expected %q got %v", tc.msg, err)
		}
	}
}
