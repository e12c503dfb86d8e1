package services

import (
	"testing"

	"asset-tracker/utils"
)

func TestRegisterLoginLogout(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	registered, err := svc.Register(RegisterInput{Username: "ada", Password: "s3cret", FirstName: "Ada"})
	if err != nil {
		t.Fatal(err)
	}
	if registered.Token == "" || registered.User.Username != "ada" {
		t.Fatalf("session = %+v", registered)
	}
	if registered.User.Password == "s3cret" {
		t.Fatal("password stored in clear")
	}

	loggedIn, err := svc.Login(LoginInput{Username: "ada", Password: "s3cret"})
	if err != nil {
		t.Fatal(err)
	}
	if loggedIn.Token != registered.Token {
		t.Fatal("login did not reuse the live token")
	}

	session, err := svc.Authenticate(loggedIn.Token)
	if err != nil {
		t.Fatal(err)
	}
	if session.UserID != registered.User.ID {
		t.Fatalf("session user = %d", session.UserID)
	}

	if err := svc.Logout(session.SessionID); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Authenticate(loggedIn.Token); err == nil {
		t.Fatal("revoked token still authenticates")
	}
	if err := svc.Logout(session.SessionID); err == nil {
		t.Fatal("second logout succeeded")
	}

	fresh, err := svc.Login(LoginInput{Username: "ada", Password: "s3cret"})
	if err != nil {
		t.Fatal(err)
	}
	if fresh.Token == loggedIn.Token {
		t.Fatal("login after logout reused the revoked token")
	}
}

func TestRegisterRejectsTakenUsername(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)

	if _, err := svc.Register(RegisterInput{Username: "ada", Password: "x"}); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.Register(RegisterInput{Username: " ada ", Password: "y"}); !utils.IsValidationError(err) {
		t.Fatalf("duplicate username: got %v", err)
	}
}

func TestLoginRejectsBadCredentials(t *testing.T) {
	db := openTestDB(t)
	svc := NewAuthService(db)
	svc.Register(RegisterInput{Username: "ada", Password: "s3cret"})

	for _, in := range []LoginInput{
		{Username: "ada", Password: "wrong"},
		{Username: "nobody", Password: "s3cret"},
	} {
		_, err := svc.Login(in)
		if _, ok := err.(*utils.AuthError); !ok {
			t.Errorf("%s: want AuthError, got %v", in.Username, err)
		}
	}

	if _, err := svc.Authenticate("not-a-jwt"); err == nil {
		t.Fatal("garbage token accepted")
	}
}
