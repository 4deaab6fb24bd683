package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/cockroachdb/errors"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/api"
)

// LoginCmd logs in and stores the session.
type LoginCmd struct {
	Email    string `arg:"" help:"Account email"`
	Password string `help:"Password (prompted when omitted)"`
}

func (l *LoginCmd) Run(ctx context.Context, globals *Globals) error {
	password := l.Password
	if password == "" {
		password = promptLine("Password: ")
	}
	if l.Email == "" || password == "" {
		return errors.New("Please fill in all fields.")
	}

	store, err := globals.NewStore()
	if err != nil {
		return err
	}
	client, err := globals.NewClient(store)
	if err != nil {
		return err
	}

	sess, err := client.Auth.Login(ctx, l.Email, password)
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Logged in as %s (%s)\n", sess.DisplayName(), sess.Role)
	return nil
}

// RegisterCmd creates an account and stores the resulting session.
type RegisterCmd struct {
	FirstName       string `help:"First name" required:""`
	LastName        string `help:"Last name" required:""`
	Email           string `arg:"" help:"Account email"`
	Password        string `help:"Password (prompted when omitted)"`
	ConfirmPassword string `help:"Password confirmation (prompted when omitted)"`
}

func (r *RegisterCmd) Run(ctx context.Context, globals *Globals) error {
	password := r.Password
	if password == "" {
		password = promptLine("Password: ")
	}
	confirmPassword := r.ConfirmPassword
	if confirmPassword == "" {
		confirmPassword = promptLine("Confirm password: ")
	}

	// Local form checks run before any network call.
	if r.FirstName == "" || r.LastName == "" || r.Email == "" || password == "" || confirmPassword == "" {
		return errors.New("Please fill in all fields.")
	}
	if password != confirmPassword {
		return errors.New("Passwords do not match.")
	}

	store, err := globals.NewStore()
	if err != nil {
		return err
	}
	client, err := globals.NewClient(store)
	if err != nil {
		return err
	}

	sess, err := client.Auth.Register(ctx, api.RegisterParams{
		UserName:  r.FirstName + " " + r.LastName,
		Email:     r.Email,
		Password:  password,
		FirstName: r.FirstName,
		LastName:  r.LastName,
	})
	if err != nil {
		return fail(err)
	}

	fmt.Printf("Welcome, %s! Your account is ready.\n", sess.DisplayName())
	return nil
}

// LogoutCmd clears the stored session.
type LogoutCmd struct{}

func (l *LogoutCmd) Run(ctx context.Context, globals *Globals) error {
	store, err := globals.NewStore()
	if err != nil {
		return err
	}

	if !store.IsLoggedIn() {
		fmt.Println("Not logged in.")
		return nil
	}

	if err := store.Clear(); err != nil {
		return err
	}
	fmt.Println("Logged out.")
	return nil
}

// WhoamiCmd prints the stored session.
type WhoamiCmd struct{}

func (w *WhoamiCmd) Run(ctx context.Context, globals *Globals) error {
	store, err := globals.NewStore()
	if err != nil {
		return err
	}
	sess, err := globals.RequireSession(store)
	if err != nil {
		return err
	}

	fmt.Printf("Name:  %s\n", sess.Name)
	fmt.Printf("Email: %s\n", sess.Email)
	fmt.Printf("Role:  %s\n", sess.Role)
	if sess.Company != "" {
		fmt.Printf("Company: %s\n", sess.Company)
	}

	if claims, err := sess.TokenClaims(); err == nil {
		if exp, err := claims.GetExpirationTime(); err == nil && exp != nil {
			state := "expires"
			if exp.Before(time.Now()) {
				state = "expired"
			}
			fmt.Printf("Token %s %s\n", state, exp.Format(time.RFC1123))
		}
	}
	return nil
}
