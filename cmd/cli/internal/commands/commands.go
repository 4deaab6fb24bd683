package commands

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/cockroachdb/errors"
	zlog "github.com/rs/zerolog/log"

	"github.com/ITSSBackToSchool/echipa2-frontend/internal/api"
	"github.com/ITSSBackToSchool/echipa2-frontend/internal/session"
)

type Globals struct {
	Debug    bool
	Version  string
	Server   string
	City     string
	StateDir string
	CacheDir string
}

// NewStore opens the session store in the configured state directory.
func (g *Globals) NewStore() (*session.Store, error) {
	store, err := session.NewStore(g.StateDir)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize session store: %w", err)
	}
	return store, nil
}

// NewClient builds the backend client on top of the session store.
func (g *Globals) NewClient(store *session.Store) (*api.Client, error) {
	cfg := api.DefaultConfig()
	if g.Server != "" {
		cfg.BaseURL = g.Server
	}
	cfg.CacheDir = g.CacheDir
	cfg.Debug = g.Debug

	return api.New(cfg, store, zlog.Logger)
}

// RequireSession returns the current session or a login hint.
func (g *Globals) RequireSession(store *session.Store) (*session.Session, error) {
	sess := store.Current()
	if sess == nil {
		return nil, errors.New("not logged in\n\nLog in first:\n  officebook login <email>")
	}
	return sess, nil
}

// userMessage translates an error kind into the text shown to the user.
func userMessage(err error) string {
	switch {
	case errors.Is(err, api.ErrInvalidCredentials):
		return "Invalid email or password."
	case errors.Is(err, api.ErrEmailTaken):
		return "An account with this email already exists."
	case errors.Is(err, api.ErrSlotTaken):
		return "That slot was just booked by someone else. Pick another time or seat."
	case errors.Is(err, api.ErrUnreachable):
		return "Cannot reach the server. Check that the backend is running."
	}
	var se *api.StatusError
	if errors.As(err, &se) && se.Message != "" {
		return se.Message
	}
	return "Something went wrong. Please try again."
}

// fail logs the cause and returns the user-facing message as the command
// error. Retries are always a fresh user action; nothing retries here.
func fail(err error) error {
	zlog.Debug().Err(err).Msg("command failed")
	return errors.New(userMessage(err))
}

// confirm asks for an explicit yes before destructive or outward actions.
func confirm(prompt string) bool {
	fmt.Printf("%s [y/N]: ", prompt)

	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return false
	}
	answer := strings.ToLower(strings.TrimSpace(line))
	return answer == "y" || answer == "yes"
}

// promptLine reads one trimmed line from stdin.
func promptLine(prompt string) string {
	fmt.Print(prompt)
	line, err := bufio.NewReader(os.Stdin).ReadString('\n')
	if err != nil {
		return ""
	}
	return strings.TrimSpace(line)
}
