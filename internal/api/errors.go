package api

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"

	"github.com/cockroachdb/errors"
)

// Sentinel errors callers branch on with errors.Is. Gateways mark transport
// and status failures with these; everything else surfaces as a StatusError.
var (
	// ErrInvalidCredentials is returned when login is rejected with 401.
	ErrInvalidCredentials = errors.New("invalid email or password")

	// ErrEmailTaken is returned when registration conflicts on email uniqueness.
	ErrEmailTaken = errors.New("email already registered")

	// ErrSlotTaken is returned when a reservation create conflicts with an
	// existing booking for the same slot.
	ErrSlotTaken = errors.New("time slot already booked")

	// ErrUnreachable is returned when the backend cannot be reached at all.
	ErrUnreachable = errors.New("cannot reach server")
)

// StatusError carries a non-2xx backend response.
type StatusError struct {
	Code    int
	Message string
}

func (e *StatusError) Error() string {
	if e.Message != "" {
		return fmt.Sprintf("server returned %d: %s", e.Code, e.Message)
	}
	return fmt.Sprintf("server returned %d", e.Code)
}

// errorBody is the backend's error envelope. Some endpoints use "message",
// others "error"; both are checked.
type errorBody struct {
	Message string `json:"message"`
	Error   string `json:"error"`
}

// statusError reads a failed response into a StatusError. The body is
// best-effort: an undecodable body still yields the status code.
func statusError(resp *http.Response) *StatusError {
	se := &StatusError{Code: resp.StatusCode}

	data, err := io.ReadAll(io.LimitReader(resp.Body, 1<<16))
	if err != nil {
		return se
	}

	var body errorBody
	if err := json.Unmarshal(data, &body); err == nil {
		if body.Message != "" {
			se.Message = body.Message
		} else {
			se.Message = body.Error
		}
	}
	return se
}

// markTransport classifies a round-trip failure as unreachable while keeping
// the original error in the chain.
func markTransport(err error) error {
	return errors.Mark(errors.Wrap(err, "request failed"), ErrUnreachable)
}
