// Package contact implements the contact form: validation, the mailto
// handoff and the submit/success state machine.
package contact

import (
	"errors"
	"fmt"
	"log/slog"
	"net/url"
	"regexp"
	"strings"

	"github.com/pthm-cable/starfield/config"
)

// Validation errors. Their messages are shown to the user as-is.
var (
	ErrEmailRequired   = errors.New("Email is required")
	ErrEmailInvalid    = errors.New("Please enter a valid email address")
	ErrMessageRequired = errors.New("Message is required")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Validate checks the form fields in display order and returns the first problem.
func Validate(email, message string) error {
	if email == "" {
		return ErrEmailRequired
	}
	if !emailPattern.MatchString(email) {
		return ErrEmailInvalid
	}
	if strings.TrimSpace(message) == "" {
		return ErrMessageRequired
	}
	return nil
}

// MailtoURL builds a mailto link addressed to recipient carrying the sender's
// email and message in the body.
func MailtoURL(recipient, subject, email, message string) string {
	body := fmt.Sprintf("From: %s\n\nMessage:\n%s", email, message)
	return "mailto:" + recipient + "?subject=" + escape(subject) + "&body=" + escape(body)
}

// escape percent-encodes s for a URL query value, using %20 for spaces.
func escape(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}

// Opener hands a URL to the platform (mail client, browser).
type Opener interface {
	Open(url string)
}

// OpenerFunc adapts a function to Opener.
type OpenerFunc func(url string)

// Open calls f(url).
func (f OpenerFunc) Open(url string) { f(url) }

// State is the form's submission state.
type State int

const (
	Idle State = iota
	Submitting
	Success
)

func (s State) String() string {
	switch s {
	case Idle:
		return "idle"
	case Submitting:
		return "submitting"
	case Success:
		return "success"
	}
	return fmt.Sprintf("State(%d)", int(s))
}

// Form is the contact form model. Time advances only through Update.
type Form struct {
	Email   string
	Message string

	cfg    config.ContactConfig
	opener Opener

	state   State
	err     error
	elapsed float64
	sent    int
}

// NewForm creates an idle form that hands its mailto link to opener.
func NewForm(cfg config.ContactConfig, opener Opener) *Form {
	return &Form{cfg: cfg, opener: opener}
}

// State returns the current submission state.
func (f *Form) State() State {
	return f.state
}

// Err returns the current validation error, if any.
func (f *Form) Err() error {
	return f.err
}

// Sent returns how many messages have been handed to the opener.
func (f *Form) Sent() int {
	return f.sent
}

// SetEmail edits the email field and clears any validation error.
func (f *Form) SetEmail(email string) {
	if f.state == Submitting {
		return
	}
	f.Email = email
	f.err = nil
}

// SetMessage edits the message field and clears any validation error.
func (f *Form) SetMessage(message string) {
	if f.state == Submitting {
		return
	}
	f.Message = message
	f.err = nil
}

// Submit validates the fields and starts submission. Ignored unless idle.
func (f *Form) Submit() error {
	if f.state != Idle {
		return nil
	}
	if err := Validate(f.Email, f.Message); err != nil {
		f.err = err
		return err
	}
	f.err = nil
	f.state = Submitting
	f.elapsed = 0
	return nil
}

// Update advances the form's timers by dt seconds.
func (f *Form) Update(dt float64) {
	switch f.state {
	case Submitting:
		f.elapsed += dt
		if f.elapsed >= f.cfg.SubmitDelay {
			f.complete()
		}
	case Success:
		f.elapsed += dt
		if f.elapsed >= f.cfg.SuccessTimeout {
			f.state = Idle
			f.elapsed = 0
		}
	}
}

func (f *Form) complete() {
	link := MailtoURL(f.cfg.Recipient, f.cfg.Subject, f.Email, f.Message)
	if f.opener != nil {
		f.opener.Open(link)
	}
	f.sent++
	slog.Info("contact message handed off", "length", len(f.Message))

	f.Email = ""
	f.Message = ""
	f.state = Success
	f.elapsed = 0
}
