package contact

import (
	"errors"
	"net/url"
	"strings"
	"testing"

	"github.com/pthm-cable/starfield/config"
)

func testContactConfig() config.ContactConfig {
	return config.ContactConfig{
		Recipient:      "owner@example.com",
		Subject:        "Portfolio Inquiry",
		SubmitDelay:    1.5,
		SuccessTimeout: 4,
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		email   string
		message string
		want    error
	}{
		{"valid", "john@example.com", "hello", nil},
		{"missing email", "", "hello", ErrEmailRequired},
		{"no at sign", "john.example.com", "hello", ErrEmailInvalid},
		{"no dot in domain", "john@example", "hello", ErrEmailInvalid},
		{"whitespace in email", "jo hn@example.com", "hello", ErrEmailInvalid},
		{"two at signs", "a@b@c.com", "hello", ErrEmailInvalid},
		{"empty message", "john@example.com", "", ErrMessageRequired},
		{"blank message", "john@example.com", "  \n\t", ErrMessageRequired},
		{"email checked first", "", "", ErrEmailRequired},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Validate(tt.email, tt.message); !errors.Is(got, tt.want) {
				t.Errorf("Validate(%q, %q) = %v, want %v", tt.email, tt.message, got, tt.want)
			}
		})
	}
}

func TestMailtoURL(t *testing.T) {
	link := MailtoURL("owner@example.com", "Portfolio Inquiry", "john@example.com", "Hi there & welcome")

	if !strings.HasPrefix(link, "mailto:owner@example.com?") {
		t.Fatalf("unexpected prefix: %s", link)
	}
	if strings.Contains(link, "+") {
		t.Errorf("spaces should be encoded as %%20, got %s", link)
	}

	u, err := url.Parse(link)
	if err != nil {
		t.Fatalf("parsing link: %v", err)
	}
	q := u.Query()
	if got := q.Get("subject"); got != "Portfolio Inquiry" {
		t.Errorf("expected subject %q, got %q", "Portfolio Inquiry", got)
	}
	want := "From: john@example.com\n\nMessage:\nHi there & welcome"
	if got := q.Get("body"); got != want {
		t.Errorf("expected body %q, got %q", want, got)
	}
}

func TestFormSubmitFlow(t *testing.T) {
	var opened []string
	f := NewForm(testContactConfig(), OpenerFunc(func(u string) { opened = append(opened, u) }))

	f.SetEmail("john@example.com")
	f.SetMessage("Let's build something")
	if err := f.Submit(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.State() != Submitting {
		t.Fatalf("expected submitting, got %v", f.State())
	}

	f.Update(1.0)
	if f.State() != Submitting || len(opened) != 0 {
		t.Fatalf("handed off too early: state %v, opened %d", f.State(), len(opened))
	}

	f.Update(0.5)
	if f.State() != Success {
		t.Fatalf("expected success after submit delay, got %v", f.State())
	}
	if len(opened) != 1 || !strings.HasPrefix(opened[0], "mailto:owner@example.com") {
		t.Errorf("expected one mailto handoff, got %v", opened)
	}
	if f.Email != "" || f.Message != "" {
		t.Error("expected fields cleared after handoff")
	}

	f.Update(3.9)
	if f.State() != Success {
		t.Errorf("success notice cleared early")
	}
	f.Update(0.2)
	if f.State() != Idle {
		t.Errorf("expected idle after success timeout, got %v", f.State())
	}
	if f.Sent() != 1 {
		t.Errorf("expected 1 sent, got %d", f.Sent())
	}
}

func TestFormValidationError(t *testing.T) {
	f := NewForm(testContactConfig(), nil)
	f.SetEmail("not-an-email")
	f.SetMessage("hi")

	if err := f.Submit(); !errors.Is(err, ErrEmailInvalid) {
		t.Fatalf("expected invalid email, got %v", err)
	}
	if f.State() != Idle || !errors.Is(f.Err(), ErrEmailInvalid) {
		t.Errorf("expected idle with error, got %v / %v", f.State(), f.Err())
	}

	f.SetEmail("john@example.com")
	if f.Err() != nil {
		t.Errorf("editing should clear the error, got %v", f.Err())
	}
}

func TestFormIgnoresSubmitWhileBusy(t *testing.T) {
	calls := 0
	f := NewForm(testContactConfig(), OpenerFunc(func(string) { calls++ }))
	f.SetEmail("john@example.com")
	f.SetMessage("one")
	f.Submit()

	f.SetMessage("changed")
	f.Submit()
	f.Update(2)

	if calls != 1 {
		t.Errorf("expected one handoff, got %d", calls)
	}

	// Success: a new submit is ignored until the notice clears
	f.SetEmail("john@example.com")
	f.SetMessage("two")
	f.Submit()
	if f.State() != Success {
		t.Errorf("expected submit ignored during success, got %v", f.State())
	}
}

func TestStateString(t *testing.T) {
	if Submitting.String() != "submitting" {
		t.Errorf("unexpected string %q", Submitting.String())
	}
	if State(9).String() != "State(9)" {
		t.Errorf("unexpected string %q", State(9).String())
	}
}
