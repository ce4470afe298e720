// Package contact validates contact form submissions and builds the
// notification shown in response. Submissions are never sent anywhere.
package contact

import (
	"errors"
	"regexp"
	"strings"
	"time"
)

var (
	ErrMissingField = errors.New("contact: all fields are required")
	ErrInvalidEmail = errors.New("contact: invalid email address")
)

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// Form is a contact submission.
type Form struct {
	Name    string `form:"name" json:"name"`
	Email   string `form:"email" json:"email"`
	Subject string `form:"subject" json:"subject"`
	Message string `form:"message" json:"message"`
}

// IsValidEmail reports whether email looks like local@domain.tld with no
// whitespace.
func IsValidEmail(email string) bool {
	return emailPattern.MatchString(email)
}

// Validate checks that every field is filled in and the email is plausible.
func Validate(f Form) error {
	for _, v := range []string{f.Name, f.Email, f.Subject, f.Message} {
		if strings.TrimSpace(v) == "" {
			return ErrMissingField
		}
	}
	if !IsValidEmail(f.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Submit validates f and returns the notification to show together with the
// form to render next: empty on success, f unchanged on failure so it can be
// corrected.
func Submit(f Form) (Notification, Form) {
	switch err := Validate(f); {
	case errors.Is(err, ErrMissingField):
		return NewNotification(KindError, "Please fill in all fields"), f
	case errors.Is(err, ErrInvalidEmail):
		return NewNotification(KindError, "Please enter a valid email address"), f
	default:
		return NewNotification(KindSuccess, "Message sent successfully! I'll get back to you soon."), Form{}
	}
}

// Kind is the notification category.
type Kind string

const (
	KindSuccess Kind = "success"
	KindError   Kind = "error"
	KindInfo    Kind = "info"
)

const (
	// DismissAfter is how long a notification stays on screen.
	DismissAfter = 4000 * time.Millisecond
	// SlideDuration is the slide in/out transition.
	SlideDuration = 300 * time.Millisecond
	// ShowDelay is the pause before the slide in starts.
	ShowDelay = 100 * time.Millisecond
)

// Notification is a transient styled message.
type Notification struct {
	Kind       Kind
	Message    string
	Icon       string
	Background string
	Dismiss    time.Duration
	Slide      time.Duration
}

// NewNotification returns a notification with the styling for kind.
func NewNotification(kind Kind, message string) Notification {
	n := Notification{
		Kind:    kind,
		Message: message,
		Dismiss: DismissAfter,
		Slide:   SlideDuration,
	}
	switch kind {
	case KindSuccess:
		n.Icon = "check-circle"
		n.Background = "linear-gradient(135deg, #43e97b 0%, #38f9d7 100%)"
	case KindError:
		n.Icon = "times-circle"
		n.Background = "linear-gradient(135deg, #fa709a 0%, #fee140 100%)"
	default:
		n.Kind = KindInfo
		n.Icon = "info-circle"
		n.Background = "linear-gradient(135deg, #667eea 0%, #764ba2 100%)"
	}
	return n
}

// Class is the CSS class list for the notification element.
func (n Notification) Class() string {
	return "notification notification-" + string(n.Kind)
}

// DismissMS and SlideMS feed the data attributes the page script reads.
func (n Notification) DismissMS() int64 { return n.Dismiss.Milliseconds() }
func (n Notification) SlideMS() int64   { return n.Slide.Milliseconds() }

// Accent returns the first color stop of the background, used where only a
// flat color can be drawn.
func (n Notification) Accent() string {
	i := strings.Index(n.Background, "#")
	if i < 0 || len(n.Background) < i+7 {
		return "#667eea"
	}
	return n.Background[i : i+7]
}
