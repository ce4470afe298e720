package contact

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidEmail(t *testing.T) {
	tests := []struct {
		email string
		want  bool
	}{
		{"a@b.co", true},
		{"first.last@example.org", true},
		{"a@b", false},
		{"a @b.co", false},
		{"a@b .co", false},
		{"@b.co", false},
		{"a@@b.co", false},
		{"", false},
	}
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			assert.Equal(t, tt.want, IsValidEmail(tt.email))
		})
	}
}

func validForm() Form {
	return Form{Name: "Ada", Email: "ada@example.com", Subject: "Hello", Message: "Nice site"}
}

func TestValidate(t *testing.T) {
	assert.NoError(t, Validate(validForm()))

	blanks := map[string]func(*Form){
		"name":    func(f *Form) { f.Name = "" },
		"email":   func(f *Form) { f.Email = "" },
		"subject": func(f *Form) { f.Subject = "   " },
		"message": func(f *Form) { f.Message = "" },
	}
	for field, blank := range blanks {
		t.Run(field, func(t *testing.T) {
			f := validForm()
			blank(&f)
			assert.ErrorIs(t, Validate(f), ErrMissingField)
		})
	}

	f := validForm()
	f.Email = "ada@example"
	assert.ErrorIs(t, Validate(f), ErrInvalidEmail)
}

func TestSubmit_MissingFieldKeepsForm(t *testing.T) {
	f := validForm()
	f.Subject = ""

	n, next := Submit(f)

	assert.Equal(t, KindError, n.Kind)
	assert.Equal(t, "Please fill in all fields", n.Message)
	assert.Equal(t, f, next)
}

func TestSubmit_InvalidEmail(t *testing.T) {
	f := validForm()
	f.Email = "a @b.co"

	n, next := Submit(f)

	assert.Equal(t, KindError, n.Kind)
	assert.Equal(t, "Please enter a valid email address", n.Message)
	assert.Equal(t, f, next)
}

func TestSubmit_SuccessClearsForm(t *testing.T) {
	n, next := Submit(validForm())

	assert.Equal(t, KindSuccess, n.Kind)
	assert.Equal(t, Form{}, next)
	assert.Equal(t, "check-circle", n.Icon)
}

func TestNotification(t *testing.T) {
	n := NewNotification(KindError, "nope")
	assert.Equal(t, "notification notification-error", n.Class())
	assert.Equal(t, int64(4000), n.DismissMS())
	assert.Equal(t, int64(300), n.SlideMS())
	assert.Equal(t, "#fa709a", n.Accent())

	info := NewNotification("whatever", "hi")
	assert.Equal(t, KindInfo, info.Kind)
	assert.Equal(t, "info-circle", info.Icon)
}
