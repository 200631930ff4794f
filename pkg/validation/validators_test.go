package validation_test

import (
	"testing"

	"techfix-backend/pkg/validation"

	"github.com/stretchr/testify/assert"
)

func TestValidEmail(t *testing.T) {
	valid := []string{"asha@example.com", "a.b+c@mail.co.in", "x@y.io"}
	for _, e := range valid {
		assert.True(t, validation.ValidEmail(e), e)
	}

	invalid := []string{"a@b", "noatsign.com", "two@@example.com", "has space@example.com", "@example.com", ""}
	for _, e := range invalid {
		assert.False(t, validation.ValidEmail(e), e)
	}
}

func TestValidPhone(t *testing.T) {
	t.Run("Formatting characters are ignored when counting digits", func(t *testing.T) {
		assert.True(t, validation.ValidPhone("+91 98765 43210"))
		assert.True(t, validation.ValidPhone("9876543210"))
		assert.True(t, validation.ValidPhone("(987) 654-3210"))
	})

	t.Run("Fewer than 10 digits fails regardless of formatting", func(t *testing.T) {
		assert.False(t, validation.ValidPhone("12345"))
		assert.False(t, validation.ValidPhone("+91 12345"))
		assert.False(t, validation.ValidPhone(""))
	})
}

func TestCheckDraftOrder(t *testing.T) {
	t.Run("Name rule fires first", func(t *testing.T) {
		msg := validation.CheckDraft("   ", "bad", "123")
		assert.Equal(t, validation.MsgFullNameRequired, msg)
	})

	t.Run("Email rule fires before phone rule", func(t *testing.T) {
		msg := validation.CheckDraft("Asha Rao", "a@b", "123")
		assert.Equal(t, validation.MsgEmailInvalid, msg)
	})

	t.Run("Phone rule fires last", func(t *testing.T) {
		msg := validation.CheckDraft("Asha Rao", "asha@example.com", "12345")
		assert.Equal(t, validation.MsgPhoneInvalid, msg)
	})

	t.Run("Valid draft passes", func(t *testing.T) {
		msg := validation.CheckDraft("Asha Rao", "asha@example.com", "+91 98765 43210")
		assert.Empty(t, msg)
	})
}
