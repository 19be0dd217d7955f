package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsEmpty(t *testing.T) {
	assert.True(t, IsEmpty(""))
	assert.True(t, IsEmpty("   "))
	assert.True(t, IsEmpty("\t\n"))
	assert.False(t, IsEmpty("x"))
	assert.False(t, IsEmpty("  x  "))
}

func TestIsValidEmail(t *testing.T) {
	assert.True(t, IsValidEmail("dana@example.com"))
	assert.True(t, IsValidEmail("dana.ortiz+test@sub.example.co"))
	assert.False(t, IsValidEmail("dana"))
	assert.False(t, IsValidEmail("dana@"))
	assert.False(t, IsValidEmail("@example.com"))
	assert.False(t, IsValidEmail("dana@example"))
}

func TestIsValidDate(t *testing.T) {
	parsed, ok := IsValidDate("2024-03-04")
	assert.True(t, ok)
	assert.Equal(t, 2024, parsed.Year())

	_, ok = IsValidDate("2024-13-04")
	assert.False(t, ok)

	_, ok = IsValidDate("04-03-2024")
	assert.False(t, ok)

	_, ok = IsValidDate("")
	assert.False(t, ok)
}

func TestIsValidTimeOfDay(t *testing.T) {
	assert.True(t, IsValidTimeOfDay("00:00"))
	assert.True(t, IsValidTimeOfDay("09:30"))
	assert.True(t, IsValidTimeOfDay("23:59"))
	assert.False(t, IsValidTimeOfDay("24:00"))
	assert.False(t, IsValidTimeOfDay("9:30"))
	assert.False(t, IsValidTimeOfDay("09:60"))
	assert.False(t, IsValidTimeOfDay("0930"))
}

func TestIsValidSKU(t *testing.T) {
	assert.True(t, IsValidSKU("ESP-001"))
	assert.True(t, IsValidSKU("ABC"))
	assert.False(t, IsValidSKU("ab-001")) // lowercase
	assert.False(t, IsValidSKU("AB"))     // too short
	assert.False(t, IsValidSKU("ESP 001"))
}

func TestValidationErrors(t *testing.T) {
	errs := ValidationErrors{
		{Field: "name", Message: "name is required"},
		{Field: "email", Message: "email is invalid"},
	}

	assert.Equal(t, "name: name is required; email: email is invalid", errs.Error())
	assert.Equal(t, map[string]string{
		"name":  "name is required",
		"email": "email is invalid",
	}, errs.ToMap())
}
