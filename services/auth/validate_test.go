package auth

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEvaluatePasswordAllCriteriaMet(t *testing.T) {
	c := EvaluatePassword("OldPass1!", "NewPass1!", "NewPass1!")
	assert.True(t, c.HasUppercase)
	assert.True(t, c.HasLowercase)
	assert.True(t, c.HasNumber)
	assert.True(t, c.HasSpecialChar)
	assert.True(t, c.IsBetweenLength)
	assert.True(t, c.NotSameAsOld)
	assert.True(t, c.PasswordsMatch)
	assert.True(t, c.Satisfied())
	assert.True(t, c.Strong())
}

func TestEvaluatePasswordSingleCriterionFlips(t *testing.T) {
	tests := []struct {
		name     string
		old      string
		password string
		confirm  string
		check    func(PasswordCriteria) bool
	}{
		{"no uppercase", "x", "newpass1!", "newpass1!", func(c PasswordCriteria) bool { return c.HasUppercase }},
		{"no lowercase", "x", "NEWPASS1!", "NEWPASS1!", func(c PasswordCriteria) bool { return c.HasLowercase }},
		{"no digit", "x", "NewPassword!", "NewPassword!", func(c PasswordCriteria) bool { return c.HasNumber }},
		{"no special char", "x", "NewPassword1", "NewPassword1", func(c PasswordCriteria) bool { return c.HasSpecialChar }},
		{"too short", "x", "NwPas1!", "NwPas1!", func(c PasswordCriteria) bool { return c.IsBetweenLength }},
		{"too long", "x", "NewPassword1!Xyz!", "NewPassword1!Xyz!", func(c PasswordCriteria) bool { return c.IsBetweenLength }},
		{"same as old", "NewPass1!", "NewPass1!", "NewPass1!", func(c PasswordCriteria) bool { return c.NotSameAsOld }},
		{"confirmation differs", "x", "NewPass1!", "NewPass2!", func(c PasswordCriteria) bool { return c.PasswordsMatch }},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			c := EvaluatePassword(tc.old, tc.password, tc.confirm)
			assert.False(t, tc.check(c), "criterion should fail")
			assert.False(t, c.Satisfied(), "one failing criterion blocks submission")
		})
	}
}

func TestPasswordLengthBoundaries(t *testing.T) {
	assert.True(t, EvaluatePassword("x", "Abcdef1!", "Abcdef1!").IsBetweenLength)               // 8
	assert.True(t, EvaluatePassword("x", "Abcdefghijkl123!", "Abcdefghijkl123!").IsBetweenLength) // 16
	assert.False(t, EvaluatePassword("x", "Abcde1!", "Abcde1!").IsBetweenLength)                 // 7
}

func TestStrongIgnoresConfirmation(t *testing.T) {
	c := EvaluatePassword("x", "NewPass1!", "totally different")
	assert.False(t, c.PasswordsMatch)
	assert.True(t, c.Strong())
	assert.False(t, c.Satisfied())
}

func TestValidateName(t *testing.T) {
	assert.True(t, ValidateName("Anna"))
	assert.True(t, ValidateName("Mary-Jane"))
	assert.True(t, ValidateName("O'Brien"))
	assert.False(t, ValidateName(""))
	assert.False(t, ValidateName("   "))
	assert.False(t, ValidateName("Anna42"))
	assert.False(t, ValidateName("Anna Maria")) // no inner spaces
	long := make([]byte, 51)
	for i := range long {
		long[i] = 'a'
	}
	assert.False(t, ValidateName(string(long)))
}

func TestValidateEmail(t *testing.T) {
	assert.True(t, ValidateEmail("ann@example.com"))
	assert.True(t, ValidateEmail("  ann@example.com  "))
	assert.False(t, ValidateEmail("ann@example"))
	assert.False(t, ValidateEmail("ann example.com"))
	assert.False(t, ValidateEmail(""))
}
