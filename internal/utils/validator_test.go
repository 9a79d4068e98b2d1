// internal/utils/validator_test.go
package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type passwordFixture struct {
	Password string `validate:"strong_password"`
}

type usernameFixture struct {
	Username string `validate:"username"`
}

type yearFixture struct {
	Year int `validate:"vehicle_year"`
}

func TestStrongPasswordValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&passwordFixture{Password: "Str0ng!pass"}))

	for _, weak := range []string{"short1!", "nouppercase1!", "NOLOWERCASE1!", "NoNumbers!", "NoSpecial123"} {
		assert.Error(t, ValidateStruct(&passwordFixture{Password: weak}), "password %q", weak)
	}
}

func TestUsernameValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&usernameFixture{Username: "dealer_admin"}))
	assert.Error(t, ValidateStruct(&usernameFixture{Username: "ab"}))
	assert.Error(t, ValidateStruct(&usernameFixture{Username: "has space"}))
	assert.Error(t, ValidateStruct(&usernameFixture{Username: "has-dash"}))
}

func TestVehicleYearValidation(t *testing.T) {
	assert.NoError(t, ValidateStruct(&yearFixture{Year: 2020}))
	assert.NoError(t, ValidateStruct(&yearFixture{Year: time.Now().Year() + 1}))
	assert.Error(t, ValidateStruct(&yearFixture{Year: 1899}))
	assert.Error(t, ValidateStruct(&yearFixture{Year: time.Now().Year() + 2}))
}

func TestGetValidationErrors(t *testing.T) {
	err := ValidateStruct(&passwordFixture{Password: "weak"})
	require.Error(t, err)

	errs := GetValidationErrors(err)
	require.Len(t, errs, 1)
	assert.Equal(t, "password", errs[0].Field)
	assert.Equal(t, "strong_password", errs[0].Tag)
	assert.NotEmpty(t, errs[0].Message)
}
