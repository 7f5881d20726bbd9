package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type reviewPayload struct {
	User    string `validate:"required,max=255"`
	Comment string `validate:"required"`
	Rating  int    `validate:"required,min=1,max=5"`
}

func TestValidate_Success(t *testing.T) {
	err := Validate(reviewPayload{User: "alice", Comment: "great", Rating: 5})
	assert.NoError(t, err)
}

func TestValidate_MissingFields(t *testing.T) {
	err := Validate(reviewPayload{})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)

	fields := valErr.Fields()
	assert.Equal(t, "is required", fields["User"])
	assert.Equal(t, "is required", fields["Comment"])
	assert.Equal(t, "is required", fields["Rating"])
}

func TestValidate_OutOfRange(t *testing.T) {
	err := Validate(reviewPayload{User: "alice", Comment: "x", Rating: 9})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be at most 5", valErr.Fields()["Rating"])
}

type currencyPayload struct {
	Currency string `validate:"required,oneof=SYP USD"`
}

func TestValidate_OneOf(t *testing.T) {
	assert.NoError(t, Validate(currencyPayload{Currency: "USD"}))

	err := Validate(currencyPayload{Currency: "EUR"})
	require.Error(t, err)

	var valErr *ValidationError
	require.ErrorAs(t, err, &valErr)
	assert.Equal(t, "must be one of: SYP USD", valErr.Fields()["Currency"])
}
