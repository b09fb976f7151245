package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type sample struct {
	Address string `json:"address" validate:"required,max=10"`
	Deposit int64  `json:"deposit" validate:"gt=0"`
	Ratio   int    `json:"ratio" validate:"gte=0,lte=100"`
	Kind    string `json:"kind,omitempty" validate:"omitempty,oneof=a b"`
}

func TestValidator_Struct(t *testing.T) {
	v := New()

	assert.Nil(t, v.Struct(sample{Address: "x", Deposit: 1, Ratio: 50}))

	errs := v.Struct(sample{Deposit: 0, Ratio: 101, Kind: "c"})
	require.Len(t, errs, 4)
	assert.Equal(t, ValidationError{Field: "address", Message: "is required"}, errs[0])
	assert.Equal(t, ValidationError{Field: "deposit", Message: "must be greater than 0"}, errs[1])
	assert.Equal(t, ValidationError{Field: "ratio", Message: "must be at most 100"}, errs[2])
	assert.Equal(t, ValidationError{Field: "kind", Message: "must be one of a, b"}, errs[3])

	assert.True(t, HasField(errs, "deposit"))
	assert.False(t, HasField(errs, "missing"))
	assert.Equal(t, "deposit: must be greater than 0", errs[1].Error())
}
