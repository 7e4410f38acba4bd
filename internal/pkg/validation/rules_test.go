package validation

import (
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsBranchCode(t *testing.T) {
	for _, ok := range []string{"CSE", "AI", "BC_A", "E&C", "cs1"} {
		assert.True(t, IsBranchCode(ok), ok)
	}
	for _, bad := range []string{"", "CS E", "<script>", "ABCDEFGHIJKLMNOPQ"} {
		assert.False(t, IsBranchCode(bad), bad)
	}
}

func TestRegisterBranchCodeTag(t *testing.T) {
	v := validator.New()
	require.NoError(t, Register(v))

	type form struct {
		Branches []string `validate:"dive,branchcode"`
	}
	assert.NoError(t, v.Struct(form{Branches: []string{"CSE", " ", ""}}))
	assert.Error(t, v.Struct(form{Branches: []string{"CSE", "not valid"}}))
}
