package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHashAndCheckPassword(t *testing.T) {
	hash, err := HashPassword("Abcdefg_1")
	require.NoError(t, err)

	assert.NotEqual(t, "Abcdefg_1", hash)
	assert.True(t, CheckPassword(hash, "Abcdefg_1"))
	assert.False(t, CheckPassword(hash, "Abcdefg_2"))
	assert.False(t, CheckPassword(hash, ""))
}

func TestHashPassword_DistinctSalts(t *testing.T) {
	first, err := HashPassword("Abcdefg_1")
	require.NoError(t, err)
	second, err := HashPassword("Abcdefg_1")
	require.NoError(t, err)

	assert.NotEqual(t, first, second)
}

func TestValidatePassword(t *testing.T) {
	tests := []struct {
		name     string
		password string
		wantErr  bool
	}{
		{"valid", "Abcdefg_1", false},
		{"valid with symbol", "Str0ng$Pass", false},
		{"too short", "Ab_1cdf", true},
		{"no uppercase", "abcdefg_1", true},
		{"no lowercase", "ABCDEFG_1", true},
		{"no number", "Abcdefg_!", true},
		{"no special", "Abcdefg12", true},
		{"empty", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePassword(tt.password)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
