package handler

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type platformRequest struct {
	Platform string `validate:"required,platform"`
}

func TestValidatePlatform(t *testing.T) {
	v := GetValidator()

	tests := []struct {
		name     string
		platform string
		wantErr  bool
	}{
		{"roblox", "roblox", false},
		{"discord", "discord", false},
		{"mixed case", "Roblox", false},
		{"unknown", "twitch", true},
		{"empty fails required", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := v.ValidateStruct(platformRequest{Platform: tt.platform})
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestFormatValidationError(t *testing.T) {
	v := GetValidator()

	err := v.ValidateStruct(LinkDiscordRequest{Avatar: "x"})
	require.Error(t, err)

	fields := FormatValidationError(err)
	assert.Equal(t, "This field is required", fields["discordid"])
	assert.Equal(t, "This field is required", fields["username"])
}

func TestFormatValidationError_NonValidatorError(t *testing.T) {
	fields := FormatValidationError(assert.AnError)
	assert.Equal(t, "Invalid request format", fields["error"])
}

func TestFormatValidationError_Nil(t *testing.T) {
	assert.Nil(t, FormatValidationError(nil))
}
