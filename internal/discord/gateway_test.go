package discord

import (
	"errors"
	"fmt"
	"testing"

	"github.com/bwmarrin/discordgo"
	"github.com/stretchr/testify/assert"
)

func restError(code int) error {
	return &discordgo.RESTError{
		Message: &discordgo.APIErrorMessage{Code: code, Message: "gone"},
	}
}

func TestIsNotFound(t *testing.T) {
	assert.True(t, IsNotFound(restError(discordgo.ErrCodeUnknownMessage)))
	assert.True(t, IsNotFound(restError(discordgo.ErrCodeUnknownChannel)))

	// Wrapped errors still classify.
	wrapped := fmt.Errorf("edit status: %w", restError(discordgo.ErrCodeUnknownMessage))
	assert.True(t, IsNotFound(wrapped))
}

func TestIsNotFoundOtherErrors(t *testing.T) {
	assert.False(t, IsNotFound(nil))
	assert.False(t, IsNotFound(errors.New("connection reset")))
	assert.False(t, IsNotFound(restError(discordgo.ErrCodeMissingPermissions)))
	assert.False(t, IsNotFound(&discordgo.RESTError{}))
}
