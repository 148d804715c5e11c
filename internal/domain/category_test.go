package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEventCategoryValidateForCreation(t *testing.T) {
	color := "#1A2B3C"
	c := EventCategory{ID: "conference", Name: "Conference", ColorHex: &color}
	require.NoError(t, c.ValidateForCreation())

	bad := c
	bad.ID = "has space"
	var verr *ValidationError
	require.ErrorAs(t, bad.ValidateForCreation(), &verr)
	assert.Equal(t, "id", verr.Field)

	badColor := "1A2B3C"
	bad = c
	bad.ColorHex = &badColor
	require.ErrorAs(t, bad.ValidateForCreation(), &verr)
	assert.Equal(t, "color_hex", verr.Field)
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, isHexColor("#ff00AA"))
	assert.False(t, isHexColor("#ff00A"))
	assert.False(t, isHexColor("#ff00AG"))
	assert.False(t, isHexColor("ff00AAB"))
}
