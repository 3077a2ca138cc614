package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestPaletteColor_Rotates(t *testing.T) {
	assert.Equal(t, CategoryPalette[0], PaletteColor(0))
	assert.Equal(t, CategoryPalette[1], PaletteColor(1))
	assert.Equal(t, CategoryPalette[0], PaletteColor(len(CategoryPalette)))
}

func TestIsHexColor(t *testing.T) {
	assert.True(t, IsHexColor("#FF6B6B"))
	assert.True(t, IsHexColor("#abc"))
	assert.True(t, IsHexColor("#FF112233"))

	assert.False(t, IsHexColor("FF6B6B"))
	assert.False(t, IsHexColor("#GG6B6B"))
	assert.False(t, IsHexColor("#FF6B"))
	assert.False(t, IsHexColor(""))
}
