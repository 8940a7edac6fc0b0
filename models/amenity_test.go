package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAmenitySymbol(t *testing.T) {
	sym, err := AmenitySymbol("wifi")
	assert.NoError(t, err)
	assert.NotEmpty(t, sym)

	_, err = AmenitySymbol("heliport")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "heliport")
}

func TestValidateAmenityTags(t *testing.T) {
	assert.NoError(t, ValidateAmenityTags([]string{"wifi", "parking", "restaurant", "gym", "spa", "pool"}))
	assert.NoError(t, ValidateAmenityTags(nil))

	err := ValidateAmenityTags([]string{"wifi", "casino"})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "casino")
}
