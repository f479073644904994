package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPassword(t *testing.T) {
	assert.False(t, IsValidPassword("short"))
	assert.False(t, IsValidPassword("alllowercase"))
	assert.True(t, IsValidPassword("Passw0rd"))
	assert.True(t, IsValidPassword("lower123!"))
}

func TestMediaExtensions(t *testing.T) {
	assert.True(t, IsAllowedImage("photo.JPG"))
	assert.True(t, IsAllowedImage("photo.webp"))
	assert.False(t, IsAllowedImage("archive.zip"))

	assert.True(t, IsAllowedVideo("clip.mp4"))
	assert.True(t, IsAllowedVideo("clip.MOV"))
	assert.False(t, IsAllowedVideo("photo.png"))
}
