// internal/utils/media_test.go
package utils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestAbsoluteMediaURL(t *testing.T) {
	assert.Equal(t, "", AbsoluteMediaURL("http://cdn.example.com", ""))
	assert.Equal(t, "cars/a.jpg", AbsoluteMediaURL("", "cars/a.jpg"))
	assert.Equal(t, "http://cdn.example.com/cars/a.jpg", AbsoluteMediaURL("http://cdn.example.com", "cars/a.jpg"))
	assert.Equal(t, "http://cdn.example.com/cars/a.jpg", AbsoluteMediaURL("http://cdn.example.com/", "/cars/a.jpg"))

	// Already absolute paths pass through untouched
	assert.Equal(t, "https://elsewhere.com/x.jpg", AbsoluteMediaURL("http://cdn.example.com", "https://elsewhere.com/x.jpg"))
}
