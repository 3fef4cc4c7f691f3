package shortlink_test

import (
	"testing"

	"github.com/ebashirli/elvinbashirlisportfolio/internal/shortlink"
	"github.com/stretchr/testify/assert"
)

func TestValidateURL(t *testing.T) {
	t.Parallel()

	valid := []string{
		"https://example.com/a/b?c=1",
		"http://example.com",
		"https://www.freecodecamp.org",
		"example.com",
		"sub.domain.example.co.uk/path#frag",
		"https://example.com/search?q=go&lang=en",
		"https://example.com:8080/x",
	}

	for _, candidate := range valid {
		t.Run("accepts "+candidate, func(t *testing.T) {
			t.Parallel()

			assert.NoError(t, shortlink.ValidateURL(candidate))
		})
	}

	invalid := []string{
		"",
		"not a url",
		"hello world",
		"ftp://x",
		"ftp://example.com",
		"https://localhost",
		"https://example.com/with space",
		"javascript:alert(1)",
	}

	for _, candidate := range invalid {
		t.Run("rejects "+candidate, func(t *testing.T) {
			t.Parallel()

			assert.ErrorIs(t, shortlink.ValidateURL(candidate), shortlink.ErrInvalidURL)
		})
	}
}

func TestHasScheme(t *testing.T) {
	assert.True(t, shortlink.HasScheme("https://example.com"))
	assert.True(t, shortlink.HasScheme("HTTP://example.com"))
	assert.False(t, shortlink.HasScheme("example.com"))
}
