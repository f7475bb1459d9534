package middleware_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/sakethvvv/verify-your-cart-v1.3/internal/middleware"
)

func TestSanitizeURL(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"trims whitespace", "  https://shop.example  ", "https://shop.example"},
		{"strips null bytes", "https://shop\x00.example", "https://shop.example"},
		{"strips control chars", "https://shop.example/\x01\x02item", "https://shop.example/item"},
		{"keeps odd but printable urls", "not a url", "not a url"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, middleware.SanitizeURL(tc.in))
		})
	}
}

func TestSanitizeURL_BoundsLength(t *testing.T) {
	long := "https://shop.example/" + strings.Repeat("a", 5000)
	assert.Len(t, middleware.SanitizeURL(long), 2048)
}

func TestValidateLimit(t *testing.T) {
	assert.Equal(t, 20, middleware.ValidateLimit(0))
	assert.Equal(t, 20, middleware.ValidateLimit(-3))
	assert.Equal(t, 50, middleware.ValidateLimit(50))
	assert.Equal(t, 100, middleware.ValidateLimit(500))
}

func TestValidatePage(t *testing.T) {
	assert.Equal(t, 1, middleware.ValidatePage(0))
	assert.Equal(t, 7, middleware.ValidatePage(7))
}

func TestValidateDays(t *testing.T) {
	assert.Equal(t, 7, middleware.ValidateDays(0))
	assert.Equal(t, 30, middleware.ValidateDays(30))
	assert.Equal(t, 365, middleware.ValidateDays(1000))
}
