// Rentora | 2026
// paths_test.go

package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFileResolver(t *testing.T) {
	resolver := NewFileResolver("/static", "/upload")

	assert.Equal(t, "", resolver.Resolve(""))
	assert.Equal(t, "/static/default-avatar.jpg", resolver.Resolve("default-avatar.jpg"))
	assert.Equal(t, "/upload/a1b2c3.png", resolver.Resolve("a1b2c3.png"))
}

func TestFileResolverResolveAll(t *testing.T) {
	resolver := NewFileResolver("/static", "/upload")

	resolved := resolver.ResolveAll([]string{"one.jpg", "two.jpg"})
	assert.Equal(t, []string{"/upload/one.jpg", "/upload/two.jpg"}, resolved)
}
