package randid

import (
	"regexp"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestGenerate(t *testing.T) {
	pattern := regexp.MustCompile(`^[a-z0-9]*$`)

	for _, n := range []int{0, 1, 6, 16} {
		id := Generate(n)
		assert.Len(t, id, n)
		assert.Regexp(t, pattern, id)
	}
}

func TestGenerate_Uniqueness(t *testing.T) {
	seen := make(map[string]bool)
	for range 100 {
		seen[Generate(8)] = true
	}

	// 36^8 combinations; collisions here mean the source is broken
	assert.GreaterOrEqual(t, len(seen), 90)
}
