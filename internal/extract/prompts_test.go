package extract

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTruncate(t *testing.T) {
	assert.Equal(t, "abc", truncate("abc", 10))
	assert.Equal(t, "abc", truncate("abcdef", 3))
	assert.Equal(t, "", truncate("", 5))
	assert.Len(t, truncate(strings.Repeat("x", 5000), 2000), 2000)
}

func TestOrAny(t *testing.T) {
	assert.Equal(t, "Any", orAny(nil))
	assert.Equal(t, "Any", orAny([]string{}))
	assert.Equal(t, "MIT", orAny([]string{"MIT"}))
	assert.Equal(t, "MIT, Stanford", orAny([]string{"MIT", "Stanford"}))
}

func TestOrNotSpecified(t *testing.T) {
	assert.Equal(t, "CEO", orNotSpecified("CEO", "Not specified"))
	assert.Equal(t, "Not specified", orNotSpecified("", "Not specified"))
}
