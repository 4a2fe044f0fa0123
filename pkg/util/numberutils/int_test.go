package numberutils

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestToIntWithDefault(t *testing.T) {
	assert.Equal(t, 5, ToIntWithDefault("5", 0))
	assert.Equal(t, -3, ToIntWithDefault("-3", 0))
	assert.Equal(t, 0, ToIntWithDefault("", 0))
	assert.Equal(t, 10, ToIntWithDefault("not-a-number", 10))
	assert.Equal(t, 10, ToIntWithDefault("4.2", 10))
}
