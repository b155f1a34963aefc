package translate

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestFrom(t *testing.T) {
	assert := assert.New(t)

	assert.NotNil(Printer())
	assert.Same(Printer(), Printer())
	assert.Equal("opcode 42", From("opcode %d", 42))
	assert.Equal("plain", From("plain"))
}
