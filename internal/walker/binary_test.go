package walker

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsBinaryExtension(t *testing.T) {
	assert.True(t, isBinaryExtension("logo.png"))
	assert.False(t, isBinaryExtension("icon.svg"))
	assert.False(t, isBinaryExtension("bundle.min.js"))
	assert.False(t, isBinaryExtension("main.go"))
}

func TestIsBinaryContentDetectsNulByte(t *testing.T) {
	assert.True(t, isBinaryContent([]byte{0x41, 0x00, 0x42}))
	assert.False(t, isBinaryContent([]byte("package main\n")))
}

func TestIsBinaryCombinesBothHeuristics(t *testing.T) {
	assert.True(t, isBinary("data.bin", []byte("no nul bytes here")))
	assert.True(t, isBinary("weird.txt", []byte{0x00, 0x01}))
	assert.False(t, isBinary("main.go", []byte("package main\n")))
}
