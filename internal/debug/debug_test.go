package debug

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
)

func resetOutput() func() {
	return func() { SetOutput(nil) }
}

func TestEnabledReflectsSetOutput(t *testing.T) {
	defer resetOutput()()

	SetOutput(nil)
	os.Unsetenv("SNIPCORE_DEBUG")
	assert.False(t, Enabled())

	var buf bytes.Buffer
	SetOutput(&buf)
	assert.True(t, Enabled())
}

func TestEnabledReflectsEnvVar(t *testing.T) {
	defer resetOutput()()
	SetOutput(nil)

	os.Setenv("SNIPCORE_DEBUG", "1")
	defer os.Unsetenv("SNIPCORE_DEBUG")

	assert.True(t, Enabled())
}

func TestLogWritesComponentTaggedLine(t *testing.T) {
	defer resetOutput()()

	var buf bytes.Buffer
	SetOutput(&buf)

	Log("walk", "skipped %d files", 3)

	assert.Contains(t, buf.String(), "[walk]")
	assert.Contains(t, buf.String(), "skipped 3 files")
}

func TestLogIsNoopWithoutDestination(t *testing.T) {
	defer resetOutput()()
	SetOutput(nil)
	os.Unsetenv("SNIPCORE_DEBUG")

	// Should not panic even though no writer is configured.
	LogParse("parsing %s", "a.go")
	LogWalk("walking %s", "/tmp")
	LogSnapshot("saved %s", "v1")
}
