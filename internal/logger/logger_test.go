package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDebugIsNoOpUntilEnabled(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() {
		SetOutput(prev)
		Init(false)
	})

	Init(false)
	Debug("[DEBUG] hidden %d\n", 1)
	assert.Empty(t, buf.String())

	Init(true)
	Debug("[DEBUG] shown %d\n", 2)
	assert.Contains(t, buf.String(), "[DEBUG] shown 2")
}

func TestLevelsWriteToOutput(t *testing.T) {
	var buf bytes.Buffer
	prev := SetOutput(&buf)
	t.Cleanup(func() { SetOutput(prev) })

	Info("[INFO] %s\n", "info")
	Warn("[WARN] %s\n", "warn")
	Error("[ERROR] %s\n", "error")

	got := buf.String()
	assert.Contains(t, got, "[INFO] info")
	assert.Contains(t, got, "[WARN] warn")
	assert.Contains(t, got, "[ERROR] error")
}
