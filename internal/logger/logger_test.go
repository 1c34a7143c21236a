package logger

import (
	"bytes"
	"os"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
)

// capture enables verbose output into a buffer and restores defaults on cleanup.
func capture(t *testing.T) *bytes.Buffer {
	t.Helper()
	var buf bytes.Buffer
	SetOutput(&buf)
	SetVerbose(true)
	t.Cleanup(func() {
		SetVerbose(false)
		SetOutput(os.Stderr)
	})
	return &buf
}

func TestSetVerbose(t *testing.T) {
	t.Cleanup(func() { SetVerbose(false) })

	SetVerbose(false)
	assert.False(t, IsVerbose())

	SetVerbose(true)
	assert.True(t, IsVerbose())
}

func TestLevels(t *testing.T) {
	buf := capture(t)

	Debug("opened %s", "sqlite")
	Info("%s: seeded", "Trend_Analyst")
	Warn("slow")
	Section("Seed run")

	assert.Equal(t,
		"[DEBUG] opened sqlite\n[INFO] Trend_Analyst: seeded\n[WARN] slow\n\n=== Seed run ===\n",
		buf.String())
}

func TestSilentWhenNotVerbose(t *testing.T) {
	buf := capture(t)
	SetVerbose(false)

	Debug("x")
	Info("y")
	Section("z")
	Timed("w")()

	assert.Zero(t, buf.Len())
}

func TestTimed(t *testing.T) {
	buf := capture(t)

	done := Timed("Volatility_Scout")
	done()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 2)
	assert.Equal(t, "[DEBUG] Volatility_Scout: started", lines[0])
	assert.True(t, strings.HasPrefix(lines[1], "[DEBUG] Volatility_Scout: finished in "))
}

func TestConcurrentLinesDoNotInterleave(t *testing.T) {
	buf := capture(t)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			Info("department %d", i)
		}(i)
	}
	wg.Wait()

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Len(t, lines, 20)
	for _, line := range lines {
		assert.True(t, strings.HasPrefix(line, "[INFO] department "), line)
	}
}
