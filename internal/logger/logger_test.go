package logger

import (
	"bytes"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestStdLoggerEmitsSeverityPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf)

	l.Info("hello")
	l.Warning("careful")
	l.Error("broken")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{"hello", "warning: careful", "error: broken"}, lines)
}

func TestStdLoggerIndentation(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf)

	l.Info("top")
	l.IncIndent()
	l.Info("nested once")
	l.IncIndent()
	l.Info("nested twice")
	l.DecIndent()
	l.Info("back to one")
	l.DecIndent()
	l.Info("back to zero")

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Equal(t, []string{
		"top",
		"  nested once",
		"    nested twice",
		"  back to one",
		"back to zero",
	}, lines)
}

func TestStdLoggerDecIndentFloorsAtZero(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf)

	l.DecIndent()
	l.DecIndent()
	l.Info("still at zero")

	require.Equal(t, "still at zero\n", buf.String())
}

func TestStdLoggerSerializesConcurrentWrites(t *testing.T) {
	var buf bytes.Buffer
	l := NewStdLogger(&buf)

	var wg sync.WaitGroup
	for i := 0; i < 50; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			l.Info("line")
		}()
	}
	wg.Wait()

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 50)
	for _, line := range lines {
		require.Equal(t, "line", line)
	}
}

func TestNullLoggerDiscardsEverything(t *testing.T) {
	var l Logger = NullLogger{}
	require.NotPanics(t, func() {
		l.Info("x")
		l.Warning("y")
		l.Error("z")
		l.IncIndent()
		l.DecIndent()
	})
}

var (
	_ Logger = (*StdLogger)(nil)
	_ Logger = NullLogger{}
)
