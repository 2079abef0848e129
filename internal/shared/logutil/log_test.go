package logutil

import (
	"bytes"
	"testing"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
)

func newTestLog(level LogLevel, debugKeys ...string) (*StderrLog, *bytes.Buffer) {
	var buf bytes.Buffer
	l := NewStderrLog("test", debugKeys...)
	l.SetOutput(&buf)
	l.SetLevel(level)
	return l, &buf
}

func TestStderrLogLevels(t *testing.T) {
	l, buf := newTestLog(LogLevelWarn)
	l.Infof("hidden %d", 1)
	assert.Empty(t, buf.String())

	l.Warnf("shown %d", 2)
	assert.Contains(t, buf.String(), "[test] shown 2")
}

func TestStderrLogDebugKeys(t *testing.T) {
	l, buf := newTestLog(LogLevelDebug, "stream")
	l.Debugf("dispatch", "not enabled")
	assert.Empty(t, buf.String())

	l.Debugf("stream", "enabled")
	assert.Contains(t, buf.String(), "enabled")
}

func TestChildPrefix(t *testing.T) {
	l, buf := newTestLog(LogLevelInfo)
	l.Child("events").Infof("polled")
	assert.Contains(t, buf.String(), "[test/events] polled")
}

func TestContextLog(t *testing.T) {
	color.NoColor = true
	l, buf := newTestLog(LogLevelInfo)

	cl := WrapLogWithContext(l, Context{"repo": "a/b", "eventID": "100%"})
	cl.Infof("got %d events", 3)
	assert.Contains(t, buf.String(), "got 3 events [eventID=100% repo=a/b]")
}

func TestParseLevel(t *testing.T) {
	assert.Equal(t, LogLevelDebug, ParseLevel("debug", LogLevelInfo))
	assert.Equal(t, LogLevelWarn, ParseLevel("warning", LogLevelInfo))
	assert.Equal(t, LogLevelInfo, ParseLevel("verbose", LogLevelInfo))
}
