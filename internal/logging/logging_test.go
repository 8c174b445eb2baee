package logging

import (
	"bytes"
	"testing"

	log "github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
)

func TestNew_Levels(t *testing.T) {
	var buf bytes.Buffer

	quiet := Component(New(&buf, false), "prompt")
	quiet.Debug("hidden")
	quiet.Warn("shown")
	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
	assert.Contains(t, buf.String(), "component=prompt")

	buf.Reset()
	loud := New(&buf, true)
	assert.Equal(t, log.DebugLevel, loud.GetLevel())
	loud.WithField("pointer", "demofunc.manualfill").Debug("resolved")
	assert.Contains(t, buf.String(), "pointer=demofunc.manualfill")
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard().WithField("k", "v").Error("dropped")
	})
}
