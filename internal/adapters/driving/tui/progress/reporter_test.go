package progress

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestReporter_LinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, false)

	r.RoundStarted(1, 0, 25, "lantern")
	r.RateLimited(5 * time.Second)
	r.RoundStarted(2, 3, 25, "marsh")
	r.Finished(25, 9)

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	assert.Equal(t, []string{
		"[0/25] • lantern",
		"Too many store requests, sleeping for 5s",
		"[3/25] • marsh",
		"Found 25 titles in 9 rounds",
	}, lines)
	assert.NotContains(t, buf.String(), clearLine)
}

func TestReporter_InPlace(t *testing.T) {
	var buf bytes.Buffer
	r := NewReporter(&buf, nil, true)

	r.RoundStarted(1, 0, 5, "moth")
	r.Finished(5, 1)

	assert.Equal(t, clearLine+"[0/5] • moth"+clearLine+"Found 5 titles in 1 rounds\n", buf.String())
}

func TestBanner(t *testing.T) {
	banner := Banner(nil)

	assert.Contains(t, banner, "undiscovered")
	assert.Contains(t, banner, "Steam store")
}
