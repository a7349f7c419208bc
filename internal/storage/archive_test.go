package storage

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRunKey(t *testing.T) {
	at := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)
	key := RunKey("  North-Yard  ", at)
	assert.Equal(t, "runs/north-yard/20260115T093000Z.json", key)
}

func TestRunPrefix_MatchesRunKeys(t *testing.T) {
	at := time.Date(2026, 1, 15, 9, 30, 0, 0, time.UTC)

	// Listing a dealer's runs must cover every key written for that dealer.
	assert.True(t, strings.HasPrefix(RunKey("North-Yard", at), RunPrefix("north-yard")))
	assert.False(t, strings.HasPrefix(RunKey("south-yard", at), RunPrefix("north-yard")))

	// Empty dealer lists the whole runs area.
	assert.Equal(t, "runs/", RunPrefix(""))
	assert.True(t, strings.HasPrefix(RunKey("north-yard", at), RunPrefix("")))
}

func TestEncodeRun(t *testing.T) {
	payload, err := EncodeRun(map[string]string{"feed": "schedule"}, map[string]bool{"nothing_to_plan": true})
	require.NoError(t, err)

	var decoded map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(payload, &decoded))
	assert.Contains(t, decoded, "input")
	assert.Contains(t, decoded, "output")
}
