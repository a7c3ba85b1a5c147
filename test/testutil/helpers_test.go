package testutil

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestLoadTestJSON(t *testing.T) {
	data := LoadTestJSON(t, "browser_agent_offers.json")
	assert.NotEmpty(t, data)

	var payload map[string]interface{}
	assert.NoError(t, json.Unmarshal(data, &payload))
	assert.Contains(t, payload, "flights")
}

func TestMustParseDate(t *testing.T) {
	parsed := MustParseDate(t, "2026-09-04")

	assert.Equal(t, 2026, parsed.Year())
	assert.Equal(t, time.September, parsed.Month())
	assert.Equal(t, 4, parsed.Day())
}

func TestPtr(t *testing.T) {
	s := Ptr("hello")
	assert.Equal(t, "hello", *s)

	n := Ptr(42)
	assert.Equal(t, 42, *n)
}
