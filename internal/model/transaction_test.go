package model

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAlertFlagMarshal(t *testing.T) {
	raw, err := json.Marshal(AlertFlag(true))
	require.NoError(t, err)
	assert.Equal(t, `"Yes"`, string(raw))

	raw, err = json.Marshal(AlertFlag(false))
	require.NoError(t, err)
	assert.Equal(t, `"No"`, string(raw))
}

func TestAlertFlagUnmarshal(t *testing.T) {
	var f AlertFlag

	require.NoError(t, json.Unmarshal([]byte(`"Yes"`), &f))
	assert.True(t, bool(f))

	require.NoError(t, json.Unmarshal([]byte(`"No"`), &f))
	assert.False(t, bool(f))

	assert.Error(t, json.Unmarshal([]byte(`"Maybe"`), &f), "unknown flag value must be rejected")
	assert.Error(t, json.Unmarshal([]byte(`true`), &f), "legacy format stores strings, not booleans")
}
