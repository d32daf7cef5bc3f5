package fraud

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestSuspicious(t *testing.T) {
	evaluator := NewEvaluator(5000)

	tests := []struct {
		name       string
		amount     float64
		suspicious bool
	}{
		{name: "small amount is not flagged", amount: 100, suspicious: false},
		{name: "zero amount is not flagged", amount: 0, suspicious: false},
		{name: "exactly five times the limit is not flagged", amount: 25000, suspicious: false},
		{name: "just above five times the limit is flagged", amount: 25000.01, suspicious: true},
		{name: "far above the ceiling is flagged", amount: 30000, suspicious: true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.suspicious, evaluator.Suspicious(tc.amount))
		})
	}
}

func TestSuspiciousLowLimit(t *testing.T) {
	// with a low limit the limit*5 branch fires before the absolute ceiling
	evaluator := NewEvaluator(1000)

	assert.False(t, evaluator.Suspicious(5000), "exactly limit*5 must not be flagged")
	assert.True(t, evaluator.Suspicious(5000.01), "just above limit*5 must be flagged")
	assert.True(t, evaluator.Suspicious(26000), "above the absolute ceiling must be flagged")
}

func TestSuspiciousHighLimit(t *testing.T) {
	// with a high limit the absolute ceiling still applies
	evaluator := NewEvaluator(100000)

	assert.False(t, evaluator.Suspicious(25000), "exactly the ceiling must not be flagged")
	assert.True(t, evaluator.Suspicious(25001), "above the ceiling must be flagged even below limit*5")
}
