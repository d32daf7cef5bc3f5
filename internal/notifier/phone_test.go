package notifier

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestIsValidPhone(t *testing.T) {
	tests := []struct {
		number string
		valid  bool
	}{
		{number: "+12345678901", valid: true},
		{number: "+1234567890", valid: true},
		{number: "+123456789012345", valid: true},
		{number: "12345678901", valid: false},
		{number: "+123456789", valid: false},
		{number: "+1234567890123456", valid: false},
		{number: "+1-234-567-8901", valid: false},
		{number: "+1234567890 1", valid: false},
		{number: "", valid: false},
	}

	for _, tc := range tests {
		assert.Equalf(t, tc.valid, IsValidPhone(tc.number), "unexpected result for %q", tc.number)
	}
}
