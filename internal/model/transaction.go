package model

import (
	"encoding/json"
	"fmt"
)

// TimeLayout is the timestamp format used in the transaction log file
const TimeLayout = "2006-01-02 15:04:05"

// AlertFlag is a boolean serialized as the legacy "Yes"/"No" strings
type AlertFlag bool

// MarshalJSON serializes the flag as "Yes" or "No"
func (f AlertFlag) MarshalJSON() ([]byte, error) {
	if f {
		return json.Marshal("Yes")
	}
	return json.Marshal("No")
}

// UnmarshalJSON parses the legacy "Yes"/"No" representation
func (f *AlertFlag) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	switch s {
	case "Yes":
		*f = true
	case "No":
		*f = false
	default:
		return fmt.Errorf("invalid alert flag %q, must be either Yes or No", s)
	}
	return nil
}

// TransactionLogEntry is a single record of the append-only transaction log.
// JSON keys are pinned to the legacy log file format.
type TransactionLogEntry struct {
	Name   string    `json:"Name"`
	Amount float64   `json:"Amount"`
	Time   string    `json:"Time"`
	Alert  AlertFlag `json:"Alert"`
}
