package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"math"
	"strconv"
	"strings"
)

// Subject is a single tracked study subject.
// The subject name is the primary key; there is no separate id.
type Subject struct {
	Subject      string `json:"subject"`
	Goal         Hours  `json:"goal"`
	HoursStudied Hours  `json:"hoursStudied"`
}

// Hours is a number of study hours.
// Older browser clients stored raw form input, so both 10 and "10" decode.
type Hours float64

func (h Hours) Float() float64 {
	return float64(h)
}

// String formats hours without trailing zeros (4, 2.5).
func (h Hours) String() string {
	return strconv.FormatFloat(float64(h), 'f', -1, 64)
}

func (h *Hours) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*h = 0
		return nil
	}

	if len(data) > 0 && data[0] == '"' {
		var s string
		err := json.Unmarshal(data, &s)
		if err != nil {
			return err
		}
		s = strings.TrimSpace(s)
		if s == "" {
			*h = 0
			return nil
		}
		f, err := strconv.ParseFloat(s, 64)
		if err != nil {
			return fmt.Errorf("invalid hours %q: %w", s, err)
		}
		return h.set(f)
	}

	var f float64
	err := json.Unmarshal(data, &f)
	if err != nil {
		return err
	}
	return h.set(f)
}

// set rejects values that cannot be written back as JSON.
func (h *Hours) set(f float64) error {
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return fmt.Errorf("invalid hours %v: not a finite number", f)
	}
	*h = Hours(f)
	return nil
}
