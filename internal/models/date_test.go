package models

import (
	"testing"
	"time"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr bool
	}{
		{name: "valid date", input: "2024-11-15"},
		{name: "month out of range", input: "2024-13-01", wantErr: true},
		{name: "day out of range", input: "2024-02-30", wantErr: true},
		{name: "wrong field order", input: "15-11-2024", wantErr: true},
		{name: "missing zero padding", input: "2024-1-5", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if tt.wantErr {
				if err == nil {
					t.Fatalf("ParseDate(%q) expected error, got %v", tt.input, d)
				}
				return
			}
			if err != nil {
				t.Fatalf("ParseDate(%q) returned error: %v", tt.input, err)
			}
			if d.String() != tt.input {
				t.Errorf("round trip = %q; want %q", d.String(), tt.input)
			}
		})
	}
}

func TestDateAddMonths(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		months   int
		expected string
	}{
		{name: "plain advance", input: "2024-11-15", months: 1, expected: "2024-12-15"},
		{name: "december rolls the year", input: "2024-12-15", months: 1, expected: "2025-01-15"},
		{name: "day clamps to short month", input: "2025-01-31", months: 1, expected: "2025-02-28"},
		{name: "day clamps to leap february", input: "2024-01-31", months: 1, expected: "2024-02-29"},
		{name: "multiple months across years", input: "2025-11-30", months: 3, expected: "2026-02-28"},
		{name: "day preserved after clamping month passes", input: "2025-03-15", months: 11, expected: "2026-02-15"},
		{name: "backwards", input: "2025-01-15", months: -1, expected: "2024-12-15"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := ParseDate(tt.input)
			if err != nil {
				t.Fatalf("ParseDate(%q): %v", tt.input, err)
			}
			got := d.AddMonths(tt.months).String()
			if got != tt.expected {
				t.Errorf("%s +%d months = %s; want %s", tt.input, tt.months, got, tt.expected)
			}
		})
	}
}

func TestDateStringIsFixedWidth(t *testing.T) {
	d := NewDate(33, time.January, 2)
	if got := d.String(); got != "0033-01-02" {
		t.Errorf("String() = %q; want zero-padded %q", got, "0033-01-02")
	}
}

func TestDateScan(t *testing.T) {
	tests := []struct {
		name     string
		value    interface{}
		expected string
	}{
		{name: "plain text", value: "2024-11-15", expected: "2024-11-15"},
		{name: "text with time suffix", value: "2024-11-15 00:00:00", expected: "2024-11-15"},
		{name: "bytes", value: []byte("2025-02-01"), expected: "2025-02-01"},
		{name: "time value", value: time.Date(2025, time.June, 3, 14, 30, 0, 0, time.UTC), expected: "2025-06-03"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Date
			if err := d.Scan(tt.value); err != nil {
				t.Fatalf("Scan(%v): %v", tt.value, err)
			}
			if d.String() != tt.expected {
				t.Errorf("Scan(%v) = %s; want %s", tt.value, d, tt.expected)
			}
		})
	}
}

func TestDateJSONRoundTrip(t *testing.T) {
	d, _ := ParseDate("2025-08-31")
	data, err := d.MarshalJSON()
	if err != nil {
		t.Fatalf("MarshalJSON: %v", err)
	}
	if string(data) != `"2025-08-31"` {
		t.Fatalf("MarshalJSON = %s", data)
	}
	var back Date
	if err := back.UnmarshalJSON(data); err != nil {
		t.Fatalf("UnmarshalJSON: %v", err)
	}
	if !back.Equal(d) {
		t.Errorf("round trip = %s; want %s", back, d)
	}
}
