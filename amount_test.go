package cashbook

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    string
		wantErr bool
	}{
		{name: "integer", input: "42", want: "42"},
		{name: "decimal", input: "19.99", want: "19.99"},
		{name: "negative", input: "-3.50", want: "-3.5"},
		{name: "padded", input: " 7 ", want: "7"},
		{name: "garbage", input: "lots", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseAmount(tt.input)
			if (err != nil) != tt.wantErr {
				t.Fatalf("ParseAmount(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			}
			if tt.wantErr {
				if !errors.Is(err, ErrInvalidInput) {
					t.Errorf("ParseAmount(%q) error = %v, want ErrInvalidInput", tt.input, err)
				}
				return
			}
			if got.String() != tt.want {
				t.Errorf("ParseAmount(%q) = %s, want %s", tt.input, got, tt.want)
			}
		})
	}
}

func TestDisplayMoney(t *testing.T) {
	tests := []struct {
		name     string
		value    string
		currency string
		want     string
	}{
		{name: "usd", value: "1234.5", currency: "USD", want: "$1,234.50"},
		{name: "usd negative", value: "-5", currency: "USD", want: "-$5.00"},
		{name: "unknown code", value: "12.3", currency: "ZZZ", want: "12.30"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			v := decimal.RequireFromString(tt.value)
			if got := DisplayMoney(v, tt.currency); got != tt.want {
				t.Errorf("DisplayMoney(%s, %s) = %q, want %q", tt.value, tt.currency, got, tt.want)
			}
		})
	}
}

func TestSignedMoney(t *testing.T) {
	if got := SignedMoney(decimal.Zero, "USD"); got != "-" {
		t.Errorf("SignedMoney(0) = %q, want -", got)
	}
	if got := SignedMoney(decimal.NewFromInt(5), "USD"); got != "+$5.00" {
		t.Errorf("SignedMoney(5) = %q, want +$5.00", got)
	}
}
