package driver

import (
	"testing"
)

func TestParsePrice(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    int64
		wantErr bool
	}{
		{name: "dollar sign prefix", text: "$49.99", want: 4999},
		{name: "whole dollars", text: "$50", want: 5000},
		{name: "currency code suffix", text: "49.99 USD", want: 4999},
		{name: "surrounding whitespace", text: "  $40.00\n", want: 4000},
		{name: "thousands separator", text: "$1,049.00", want: 104900},
		{name: "single fraction digit", text: "$49.9", want: 4990},
		{name: "euro sign", text: "€39.99", want: 3999},
		{name: "spaced currency symbol", text: "$ 60.00", want: 6000},
		{name: "empty text", text: "", wantErr: true},
		{name: "whitespace only", text: "   ", wantErr: true},
		{name: "no digits", text: "free", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParsePrice(tt.text)

			if (err != nil) != tt.wantErr {
				t.Fatalf("ParsePrice(%q) error = %v, wantErr %v", tt.text, err, tt.wantErr)
			}
			if !tt.wantErr && got != tt.want {
				t.Errorf("ParsePrice(%q) = %d, want %d", tt.text, got, tt.want)
			}
		})
	}
}
