package util

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		amount   string
		symbol   string
		expected string
	}{
		{name: "zero", amount: "0", symbol: "₹", expected: "₹0.00"},
		{name: "whole", amount: "987", symbol: "₹", expected: "₹987.00"},
		{name: "grouped", amount: "1116", symbol: "₹", expected: "₹1,116.00"},
		{name: "half rounds up", amount: "0.505", symbol: "$", expected: "$0.51"},
		{name: "below half rounds down", amount: "0.5049", symbol: "$", expected: "$0.50"},
		{name: "millions", amount: "1234567.891", symbol: "", expected: "1,234,567.89"},
		{name: "negative", amount: "-1500.5", symbol: "€", expected: "-€1,500.50"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := FormatAmount(decimal.RequireFromString(tt.amount), tt.symbol)
			if got != tt.expected {
				t.Fatalf("FormatAmount(%s) = %s, want %s", tt.amount, got, tt.expected)
			}
		})
	}
}

func TestFormatPlain(t *testing.T) {
	t.Parallel()

	if got := FormatPlain(decimal.RequireFromString("46.995")); got != "47.00" {
		t.Fatalf("FormatPlain = %s, want 47.00", got)
	}
}

func TestFormatDuration(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name     string
		duration time.Duration
		expected string
	}{
		{name: "under one minute", duration: 45 * time.Second, expected: "45s"},
		{name: "rounded second to minute", duration: 59*time.Second + 500*time.Millisecond, expected: "1m0s"},
		{name: "minutes and seconds", duration: 2*time.Minute + 30*time.Second, expected: "2m30s"},
		{name: "hours and minutes", duration: time.Hour + 30*time.Minute, expected: "1h30m"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := FormatDuration(tt.duration); got != tt.expected {
				t.Fatalf("FormatDuration(%s) = %s, want %s", tt.duration, got, tt.expected)
			}
		})
	}
}
