package common

import "testing"

func TestRound2(t *testing.T) {
	cases := []struct {
		in   float64
		want float64
	}{
		{1.005, 1.0}, // binary representation of 1.005 is just below
		{2.675, 2.67},
		{20.0, 20.0},
		{-13.333333, -13.33},
		{0.125, 0.13},
	}
	for _, tc := range cases {
		if got := Round2(tc.in); got != tc.want {
			t.Errorf("Round2(%v) = %v, want %v", tc.in, got, tc.want)
		}
	}
}

func TestFormatMoney(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "₹0.00"},
		{999.5, "₹999.50"},
		{1000, "₹1,000.00"},
		{123456.78, "₹123,456.78"},
		{1234567.89, "₹1,234,567.89"},
		{-2500, "₹-2,500.00"},
	}
	for _, tc := range cases {
		if got := FormatMoney(tc.in); got != tc.want {
			t.Errorf("FormatMoney(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFormatSignedMoney(t *testing.T) {
	if got := FormatSignedMoney(2000); got != "+₹2,000.00" {
		t.Errorf("got %q", got)
	}
	if got := FormatSignedMoney(-2500); got != "-₹2,500.00" {
		t.Errorf("got %q", got)
	}
}

func TestFormatPct(t *testing.T) {
	if got := FormatPct(20); got != "20.00%" {
		t.Errorf("got %q", got)
	}
	if got := FormatSignedPct(-13.33); got != "-13.33%" {
		t.Errorf("got %q", got)
	}
	if got := FormatSignedPct(5); got != "+5.00%" {
		t.Errorf("got %q", got)
	}
}

func TestFormatMarketCap(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "N/A"},
		{-1, "N/A"},
		{1e7, "₹1 Cr"},
		{17_500_000_000_000, "₹1,750,000 Cr"},
	}
	for _, tc := range cases {
		if got := FormatMarketCap(tc.in); got != tc.want {
			t.Errorf("FormatMarketCap(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}
