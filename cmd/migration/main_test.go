package main

import (
	"errors"
	"testing"

	"github.com/riskibarqy/matchday/internal/platform/logging"
)

func TestParseSteps(t *testing.T) {
	tests := []struct {
		args    []string
		want    int
		wantErr bool
	}{
		{args: nil, want: 1},
		{args: []string{"3"}, want: 3},
		{args: []string{"0"}, wantErr: true},
		{args: []string{"x"}, wantErr: true},
	}

	for _, tc := range tests {
		got, err := parseSteps(tc.args)
		if tc.wantErr {
			if err == nil {
				t.Fatalf("parseSteps(%v): expected error", tc.args)
			}
			continue
		}
		if err != nil || got != tc.want {
			t.Fatalf("parseSteps(%v) = %d, %v", tc.args, got, err)
		}
	}
}

func TestParseVersionAndTarget(t *testing.T) {
	if v, err := parseVersion("1772000100"); err != nil || v != 1772000100 {
		t.Fatalf("unexpected version: %d %v", v, err)
	}
	if _, err := parseVersion("-1"); err == nil {
		t.Fatalf("expected error for negative version")
	}
	if v, err := parseTarget("1772000000"); err != nil || v != 1772000000 {
		t.Fatalf("unexpected target: %d %v", v, err)
	}
}

func TestRun_Usage(t *testing.T) {
	if err := run(nil, logging.NewNop()); !errors.Is(err, errUsage) {
		t.Fatalf("expected usage error, got %v", err)
	}
}

func TestNormalizeDBURL(t *testing.T) {
	got := normalizeDBURL("postgres://localhost:5432/matchday?sslmode=disable", true)
	if got != "postgres://localhost:5432/matchday?disable_prepared_binary_result=yes&sslmode=disable" {
		t.Fatalf("unexpected url: %q", got)
	}
	if got := normalizeDBURL("postgres://localhost/matchday", false); got != "postgres://localhost/matchday" {
		t.Fatalf("expected url unchanged, got %q", got)
	}
}
