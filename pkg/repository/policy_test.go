package repository

import (
	"testing"
	"time"

	"github.com/funtime/mvnfetch/pkg/errors"
)

func TestParseUpdatePolicy(t *testing.T) {
	tests := []struct {
		in   string
		want UpdatePolicy
	}{
		{"always", UpdateAlways},
		{"ALWAYS", UpdateAlways},
		{" daily ", UpdateDaily},
		{"never", UpdateNever},
		{"interval:30", UpdateInterval(30 * time.Minute)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseUpdatePolicy(tt.in)
			if err != nil {
				t.Fatalf("ParseUpdatePolicy() error: %v", err)
			}
			if got != tt.want {
				t.Errorf("ParseUpdatePolicy() = %v, want %v", got, tt.want)
			}
		})
	}

	for _, bad := range []string{"", "sometimes", "interval:", "interval:0", "interval:-5", "interval:x"} {
		t.Run("invalid "+bad, func(t *testing.T) {
			if _, err := ParseUpdatePolicy(bad); !errors.Is(err, errors.ErrCodeInvalidArgument) {
				t.Errorf("ParseUpdatePolicy(%q) error = %v, want INVALID_ARGUMENT", bad, err)
			}
		})
	}
}

func TestUpdatePolicyString(t *testing.T) {
	tests := []struct {
		p    UpdatePolicy
		want string
	}{
		{UpdateAlways, "always"},
		{UpdateDaily, "daily"},
		{UpdateNever, "never"},
		{UpdateInterval(90 * time.Minute), "interval:90"},
		{UpdatePolicy{}, "always"},
	}
	for _, tt := range tests {
		if got := tt.p.String(); got != tt.want {
			t.Errorf("String() = %q, want %q", got, tt.want)
		}
	}
}

func TestCheckDue(t *testing.T) {
	now := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name        string
		policy      UpdatePolicy
		lastChecked time.Time
		want        bool
	}{
		{"never checked always", UpdateAlways, time.Time{}, true},
		{"never checked never", UpdateNever, time.Time{}, true},
		{"always just checked", UpdateAlways, now, true},
		{"never checked long ago", UpdateNever, now.Add(-365 * 24 * time.Hour), false},
		{"daily within day", UpdateDaily, now.Add(-time.Hour), false},
		{"daily after day", UpdateDaily, now.Add(-25 * time.Hour), true},
		{"interval within", UpdateInterval(10 * time.Minute), now.Add(-5 * time.Minute), false},
		{"interval elapsed", UpdateInterval(10 * time.Minute), now.Add(-10 * time.Minute), true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.policy.CheckDue(tt.lastChecked, now); got != tt.want {
				t.Errorf("CheckDue() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestParseChecksumPolicy(t *testing.T) {
	for _, in := range []string{"fail", "WARN", " ignore "} {
		if _, err := ParseChecksumPolicy(in); err != nil {
			t.Errorf("ParseChecksumPolicy(%q) error: %v", in, err)
		}
	}
	if _, err := ParseChecksumPolicy("strict"); !errors.Is(err, errors.ErrCodeInvalidArgument) {
		t.Errorf("ParseChecksumPolicy(strict) error = %v, want INVALID_ARGUMENT", err)
	}
}

func TestDefaultPolicy(t *testing.T) {
	p := DefaultPolicy()
	if !p.Enabled {
		t.Error("default policy should be enabled")
	}
	if p.UpdatePolicy != UpdateAlways {
		t.Errorf("UpdatePolicy = %v, want always", p.UpdatePolicy)
	}
	if p.ChecksumPolicy != ChecksumWarn {
		t.Errorf("ChecksumPolicy = %v, want warn", p.ChecksumPolicy)
	}
}
