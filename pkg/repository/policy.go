package repository

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/funtime/mvnfetch/pkg/errors"
)

// UpdatePolicy controls how often remote metadata is re-validated.
type UpdatePolicy struct {
	name     string
	interval time.Duration
}

// Update policies.
var (
	// UpdateAlways re-checks remote metadata on every resolution.
	UpdateAlways = UpdatePolicy{name: "always"}
	// UpdateDaily re-checks remote metadata once per day.
	UpdateDaily = UpdatePolicy{name: "daily", interval: 24 * time.Hour}
	// UpdateNever trusts local metadata once it exists.
	UpdateNever = UpdatePolicy{name: "never"}
)

// UpdateInterval returns a policy that re-checks after d has elapsed.
func UpdateInterval(d time.Duration) UpdatePolicy {
	return UpdatePolicy{name: "interval", interval: d}
}

// ParseUpdatePolicy parses "always", "daily", "never" or "interval:N"
// (N in minutes).
func ParseUpdatePolicy(s string) (UpdatePolicy, error) {
	switch s = strings.ToLower(strings.TrimSpace(s)); s {
	case "always":
		return UpdateAlways, nil
	case "daily":
		return UpdateDaily, nil
	case "never":
		return UpdateNever, nil
	}
	if rest, ok := strings.CutPrefix(s, "interval:"); ok {
		minutes, err := strconv.Atoi(rest)
		if err != nil || minutes <= 0 {
			return UpdatePolicy{}, errors.New(errors.ErrCodeInvalidArgument, "invalid update policy %q (interval must be a positive number of minutes)", s)
		}
		return UpdateInterval(time.Duration(minutes) * time.Minute), nil
	}
	return UpdatePolicy{}, errors.New(errors.ErrCodeInvalidArgument, "invalid update policy %q (expected always, daily, never or interval:N)", s)
}

// String returns the policy in the form accepted by [ParseUpdatePolicy].
func (p UpdatePolicy) String() string {
	if p.name == "interval" {
		return fmt.Sprintf("interval:%d", int(p.interval/time.Minute))
	}
	if p.name == "" {
		return UpdateAlways.name
	}
	return p.name
}

// CheckDue reports whether metadata last checked at lastChecked must be
// re-checked at now. A zero lastChecked means it was never checked.
func (p UpdatePolicy) CheckDue(lastChecked, now time.Time) bool {
	if lastChecked.IsZero() {
		return true
	}
	switch p.name {
	case "never":
		return false
	case "daily", "interval":
		return now.Sub(lastChecked) >= p.interval
	default:
		return true
	}
}

// ChecksumPolicy controls what happens when a downloaded file does not
// match its published checksum.
type ChecksumPolicy string

// Checksum policies.
const (
	ChecksumFail   ChecksumPolicy = "fail"
	ChecksumWarn   ChecksumPolicy = "warn"
	ChecksumIgnore ChecksumPolicy = "ignore"
)

// ParseChecksumPolicy parses "fail", "warn" or "ignore".
func ParseChecksumPolicy(s string) (ChecksumPolicy, error) {
	switch p := ChecksumPolicy(strings.ToLower(strings.TrimSpace(s))); p {
	case ChecksumFail, ChecksumWarn, ChecksumIgnore:
		return p, nil
	}
	return "", errors.New(errors.ErrCodeInvalidArgument, "invalid checksum policy %q (expected fail, warn or ignore)", s)
}

// Policy groups the rules applied to one remote repository.
type Policy struct {
	Enabled        bool
	UpdatePolicy   UpdatePolicy
	ChecksumPolicy ChecksumPolicy
}

// DefaultPolicy returns the permissive policy the tool runs with unless
// configured otherwise: enabled, always re-check metadata, warn on checksum
// mismatch.
func DefaultPolicy() Policy {
	return Policy{
		Enabled:        true,
		UpdatePolicy:   UpdateAlways,
		ChecksumPolicy: ChecksumWarn,
	}
}
