package timezone_test

import (
	"testing"
	"time"

	"boatsandjoy/shared/timezone"
)

func TestNow(t *testing.T) {
	now := timezone.Now()

	if now.IsZero() {
		t.Error("expected Now to return a non-zero time")
	}

	if now.Location() != timezone.GetLocation() {
		t.Errorf("expected Now to use the application location, got %s", now.Location())
	}
}

func TestToAppTime(t *testing.T) {
	utc := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	converted := timezone.ToAppTime(utc)

	if !converted.Equal(utc) {
		t.Error("expected ToAppTime to preserve the instant")
	}

	if converted.Location() != timezone.GetLocation() {
		t.Errorf("expected ToAppTime to use the application location, got %s", converted.Location())
	}
}

func TestFormat(t *testing.T) {
	ts := time.Date(2024, 6, 15, 10, 30, 0, 0, time.UTC)
	formatted := timezone.Format(ts, "2006-01-02")

	if formatted == "" {
		t.Error("expected Format to return a non-empty string")
	}
}

func TestParse(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-06-15")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.Year() != 2024 || parsed.Month() != time.June || parsed.Day() != 15 {
		t.Errorf("unexpected parsed time: %s", parsed)
	}
}
