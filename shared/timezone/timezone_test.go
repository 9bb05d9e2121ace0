package timezone_test

import (
	"testing"
	"time"

	"frontdesk/shared/timezone"
)

func TestTimezoneInit(t *testing.T) {
	now := timezone.Now()
	if now.IsZero() {
		t.Error("Now() returned zero time")
	}

	if timezone.GetLocation() == nil {
		t.Error("GetLocation() returned nil")
	}
}

func TestTimezoneToAppTime(t *testing.T) {
	utcTime := time.Now().UTC()
	appTime := timezone.ToAppTime(utcTime)

	if !appTime.Equal(utcTime) {
		t.Error("expected converted time to refer to the same instant")
	}
}

func TestTimezoneParseAndFormat(t *testing.T) {
	parsed, err := timezone.Parse("2006-01-02", "2024-01-10")
	if err != nil {
		t.Fatalf("Parse() returned error: %v", err)
	}

	if parsed.Year() != 2024 || parsed.Month() != time.January || parsed.Day() != 10 {
		t.Errorf("Parse() returned wrong date: %v", parsed)
	}

	formatted := timezone.Format(parsed, "2006-01-02")
	if formatted != "2024-01-10" {
		t.Errorf("expected formatted date 2024-01-10, got %s", formatted)
	}
}
