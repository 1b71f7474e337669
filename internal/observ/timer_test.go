package observ

import (
	"strings"
	"testing"
	"time"
)

func TestTimerReport(t *testing.T) {
	timer := NewTimer()

	idx := timer.Begin("scan")
	time.Sleep(time.Millisecond)
	timer.End(idx, "3 files")

	idx = timer.Begin("parse")
	timer.End(idx, "")

	report := timer.Report()
	if len(report.Phases) != 2 {
		t.Fatalf("phases = %d, want 2", len(report.Phases))
	}
	if report.Phases[0].Name != "scan" || report.Phases[0].Note != "3 files" {
		t.Fatalf("unexpected first phase: %+v", report.Phases[0])
	}
	if report.Phases[0].DurationMS <= 0 {
		t.Fatalf("scan duration should be positive, got %v", report.Phases[0].DurationMS)
	}
	if report.TotalMS < report.Phases[0].DurationMS {
		t.Fatalf("total %v should cover scan %v", report.TotalMS, report.Phases[0].DurationMS)
	}
}

func TestTimerSummary(t *testing.T) {
	timer := NewTimer()
	idx := timer.Begin("scan")
	timer.End(idx, "warm")

	out := timer.Summary()
	if !strings.Contains(out, "scan") || !strings.Contains(out, "// warm") {
		t.Fatalf("summary missing phase data:\n%s", out)
	}
	if !strings.Contains(out, "total") {
		t.Fatalf("summary missing total:\n%s", out)
	}
}

func TestTimerEndIgnoresBadIndex(t *testing.T) {
	timer := NewTimer()
	timer.End(0, "no phases yet")
	timer.End(-1, "negative")

	if got := timer.Report(); len(got.Phases) != 0 {
		t.Fatalf("expected empty report, got %+v", got)
	}
}
