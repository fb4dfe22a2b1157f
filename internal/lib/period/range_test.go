package period

import (
	"testing"
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestRange_Snapshot(t *testing.T) {
	c := newTestCalculator(fixedNow)
	c.SetLastQuarter()

	want := Range{
		Type:  QuarterPrevious,
		Start: time.Date(2024, time.January, 1, 0, 0, 0, 0, time.UTC),
		End:   time.Date(2024, time.March, 31, 23, 59, 59, 0, time.UTC),
	}
	got := c.Range()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Range() mismatch (-want +got):\n%s", diff)
	}

	// Снимок не меняется вместе с калькулятором.
	c.SetYearToDate()
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("snapshot changed after SetYearToDate (-want +got):\n%s", diff)
	}
}
