package status

import (
	"errors"
	"testing"
)

func TestRecorderEmpty(t *testing.T) {
	r := NewRecorder()

	if _, ok := r.Latest(); ok {
		t.Fatal("expected no status before first record")
	}
}

func TestRecorderHealthy(t *testing.T) {
	r := NewRecorder()
	r.Record(nil)

	st, ok := r.Latest()
	if !ok {
		t.Fatal("expected a recorded status")
	}
	if !st.Healthy {
		t.Fatal("expected healthy status")
	}
	if st.Error != "" {
		t.Fatalf("expected empty error, got %q", st.Error)
	}
	if st.CheckedAt.IsZero() {
		t.Fatal("expected CheckedAt to be set")
	}
}

func TestRecorderUnhealthyThenRecovers(t *testing.T) {
	r := NewRecorder()
	r.Record(errors.New("connection refused"))

	st, _ := r.Latest()
	if st.Healthy {
		t.Fatal("expected unhealthy status")
	}
	if st.Error != "connection refused" {
		t.Fatalf("expected error text, got %q", st.Error)
	}

	r.Record(nil)
	st, _ = r.Latest()
	if !st.Healthy || st.Error != "" {
		t.Fatalf("expected recovery, got %+v", st)
	}
}
