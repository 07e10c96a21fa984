package message

import (
	"testing"
	"time"
)

func TestNewRunUid(t *testing.T) {
	a, b := NewRunUid(), NewRunUid()
	if a == b {
		t.Errorf("NewRunUid() returned %q twice", a)
	}
	if len(a) != 36 {
		t.Errorf("NewRunUid() = %q, want a 36-char uuid", a)
	}
}

func TestTimeStamp_RoundTrip(t *testing.T) {
	at := time.Date(2024, 5, 17, 13, 45, 9, 0, time.UTC)
	ts := NewTimeStamp(at)
	if got := ts.Time(); !got.Equal(at) {
		t.Errorf("Time() = %v, want %v", got, at)
	}
}

func TestRunRecord_RoundTrip(t *testing.T) {
	record := RunRecord{
		RunUid:       NewRunUid(),
		StartAt:      NewTimeStamp(time.Now()),
		NumFaces:     6,
		Hands:        84,
		HandPairs:    3067,
		Intermediate: 3083032242,
		Final:        1557728432,
		Invalid:      172227220,
		CostTime:     "42s",
	}

	parsed, err := NewRunRecord(record.String())
	if err != nil {
		t.Fatalf("NewRunRecord() error = %v", err)
	}
	if parsed != record {
		t.Errorf("NewRunRecord() = %+v, want %+v", parsed, record)
	}
}
