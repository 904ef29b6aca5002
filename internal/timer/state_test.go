package timer

import (
	"testing"
	"time"
)

func TestClassifyDayShift(t *testing.T) {
	w, ok := Resolve("06:00", "14:00", date(14, 5, 50))
	if !ok {
		t.Fatal("Resolve() returned no window")
	}

	tests := []struct {
		name          string
		now           time.Time
		wantPhase     Phase
		wantProgress  float64
		wantRemaining string
		wantCaption   string
	}{
		{
			name:          "ten minutes before start",
			now:           date(14, 5, 50),
			wantPhase:     Upcoming,
			wantProgress:  0,
			wantRemaining: "10분",
			wantCaption:   "시작까지",
		},
		{
			name:          "halfway through",
			now:           date(14, 10, 0),
			wantPhase:     Active,
			wantProgress:  0.5,
			wantRemaining: "4:00",
			wantCaption:   "남은 시간",
		},
		{
			name:          "after end",
			now:           date(14, 14, 30),
			wantPhase:     Ended,
			wantProgress:  1,
			wantRemaining: EndedLabel,
			wantCaption:   "수고하셨습니다",
		},
		{
			name:          "exactly at start",
			now:           date(14, 6, 0),
			wantPhase:     Active,
			wantProgress:  0,
			wantRemaining: "8:00",
			wantCaption:   "남은 시간",
		},
		{
			name:          "exactly at end",
			now:           date(14, 14, 0),
			wantPhase:     Ended,
			wantProgress:  1,
			wantRemaining: EndedLabel,
			wantCaption:   "수고하셨습니다",
		},
		{
			name:          "under an hour remaining",
			now:           date(14, 13, 15),
			wantPhase:     Active,
			wantProgress:  0.90625,
			wantRemaining: "45분",
			wantCaption:   "남은 시간",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Classify(tt.now, w)
			if got.Phase != tt.wantPhase {
				t.Errorf("phase = %v, want %v", got.Phase, tt.wantPhase)
			}
			if got.Progress != tt.wantProgress {
				t.Errorf("progress = %v, want %v", got.Progress, tt.wantProgress)
			}
			if got.Remaining != tt.wantRemaining {
				t.Errorf("remaining = %q, want %q", got.Remaining, tt.wantRemaining)
			}
			if got.Caption != tt.wantCaption {
				t.Errorf("caption = %q, want %q", got.Caption, tt.wantCaption)
			}
		})
	}
}

func TestClassifyProgressMonotonic(t *testing.T) {
	w := Window{Start: date(14, 22, 0), End: date(15, 6, 0)}

	prev := -1.0
	for min := 0; min < 14*60; min += 7 {
		now := date(14, 20, 0).Add(time.Duration(min) * time.Minute)
		s := Classify(now, w)
		if s.Progress < 0 || s.Progress > 1 {
			t.Fatalf("progress %v out of [0,1] at %v", s.Progress, now)
		}
		if s.Progress < prev {
			t.Fatalf("progress decreased from %v to %v at %v", prev, s.Progress, now)
		}
		prev = s.Progress
	}
}

func TestClassifyZeroLengthWindow(t *testing.T) {
	at := date(14, 8, 0)
	w := Window{Start: at, End: at}

	s := Classify(at, w)
	if s.Phase != Ended {
		t.Errorf("phase = %v, want Ended", s.Phase)
	}
	if s.Progress != 1 {
		t.Errorf("progress = %v, want 1", s.Progress)
	}
}

func TestFormatCountdown(t *testing.T) {
	tests := []struct {
		name string
		d    time.Duration
		want string
	}{
		{
			name: "minutes only",
			d:    10 * time.Minute,
			want: "10분",
		},
		{
			name: "exactly one hour",
			d:    time.Hour,
			want: "1:00",
		},
		{
			name: "hours and minutes",
			d:    7*time.Hour + 5*time.Minute,
			want: "7:05",
		},
		{
			name: "truncates seconds",
			d:    9*time.Minute + 59*time.Second,
			want: "9분",
		},
		{
			name: "zero",
			d:    0,
			want: "0분",
		},
		{
			name: "negative clamps to zero",
			d:    -5 * time.Minute,
			want: "0분",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCountdown(tt.d); got != tt.want {
				t.Errorf("FormatCountdown(%v) = %q, want %q", tt.d, got, tt.want)
			}
		})
	}
}
