package storage

import (
	"os"
	"path/filepath"
	"testing"
)

func newTestJSONStore(t *testing.T) (*JSONStore, string) {
	t.Helper()
	path := filepath.Join(t.TempDir(), "widget_store.json")
	s := NewJSONStore(path)
	if err := s.Init(); err != nil {
		t.Fatalf("Init() error = %v", err)
	}
	return s, path
}

func TestJSONStoreRoundTrip(t *testing.T) {
	s, _ := newTestJSONStore(t)

	if err := s.SetString(KeyTodayShiftType, "evening"); err != nil {
		t.Fatalf("SetString() error = %v", err)
	}
	if err := s.SetInt(KeyDaysUntilOff, 2); err != nil {
		t.Fatalf("SetInt() error = %v", err)
	}
	if err := s.SetFloat(KeySleepHours, 6.5); err != nil {
		t.Fatalf("SetFloat() error = %v", err)
	}

	if v, ok := s.GetString(KeyTodayShiftType); !ok || v != "evening" {
		t.Errorf("GetString() = %q, %v; want evening, true", v, ok)
	}
	if v, ok := s.GetInt(KeyDaysUntilOff); !ok || v != 2 {
		t.Errorf("GetInt() = %d, %v; want 2, true", v, ok)
	}
	if v, ok := s.GetFloat(KeySleepHours); !ok || v != 6.5 {
		t.Errorf("GetFloat() = %v, %v; want 6.5, true", v, ok)
	}
}

func TestJSONStoreMissingKeys(t *testing.T) {
	s, _ := newTestJSONStore(t)

	if _, ok := s.GetString("nope"); ok {
		t.Error("GetString() reported presence for missing key")
	}
	if _, ok := s.GetInt("nope"); ok {
		t.Error("GetInt() reported presence for missing key")
	}
	if _, ok := s.GetFloat("nope"); ok {
		t.Error("GetFloat() reported presence for missing key")
	}
}

func TestJSONStoreMalformedNumbers(t *testing.T) {
	s, _ := newTestJSONStore(t)

	if err := s.SetString(KeyDaysUntilOff, "soon"); err != nil {
		t.Fatal(err)
	}

	// Wrong-shape values read as absent, not as errors.
	if _, ok := s.GetInt(KeyDaysUntilOff); ok {
		t.Error("GetInt() reported presence for non-numeric value")
	}
	if _, ok := s.GetFloat(KeyDaysUntilOff); ok {
		t.Error("GetFloat() reported presence for non-numeric value")
	}
}

func TestJSONStoreRefreshSeesExternalWrites(t *testing.T) {
	s, path := newTestJSONStore(t)

	// Another process rewrites the file.
	external := `{"widget_today_shift_type": "night"}`
	if err := os.WriteFile(path, []byte(external), 0600); err != nil {
		t.Fatal(err)
	}

	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh() error = %v", err)
	}
	if v, ok := s.GetString(KeyTodayShiftType); !ok || v != "night" {
		t.Errorf("GetString() after external write = %q, %v; want night, true", v, ok)
	}
}

func TestJSONStoreCorruptFileTreatedAsEmpty(t *testing.T) {
	path := filepath.Join(t.TempDir(), "widget_store.json")
	if err := os.WriteFile(path, []byte("{broken"), 0600); err != nil {
		t.Fatal(err)
	}

	s := NewJSONStore(path)
	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh() on corrupt file error = %v, want nil", err)
	}
	if _, ok := s.GetString(KeyTodayShiftType); ok {
		t.Error("corrupt store should read as empty")
	}

	// Writes still work and repair the file.
	if err := s.SetString(KeyTodayShiftType, "day"); err != nil {
		t.Fatalf("SetString() error = %v", err)
	}
	if v, ok := s.GetString(KeyTodayShiftType); !ok || v != "day" {
		t.Errorf("GetString() = %q, %v; want day, true", v, ok)
	}
}

func TestJSONStoreMissingFileTreatedAsEmpty(t *testing.T) {
	s := NewJSONStore(filepath.Join(t.TempDir(), "never_created.json"))

	if err := s.Refresh(); err != nil {
		t.Fatalf("Refresh() on missing file error = %v, want nil", err)
	}
	if _, ok := s.GetString(KeyTodayShiftType); ok {
		t.Error("missing store should read as empty")
	}
}
