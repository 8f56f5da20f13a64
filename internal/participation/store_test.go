package participation

import (
	"os"
	"path/filepath"
	"testing"
)

func TestOpen_CreatesEmptyHistoryFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "data", "participation.json")

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	if _, err := os.Stat(path); err != nil {
		t.Fatalf("history file not created: %v", err)
	}
	if h := st.Load(); len(h) != 0 {
		t.Errorf("len(Load()) = %d, want 0", len(h))
	}
}

func TestOpen_PreservesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participation.json")
	content := `{"42": {"course_name": "Algorithms I", "group_size": 5, "sessions": []}}`
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatal(err)
	}

	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	h := st.Load()
	if c := h["42"]; c == nil || c.CourseName != "Algorithms I" || c.GroupSize != 5 {
		t.Errorf("unexpected history after Open: %+v", h)
	}
}

func TestLoad_MissingFile(t *testing.T) {
	st := &FileStore{path: filepath.Join(t.TempDir(), "missing.json")}
	if h := st.Load(); len(h) != 0 {
		t.Errorf("len(Load()) = %d, want 0 for missing file", len(h))
	}
}

func TestLoad_CorruptFile(t *testing.T) {
	tests := []struct {
		name    string
		content string
	}{
		{"truncated JSON", `{"42": {"course_name":`},
		{"not JSON at all", "definitely not json"},
		{"empty file", ""},
		{"top level array", `[1, 2, 3]`},
		{"wrong field types", `{"42": {"course_name": 7, "group_size": "five", "sessions": []}}`},
		{"missing fields", `{"42": {"course_name": "Algorithms I"}}`},
		{"malformed session", `{"42": {"course_name": "x", "group_size": 1, "sessions": [{"date": "2026-03-01"}]}}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "participation.json")
			if err := os.WriteFile(path, []byte(tt.content), 0o644); err != nil {
				t.Fatal(err)
			}
			st := &FileStore{path: path}
			if h := st.Load(); len(h) != 0 {
				t.Errorf("len(Load()) = %d, want 0 for corrupt content", len(h))
			}
		})
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participation.json")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}

	h := History{
		"42": {
			CourseName: "Algorithms I",
			GroupSize:  5,
			Sessions: []Session{
				{Date: "2026-03-01", Exercise: "Exercise 1", WasCalled: false},
				{Date: "2026-03-08", Exercise: "Exercise 2", WasCalled: true},
			},
		},
	}
	if err := st.Save(h); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got := st.Load()
	c := got["42"]
	if c == nil {
		t.Fatal("course 42 missing after round trip")
	}
	if c.CourseName != "Algorithms I" || c.GroupSize != 5 {
		t.Errorf("course = %+v", c)
	}
	if len(c.Sessions) != 2 {
		t.Fatalf("len(Sessions) = %d, want 2", len(c.Sessions))
	}
	if s := c.Sessions[1]; s.Date != "2026-03-08" || s.Exercise != "Exercise 2" || !s.WasCalled {
		t.Errorf("session = %+v", s)
	}
}

func TestSave_UnwritablePathFails(t *testing.T) {
	dir := t.TempDir()
	blocker := filepath.Join(dir, "blocker")
	if err := os.WriteFile(blocker, []byte("x"), 0o644); err != nil {
		t.Fatal(err)
	}

	// Parent "directory" is a regular file, so the write must fail.
	st := &FileStore{path: filepath.Join(blocker, "participation.json")}
	if err := st.Save(History{}); err == nil {
		t.Fatal("expected error writing under a regular file")
	}
}

func TestTracker_FileStoreRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "participation.json")
	st, err := Open(path)
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	tr := New(st)

	if err := tr.Record(42, "Algorithms I", "Exercise 1", true, "2026-03-01"); err != nil {
		t.Fatalf("Record: %v", err)
	}

	// A fresh tracker over the same file sees the appended session.
	tr2 := New(&FileStore{path: path})
	c := tr2.Course(42)
	if c == nil || len(c.Sessions) != 1 {
		t.Fatalf("unexpected course after reload: %+v", c)
	}
	if s := c.Sessions[0]; s.Exercise != "Exercise 1" || !s.WasCalled || s.Date != "2026-03-01" {
		t.Errorf("session = %+v", s)
	}
}
