package form

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadScript(t *testing.T) {
	content := `inspector: TBHOA
station: SGN
date: 2024-05-28
entries:
  - stt: 1
    fields:
      Status: Checked
      Note: all clear
  - stt: "2"
    fields:
      Status: Finding
    images:
      - photos/leak.jpg
`
	path := filepath.Join(t.TempDir(), "session.yaml")
	if err := os.WriteFile(path, []byte(content), 0644); err != nil {
		t.Fatal(err)
	}

	s, err := LoadScript(path)
	if err != nil {
		t.Fatalf("LoadScript failed: %v", err)
	}

	if s.Inspector != "TBHOA" || s.Station != "SGN" {
		t.Errorf("identity = %q/%q", s.Inspector, s.Station)
	}
	if len(s.Entries) != 2 {
		t.Fatalf("entries = %d, want 2", len(s.Entries))
	}
	// Numeric and quoted sequence numbers both decode to text
	if s.Entries[0].STT != "1" || s.Entries[1].STT != "2" {
		t.Errorf("STTs = %q, %q", s.Entries[0].STT, s.Entries[1].STT)
	}
	if got := s.Entries[0].Fields["Note"]; got != "all clear" {
		t.Errorf("Note = %q", got)
	}
	if len(s.Entries[1].Images) != 1 {
		t.Errorf("images = %v", s.Entries[1].Images)
	}

	date, ok, err := s.ParsedDate()
	if err != nil || !ok {
		t.Fatalf("ParsedDate: ok=%v err=%v", ok, err)
	}
	if date.Format("02/01/2006") != "28/05/2024" {
		t.Errorf("date = %v", date)
	}
}

func TestLoadScriptMissing(t *testing.T) {
	if _, err := LoadScript(filepath.Join(t.TempDir(), "nope.yaml")); err == nil {
		t.Error("expected error for missing script")
	}
}

func TestParsedDateFormats(t *testing.T) {
	for _, raw := range []string{"2024-05-28", "28/05/2024", "28-05-2024"} {
		s := &Script{Date: raw}
		date, ok, err := s.ParsedDate()
		if err != nil || !ok {
			t.Errorf("%q: ok=%v err=%v", raw, ok, err)
			continue
		}
		if date.Day() != 28 || date.Month() != 5 {
			t.Errorf("%q parsed as %v", raw, date)
		}
	}

	s := &Script{Date: "28 May 2024"}
	if _, _, err := s.ParsedDate(); err == nil {
		t.Error("unrecognized date must error")
	}

	s = &Script{}
	if _, ok, err := s.ParsedDate(); ok || err != nil {
		t.Errorf("empty date: ok=%v err=%v", ok, err)
	}
}
