package template

import (
	"errors"
	"reflect"
	"testing"

	"github.com/ThaiBaHoa/daily-nightshift-report/internal/config"
)

func testConfig(enableStation bool) *config.Config {
	return &config.Config{
		Template: config.TemplateConfig{
			ReservedColumn: "__EMPTY",
		},
		Session: config.SessionConfig{
			EnableStation: enableStation,
		},
	}
}

func TestNormalizeHeaderScenario(t *testing.T) {
	// Station support off: only DATE/Date/INSPECTOR/attachment are injected
	cfg := testConfig(false)
	cfg.Template.ReservedColumn = "__RESERVED__"

	raw := []string{"STT", "INSPECTOR", "Description", "__RESERVED__"}
	cols, err := NormalizeHeader(raw, cfg)
	if err != nil {
		t.Fatalf("NormalizeHeader failed: %v", err)
	}

	want := []string{"STT", "Date", "INSPECTOR", "Description", "DATE", "attachment"}
	if !reflect.DeepEqual([]string(cols), want) {
		t.Errorf("got %v, want %v", cols, want)
	}
}

func TestNormalizeHeaderFrontLoading(t *testing.T) {
	cfg := testConfig(true)

	headers := [][]string{
		{"Description", "STT", "Status"},
		{"STT", "Note", "Date", "STATION"},
		{"Target", "Corrective action", "STT"},
	}

	for _, raw := range headers {
		cols, err := NormalizeHeader(raw, cfg)
		if err != nil {
			t.Fatalf("NormalizeHeader(%v) failed: %v", raw, err)
		}
		if cols[0] != "STT" {
			t.Errorf("header %v: first column = %q, want STT", raw, cols[0])
		}
		if cols[1] != "Date" {
			t.Errorf("header %v: second column = %q, want Date", raw, cols[1])
		}
		if cols[2] != "STATION" {
			t.Errorf("header %v: third column = %q, want STATION", raw, cols[2])
		}
	}
}

func TestNormalizeHeaderIdempotent(t *testing.T) {
	cfg := testConfig(true)

	raw := []string{"STT", "Type", "Description", "Status", "Note"}
	once, err := NormalizeHeader(raw, cfg)
	if err != nil {
		t.Fatal(err)
	}

	twice, err := NormalizeHeader(once, cfg)
	if err != nil {
		t.Fatal(err)
	}

	if !reflect.DeepEqual(once, twice) {
		t.Errorf("not idempotent: first %v, second %v", once, twice)
	}
}

func TestNormalizeHeaderEmpty(t *testing.T) {
	cfg := testConfig(true)

	for _, raw := range [][]string{{}, {"", "  "}, {"__EMPTY"}} {
		_, err := NormalizeHeader(raw, cfg)
		if err == nil {
			t.Errorf("header %v: expected error for unusable header", raw)
			continue
		}
		var loadErr *LoadError
		if !errors.As(err, &loadErr) {
			t.Errorf("header %v: error %v is not a LoadError", raw, err)
		}
	}
}

func TestNormalizeHeaderKeepsDuplicates(t *testing.T) {
	cfg := testConfig(false)

	cols, err := NormalizeHeader([]string{"STT", "Note", "Note"}, cfg)
	if err != nil {
		t.Fatal(err)
	}

	count := 0
	for _, col := range cols {
		if col == "Note" {
			count++
		}
	}
	if count != 2 {
		t.Errorf("duplicate headers must survive normalization, got %v", cols)
	}
}
