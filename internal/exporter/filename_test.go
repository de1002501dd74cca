package exporter

import "testing"

func TestStripDiacritics(t *testing.T) {
	cases := []struct {
		in, want string
	}{
		{"Trần Văn Đức", "Tran Van Duc"},
		{"Báo cáo đêm", "Bao cao dem"},
		{"TBHOA", "TBHOA"},
		{"", ""},
	}
	for _, tc := range cases {
		if got := stripDiacritics(tc.in); got != tc.want {
			t.Errorf("stripDiacritics(%q) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestSanitizeSegment(t *testing.T) {
	if got := sanitizeSegment(" a/b:c*d "); got != "a-b-c-d" {
		t.Errorf("sanitizeSegment = %q, want a-b-c-d", got)
	}
}

func TestBuildFilenameOmitsStationWhenDisabled(t *testing.T) {
	cfg := testConfig(t)
	cfg.Session.EnableStation = false

	got := buildFilename(testSelection(), cfg, ".xlsx")
	want := "Daily Nightshift report_28052024_TBHOA.xlsx"
	if got != want {
		t.Errorf("filename = %q, want %q", got, want)
	}
}
