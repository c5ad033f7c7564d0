package scan

import (
	"errors"
	"testing"

	"github.com/coolbeans/lawindex/pkg/law"
)

func TestParseRevisionName(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
		expected ParsedName
	}{
		{
			name:     "reiwa_first_day",
			fileName: "123AC0000000001_20190501_000000000000000.xml",
			expected: ParsedName{
				ID:      "123AC0000000001",
				Year:    2019,
				Month:   5,
				Day:     1,
				PatchID: "000000000000000",
			},
		},
		{
			name:     "amending_law_patch_id",
			fileName: "325AC0000000131_20200401_501AC0000000016.xml",
			expected: ParsedName{
				ID:      "325AC0000000131",
				Year:    2020,
				Month:   4,
				Day:     1,
				PatchID: "501AC0000000016",
			},
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			parsed, err := ParseRevisionName(tc.fileName)
			if err != nil {
				t.Fatalf("ParseRevisionName(%q) failed: %v", tc.fileName, err)
			}
			if parsed != tc.expected {
				t.Errorf("ParseRevisionName(%q): got %+v, want %+v", tc.fileName, parsed, tc.expected)
			}
		})
	}
}

func TestParseRevisionName_Mismatch(t *testing.T) {
	cases := []struct {
		name     string
		fileName string
	}{
		{name: "missing_patch_segment", fileName: "123AC0000000001_20190501.xml"},
		{name: "missing_date_segment", fileName: "123AC0000000001_000000000000000.xml"},
		{name: "short_date", fileName: "123AC0000000001_201905_000000000000000.xml"},
		{name: "wrong_extension", fileName: "123AC0000000001_20190501_000000000000000.json"},
		{name: "non_alphanumeric_id", fileName: "123-AC_20190501_000000000000000.xml"},
		{name: "empty", fileName: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := ParseRevisionName(tc.fileName)
			if err == nil {
				t.Fatalf("ParseRevisionName(%q): expected error, got none", tc.fileName)
			}
			var nameErr *FilenameError
			if !errors.As(err, &nameErr) {
				t.Fatalf("expected FilenameError, got %T: %v", err, err)
			}
			if nameErr.Name != tc.fileName {
				t.Errorf("FilenameError.Name: got %q, want %q", nameErr.Name, tc.fileName)
			}
		})
	}
}

func TestPatchInfoFromName(t *testing.T) {
	lawID, info, err := PatchInfoFromName("123AC0000000001", "123AC0000000001_20190501_000000000000000.xml")
	if err != nil {
		t.Fatalf("PatchInfoFromName failed: %v", err)
	}
	if lawID != "123AC0000000001" {
		t.Errorf("law id: got %q, want %q", lawID, "123AC0000000001")
	}
	if info.Dir != "123AC0000000001" || info.File != "123AC0000000001_20190501_000000000000000.xml" {
		t.Errorf("source location not carried through: %+v", info)
	}
	if info.PatchDate.Era != law.EraReiwa || info.PatchDate.Year != 1 {
		t.Errorf("patch date: got %s, want Reiwa 1", info.PatchDate)
	}
	if info.PatchID != "000000000000000" {
		t.Errorf("patch id: got %q", info.PatchID)
	}
}

func TestPatchInfoFromName_DateOutOfRange(t *testing.T) {
	_, _, err := PatchInfoFromName("dir", "123AC0000000001_18500101_000000000000000.xml")
	if err == nil {
		t.Fatal("expected error for pre-Meiji date")
	}
	var rangeErr *law.DateOutOfRangeError
	if !errors.As(err, &rangeErr) {
		t.Errorf("expected DateOutOfRangeError, got %T: %v", err, err)
	}
}
