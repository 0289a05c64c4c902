package convert

import (
	"testing"
	"time"
)

func TestField_NullValues(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		value string
	}{
		{"empty string", "BAS_DD", ""},
		{"whitespace only", "CLSPRC_IDX", "   "},
		{"dash placeholder", "ACC_TRDVOL", "-"},
		{"dash with whitespace", "IDX_NM", " - "},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Field(tt.field, tt.value); got != nil {
				t.Errorf("expected nil, got %v (%T)", got, got)
			}
		})
	}
}

func TestField_Dates(t *testing.T) {
	t.Parallel()

	got := Field("BAS_DD", "20240101")
	want := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if tm, ok := got.(time.Time); !ok || !tm.Equal(want) {
		t.Errorf("expected %v, got %v (%T)", want, got, got)
	}
}

// TestField_DateFallthrough は、日付として解釈できない値が数値・文字列ルールへ
// フォールスルーすることを検証します。
func TestField_DateFallthrough(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		value string
		want  any
	}{
		{"non-digit date stays string", "BAS_DD", "invalid", "invalid"},
		{"wrong length stays string", "BAS_DD", "202401", "202401"},
		{"invalid calendar date stays string", "TRD_DD", "20240230", "20240230"},
		{"invalid month stays string", "SETL_DATE", "20241301", "20241301"},
		// 日付パースに失敗しても、数値パターンを持つフィールドは数値変換される
		{"date-suffixed price field falls to numeric", "SETL_PRC_DD", "1234.5", 1234.5},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Field(tt.field, tt.value); got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}
}

func TestField_Numeric(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		field string
		value string
		want  any
	}{
		{"index with separators", "CLSPRC_IDX", "1,234,567.89", 1234567.89},
		{"index plain", "CLSPRC_IDX", "2655.50", 2655.50},
		{"volume with separators", "ACC_TRDVOL", "1,234,567", int64(1234567)},
		{"volume with decimal truncates", "ACC_TRDVOL", "123456.9", int64(123456)},
		{"amount", "ACC_TRDVAL", "987654321", 987654321.0},
		{"price", "TDD_CLSPRC", "71,500", 71500.0},
		{"rate", "FLUC_RT", "-1.23", -1.23},
		{"ratio", "DIV_RATIO", "0.5", 0.5},
		{"count", "LIST_CNT", "42", int64(42)},
		{"shares as integer", "LIST_SHRS", "5,969,782,550", int64(5969782550)},
		{"numeric parse failure returns original", "CLSPRC_IDX", "N/A", "N/A"},
		{"volume parse failure returns original", "ACC_TRDVOL", "abc", "abc"},
		{"lowercase field name matches", "acc_trdvol", "100", int64(100)},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := Field(tt.field, tt.value); got != tt.want {
				t.Errorf("expected %v (%T), got %v (%T)", tt.want, tt.want, got, got)
			}
		})
	}
}

func TestField_StringPassthrough(t *testing.T) {
	t.Parallel()

	if got := Field("IDX_NM", "KOSPI"); got != "KOSPI" {
		t.Errorf("expected KOSPI, got %v", got)
	}
	if got := Field("ISU_ABBRV", "삼성전자"); got != "삼성전자" {
		t.Errorf("expected passthrough, got %v", got)
	}
}

func TestRecord(t *testing.T) {
	t.Parallel()

	// 空レコードは空レコードのまま
	if got := Record(map[string]string{}); len(got) != 0 {
		t.Errorf("expected empty record, got %v", got)
	}

	in := map[string]string{
		"BAS_DD":     "20240101",
		"IDX_NM":     "KOSPI",
		"CLSPRC_IDX": "2655.50",
	}
	got := Record(in)

	if len(got) != len(in) {
		t.Fatalf("expected %d fields, got %d", len(in), len(got))
	}
	wantDate := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	if tm, ok := got["BAS_DD"].(time.Time); !ok || !tm.Equal(wantDate) {
		t.Errorf("BAS_DD: expected %v, got %v", wantDate, got["BAS_DD"])
	}
	if got["IDX_NM"] != "KOSPI" {
		t.Errorf("IDX_NM: expected KOSPI, got %v", got["IDX_NM"])
	}
	if got["CLSPRC_IDX"] != 2655.50 {
		t.Errorf("CLSPRC_IDX: expected 2655.50, got %v", got["CLSPRC_IDX"])
	}
}

func TestResponse(t *testing.T) {
	t.Parallel()

	// 空入力は空出力
	if got := Response(nil); len(got) != 0 {
		t.Errorf("expected empty response, got %v", got)
	}
	if got := Response([]map[string]string{}); len(got) != 0 {
		t.Errorf("expected empty response, got %v", got)
	}

	// 長さと順序が保持される
	in := []map[string]string{
		{"IDX_NM": "KOSPI"},
		{"IDX_NM": "KOSDAQ"},
		{"IDX_NM": "KRX 100"},
	}
	got := Response(in)
	if len(got) != 3 {
		t.Fatalf("expected 3 records, got %d", len(got))
	}
	for i, name := range []string{"KOSPI", "KOSDAQ", "KRX 100"} {
		if got[i]["IDX_NM"] != name {
			t.Errorf("record %d: expected %s, got %v", i, name, got[i]["IDX_NM"])
		}
	}
}
