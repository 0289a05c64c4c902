// Package convert は、KRX APIレスポンスの文字列フィールドをフィールド名の
// ヒューリスティックに基づいて型付きの値へ変換します。
//
// 変換は決してエラーを返しません。パースに失敗した値は元の文字列のまま
// 返されるため、上流の不正データが一括変換全体を中断させることはありません。
package convert

import (
	"strconv"
	"strings"
	"time"
)

// Field は単一フィールドの値をフィールド名に応じた型へ変換します。
//
// 優先順位は固定で、次の順に評価されます。
//  1. 空文字・空白のみ・"-" は nil
//  2. 日付接尾辞にマッチするフィールドは YYYYMMDD として time.Time へ
//     （8桁の数字でない、または暦上不正な日付の場合は次のルールへフォールスルー）
//  3. 数値カテゴリにマッチするフィールドはカンマを除去して
//     volume/count なら int64、それ以外は float64 へ（失敗時は元の文字列）
//  4. いずれにもマッチしなければ元の文字列をそのまま返す
func Field(name, value string) any {
	// 空値・null相当の値を最優先で処理
	trimmed := strings.TrimSpace(value)
	if trimmed == "" || trimmed == "-" {
		return nil
	}

	// 日付変換を試行
	for _, suffix := range dateFieldPatterns {
		if strings.HasSuffix(name, suffix) {
			if len(value) == 8 && isDigits(value) {
				if t, err := time.Parse("20060102", value); err == nil {
					return t
				}
			}
			// 最初にマッチした接尾辞で日付判定を打ち切り、数値ルールへ進む
			break
		}
	}

	// フィールド名のパターンに応じて数値変換を試行
	upper := strings.ToUpper(name)
	for _, cat := range numericFieldPatterns {
		for _, p := range cat.patterns {
			if !strings.Contains(upper, p) {
				continue
			}
			// カンマ区切りと前後の空白を除去
			clean := strings.TrimSpace(strings.ReplaceAll(value, ",", ""))

			f, err := strconv.ParseFloat(clean, 64)
			if err != nil {
				// 変換失敗時は元の文字列を返す
				return value
			}
			// 出来高と件数は整数（小数点以下は切り捨て）
			if cat.kind == "volume" || cat.kind == "count" {
				return int64(f)
			}
			return f
		}
	}

	// どの変換ルールにも該当しない場合は元の文字列を返す
	return value
}

// Record は1レコードの全フィールドを変換します。フィールド集合は入力と
// 同一で、各フィールドは互いに独立に変換されます。
func Record(record map[string]string) map[string]any {
	out := make(map[string]any, len(record))
	for name, value := range record {
		out[name] = Field(name, value)
	}
	return out
}

// Response はレコード列の全レコードを変換します。列の長さと順序は保持され、
// 空の入力には空の出力を返します。
func Response(records []map[string]string) []map[string]any {
	out := make([]map[string]any, 0, len(records))
	for _, r := range records {
		out = append(out, Record(r))
	}
	return out
}

// isDigits は s がASCII数字のみで構成されているかを返します。
func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}
