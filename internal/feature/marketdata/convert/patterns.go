package convert

// numericCategory は、フィールド名に含まれる部分文字列から数値型を推定する
// ためのカテゴリ定義です。最初に部分文字列がマッチしたカテゴリが採用されるため、
// スライスの順序には意味があります。
type numericCategory struct {
	kind     string   // "volume" と "count" は整数、それ以外は浮動小数点数
	patterns []string // 大文字化したフィールド名に対して部分一致で評価
}

// numericFieldPatterns は数値変換の対象となるフィールド名パターンです。
var numericFieldPatterns = []numericCategory{
	{kind: "price", patterns: []string{"PRC", "PRICE", "CLSPRC", "OPNPRC", "HGPRC", "LWPRC", "PARVAL", "SETL_PRC"}},
	{kind: "volume", patterns: []string{"VOL", "TRDVOL", "QTY", "OPNINT_QTY", "SHRS"}},
	{kind: "amount", patterns: []string{"AMT", "VAL", "TRDVAL", "CAP"}},
	{kind: "index", patterns: []string{"IDX", "INDEX"}},
	{kind: "rate", patterns: []string{"RT", "RATE", "FLUC_RT"}},
	{kind: "ratio", patterns: []string{"RATIO"}},
	{kind: "count", patterns: []string{"CNT", "COUNT"}},
}

// dateFieldPatterns は日付変換の対象となるフィールド名の接尾辞です。
// 先頭から順に評価し、最初にマッチした時点で日付判定を打ち切ります。
var dateFieldPatterns = []string{"DD", "DT", "DATE"}
