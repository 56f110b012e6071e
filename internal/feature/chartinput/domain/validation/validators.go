// Package validation はチャート入力値（銘柄・チャート種別・時系列・日付）の検証述語を提供します。
//
// すべての関数は純粋関数で、どんな文字列に対してもパニックやエラーを起こさず bool を返します。
// 共有状態を持たないため、複数のゴルーチンから同時に呼び出せます。
package validation

import (
	"strconv"
	"time"
)

const (
	// MaxSymbolLength は銘柄コードの最大文字数です。
	MaxSymbolLength = 7

	// DateLayout は開始日・終了日の固定フォーマット（YYYY-MM-DD）です。
	DateLayout = "2006-01-02"

	// 西暦0年は存在しない日付として扱う
	minYear = 1
)

// ValidateSymbol は s が1〜7文字のASCII大文字（A-Z）のみで構成されている場合に true を返します。
func ValidateSymbol(s string) bool {
	if len(s) == 0 || len(s) > MaxSymbolLength {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < 'A' || s[i] > 'Z' {
			return false
		}
	}
	return true
}

// ValidateChartType は s が数字のみで構成され、その値が1または2の場合に true を返します。
func ValidateChartType(s string) bool {
	n, ok := parseDigits(s)
	return ok && (n == 1 || n == 2)
}

// ValidateTimeSeries は s が数字のみで構成され、その値が1〜4の範囲にある場合に true を返します。
func ValidateTimeSeries(s string) bool {
	n, ok := parseDigits(s)
	return ok && n >= 1 && n <= 4
}

// ValidateDate は s が YYYY-MM-DD 形式で、実在するグレゴリオ暦の日付を表す場合に true を返します。
//
// time.Parse は範囲外の日（例: 2023-02-30）を繰り上げずにエラーとするため、
// 存在しない日付はここで false になります。
func ValidateDate(s string) bool {
	_, ok := ParseDate(s)
	return ok
}

// ParseDate は ValidateDate と同じ規則で s を解析し、UTCの0時として返します。
func ParseDate(s string) (time.Time, bool) {
	if !hasDateShape(s) {
		return time.Time{}, false
	}
	t, err := time.Parse(DateLayout, s)
	if err != nil || t.Year() < minYear {
		return time.Time{}, false
	}
	return t, true
}

// ParseCode は ValidateChartType / ValidateTimeSeries と同じ数字のみの規則で s を整数に変換します。
// オーバーフローする値は ok=false になります。
func ParseCode(s string) (int, bool) {
	return parseDigits(s)
}

// hasDateShape は長さ10、4・7バイト目が '-'、それ以外がASCII数字であることを確認します。
// time.Parse は年の先頭に符号を許すため、事前に形だけを厳密に検査します。
func hasDateShape(s string) bool {
	if len(s) != len(DateLayout) {
		return false
	}
	for i := 0; i < len(s); i++ {
		switch i {
		case 4, 7:
			if s[i] != '-' {
				return false
			}
		default:
			if !isDigit(s[i]) {
				return false
			}
		}
	}
	return true
}

func parseDigits(s string) (int, bool) {
	if s == "" {
		return 0, false
	}
	for i := 0; i < len(s); i++ {
		if !isDigit(s[i]) {
			return 0, false
		}
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		// 数字のみでも int に収まらない場合
		return 0, false
	}
	return n, true
}

func isDigit(b byte) bool {
	return b >= '0' && b <= '9'
}
