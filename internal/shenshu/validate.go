package shenshu

import (
	"errors"
	"regexp"
	"unicode/utf8"
)

// Validation errors. Their messages are shown to the user verbatim.
var (
	ErrNotChinese = errors.New("请输入中文字符")
	ErrTooLong    = errors.New("请输入不超过3个中文字符")
)

var chineseName = regexp.MustCompile(`^[\x{4e00}-\x{9fff}]+$`)

// Validate checks that input is one to three CJK unified ideographs and
// returns it unchanged. Empty input is reported as ErrNotChinese.
func Validate(input string) (string, error) {
	if !chineseName.MatchString(input) {
		return "", ErrNotChinese
	}
	if utf8.RuneCountInString(input) > MaxNameLength {
		return "", ErrTooLong
	}
	return input, nil
}
