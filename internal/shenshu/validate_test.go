package shenshu

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		wantErr error
	}{
		{"empty", "", ErrNotChinese},
		{"latin", "abc", ErrNotChinese},
		{"pinyin", "wang", ErrNotChinese},
		{"mixed", "王a", ErrNotChinese},
		{"space", "王 明", ErrNotChinese},
		{"fullwidth punctuation", "王。", ErrNotChinese},
		{"extension b", "𠀀", ErrNotChinese},
		{"four characters", "王王王王", ErrTooLong},
		{"five characters", "欧阳小明明", ErrTooLong},
		{"one character", "王", nil},
		{"two characters", "李白", nil},
		{"three characters", "王小明", nil},
		{"traditional", "劉德華", nil},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Validate(tt.input)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Empty(t, got)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.input, got)
		})
	}
}

func TestValidate_Messages(t *testing.T) {
	assert.Equal(t, "请输入中文字符", ErrNotChinese.Error())
	assert.Equal(t, "请输入不超过3个中文字符", ErrTooLong.Error())
}
