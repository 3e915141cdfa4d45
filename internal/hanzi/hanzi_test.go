package hanzi

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRomanize(t *testing.T) {
	r := NewRomanizer(false)

	tests := []struct {
		name string
		text string
		want string
	}{
		{"two characters", "中国", "zhong guo"},
		{"greeting", "你好", "ni hao"},
		{"mixed with latin", "hello 中国", "hello zhong guo"},
		{"punctuation splits words", "中国!", "zhong guo !"},
		{"no hanzi", "hello", "hello"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, r.Romanize(tt.text))
		})
	}
}

func TestRomanizeTones(t *testing.T) {
	r := NewRomanizer(true)
	assert.Equal(t, "zhōng guó", r.Romanize("中国"))
}

func TestStripTones(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"zhōng guó", "zhong guo"},
		{"nǚ lǜ", "nü lü"},
		{"ni hao", "ni hao"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, StripTones(tt.in))
	}
}
