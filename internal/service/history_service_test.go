package service

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeQuestionKey(t *testing.T) {
	cases := []struct {
		name string
		in   string
		want string
	}{
		{"lowercases", "What Is A Goroutine?", "what is a goroutine"},
		{"strips punctuation", "Explain Go's `defer` (with examples)!", "explain gos defer with examples"},
		{"collapses whitespace", "  what\tis   a\nchannel  ", "what is a channel"},
		{"keeps digits", "What changed in Go 1.22?", "what changed in go 122"},
		{"empty", "?!...", ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, NormalizeQuestionKey(tc.in))
		})
	}
}
