package faq

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplyExactQuestion(t *testing.T) {
	m := NewMatcher()

	for _, e := range catalog {
		answer, ok := m.Reply(e.Question)
		assert.True(t, ok, "verbatim catalog question %q must match", e.Question)
		assert.Equal(t, e.Answer, answer)
	}
}

func TestReplyApproximateQuestion(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name  string
		input string
		want  string
	}{
		{
			name:  "lowercased",
			input: "is my data secure during analysis?",
			want:  "All data is processed in secure isolated environments with end-to-end encryption, and results are recorded on the blockchain. Data is never stored.",
		},
		{
			name:  "paraphrased",
			input: "how long does an analysis usually take",
			want:  "Analysis times vary depending on data size, usually completing within seconds to a few minutes.",
		},
		{
			name:  "typo tolerant",
			input: "Does Qryptify store my encripted data?",
			want:  "No, Qryptify processes data temporarily with strict privacy protocols and never stores raw encrypted data.",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, ok := m.Reply(tt.input)
			assert.True(t, ok)
			assert.Equal(t, tt.want, answer)
		})
	}
}

func TestReplyFallback(t *testing.T) {
	m := NewMatcher()

	tests := []struct {
		name  string
		input string
	}{
		{name: "off topic", input: "what is the weather like in berlin tomorrow"},
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "gibberish", input: "zzzz qqqq xxxx"},
		// bigram scoring is case sensitive, so shouting misses the catalog
		{name: "all caps", input: "IS MY DATA SECURE DURING ANALYSIS?"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			answer, ok := m.Reply(tt.input)
			assert.False(t, ok)
			assert.Equal(t, Fallback, answer)
		})
	}
}

func TestReplyDeterministic(t *testing.T) {
	m := NewMatcher()

	const q = "how accurate is the algorithm detection"
	first, firstOK := m.Reply(q)
	for range 10 {
		answer, ok := m.Reply(q)
		assert.Equal(t, first, answer)
		assert.Equal(t, firstOK, ok)
	}
}

func TestBestMatchScoresWithinUnitInterval(t *testing.T) {
	m := NewMatcher()

	for _, q := range []string{"analysis", "Is there a free trial available?", "unrelated text"} {
		best := m.BestMatch(q)
		assert.GreaterOrEqual(t, best.Score, 0.0)
		assert.LessOrEqual(t, best.Score, 1.0)
	}
}
