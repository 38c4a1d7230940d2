package service

import (
	"testing"

	"EventPulse/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWordFrequencies(t *testing.T) {
	tests := []struct {
		name     string
		comments []string
		want     map[string]int
	}{
		{
			name:     "stop words and short tokens dropped",
			comments: []string{"the cat sat on the mat"},
			want:     map[string]int{"cat": 1, "sat": 1, "mat": 1},
		},
		{
			name:     "case folded and counted across comments",
			comments: []string{"Great talk", "great venue"},
			want:     map[string]int{"great": 2, "talk": 1, "venue": 1},
		},
		{
			name:     "punctuation splits tokens",
			comments: []string{"amazing!!! really,amazing."},
			want:     map[string]int{"amazing": 2, "really": 1},
		},
		{
			name:     "no stemming",
			comments: []string{"speakers speaker"},
			want:     map[string]int{"speakers": 1, "speaker": 1},
		},
		{
			name:     "empty input",
			comments: nil,
			want:     map[string]int{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, WordFrequencies(tt.comments))
		})
	}
}

// 并列时按首次出现的先后排
func TestTopEmojisTieBreak(t *testing.T) {
	var emojis []string
	for i := 0; i < 5; i++ {
		emojis = append(emojis, "👍")
	}
	for i := 0; i < 5; i++ {
		emojis = append(emojis, "❤️")
	}
	emojis = append(emojis, "😮", "😮")

	got := TopEmojis(emojis, 5)
	require.Len(t, got, 3)
	assert.Equal(t, EmojiCount{Emoji: "👍", Count: 5}, got[0])
	assert.Equal(t, EmojiCount{Emoji: "❤️", Count: 5}, got[1])
	assert.Equal(t, EmojiCount{Emoji: "😮", Count: 2}, got[2])
}

func TestTopEmojisLimit(t *testing.T) {
	emojis := []string{"a", "b", "c", "d", "e", "f", "f"}

	got := TopEmojis(emojis, 5)
	require.Len(t, got, 5)
	assert.Equal(t, "f", got[0].Emoji)
}

func TestTopEmojisSkipsEmpty(t *testing.T) {
	got := TopEmojis([]string{"", "🎉", ""}, 5)
	require.Len(t, got, 1)
	assert.Equal(t, "🎉", got[0].Emoji)
}

func TestReactionCounts(t *testing.T) {
	rows := []model.Feedback{
		{Reaction: model.ReactionThumbsUp},
		{Reaction: model.ReactionThumbsUp},
		{Reaction: model.ReactionHeart},
		{Reaction: ""},
	}

	got := ReactionCounts(rows)
	assert.Equal(t, int64(2), got[model.ReactionThumbsUp])
	assert.Equal(t, int64(1), got[model.ReactionHeart])
	// 没出现的枚举也要在结果里
	assert.Equal(t, int64(0), got[model.ReactionThumbsDown])
	assert.Equal(t, int64(0), got[model.ReactionSurprise])
	assert.Len(t, got, len(model.Reactions))
}
