package domain

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestIsValidSourceType(t *testing.T) {
	tests := []struct {
		name       string
		sourceType SourceType
		expected   bool
	}{
		{name: "official", sourceType: SourceTypeOfficial, expected: true},
		{name: "user", sourceType: SourceTypeUser, expected: true},
		{name: "empty", sourceType: SourceType(""), expected: false},
		{name: "lowercase rejected", sourceType: SourceType("user"), expected: false},
		{name: "unknown", sourceType: SourceType("BOT"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidSourceType(tt.sourceType))
		})
	}
}

func TestIsValidVoteType(t *testing.T) {
	tests := []struct {
		name     string
		voteType VoteType
		expected bool
	}{
		{name: "support", voteType: VoteTypeSupport, expected: true},
		{name: "oppose", voteType: VoteTypeOppose, expected: true},
		{name: "empty", voteType: VoteType(""), expected: false},
		{name: "unknown", voteType: VoteType("ABSTAIN"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidVoteType(tt.voteType))
		})
	}
}

func TestIsValidDayOfWeek(t *testing.T) {
	for d := 0; d <= 6; d++ {
		assert.True(t, IsValidDayOfWeek(d), "day %d", d)
	}
	assert.False(t, IsValidDayOfWeek(-1))
	assert.False(t, IsValidDayOfWeek(7))
}

func TestIsValidTimeOfDay(t *testing.T) {
	tests := []struct {
		value    string
		expected bool
	}{
		{"00:00", true},
		{"10:00", true},
		{"23:59", true},
		{"24:00", false},
		{"9:00", false},
		{"10:60", false},
		{"10:00:00", false},
		{"", false},
		{"morning", false},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.expected, IsValidTimeOfDay(tt.value))
		})
	}
}

func TestDayOfDate(t *testing.T) {
	loc, err := time.LoadLocation("Asia/Tokyo")
	assert.NoError(t, err)

	at := time.Date(2025, 7, 15, 23, 45, 12, 999, loc)
	day := DayOfDate(at)

	assert.Equal(t, 2025, day.Year())
	assert.Equal(t, time.July, day.Month())
	assert.Equal(t, 15, day.Day())
	assert.Equal(t, 0, day.Hour())
	assert.Equal(t, 0, day.Minute())
	assert.Equal(t, loc, day.Location())
}
