package sheet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDecode(t *testing.T) {
	tests := []struct {
		name   string
		scores string
		want   Outcome
	}{
		{"empty sheet", "", Outcome{}},
		{"single loss", "0", Outcome{Losses: 1, Games: 1}},
		{"single draw", "1", Outcome{Draws: 1, Games: 1}},
		{"single win", "2", Outcome{Wins: 1, Games: 1}},
		{"berserk win", "3", Outcome{Wins: 1, Games: 1}},
		{"two plain wins", "22", Outcome{Wins: 2, Games: 2}},
		{"third two is a streak draw", "222", Outcome{Wins: 2, Draws: 1, Games: 3}},
		{"streak wins", "44", Outcome{Wins: 2, Games: 2}},
		{"berserk wins", "33", Outcome{Wins: 2, Games: 2}},
		{"loss resets streak", "2202", Outcome{Wins: 3, Losses: 1, Games: 4}},
		{"draw after reset is a draw again", "22102", Outcome{Wins: 3, Losses: 1, Draws: 1, Games: 5}},
		{
			// Real sheet observed in the wild (newest game first).
			"full tournament sheet",
			"5545432053205432",
			Outcome{Wins: 11, Losses: 2, Draws: 3, Games: 16},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Decode(tt.scores)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, len(tt.scores), got.Games)
			assert.Equal(t, got.Games, got.Wins+got.Losses+got.Draws)
		})
	}
}

func TestDecodeRejectsUnknownDigits(t *testing.T) {
	_, err := Decode("6")
	require.Error(t, err)

	var digitErr *UnexpectedScoreDigitError
	require.ErrorAs(t, err, &digitErr)
	assert.Equal(t, byte('6'), digitErr.Digit)
	assert.Equal(t, 0, digitErr.Position)

	_, err = Decode("220x1")
	require.ErrorAs(t, err, &digitErr)
	assert.Equal(t, byte('x'), digitErr.Digit)
	assert.Equal(t, 3, digitErr.Position)
}

func TestDecodeSumInvariant(t *testing.T) {
	// Every digit contributes exactly one game regardless of streak state.
	sheets := []string{"012345", "543210", "2222222222", "1111", "000", "35353", "40404"}
	for _, s := range sheets {
		out, err := Decode(s)
		require.NoError(t, err, "sheet %q", s)
		assert.Equal(t, len(s), out.Games, "sheet %q", s)
		assert.Equal(t, out.Games, out.Wins+out.Losses+out.Draws, "sheet %q", s)
	}
}
