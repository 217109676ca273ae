// Package sheet decodes Lichess arena scoresheets.
//
// An arena scoresheet is a string of digits, one per game played, encoding
// the per-game points under arena scoring: losses score 0, draws 1, wins 2,
// with a double-points bonus once a player is on a streak of two or more
// consecutive wins, and berserk adding one more point to a win.
package sheet

import "fmt"

// Outcome is the win/loss/draw breakdown decoded from one scoresheet.
type Outcome struct {
	Wins   int
	Losses int
	Draws  int
	Games  int
}

// UnexpectedScoreDigitError is returned when a scoresheet contains a byte
// outside '0'..'5'.
type UnexpectedScoreDigitError struct {
	Digit    byte
	Position int
}

func (e *UnexpectedScoreDigitError) Error() string {
	return fmt.Sprintf("unexpected score digit %q at position %d", e.Digit, e.Position)
}

// Decode turns a scoresheet into an Outcome. The digit values are ambiguous
// on their own: a '2' is normally a win, but once the player is on a streak
// of two or more wins it is a draw scored at double value. The streak resets
// on any loss or draw, so decoding walks the string carrying the streak.
//
// An empty scoresheet decodes to the zero Outcome.
func Decode(scores string) (Outcome, error) {
	var out Outcome
	streak := 0
	for i := 0; i < len(scores); i++ {
		switch scores[i] {
		case '0':
			out.Losses++
			streak = 0
		case '1':
			out.Draws++
			streak = 0
		case '2':
			if streak >= 2 {
				// Draw at double value during a win streak.
				out.Draws++
				streak = 0
			} else {
				out.Wins++
				streak++
			}
		case '3', '4', '5':
			out.Wins++
			streak++
		default:
			return Outcome{}, &UnexpectedScoreDigitError{Digit: scores[i], Position: i}
		}
		out.Games++
	}
	return out, nil
}
