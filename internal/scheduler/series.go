package scheduler

import "fmt"

const teamsURL = "https://lichess.org/team/%s/tournaments"

// DefaultSeries returns the standard tournament lines for a team: an hourly
// ultrabullet arena interleaved with hourly swiss blitz/rapid, plus slower
// four-hourly swisses and a weekly blitz shield.
func DefaultSeries(team string) []Series {
	next := fmt.Sprintf(teamsURL, team)
	return []Series{
		{
			Name:           "Hourly Ultrabullet",
			Kind:           KindArena,
			Team:           team,
			ClockLimit:     0.25,
			ClockIncrement: 0,
			Minutes:        90,
			HoursBetween:   2,
			ForceHour:      EvenHour,
			Description:    "We host hourly Ultrabullet tournaments! (every 2 hours)\n\nNext hourly: " + next,
			ReplaceURL:     next,
		},
		{
			Name:           "Hourly Rapid",
			Kind:           KindSwiss,
			Team:           team,
			ClockLimit:     600,
			ClockIncrement: 0,
			NbRounds:       9,
			RoundInterval:  120,
			HoursBetween:   2,
			ForceHour:      EvenHour,
			Description:    "This team offers swiss tournaments EVERY HOUR!\n\nNext swiss: " + next,
			ReplaceURL:     next,
		},
		{
			Name:           "Hourly Blitz",
			Kind:           KindSwiss,
			Team:           team,
			ClockLimit:     180,
			ClockIncrement: 0,
			NbRounds:       11,
			RoundInterval:  60,
			HoursBetween:   2,
			ForceHour:      OddHour,
			Description:    "This team offers swiss tournaments EVERY HOUR!\n\nNext swiss: " + next,
			ReplaceURL:     next,
		},
		{
			Name:           "Blitz Shield",
			Kind:           KindSwiss,
			Team:           team,
			ClockLimit:     180,
			ClockIncrement: 0,
			NbRounds:       13,
			RoundInterval:  60,
			HoursBetween:   168,
			Description:    "The winner of this swiss keeps the shield until next week.\n\nNext Shield: " + next,
			ReplaceURL:     next,
		},
	}
}
