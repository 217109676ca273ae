package scheduler

// Kind distinguishes the two tournament formats the scheduler manages.
type Kind string

const (
	KindArena Kind = "arena"
	KindSwiss Kind = "swiss"
)

// HourParity forces a series onto even or odd UTC hours so two series can
// interleave on the same team.
type HourParity string

const (
	AnyHour  HourParity = ""
	EvenHour HourParity = "even"
	OddHour  HourParity = "odd"
)

// Series describes one recurring tournament line: what to create, how the
// clock is set, and how far apart instances are spaced.
type Series struct {
	Name string
	Kind Kind
	Team string
	// ClockLimit is in seconds for swiss and in minutes for arena, matching
	// the units the respective Lichess endpoints expect.
	ClockLimit     float64
	ClockIncrement int
	// Minutes is the arena duration.
	Minutes int
	// NbRounds and RoundInterval apply to swiss only.
	NbRounds      int
	RoundInterval int
	HoursBetween  int
	ForceHour     HourParity
	Description   string
	// ReplaceURL is the placeholder link inside Description that gets
	// rewritten to point at the next tournament in the series.
	ReplaceURL string
}

// Summary describes one scheduling pass.
type Summary struct {
	Created int `json:"created"`
}
