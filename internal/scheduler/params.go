package scheduler

const (
	DefaultInitialIntervalDays = 1
	DefaultGraduationStreak    = 2
	DefaultEase                = 2.2
	DefaultMinEase             = 1.3
	DefaultMaxEase             = 2.5
	DefaultVagueGrowth         = 1.2
	DefaultVagueEasePenalty    = 0.05
	DefaultUnfamiliarPenalty   = 0.2
	DefaultLapseReentryFactor  = 0.5
	DefaultMinIntervalDays     = 1
	DefaultMaxIntervalDays     = 365
)

// Params holds the tunable scheduling policy. Zero values fall back to
// the defaults above, so a zero Params is usable.
type Params struct {
	// InitialIntervalDays is the interval given on the first review of a
	// word and after every lapse.
	InitialIntervalDays int `mapstructure:"initial_interval_days"`

	// GraduationStreak is the number of consecutive Familiar responses
	// required to leave Learning or Relearning.
	GraduationStreak int `mapstructure:"graduation_streak"`

	// DefaultEase is the growth factor a word starts with. Familiar
	// responses in Review multiply the interval by the record's ease.
	DefaultEase float64 `mapstructure:"default_ease"`
	MinEase     float64 `mapstructure:"min_ease"`
	MaxEase     float64 `mapstructure:"max_ease"`

	// VagueGrowth is the interval multiplier for a Vague response in
	// Review. Kept close to 1 so hesitant recalls barely advance.
	VagueGrowth float64 `mapstructure:"vague_growth"`

	VagueEasePenalty      float64 `mapstructure:"vague_ease_penalty"`
	UnfamiliarEasePenalty float64 `mapstructure:"unfamiliar_ease_penalty"`

	// LapseReentryFactor scales the pre-lapse interval when a relearned
	// word graduates back into Review.
	LapseReentryFactor float64 `mapstructure:"lapse_reentry_factor"`

	MinIntervalDays int `mapstructure:"min_interval_days"`
	MaxIntervalDays int `mapstructure:"max_interval_days"`
}

// DefaultParams returns the reference scheduling policy.
func DefaultParams() Params {
	return Params{
		InitialIntervalDays:   DefaultInitialIntervalDays,
		GraduationStreak:      DefaultGraduationStreak,
		DefaultEase:           DefaultEase,
		MinEase:               DefaultMinEase,
		MaxEase:               DefaultMaxEase,
		VagueGrowth:           DefaultVagueGrowth,
		VagueEasePenalty:      DefaultVagueEasePenalty,
		UnfamiliarEasePenalty: DefaultUnfamiliarPenalty,
		LapseReentryFactor:    DefaultLapseReentryFactor,
		MinIntervalDays:       DefaultMinIntervalDays,
		MaxIntervalDays:       DefaultMaxIntervalDays,
	}
}

func (p Params) withDefaults() Params {
	defaults := DefaultParams()
	if p.InitialIntervalDays <= 0 {
		p.InitialIntervalDays = defaults.InitialIntervalDays
	}
	if p.GraduationStreak <= 0 {
		p.GraduationStreak = defaults.GraduationStreak
	}
	if p.DefaultEase <= 0 {
		p.DefaultEase = defaults.DefaultEase
	}
	if p.MinEase <= 0 {
		p.MinEase = defaults.MinEase
	}
	if p.MaxEase <= 0 {
		p.MaxEase = defaults.MaxEase
	}
	if p.VagueGrowth <= 0 {
		p.VagueGrowth = defaults.VagueGrowth
	}
	if p.VagueEasePenalty < 0 {
		p.VagueEasePenalty = defaults.VagueEasePenalty
	}
	if p.UnfamiliarEasePenalty <= 0 {
		p.UnfamiliarEasePenalty = defaults.UnfamiliarEasePenalty
	}
	if p.LapseReentryFactor <= 0 || p.LapseReentryFactor >= 1 {
		p.LapseReentryFactor = defaults.LapseReentryFactor
	}
	if p.MinIntervalDays <= 0 {
		p.MinIntervalDays = defaults.MinIntervalDays
	}
	if p.MaxIntervalDays <= 0 {
		p.MaxIntervalDays = defaults.MaxIntervalDays
	}
	return p
}
