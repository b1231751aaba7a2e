package runner

const (
	DefaultMaxSteps   = 10_000
	DefaultWarmupRuns = 0
	DefaultRuns       = 1
)

type Config struct {
	MaxSteps   int
	WarmupRuns int
	Runs       int
}

func DefaultConfig() Config {
	return Config{
		MaxSteps:   DefaultMaxSteps,
		WarmupRuns: DefaultWarmupRuns,
		Runs:       DefaultRuns,
	}
}
