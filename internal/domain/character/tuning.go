package character

const (
	// SpeedTolerance is the band around the target speed inside which the
	// controller snaps instead of interpolating.
	SpeedTolerance = 0.1

	DefaultStartSpeed  = 6.0
	DefaultStartHealth = 100
	DefaultSmoothing   = 5.0
)

type Config struct {
	StartSpeed  float64
	StartHealth int
	Smoothing   float64
}

func DefaultConfig() Config {
	return Config{
		StartSpeed:  DefaultStartSpeed,
		StartHealth: DefaultStartHealth,
		Smoothing:   DefaultSmoothing,
	}
}

func (c Config) Validate() error {
	if c.Smoothing < 0 {
		return ErrInvalidConfig
	}
	return nil
}
