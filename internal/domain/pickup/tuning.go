package pickup

const (
	SpeedBoostDuration = 3.0
	SpeedBoostAmount   = 4.0

	SlowdownDuration = 2.5
	SlowdownAmount   = 3.0

	RegenerationDuration = 5.0
	RegenerationAmount   = 10

	SpikesDuration = 1.5
	SpikesAmount   = 15
)
