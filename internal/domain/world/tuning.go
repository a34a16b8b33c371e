package world

const (
	DefaultChunkLength    = 8.0
	DefaultObstacleChance = 0.6
	DefaultSafeChunks     = 2

	seedMix = 0x9e3779b97f4a7c15
)
