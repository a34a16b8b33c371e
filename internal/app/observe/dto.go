package observe

import "larryrun/internal/domain/world"

type Request struct {
	CharacterID string
	Ahead       int
}

type Response struct {
	Distance     float64       `json:"distance"`
	ChunkLength  float64       `json:"chunk_length"`
	CurrentChunk int           `json:"current_chunk"`
	Chunks       []world.Chunk `json:"chunks"`
}
