package world

type CellKind string

const (
	CellEmpty   CellKind = "empty"
	CellBarrier CellKind = "barrier"
	CellPickup  CellKind = "pickup"
)

var cellKinds = []CellKind{CellEmpty, CellBarrier, CellPickup}

type Cell struct {
	Lane   int      `json:"lane"`
	Kind   CellKind `json:"kind"`
	Pickup string   `json:"pickup,omitempty"`
}
