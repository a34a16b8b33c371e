package status

import (
	"larryrun/internal/app/stateview"
	"larryrun/internal/domain/character"
)

type Request struct {
	CharacterID string
}

type Response struct {
	State            character.State          `json:"state"`
	View             stateview.View           `json:"view"`
	Settle           stateview.SettleEstimate `json:"settle"`
	FailedDeliveries int                      `json:"failed_deliveries"`
}
