package ports

import "larryrun/internal/domain/journal"

type Metrics interface {
	RecordOperation(op string, entries []journal.Entry)
	RecordHookFailure(op string)
	RecordFailure(op string)
}
