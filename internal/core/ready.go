package core

import "fmt"

// ReadySet returns the processes of unfinished that have arrived by clock,
// keeping declaration order. It fails with ErrLogic when unfinished is empty,
// since the CPU must stop before asking for a decision in that case.
func ReadySet(clock int64, unfinished []*Process) ([]*Process, error) {
	if len(unfinished) == 0 {
		return nil, fmt.Errorf("%w: selection requested with no unfinished processes", ErrLogic)
	}
	ready := make([]*Process, 0, len(unfinished))
	for _, p := range unfinished {
		if p.Ready(clock) {
			ready = append(ready, p)
		}
	}
	return ready, nil
}
