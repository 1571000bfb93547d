package core

import (
	"errors"
	"fmt"
)

var (
	ErrEmptyWorkload  = errors.New("workload has no processes")
	ErrInvalidBurst   = errors.New("burst time must be positive")
	ErrInvalidArrival = errors.New("arrival time must not be negative")
	ErrDuplicateName  = errors.New("duplicate process name")
)

// Process is the per-process simulation state mutated by exactly one scheduler run.
type Process struct {
	Name       string
	Arrival    int
	Burst      int
	Remaining  int
	Start      int // first dispatch, -1 until the process gets the cpu
	Completion int
	Turnaround int
	Active     bool
}

func NewProcess(name string, arrival, burst int) Process {
	return Process{
		Name:      name,
		Arrival:   arrival,
		Burst:     burst,
		Remaining: burst,
		Start:     -1,
		Active:    true,
	}
}

// WaitingTime is the time spent ready but not running.
func (p Process) WaitingTime() int {
	return p.Turnaround - p.Burst
}

// ResponseTime is the delay between arrival and the first dispatch.
func (p Process) ResponseTime() int {
	if p.Start < 0 {
		return 0
	}
	return p.Start - p.Arrival
}

// Workload is an ordered set of processes. The order is the storage order
// schedulers scan when breaking ties.
type Workload []Process

// Clone returns a deep copy so every scheduler run owns its own snapshot.
func (w Workload) Clone() Workload {
	if w == nil {
		return nil
	}
	cloned := make(Workload, len(w))
	copy(cloned, w)
	return cloned
}

// Snapshot returns a deep copy with run state reset, so records built as
// literals or taken from a finished run start over as fresh processes.
func (w Workload) Snapshot() Workload {
	fresh := w.Clone()
	for i := range fresh {
		fresh[i] = NewProcess(fresh[i].Name, fresh[i].Arrival, fresh[i].Burst)
	}
	return fresh
}

func (w Workload) Validate() error {
	if len(w) == 0 {
		return ErrEmptyWorkload
	}
	names := make(map[string]struct{}, len(w))
	for _, p := range w {
		if p.Burst <= 0 {
			return fmt.Errorf("%w: %s has burst %d", ErrInvalidBurst, p.Name, p.Burst)
		}
		if p.Arrival < 0 {
			return fmt.Errorf("%w: %s arrives at %d", ErrInvalidArrival, p.Name, p.Arrival)
		}
		if _, ok := names[p.Name]; ok {
			return fmt.Errorf("%w: %s", ErrDuplicateName, p.Name)
		}
		names[p.Name] = struct{}{}
	}
	return nil
}

// Done reports whether every process in the workload completed.
func (w Workload) Done() bool {
	for _, p := range w {
		if p.Remaining > 0 {
			return false
		}
	}
	return true
}
