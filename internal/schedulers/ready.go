package schedulers

import "cpu-scheduler/internal/core"

// selectShortestJob returns the index of the ready process with the smallest
// total burst, or -1 when nothing is ready. Ties go to the first in storage order.
func selectShortestJob(processes []core.Process, now int) int {
	return selectMin(processes, now, func(p core.Process) int { return p.Burst })
}

// selectShortestRemaining returns the index of the ready process with the
// smallest remaining time, or -1 when nothing is ready. Ties go to the lowest index.
func selectShortestRemaining(processes []core.Process, now int) int {
	return selectMin(processes, now, func(p core.Process) int { return p.Remaining })
}

func selectMin(processes []core.Process, now int, key func(core.Process) int) int {
	chosen := -1
	for i, p := range processes {
		if p.Arrival > now || p.Remaining <= 0 {
			continue
		}
		if chosen == -1 || key(p) < key(processes[chosen]) {
			chosen = i
		}
	}
	return chosen
}

// nextArrival returns the earliest arrival after now among unfinished processes.
func nextArrival(processes []core.Process, now int) (int, bool) {
	next, found := 0, false
	for _, p := range processes {
		if p.Arrival <= now || p.Remaining <= 0 {
			continue
		}
		if !found || p.Arrival < next {
			next, found = p.Arrival, true
		}
	}
	return next, found
}

// preemptedAt reports whether a process other than running arrives exactly at
// now with strictly less remaining time than the running one.
func preemptedAt(processes []core.Process, running, now int) bool {
	for i, p := range processes {
		if i != running && p.Arrival == now && p.Remaining < processes[running].Remaining {
			return true
		}
	}
	return false
}
