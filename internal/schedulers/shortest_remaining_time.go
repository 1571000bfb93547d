package schedulers

import (
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ScheduleShortestRemainingTime is preemptive shortest-job-first. The running
// process is compared against newcomers only at the instant they arrive, and is
// preempted when one of them needs strictly less time than it has left.
//
// Instead of ticking one unit at a time the clock jumps to the earlier of the
// running process's completion and the next arrival.
func ScheduleShortestRemainingTime(workload core.Workload) (Result, error) {
	if err := workload.Validate(); err != nil {
		return Result{}, err
	}
	slog.Debug("running srt algorithm ...", slog.Int("processes", len(workload)))

	processes := workload.Snapshot()
	cpu := core.NewCPU()
	preemptions := 0
	for !processes.Done() {
		shortest := selectShortestRemaining(processes, cpu.Now())
		if shortest == -1 {
			next, ok := nextArrival(processes, cpu.Now())
			if !ok {
				return Result{}, ErrStalled
			}
			slog.Debug("cpu idle", slog.Int("from", cpu.Now()), slog.Int("until", next))
			cpu.IdleUntil(next)
			continue
		}

		p := &processes[shortest]
		slog.Debug("dispatch", slog.String("pid", p.Name),
			slog.Int("time", cpu.Now()), slog.Int("remaining", p.Remaining))
		for p.Remaining > 0 {
			units := p.Remaining
			if next, ok := nextArrival(processes, cpu.Now()); ok && next-cpu.Now() < units {
				units = next - cpu.Now()
			}
			cpu.Execute(p, units)
			if p.Remaining > 0 && preemptedAt(processes, shortest, cpu.Now()) {
				preemptions++
				slog.Debug("preempted", slog.String("pid", p.Name),
					slog.Int("time", cpu.Now()), slog.Int("remaining", p.Remaining))
				break
			}
		}

		if p.Remaining == 0 {
			cpu.Complete(p)
			slog.Debug("process completed", slog.String("pid", p.Name),
				slog.Int("completion", p.Completion))
		}
	}

	return newResult(ShortestRemainingTime, processes, cpu, preemptions)
}
