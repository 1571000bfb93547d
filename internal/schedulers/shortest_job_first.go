package schedulers

import (
	"errors"
	"log/slog"

	"cpu-scheduler/internal/core"
)

// ErrStalled means no process is ready and none is due to arrive while work
// remains. It is unreachable for a validated workload.
var ErrStalled = errors.New("simulation stalled with unfinished processes")

// ScheduleShortestJobFirst picks, at every decision point, the ready process
// with the smallest total burst and runs it to completion without preemption.
func ScheduleShortestJobFirst(workload core.Workload) (Result, error) {
	if err := workload.Validate(); err != nil {
		return Result{}, err
	}
	slog.Debug("running sjf algorithm ...", slog.Int("processes", len(workload)))

	processes := workload.Snapshot()
	cpu := core.NewCPU()
	for !processes.Done() {
		shortest := selectShortestJob(processes, cpu.Now())
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
		cpu.IdleUntil(p.Arrival)
		start := cpu.Now()
		cpu.Execute(p, p.Remaining)
		cpu.Complete(p)
		slog.Debug("process completed", slog.String("pid", p.Name),
			slog.Int("start", start), slog.Int("completion", p.Completion))
	}

	return newResult(ShortestJobFirst, processes, cpu, 0)
}
