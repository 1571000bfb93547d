package schedulers

import (
	"log/slog"
	"sort"

	"cpu-scheduler/internal/core"
)

// ScheduleFirstInFirstOut runs processes to completion in arrival order.
// Simultaneous arrivals keep their input order. The returned processes are in
// execution order.
func ScheduleFirstInFirstOut(workload core.Workload) (Result, error) {
	if err := workload.Validate(); err != nil {
		return Result{}, err
	}
	slog.Debug("running fifo algorithm ...", slog.Int("processes", len(workload)))

	processes := workload.Snapshot()
	sort.SliceStable(processes, func(i, j int) bool {
		return processes[i].Arrival < processes[j].Arrival
	})

	cpu := core.NewCPU()
	for i := range processes {
		p := &processes[i]
		cpu.IdleUntil(p.Arrival)
		start := cpu.Now()
		cpu.Execute(p, p.Remaining)
		cpu.Complete(p)
		slog.Debug("process completed", slog.String("pid", p.Name),
			slog.Int("start", start), slog.Int("completion", p.Completion))
	}

	return newResult(FirstInFirstOut, processes, cpu, 0)
}
