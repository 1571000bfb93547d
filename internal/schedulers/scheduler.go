package schedulers

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/metrics"
	"cpu-scheduler/internal/util"
)

type Algorithm string

const (
	FirstInFirstOut       Algorithm = "FIFO"
	ShortestJobFirst      Algorithm = "SJF"
	ShortestRemainingTime Algorithm = "SRT"
)

var ErrUnknownAlgorithm = errors.New("unknown scheduling algorithm")

// Algorithms lists every supported discipline in reporting order.
var Algorithms = []Algorithm{FirstInFirstOut, ShortestJobFirst, ShortestRemainingTime}

func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToUpper(strings.TrimSpace(s)) {
	case "FIFO", "FCFS":
		return FirstInFirstOut, nil
	case "SJF":
		return ShortestJobFirst, nil
	case "SRT", "SRTF":
		return ShortestRemainingTime, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownAlgorithm, s)
}

// Result is the outcome of one simulation over a private copy of the workload.
type Result struct {
	Algorithm         Algorithm
	Processes         core.Workload
	Trace             []core.Slice
	Cpu               core.CpuMetric
	Preemptions       int
	AverageTurnaround float64
}

type scheduleFunc func(core.Workload) (Result, error)

func (a Algorithm) schedule() (scheduleFunc, error) {
	switch a {
	case FirstInFirstOut:
		return ScheduleFirstInFirstOut, nil
	case ShortestJobFirst:
		return ScheduleShortestJobFirst, nil
	case ShortestRemainingTime:
		return ScheduleShortestRemainingTime, nil
	}
	return nil, fmt.Errorf("%w: %q", ErrUnknownAlgorithm, string(a))
}

// Run simulates a single algorithm. The caller's workload is never mutated.
func Run(algorithm Algorithm, workload core.Workload) (Result, error) {
	schedule, err := algorithm.schedule()
	if err != nil {
		return Result{}, err
	}
	result, err := schedule(workload)
	if err != nil {
		return Result{}, err
	}
	metrics.ObserveRun(string(algorithm), result.AverageTurnaround, result.Preemptions,
		result.Cpu.TotalTime, result.Cpu.Utilization())
	slog.Info("simulation finished",
		slog.String("algorithm", string(algorithm)),
		slog.Int("processes", len(result.Processes)),
		slog.Float64("average_turnaround", result.AverageTurnaround),
		slog.Int("preemptions", result.Preemptions))
	return result, nil
}

// RunAll simulates every requested algorithm in its own goroutine. With no
// algorithms given it runs all of them. Results keep the requested order.
func RunAll(workload core.Workload, algorithms ...Algorithm) ([]Result, error) {
	if len(algorithms) == 0 {
		algorithms = Algorithms
	}
	if err := workload.Validate(); err != nil {
		return nil, err
	}

	results := make([]Result, len(algorithms))
	errs := make([]error, len(algorithms))

	var wg sync.WaitGroup
	wg.Add(len(algorithms))
	for i, algorithm := range algorithms {
		go func(i int, algorithm Algorithm, snapshot core.Workload) {
			defer wg.Done()
			results[i], errs[i] = Run(algorithm, snapshot)
		}(i, algorithm, workload.Clone())
	}
	wg.Wait()

	if err := errors.Join(errs...); err != nil {
		return nil, err
	}
	return results, nil
}

func newResult(algorithm Algorithm, processes core.Workload, cpu *core.CPU, preemptions int) (Result, error) {
	avg, err := util.AverageTurnaround(processes)
	if err != nil {
		return Result{}, err
	}
	return Result{
		Algorithm:         algorithm,
		Processes:         processes,
		Trace:             cpu.Trace(),
		Cpu:               cpu.Metric(),
		Preemptions:       preemptions,
		AverageTurnaround: avg,
	}, nil
}
