package util

import (
	"errors"

	"cpu-scheduler/internal/core"
)

var ErrNoProcesses = errors.New("cannot average over zero processes")

// CalculateAverage returns the mean waiting, response and turnaround times of
// completed processes.
func CalculateAverage(processes []core.Process) (averageWaitingTime, averageResponseTime, averageTurnAroundTime float64, err error) {
	if len(processes) == 0 {
		return 0, 0, 0, ErrNoProcesses
	}
	var waitingTimeSum, responseTimeSum, turnAroundTimeSum int
	for _, p := range processes {
		waitingTimeSum += p.WaitingTime()
		responseTimeSum += p.ResponseTime()
		turnAroundTimeSum += p.Turnaround
	}

	processCount := float64(len(processes))
	averageWaitingTime = float64(waitingTimeSum) / processCount
	averageResponseTime = float64(responseTimeSum) / processCount
	averageTurnAroundTime = float64(turnAroundTimeSum) / processCount
	return
}

func AverageTurnaround(processes []core.Process) (float64, error) {
	_, _, avg, err := CalculateAverage(processes)
	return avg, err
}
