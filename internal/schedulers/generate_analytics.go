package schedulers

import (
	"cpu-scheduler/internal/responses"
	"cpu-scheduler/internal/util"
)

// GenerateResponse turns a simulation result into its wire representation.
func GenerateResponse(result Result) (responses.ScheduleResponse, error) {
	averageWaitingTime, averageResponseTime, averageTurnAroundTime, err := util.CalculateAverage(result.Processes)
	if err != nil {
		return responses.ScheduleResponse{}, err
	}

	var throughput float64
	if result.Cpu.TotalTime > 0 {
		throughput = float64(len(result.Processes)) / float64(result.Cpu.TotalTime)
	}

	details := make([]responses.ProcessResponse, 0, len(result.Processes))
	for _, p := range result.Processes {
		details = append(details, responses.NewProcessResponse(p))
	}

	return responses.ScheduleResponse{
		Algorithm:             string(result.Algorithm),
		TotalTime:             result.Cpu.TotalTime,
		IdleTime:              result.Cpu.IdleTime,
		Preemptions:           result.Preemptions,
		AverageWaitingTime:    averageWaitingTime,
		AverageResponseTime:   averageResponseTime,
		AverageTurnAroundTime: averageTurnAroundTime,
		CpuUtilization:        result.Cpu.Utilization(),
		CpuThroughput:         throughput,
		Gantt:                 result.Trace,
		Details:               details,
	}, nil
}

func GenerateComparison(results []Result) (responses.ComparisonResponse, error) {
	out := responses.ComparisonResponse{Results: make([]responses.ScheduleResponse, 0, len(results))}
	for _, r := range results {
		resp, err := GenerateResponse(r)
		if err != nil {
			return responses.ComparisonResponse{}, err
		}
		out.Results = append(out.Results, resp)
	}
	return out, nil
}
