package responses

import (
	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/requests"
)

type ProcessResponse struct {
	Name           string `json:"name"`
	Active         bool   `json:"active"`
	ArrivalTime    int    `json:"arrival_time"`
	BurstTime      int    `json:"burst_time"`
	RemainingTime  int    `json:"remaining_time"`
	CompletionTime int    `json:"completion_time"`
	ResponseTime   int    `json:"response_time"`
	TurnAroundTime int    `json:"turn_around_time"`
	WaitingTime    int    `json:"waiting_time"`
}

type ScheduleResponse struct {
	Algorithm             string            `json:"algorithm"`
	TotalTime             int               `json:"total_time"`
	IdleTime              int               `json:"idle_time"`
	Preemptions           int               `json:"preemptions"`
	AverageWaitingTime    float64           `json:"average_waiting_time"`
	AverageResponseTime   float64           `json:"average_response_time"`
	AverageTurnAroundTime float64           `json:"average_turn_around_time"`
	CpuUtilization        float64           `json:"cpu_utilization"`
	CpuThroughput         float64           `json:"cpu_throughput"`
	Gantt                 []core.Slice      `json:"gantt"`
	Details               []ProcessResponse `json:"details"`
}

type ComparisonResponse struct {
	Results []ScheduleResponse `json:"results"`
}

func NewProcessResponse(p core.Process) ProcessResponse {
	return ProcessResponse{
		Name:           p.Name,
		Active:         p.Active,
		ArrivalTime:    p.Arrival,
		BurstTime:      p.Burst,
		RemainingTime:  p.Remaining,
		CompletionTime: p.Completion,
		ResponseTime:   p.ResponseTime(),
		TurnAroundTime: p.Turnaround,
		WaitingTime:    p.WaitingTime(),
	}
}

// SimulationResponse carries a generated workload together with the results
// of simulating it.
type SimulationResponse struct {
	Jobs []requests.Job `json:"jobs"`
	ComparisonResponse
}
