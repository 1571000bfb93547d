package requests

import (
	"fmt"

	"cpu-scheduler/internal/core"
)

type Job struct {
	Name        string `json:"name"`
	ArrivalTime int    `json:"arrival_time"`
	BurstTime   int    `json:"burst_time"`
}

type ScheduleRequests struct {
	Jobs []Job `json:"jobs"`
}

// ToWorkload converts the requested jobs into a validated workload.
// Jobs without a name are labelled P1, P2, ... by position.
func (r ScheduleRequests) ToWorkload() (core.Workload, error) {
	workload := make(core.Workload, 0, len(r.Jobs))
	for i, job := range r.Jobs {
		name := job.Name
		if name == "" {
			name = fmt.Sprintf("P%d", i+1)
		}
		workload = append(workload, core.NewProcess(name, job.ArrivalTime, job.BurstTime))
	}
	if err := workload.Validate(); err != nil {
		return nil, err
	}
	return workload, nil
}

func FromWorkload(w core.Workload) ScheduleRequests {
	jobs := make([]Job, 0, len(w))
	for _, p := range w {
		jobs = append(jobs, Job{Name: p.Name, ArrivalTime: p.Arrival, BurstTime: p.Burst})
	}
	return ScheduleRequests{Jobs: jobs}
}

// GenerateRequest overrides the configured workload generator parameters.
type GenerateRequest struct {
	Count       int     `json:"count" query:"n"`
	MaxArrival  int     `json:"max_arrival" query:"k"`
	MeanBurst   float64 `json:"mean_burst" query:"d"`
	BurstStdDev float64 `json:"burst_stddev" query:"v"`
	Seed        uint64  `json:"seed" query:"seed"`
}
