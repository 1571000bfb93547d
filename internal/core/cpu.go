package core

// Slice is one uninterrupted occupation of the cpu, used for the gantt chart.
type Slice struct {
	Name  string `json:"name"`
	Start int    `json:"start"`
	Stop  int    `json:"stop"`
}

// CpuMetric is measured in simulated time units.
type CpuMetric struct {
	TotalTime int
	BusyTime  int
	IdleTime  int
}

func (m CpuMetric) Utilization() float64 {
	if m.TotalTime == 0 {
		return 0
	}
	return float64(m.BusyTime) / float64(m.TotalTime)
}

// CPU is a single simulated core. It owns the simulation clock; schedulers
// only decide what runs next.
type CPU struct {
	clock int
	busy  int
	trace []Slice
}

func NewCPU() *CPU {
	return &CPU{trace: make([]Slice, 0)}
}

func (c *CPU) Now() int {
	return c.clock
}

// IdleUntil moves the clock forward to t without running anything.
// Times in the past are ignored.
func (c *CPU) IdleUntil(t int) {
	if t > c.clock {
		c.clock = t
	}
}

// Execute runs p for at most units time units and returns how many were used.
// Consecutive execution of the same process extends the current slice.
func (c *CPU) Execute(p *Process, units int) int {
	if units > p.Remaining {
		units = p.Remaining
	}
	if units <= 0 {
		return 0
	}
	if p.Start < 0 {
		p.Start = c.clock
	}

	last := len(c.trace) - 1
	if last >= 0 && c.trace[last].Name == p.Name && c.trace[last].Stop == c.clock {
		c.trace[last].Stop += units
	} else {
		c.trace = append(c.trace, Slice{Name: p.Name, Start: c.clock, Stop: c.clock + units})
	}

	c.clock += units
	c.busy += units
	p.Remaining -= units
	return units
}

// Complete records the completion of p at the current time.
func (c *CPU) Complete(p *Process) {
	p.Remaining = 0
	p.Completion = c.clock
	p.Turnaround = p.Completion - p.Arrival
	p.Active = false
}

func (c *CPU) Trace() []Slice {
	out := make([]Slice, len(c.trace))
	copy(out, c.trace)
	return out
}

func (c *CPU) Metric() CpuMetric {
	return CpuMetric{
		TotalTime: c.clock,
		BusyTime:  c.busy,
		IdleTime:  c.clock - c.busy,
	}
}
