// Package report renders simulation results for terminals: the generated
// workload, a gantt chart per algorithm, the final process table and the
// comparative analysis.
package report

import (
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"cpu-scheduler/internal/core"
	"cpu-scheduler/internal/schedulers"

	"github.com/olekukonko/tablewriter"
)

const idleLabel = "idle"

func WriteTitle(w io.Writer, title string) {
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
	_, _ = fmt.Fprintln(w, strings.Repeat(" ", len(title)/2), title)
	_, _ = fmt.Fprintln(w, strings.Repeat("-", len(title)*2))
}

// WriteWorkload prints the generated process table.
func WriteWorkload(w io.Writer, workload core.Workload) {
	_, _ = fmt.Fprintln(w, "Generated Process Table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Arrival Time", "CPU Time"})
	for _, p := range workload {
		table.Append([]string{p.Name, fmt.Sprint(p.Arrival), fmt.Sprint(p.Burst)})
	}
	table.Render()
}

// WriteGantt prints the execution trace as "0 | P1 | 5 | P2 | 8". Gaps in
// the trace are shown as idle slices.
func WriteGantt(w io.Writer, algorithm schedulers.Algorithm, trace []core.Slice) {
	_, _ = fmt.Fprintf(w, "%s Gantt Chart:\n", algorithm)
	var b strings.Builder
	b.WriteString("0 ")
	clock := 0
	for _, s := range trace {
		if s.Start > clock {
			fmt.Fprintf(&b, "| %s | %d ", idleLabel, s.Start)
		}
		fmt.Fprintf(&b, "| %s | %d ", s.Name, s.Stop)
		clock = s.Stop
	}
	_, _ = fmt.Fprintln(w, strings.TrimRight(b.String(), " "))
}

// WriteProcessTable prints the final state of every process after a run.
func WriteProcessTable(w io.Writer, result schedulers.Result) {
	_, _ = fmt.Fprintln(w, "Final Process Table")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Process", "Active", "Arrival Time", "Total CPU Time",
		"Remaining CPU Time", "Completion Time", "Waiting Time", "Turnaround Time"})
	for _, p := range result.Processes {
		table.Append([]string{
			p.Name,
			fmt.Sprint(boolToInt(p.Active)),
			fmt.Sprint(p.Arrival),
			fmt.Sprint(p.Burst),
			fmt.Sprint(p.Remaining),
			fmt.Sprint(p.Completion),
			fmt.Sprint(p.WaitingTime()),
			fmt.Sprint(p.Turnaround),
		})
	}
	table.SetFooter([]string{"", "", "", "", "", "", "Average", fmt.Sprintf("%.2f", result.AverageTurnaround)})
	table.Render()
}

// WriteComparison prints the comparative analysis across algorithms.
func WriteComparison(w io.Writer, results []schedulers.Result) error {
	WriteTitle(w, "Comparative Analysis")
	table := tablewriter.NewWriter(w)
	table.SetHeader([]string{"Algorithm", "Avg Turnaround Time", "Avg Waiting Time", "Preemptions", "CPU Utilization", "Throughput"})
	for _, r := range results {
		resp, err := schedulers.GenerateResponse(r)
		if err != nil {
			return err
		}
		table.Append([]string{
			resp.Algorithm,
			fmt.Sprintf("%.2f", resp.AverageTurnAroundTime),
			fmt.Sprintf("%.2f", resp.AverageWaitingTime),
			fmt.Sprint(resp.Preemptions),
			fmt.Sprintf("%.2f%%", resp.CpuUtilization*100),
			fmt.Sprintf("%.2f/t", resp.CpuThroughput),
		})
	}
	table.Render()
	return nil
}

// WriteAll prints the full text report for a workload and its results.
func WriteAll(w io.Writer, workload core.Workload, results []schedulers.Result) error {
	WriteWorkload(w, workload)
	for _, r := range results {
		_, _ = fmt.Fprintln(w)
		WriteTitle(w, string(r.Algorithm))
		WriteGantt(w, r.Algorithm, r.Trace)
		_, _ = fmt.Fprintln(w)
		WriteProcessTable(w, r)
	}
	_, _ = fmt.Fprintln(w)
	return WriteComparison(w, results)
}

// WriteJSON prints the comparison as indented JSON.
func WriteJSON(w io.Writer, results []schedulers.Result) error {
	cmp, err := schedulers.GenerateComparison(results)
	if err != nil {
		return err
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(cmp)
}

func boolToInt(b bool) int {
	if b {
		return 1
	}
	return 0
}
