package schedulers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateResponse(t *testing.T) {
	r, err := ScheduleFirstInFirstOut(threeProcesses())
	require.NoError(t, err)

	resp, err := GenerateResponse(r)
	require.NoError(t, err)
	assert.Equal(t, "FIFO", resp.Algorithm)
	assert.Equal(t, 9, resp.TotalTime)
	assert.Equal(t, 0, resp.IdleTime)
	assert.InDelta(t, 19.0/3.0, resp.AverageTurnAroundTime, 1e-9)
	assert.InDelta(t, 10.0/3.0, resp.AverageWaitingTime, 1e-9)
	assert.InDelta(t, 1.0, resp.CpuUtilization, 1e-9)
	assert.InDelta(t, 3.0/9.0, resp.CpuThroughput, 1e-9)
	require.Len(t, resp.Details, 3)
	assert.Equal(t, 7, resp.Details[1].TurnAroundTime)
	assert.Equal(t, 4, resp.Details[1].WaitingTime)
	assert.Len(t, resp.Gantt, 3)
}

func TestGenerateComparison(t *testing.T) {
	results, err := RunAll(threeProcesses())
	require.NoError(t, err)

	cmp, err := GenerateComparison(results)
	require.NoError(t, err)
	require.Len(t, cmp.Results, 3)
	assert.Equal(t, "SRT", cmp.Results[2].Algorithm)
	assert.Equal(t, 2, cmp.Results[2].Preemptions)
}
