package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"cpu-scheduler/internal/responses"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSimulateCommandJSON(t *testing.T) {
	var stdout, stderr bytes.Buffer
	root := newRootCommand()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs([]string{"simulate", "-n", "5", "--seed", "21", "--algorithms", "SJF,SRT", "-o", "json", "--log-level", "warn"})

	require.NoError(t, root.Execute())

	var cmp responses.ComparisonResponse
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &cmp))
	require.Len(t, cmp.Results, 2)
	assert.Equal(t, "SJF", cmp.Results[0].Algorithm)
	assert.Equal(t, "SRT", cmp.Results[1].Algorithm)
	for _, r := range cmp.Results {
		assert.Len(t, r.Details, 5)
		assert.LessOrEqual(t, r.AverageWaitingTime, r.AverageTurnAroundTime)
	}
}
