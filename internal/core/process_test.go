package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewProcess(t *testing.T) {
	p := NewProcess("P1", 3, 7)
	assert.Equal(t, 7, p.Remaining)
	assert.Equal(t, -1, p.Start)
	assert.True(t, p.Active)
	assert.Equal(t, 0, p.ResponseTime())
}

func TestWorkloadClone(t *testing.T) {
	w := Workload{NewProcess("P1", 0, 5), NewProcess("P2", 1, 3)}
	c := w.Clone()
	c[0].Remaining = 0
	c[1].Active = false

	assert.Equal(t, 5, w[0].Remaining)
	assert.True(t, w[1].Active)
	assert.Nil(t, Workload(nil).Clone())
}

func TestWorkloadValidate(t *testing.T) {
	tests := []struct {
		name     string
		workload Workload
		err      error
	}{
		{"valid", Workload{NewProcess("P1", 0, 1)}, nil},
		{"empty", Workload{}, ErrEmptyWorkload},
		{"zero burst", Workload{NewProcess("P1", 0, 0)}, ErrInvalidBurst},
		{"negative arrival", Workload{NewProcess("P1", -1, 2)}, ErrInvalidArrival},
		{"duplicate", Workload{NewProcess("P1", 0, 2), NewProcess("P1", 1, 2)}, ErrDuplicateName},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.workload.Validate()
			if tt.err == nil {
				require.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tt.err)
		})
	}
}

func TestWorkloadDone(t *testing.T) {
	w := Workload{NewProcess("P1", 0, 2)}
	assert.False(t, w.Done())
	w[0].Remaining = 0
	assert.True(t, w.Done())
}

func TestWorkloadSnapshotResetsRunState(t *testing.T) {
	done := NewProcess("P1", 2, 4)
	done.Remaining, done.Start, done.Completion, done.Turnaround, done.Active = 0, 2, 6, 4, false
	w := Workload{done, {Name: "P2", Arrival: 1, Burst: 3}}

	s := w.Snapshot()
	assert.Equal(t, Workload{NewProcess("P1", 2, 4), NewProcess("P2", 1, 3)}, s)
	assert.Equal(t, 0, w[0].Remaining)
	assert.False(t, s.Done())
}
