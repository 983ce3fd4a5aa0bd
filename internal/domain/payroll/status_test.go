package payroll

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanTransition(t *testing.T) {
	cases := []struct {
		from RunStatus
		to   RunStatus
		want bool
	}{
		{RunStatusDraft, RunStatusProcessing, true},
		{RunStatusDraft, RunStatusCancelled, true},
		{RunStatusDraft, RunStatusCompleted, false},
		{RunStatusProcessing, RunStatusCompleted, true},
		{RunStatusProcessing, RunStatusFailed, true},
		{RunStatusProcessing, RunStatusDraft, false},
		{RunStatusCompleted, RunStatusFailed, true},
		{RunStatusCompleted, RunStatusDraft, false},
		{RunStatusCompleted, RunStatusProcessing, false},
		{RunStatusFailed, RunStatusDraft, false},
		{RunStatusCancelled, RunStatusDraft, false},
		{RunStatusDraft, RunStatusDraft, false},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, CanTransition(tc.from, tc.to), "%s -> %s", tc.from, tc.to)
	}
}

func TestNormalizeStatus(t *testing.T) {
	status, ok := NormalizeStatus("pending")
	assert.True(t, ok)
	assert.Equal(t, RunStatusDraft, status)

	status, ok = NormalizeStatus("completed")
	assert.True(t, ok)
	assert.Equal(t, RunStatusCompleted, status)

	_, ok = NormalizeStatus("archived")
	assert.False(t, ok)
}
