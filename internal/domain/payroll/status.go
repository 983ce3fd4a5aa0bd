package payroll

// runTransitions maps each status to the statuses reachable from it.
// completed -> failed exists so an admin can void a run whose payments
// bounced; the stubs stay on record but the run no longer counts as paid.
var runTransitions = map[RunStatus][]RunStatus{
	RunStatusDraft:      {RunStatusProcessing, RunStatusCancelled},
	RunStatusProcessing: {RunStatusCompleted, RunStatusFailed},
	RunStatusCompleted:  {RunStatusFailed},
	RunStatusFailed:     {},
	RunStatusCancelled:  {},
}

// CanTransition reports whether moving a run from one status to another is
// legal. Same-status "transitions" are not allowed.
func CanTransition(from, to RunStatus) bool {
	for _, v := range runTransitions[from] {
		if v == to {
			return true
		}
	}
	return false
}

// NormalizeStatus maps legacy client spellings onto the canonical set.
// "pending" is an alias for draft kept for older API consumers.
func NormalizeStatus(s string) (RunStatus, bool) {
	if s == "pending" {
		return RunStatusDraft, true
	}
	status := RunStatus(s)
	return status, status.Valid()
}
