package porcelain

// Status is a contract stub matching RepoEngine.status: callers can call
// it, but it carries no live diff information. Real status computation
// (working vs. staging vs. committed) isn't part of this engine's
// specified surface.
type Status struct {
	WorkingAreaEntries []string
	StagingAreaEntries []string
}

// GetStatus returns an always-empty Status. Matches RepoEngine.status.
func (r *Repo) GetStatus() *Status {
	return &Status{}
}
