package domain

import "time"

// JobApplication materializes the many-to-many relation between users and
// jobs. The pair (Username, JobID) is unique: a user may apply to a given
// job at most once. Once applied, the pair is terminal — there is no
// withdraw transition.
type JobApplication struct {
	Username  string    `json:"username"`
	JobID     string    `json:"job_id"`
	AppliedAt time.Time `json:"applied_at"`
}

// Job is an entry in the externally-owned job catalog. Only existence
// matters to this service; the catalog is never written here.
type Job struct {
	ID    string `json:"id"`
	Title string `json:"title"`
}
