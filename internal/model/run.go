package model

import "time"

// RunStats counts items at every pipeline stage so operators can see which
// gate is over-filtering.
type RunStats struct {
	FeedItems            int `json:"feed_items"`
	NewItems             int `json:"new_items"`
	Articles             int `json:"articles"`
	RelevantArticles     int `json:"relevant_articles"`
	Companies            int `json:"companies"`
	ArticlePeople        int `json:"article_people"`
	TeamPeople           int `json:"team_people"`
	PeopleVetted         int `json:"people_vetted"`
	FailedVetting        int `json:"failed_vetting"`
	FailedResponseGate   int `json:"failed_response_gate"`
	FailedScoreThreshold int `json:"failed_score_threshold"`
	Accepted             int `json:"accepted"`
}

// RunRecord is one persisted pipeline run with its final stats.
type RunRecord struct {
	ID         string     `json:"id"`
	StartedAt  time.Time  `json:"started_at"`
	FinishedAt *time.Time `json:"finished_at,omitempty"`
	Stats      *RunStats  `json:"stats,omitempty"`
}
