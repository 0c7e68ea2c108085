package report

import (
	"time"

	"lrslens/domain/assessment"
	"lrslens/domain/survey"
)

// Totals are the headline metrics of the administrative view
type Totals struct {
	Statements int `json:"statements"`
	Modules    int `json:"modules"`
	Users      int `json:"users"`
}

// ModuleCount is one row of the per-module statement count table
type ModuleCount struct {
	Module string `json:"module"`
	Count  int    `json:"count"`
}

// VerbCount is one row of the all-verbs frequency table
type VerbCount struct {
	Verb  string `json:"verb"`
	Count int    `json:"count"`
}

// VerbPivot is the per-module-per-verb count table. Verbs holds the column
// order; every row's Counts slice is aligned with it and zero-filled, so
// each (module, verb) cell is defined even when no statement matched.
type VerbPivot struct {
	Verbs []string       `json:"verbs"`
	Rows  []VerbPivotRow `json:"rows"`
}

// VerbPivotRow is one module's row of the verb pivot
type VerbPivotRow struct {
	Module string `json:"module"`
	Counts []int  `json:"counts"`
}

// FunnelRow reports attempt and answer counts for one question activity.
// Answered may exceed Attempts when the source data is inconsistent; both
// numbers are reported as-is.
type FunnelRow struct {
	Activity string `json:"activity"`
	Attempts int    `json:"attempts"`
	Answered int    `json:"answered"`
}

// FunnelReport is the attempt-vs-answer funnel over question activities
type FunnelReport struct {
	Rows []FunnelRow `json:"rows"`
}

// Empty reports whether no question activity had any attempt
func (r FunnelReport) Empty() bool { return len(r.Rows) == 0 }

// QuestionMean is the mean Likert response for one survey question column
type QuestionMean struct {
	Question string  `json:"question"`
	Mean     float64 `json:"mean"`
}

// LikertReport holds per-question mean scores. MissingSchema is set when no
// survey column matched the question pattern; the result is then an
// explicit empty table, not an error.
type LikertReport struct {
	Means         []QuestionMean `json:"means"`
	MissingSchema bool           `json:"missing_schema"`
}

// DailyCount is one day of the statement evolution series. Days between the
// first and last observed statement are zero-filled so the series is
// continuous.
type DailyCount struct {
	Day   time.Time `json:"day"`
	Count int       `json:"count"`
}

// CategoryCount is one row of a demographic distribution
type CategoryCount struct {
	Category string `json:"category"`
	Count    int    `json:"count"`
}

// UserTiming is one user's elapsed time between the cohort milestones
type UserTiming struct {
	User    string  `json:"user"`
	Minutes float64 `json:"minutes"`
}

// TimingReport is the cohort timing result. Empty marks the state where no
// user had both a start and an end event; it is distinguishable from a
// computed result whose durations happen to be zero, and no mean is
// produced for it.
type TimingReport struct {
	Empty       bool         `json:"empty"`
	Rows        []UserTiming `json:"rows"`
	MeanMinutes float64      `json:"mean_minutes"`
}

// AdminOverview is the administrative role view
type AdminOverview struct {
	Totals       Totals        `json:"totals"`
	ModuleCounts []ModuleCount `json:"module_counts"`
	VerbCounts   []VerbCount   `json:"verb_counts"`
	VerbPivot    VerbPivot     `json:"verb_pivot"`
	DailyCounts  []DailyCount  `json:"daily_counts"`
}

// LearnerOverview is the learner-analytics role view. Notices carries the
// user-visible messages for degraded sections (empty funnel, missing Likert
// schema, empty timing cohort).
type LearnerOverview struct {
	Funnel        FunnelReport               `json:"funnel"`
	Deltas        assessment.DeltaReport     `json:"deltas"`
	Districts     []CategoryCount            `json:"districts"`
	Nationalities []CategoryCount            `json:"nationalities"`
	Education     []CategoryCount            `json:"education"`
	Profiles      []survey.DemographicProfile `json:"profiles"`
	Likert        LikertReport               `json:"likert"`
	Timing        TimingReport               `json:"timing"`
	Notices       []string                   `json:"notices,omitempty"`
}
