package app

import (
	"lrslens/domain/assessment"
	"lrslens/domain/report"
	"lrslens/domain/snapshot"
	"lrslens/domain/survey"
	"lrslens/internal"
	"lrslens/internal/aggregate"
	"lrslens/internal/config"
	"lrslens/internal/delta"
	"lrslens/internal/reshape"
	"lrslens/internal/schema"
	"lrslens/internal/timing"
)

// ReportService composes the two role views from the pipeline core. It
// holds no state beyond configuration: composing the same snapshot twice
// yields the same views.
type ReportService struct {
	analysis config.AnalysisConfig
	survey   schema.SurveySchema
	log      *internal.Logger
}

// NewReportService creates a report service with the given analysis
// constants and the default survey schema.
func NewReportService(analysis config.AnalysisConfig, log *internal.Logger) *ReportService {
	return &ReportService{
		analysis: analysis,
		survey:   schema.DefaultSurveySchema(),
		log:      log.WithComponent("ReportService"),
	}
}

// AdminOverview composes the administrative view: headline totals,
// per-module counts, verb frequencies, the verb pivot and the daily
// evolution series.
func (s *ReportService) AdminOverview(snap *snapshot.Snapshot) report.AdminOverview {
	return report.AdminOverview{
		Totals:       aggregate.Totals(snap.Statements),
		ModuleCounts: aggregate.ModuleCounts(snap.Statements, snap.Catalogue),
		VerbCounts:   aggregate.VerbCounts(snap.Statements),
		VerbPivot:    aggregate.VerbPivot(snap.Statements, snap.Catalogue),
		DailyCounts:  aggregate.DailyCounts(snap.Statements),
	}
}

// LearnerOverview composes the learner-analytics view. Data-quality
// degradations (empty funnel, missing Likert schema, empty timing cohort)
// become notices on the view; the one hard failure is a malformed
// assessment score, which the score-delta joiner treats strictly.
func (s *ReportService) LearnerOverview(snap *snapshot.Snapshot) (report.LearnerOverview, error) {
	overview := report.LearnerOverview{
		Funnel: aggregate.QuestionFunnel(snap.Statements, s.analysis.QuestionMarker),
		Likert: aggregate.LikertMeans(snap.Survey, s.survey.LikertPattern),
		Timing: timing.Elapsed(snap.Statements,
			timing.StartPredicate{Verb: s.analysis.StartVerb, ModuleContains: s.analysis.StartModuleContains},
			timing.EndPredicate{Verbs: s.analysis.EndVerbs, ModuleContains: s.analysis.EndModuleContains},
		),
	}

	deltas, err := s.scoreDeltas(snap)
	if err != nil {
		return report.LearnerOverview{}, err
	}
	overview.Deltas = deltas

	overview.Profiles = reshape.Demographics(snap.Survey, s.survey)
	overview.Districts = aggregate.Distribution(profileColumn(overview.Profiles, func(p survey.DemographicProfile) string { return p.District }))
	overview.Nationalities = aggregate.Distribution(profileColumn(overview.Profiles, func(p survey.DemographicProfile) string { return p.Nationality }))
	overview.Education = aggregate.Distribution(profileColumn(overview.Profiles, func(p survey.DemographicProfile) string { return p.Education }))

	if overview.Funnel.Empty() {
		overview.Notices = append(overview.Notices, "no question attempts recorded")
	}
	if overview.Likert.MissingSchema {
		overview.Notices = append(overview.Notices, "no survey column matched the question pattern")
	}
	if overview.Timing.Empty {
		overview.Notices = append(overview.Notices, "no user has both a start and an end event")
	}
	return overview, nil
}

func (s *ReportService) scoreDeltas(snap *snapshot.Snapshot) (deltas assessment.DeltaReport, err error) {
	diagRaw, err := delta.ScoreColumn(snap.Diagnostic)
	if err != nil {
		return deltas, err
	}
	finalRaw, err := delta.ScoreColumn(snap.Final)
	if err != nil {
		return deltas, err
	}

	diagScores, err := delta.ParseScores(diagRaw)
	if err != nil {
		return deltas, err
	}
	finalScores, err := delta.ParseScores(finalRaw)
	if err != nil {
		return deltas, err
	}
	return delta.Pair(diagScores, finalScores), nil
}

func profileColumn(profiles []survey.DemographicProfile, pick func(survey.DemographicProfile) string) []string {
	values := make([]string, len(profiles))
	for i, p := range profiles {
		values[i] = pick(p)
	}
	return values
}
