// Package reshape converts the wide satisfaction survey into long
// relations: flag-group unpivoting and the derived demographic profile.
package reshape

import (
	"strings"

	"lrslens/domain/snapshot"
	"lrslens/domain/survey"
	"lrslens/internal/schema"
)

// truthy reports whether a wide flag cell marks a selected category. The
// export writes booleans as "True"/"False" and occasionally as 0/1.
func truthy(s string) bool {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "true", "1", "1.0":
		return true
	}
	return false
}

// Melt unpivots one flag-group of the wide table into (respondent,
// category) selections, keeping only truthy flags. Well-formed input yields
// at most one selection per respondent; multiple true flags all survive
// (fan-out, see Demographics). No column matching the prefix yields an
// empty result.
func Melt(t snapshot.Table, idColumn, prefix string) []survey.FlagSelection {
	group := schema.FlagGroup(t.Headers, prefix)
	if len(group) == 0 {
		return nil
	}

	var selections []survey.FlagSelection
	for _, row := range t.Rows {
		for _, desc := range group {
			if !truthy(row[desc.Column]) {
				continue
			}
			selections = append(selections, survey.FlagSelection{
				Respondent: row[idColumn],
				Column:     desc.Column,
				Category:   desc.Category,
			})
		}
	}
	return selections
}

// Demographics derives one characterization row per respondent:
// nationality copied directly, district and education left-joined from
// their flag-groups. A respondent with no selection in a group keeps an
// empty value there; a respondent with several true flags in a group
// produces several rows. The fan-out mirrors the wide source exactly;
// deduplication is left to downstream consumers.
func Demographics(t snapshot.Table, sch schema.SurveySchema) []survey.DemographicProfile {
	districts := groupByRespondent(Melt(t, sch.IDColumn, sch.DistrictPrefix))
	education := groupByRespondent(Melt(t, sch.IDColumn, sch.EducationPrefix))

	var profiles []survey.DemographicProfile
	for _, row := range t.Rows {
		id := row[sch.IDColumn]
		base := survey.DemographicProfile{
			Respondent:  id,
			Nationality: strings.TrimSpace(row[sch.NationalityColumn]),
		}

		for _, withDistrict := range leftJoin(base, districts[id], setDistrict) {
			profiles = append(profiles, leftJoin(withDistrict, education[id], setEducation)...)
		}
	}
	return profiles
}

func groupByRespondent(selections []survey.FlagSelection) map[string][]string {
	grouped := make(map[string][]string)
	for _, sel := range selections {
		grouped[sel.Respondent] = append(grouped[sel.Respondent], sel.Category)
	}
	return grouped
}

// leftJoin expands one profile row by the matched categories: no match
// keeps the row as-is, n matches produce n rows.
func leftJoin(base survey.DemographicProfile, categories []string, set func(survey.DemographicProfile, string) survey.DemographicProfile) []survey.DemographicProfile {
	if len(categories) == 0 {
		return []survey.DemographicProfile{base}
	}
	rows := make([]survey.DemographicProfile, len(categories))
	for i, c := range categories {
		rows[i] = set(base, c)
	}
	return rows
}

func setDistrict(p survey.DemographicProfile, category string) survey.DemographicProfile {
	p.District = category
	return p
}

func setEducation(p survey.DemographicProfile, category string) survey.DemographicProfile {
	p.Education = category
	return p
}
