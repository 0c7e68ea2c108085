package survey

// FlagSelection is one long-form row produced by unpivoting a flag-group: a
// respondent selected the category encoded by one wide boolean column.
type FlagSelection struct {
	Respondent string `json:"respondent"`
	Column     string `json:"column"`
	Category   string `json:"category"`
}

// DemographicProfile is one derived row of the sample characterization:
// nationality copied straight from the survey, district and education
// resolved from their flag-groups via left join. District or Education is
// empty when the respondent flagged nothing in that group.
//
// A respondent with more than one true flag in a group yields more than one
// profile row. That fan-out mirrors the source data and is intentionally
// not deduplicated; downstream distributions count selections, not
// respondents.
type DemographicProfile struct {
	Respondent  string `json:"respondent"`
	Nationality string `json:"nationality"`
	District    string `json:"district"`
	Education   string `json:"education"`
}
