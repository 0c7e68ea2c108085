// Package schema is the named schema-discovery step: it matches column
// names against prefixes and patterns once, up front, and hands typed
// column descriptors to the reshaping and aggregation code so pattern
// matching is never repeated inline at the use sites.
package schema

import (
	"regexp"
	"strings"
)

// CategoryDelimiter separates a flag column's question code from its
// category label, e.g. "Q05_Concelho->Lisboa".
const CategoryDelimiter = "->"

// DefaultLikertPattern matches the numeric-response question columns of the
// satisfaction survey (Q01..Q03, with or without a suffix).
var DefaultLikertPattern = regexp.MustCompile(`(?i)^Q0[1-3](_|$)`)

// ColumnDescriptor is one matched flag column with its derived category
// label.
type ColumnDescriptor struct {
	Column   string
	Category string
}

// SurveySchema names the survey columns the pipeline depends on
type SurveySchema struct {
	IDColumn          string
	NationalityColumn string
	DistrictPrefix    string
	EducationPrefix   string
	LikertPattern     *regexp.Regexp
}

// DefaultSurveySchema returns the column layout of the satisfaction extract
func DefaultSurveySchema() SurveySchema {
	return SurveySchema{
		IDColumn:          "ID",
		NationalityColumn: "Q06_Nacionalidade",
		DistrictPrefix:    "Q05_Concelho",
		EducationPrefix:   "Q07_Nível",
		LikertPattern:     DefaultLikertPattern,
	}
}

// FlagGroup selects the columns of one multi-select flag-group: every
// header starting with the prefix, in header order. The category label is
// everything after the last delimiter; a header without a delimiter is its
// own category. No matching header yields an empty result, not an error.
func FlagGroup(headers []string, prefix string) []ColumnDescriptor {
	var descriptors []ColumnDescriptor
	for _, h := range headers {
		if !strings.HasPrefix(h, prefix) {
			continue
		}
		category := h
		if idx := strings.LastIndex(h, CategoryDelimiter); idx >= 0 {
			category = h[idx+len(CategoryDelimiter):]
		}
		descriptors = append(descriptors, ColumnDescriptor{Column: h, Category: category})
	}
	return descriptors
}

// LikertColumns selects the headers matching the question pattern, in
// header order.
func LikertColumns(headers []string, pattern *regexp.Regexp) []string {
	var columns []string
	for _, h := range headers {
		if pattern.MatchString(h) {
			columns = append(columns, h)
		}
	}
	return columns
}
