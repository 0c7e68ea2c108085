package statement

import (
	"lrslens/domain/core"
)

// Raw is one row of the statements extract exactly as read: every field is
// free text and may carry whitespace, mixed casing, or be empty.
type Raw struct {
	Timestamp string `json:"timestamp"`
	Module    string `json:"module"`
	User      string `json:"user"`
	Verb      string `json:"verb"`
	Activity  string `json:"activity"`
}

// Statement is the normalized form of one learner action. Display fields
// keep the original spelling for rendering; the *Key fields are the
// canonical forms used for grouping, joining and predicate matching.
type Statement struct {
	Timestamp core.Instant `json:"timestamp"`

	// Module is the trimmed display label; ModuleKey is trimmed,
	// diacritic-folded and lowercased.
	Module    string `json:"module"`
	ModuleKey string `json:"module_key"`

	User string `json:"user"`

	// Verb keeps the source casing; VerbKey is the lowercase canonical form.
	Verb    string `json:"verb"`
	VerbKey string `json:"verb_key"`

	Activity string `json:"activity"`
}

// ModuleRef is one entry of the module catalogue
type ModuleRef struct {
	Key     string `json:"key"`
	Display string `json:"display"`
}

// Catalogue is the fixed, deduplicated set of modules observed in the
// dataset, sorted by display label. Aggregations reindex against it so that
// modules with zero statements still appear with a zero count.
type Catalogue []ModuleRef

// Keys returns the catalogue keys in catalogue order
func (c Catalogue) Keys() []string {
	keys := make([]string, len(c))
	for i, ref := range c {
		keys[i] = ref.Key
	}
	return keys
}

// Contains reports whether the catalogue has an entry with the given key
func (c Catalogue) Contains(key string) bool {
	for _, ref := range c {
		if ref.Key == key {
			return true
		}
	}
	return false
}
