package criteria

import (
	"smap-engine/pkg/log"
)

// Matcher evaluates quota/rule criteria against semi-structured records.
// Criteria come in two shapes: a keyed object (field -> expected value) and a
// legacy list of {question, answer} items. Both are ANDed.
type Matcher struct {
	l log.Logger
}

// New creates a new Matcher.
func New(l log.Logger) *Matcher {
	return &Matcher{l: l}
}

// legacyCondition is one item of the legacy list-shaped criteria.
type legacyCondition struct {
	Question string `json:"question"`
	Answer   any    `json:"answer"`
}
