package patcher

import "github.com/viant/codemerge/graph"

// Action describes what happened to a document
type Action string

const (
	// ActionMerged base and patch documents were merged
	ActionMerged Action = "merged"
	// ActionUnchanged the patch added nothing to the base document
	ActionUnchanged Action = "unchanged"
	// ActionBase base only document was carried over
	ActionBase Action = "base"
	// ActionPatch patch only document was carried over
	ActionPatch Action = "patch"
)

// Count represents element counts of one category
type Count struct {
	Base   int `json:"base"`
	Patch  int `json:"patch"`
	Merged int `json:"merged"`
}

// Appended returns number of patch only elements added to the base
func (c Count) Appended() int {
	return c.Merged - c.Base
}

func (c *Count) add(other Count) {
	c.Base += other.Base
	c.Patch += other.Patch
	c.Merged += other.Merged
}

// Stats represents per category element counts
type Stats struct {
	Imports   Count `json:"imports"`
	Exports   Count `json:"exports"`
	Classes   Count `json:"classes"`
	Variables Count `json:"variables"`
	Functions Count `json:"functions"`
}

// Appended returns number of appended elements across categories
func (s *Stats) Appended() int {
	return s.Imports.Appended() + s.Exports.Appended() + s.Classes.Appended() + s.Variables.Appended() + s.Functions.Appended()
}

// Add accumulates other stats
func (s *Stats) Add(other *Stats) {
	if other == nil {
		return
	}
	s.Imports.add(other.Imports)
	s.Exports.add(other.Exports)
	s.Classes.add(other.Classes)
	s.Variables.add(other.Variables)
	s.Functions.add(other.Functions)
}

func newStats(base, patch *graph.File) *Stats {
	return &Stats{
		Imports:   Count{Base: len(base.Imports), Patch: len(patch.Imports)},
		Exports:   Count{Base: len(base.Exports), Patch: len(patch.Exports)},
		Classes:   Count{Base: len(base.Classes), Patch: len(patch.Classes)},
		Variables: Count{Base: len(base.Variables), Patch: len(patch.Variables)},
		Functions: Count{Base: len(base.Functions), Patch: len(patch.Functions)},
	}
}

func (s *Stats) merged(file *graph.File) {
	s.Imports.Merged = len(file.Imports)
	s.Exports.Merged = len(file.Exports)
	s.Classes.Merged = len(file.Classes)
	s.Variables.Merged = len(file.Variables)
	s.Functions.Merged = len(file.Functions)
}

// Result represents a single document outcome
type Result struct {
	Path        string `json:"path"`
	Action      Action `json:"action"`
	Stats       *Stats `json:"stats,omitempty"`
	Fingerprint uint64 `json:"fingerprint,omitempty"`
	Written     bool   `json:"written"`
}

// Report represents a tree merge outcome
type Report struct {
	Results []*Result `json:"results"`
}

// Totals returns stats accumulated over merged documents
func (r *Report) Totals() *Stats {
	result := &Stats{}
	for _, item := range r.Results {
		result.Add(item.Stats)
	}
	return result
}

// Count returns number of results with the given action
func (r *Report) Count(action Action) int {
	count := 0
	for _, item := range r.Results {
		if item.Action == action {
			count++
		}
	}
	return count
}

// Written returns number of written documents
func (r *Report) Written() int {
	count := 0
	for _, item := range r.Results {
		if item.Written {
			count++
		}
	}
	return count
}
