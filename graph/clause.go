package graph

import "github.com/viant/codemerge/reconcile"

// Specifier represents a named binding of an import or export clause, i.e. {Name as Alias}
type Specifier struct {
	Name  string `yaml:"name"`
	Alias string `yaml:"alias,omitempty"`
}

// Key returns imported/exported name
func (s *Specifier) Key() string {
	return s.Name
}

// Merge merges patch specifier
func (s *Specifier) Merge(patch *Specifier, override bool) {
	if patch == nil {
		return
	}
	s.Alias = pick(s.Alias, patch.Alias, override)
}

// LocalName returns the name bound in the importing module
func (s *Specifier) LocalName() string {
	if s.Alias != "" {
		return s.Alias
	}
	return s.Name
}

// Import represents an import clause of a module
type Import struct {
	Module    string       `yaml:"module"`
	Default   string       `yaml:"default,omitempty"`   // import Default from 'module'
	Namespace string       `yaml:"namespace,omitempty"` // import * as Namespace from 'module'
	Named     []*Specifier `yaml:"named,omitempty"`     // import {A, B as C} from 'module'
	TypeOnly  bool         `yaml:"typeOnly,omitempty"`
}

// NewImport creates an import clause with named specifiers
func NewImport(module string, names ...string) *Import {
	result := &Import{Module: module}
	for _, name := range names {
		result.Named = append(result.Named, &Specifier{Name: name})
	}
	return result
}

// Key returns module path
func (i *Import) Key() string {
	return i.Module
}

// Merge merges other clause importing the same module: bindings are united, missing default/namespace are filled
func (i *Import) Merge(other *Import) {
	if other == nil {
		return
	}
	i.Default = pick(i.Default, other.Default, false)
	i.Namespace = pick(i.Namespace, other.Namespace, false)
	reconcile.Collection(&i.Named, other.Named, false)
	i.TypeOnly = i.TypeOnly && other.TypeOnly
}

// Names returns local names bound by the clause
func (i *Import) Names() []string {
	var result []string
	if i.Default != "" {
		result = append(result, i.Default)
	}
	if i.Namespace != "" {
		result = append(result, i.Namespace)
	}
	for _, spec := range i.Named {
		result = append(result, spec.LocalName())
	}
	return result
}

// Export represents an export clause re-exporting from a module
type Export struct {
	Module    string       `yaml:"module"`
	All       bool         `yaml:"all,omitempty"`       // export * from 'module'
	Namespace string       `yaml:"namespace,omitempty"` // export * as Namespace from 'module'
	Named     []*Specifier `yaml:"named,omitempty"`     // export {A, B as C} from 'module'
}

// NewExport creates an export clause with named specifiers
func NewExport(module string, names ...string) *Export {
	result := &Export{Module: module}
	for _, name := range names {
		result.Named = append(result.Named, &Specifier{Name: name})
	}
	return result
}

// Key returns module path
func (e *Export) Key() string {
	return e.Module
}

// Merge merges other clause exporting from the same module
func (e *Export) Merge(other *Export) {
	if other == nil {
		return
	}
	e.All = e.All || other.All
	e.Namespace = pick(e.Namespace, other.Namespace, false)
	reconcile.Collection(&e.Named, other.Named, false)
}
