package graph

import "github.com/viant/codemerge/reconcile"

// Property represents a class property declaration
type Property struct {
	Name        string       `yaml:"name"`
	Comment     string       `yaml:"comment,omitempty"`
	Modifiers   Modifiers    `yaml:"modifiers,omitempty"`
	Decorators  []*Decorator `yaml:"decorators,omitempty"`
	Type        string       `yaml:"type,omitempty"`
	Initializer string       `yaml:"initializer,omitempty"`
	Optional    bool         `yaml:"optional,omitempty"`
}

// Key returns property name
func (p *Property) Key() string {
	return p.Name
}

// IsStatic returns true for static properties
func (p *Property) IsStatic() bool {
	return p.Modifiers.Has("static")
}

// Merge merges patch property
func (p *Property) Merge(patch *Property, override bool) {
	if patch == nil {
		return
	}
	p.Comment = pick(p.Comment, patch.Comment, override)
	p.Modifiers.Merge(patch.Modifiers, override)
	reconcile.Collection(&p.Decorators, patch.Decorators, override)
	p.Type = pick(p.Type, patch.Type, override)
	p.Initializer = pick(p.Initializer, patch.Initializer, override)
	if override {
		p.Optional = patch.Optional
	}
}
