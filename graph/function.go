package graph

import (
	"strings"

	"github.com/viant/codemerge/reconcile"
)

// ConstructorName is the identifier of a class constructor modeled as a method
const ConstructorName = "constructor"

// Parameter represents a function or method parameter
type Parameter struct {
	Name       string       `yaml:"name"`
	Type       string       `yaml:"type,omitempty"`
	Default    string       `yaml:"default,omitempty"`
	Optional   bool         `yaml:"optional,omitempty"`
	Modifiers  Modifiers    `yaml:"modifiers,omitempty"` // parameter properties: public, private, readonly
	Decorators []*Decorator `yaml:"decorators,omitempty"`
}

// Key returns parameter name
func (p *Parameter) Key() string {
	return p.Name
}

// Merge merges patch parameter
func (p *Parameter) Merge(patch *Parameter, override bool) {
	if patch == nil {
		return
	}
	p.Type = pick(p.Type, patch.Type, override)
	p.Default = pick(p.Default, patch.Default, override)
	if override {
		p.Optional = patch.Optional
	}
	p.Modifiers.Merge(patch.Modifiers, override)
	reconcile.Collection(&p.Decorators, patch.Decorators, override)
}

// Function represents a top-level function, a class method or a class constructor
type Function struct {
	Name       string       `yaml:"name"`
	Comment    string       `yaml:"comment,omitempty"`
	Modifiers  Modifiers    `yaml:"modifiers,omitempty"`
	Decorators []*Decorator `yaml:"decorators,omitempty"`
	TypeParams []string     `yaml:"typeParams,omitempty"`
	Parameters []*Parameter `yaml:"parameters,omitempty"`
	ReturnType string       `yaml:"returnType,omitempty"`
	Body       string       `yaml:"body,omitempty"`
	Location   *Location    `yaml:"location,omitempty"`
}

// NewConstructor creates a constructor with the supplied parameters
func NewConstructor(params ...*Parameter) *Function {
	return &Function{Name: ConstructorName, Parameters: params}
}

// Key returns function name
func (f *Function) Key() string {
	return f.Name
}

// IsConstructor returns true if function is a class constructor
func (f *Function) IsConstructor() bool {
	return f.Name == ConstructorName
}

// Parameter returns the first parameter with the given name
func (f *Function) Parameter(name string) *Parameter {
	for _, param := range f.Parameters {
		if param.Name == name {
			return param
		}
	}
	return nil
}

// Merge merges patch function: signature parts, decorators and body follow the override policy
func (f *Function) Merge(patch *Function, override bool) {
	if patch == nil {
		return
	}
	f.Comment = pick(f.Comment, patch.Comment, override)
	f.Modifiers.Merge(patch.Modifiers, override)
	reconcile.Collection(&f.Decorators, patch.Decorators, override)
	f.TypeParams = pickList(f.TypeParams, patch.TypeParams, override)
	reconcile.Collection(&f.Parameters, patch.Parameters, override)
	f.ReturnType = pick(f.ReturnType, patch.ReturnType, override)
	if f.Body == "" || (override && patch.Body != "") {
		f.Body = patch.Body
		f.Location = patch.Location
	}
}

// Signature returns function signature, i.e. name(param: type, ...): returnType
func (f *Function) Signature() string {
	builder := &strings.Builder{}
	builder.WriteString(f.Name)
	if len(f.TypeParams) > 0 {
		builder.WriteString("<")
		builder.WriteString(strings.Join(f.TypeParams, ", "))
		builder.WriteString(">")
	}
	builder.WriteString("(")
	for i, param := range f.Parameters {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(param.Name)
		if param.Optional {
			builder.WriteString("?")
		}
		if param.Type != "" {
			builder.WriteString(": ")
			builder.WriteString(param.Type)
		}
	}
	builder.WriteString(")")
	if f.ReturnType != "" {
		builder.WriteString(": ")
		builder.WriteString(f.ReturnType)
	}
	return builder.String()
}

// Location represents source location of an element body
type Location struct {
	Start int `yaml:"start"`
	End   int `yaml:"end"`
}
