package graph

// Variable represents a top-level variable statement declaring a single identifier
type Variable struct {
	Name        string    `yaml:"name"`
	Kind        string    `yaml:"kind,omitempty"` // const, let or var
	Comment     string    `yaml:"comment,omitempty"`
	Modifiers   Modifiers `yaml:"modifiers,omitempty"`
	Type        string    `yaml:"type,omitempty"`
	Initializer string    `yaml:"initializer,omitempty"`
}

// Key returns variable name
func (v *Variable) Key() string {
	return v.Name
}

// IsConst returns true for const declarations
func (v *Variable) IsConst() bool {
	return v.Kind == "const"
}

// Merge merges patch variable
func (v *Variable) Merge(patch *Variable, override bool) {
	if patch == nil {
		return
	}
	v.Kind = pick(v.Kind, patch.Kind, override)
	v.Comment = pick(v.Comment, patch.Comment, override)
	v.Modifiers.Merge(patch.Modifiers, override)
	v.Type = pick(v.Type, patch.Type, override)
	v.Initializer = pick(v.Initializer, patch.Initializer, override)
}
