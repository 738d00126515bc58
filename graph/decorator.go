package graph

// Decorator represents a decorator annotation (e.g. @Input(), @Component({...}))
type Decorator struct {
	Name      string   `yaml:"name"`
	Arguments []string `yaml:"arguments,omitempty"` // raw argument expressions
}

// NewDecorator creates a decorator
func NewDecorator(name string, args ...string) *Decorator {
	return &Decorator{Name: name, Arguments: args}
}

// Key returns decorator name
func (d *Decorator) Key() string {
	return d.Name
}

// Merge merges patch decorator arguments
func (d *Decorator) Merge(patch *Decorator, override bool) {
	if patch == nil {
		return
	}
	d.Arguments = pickList(d.Arguments, patch.Arguments, override)
}
