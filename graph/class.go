package graph

// Heritage represents class extends/implements clause
type Heritage struct {
	Extends    string   `yaml:"extends,omitempty"`
	Implements []string `yaml:"implements,omitempty"`
}

// Clone creates a copy of the heritage clause
func (h *Heritage) Clone() *Heritage {
	if h == nil {
		return nil
	}
	result := &Heritage{Extends: h.Extends}
	if len(h.Implements) > 0 {
		result.Implements = make([]string, len(h.Implements))
		copy(result.Implements, h.Implements)
	}
	return result
}

// Class represents a class declaration
type Class struct {
	Name        string       `yaml:"name"`
	Comment     string       `yaml:"comment,omitempty"`
	Modifiers   Modifiers    `yaml:"modifiers,omitempty"`
	TypeParams  []string     `yaml:"typeParams,omitempty"`
	Heritage    *Heritage    `yaml:"heritage,omitempty"`
	Decorators  []*Decorator `yaml:"decorators,omitempty"`
	Properties  []*Property  `yaml:"properties,omitempty"`
	Constructor *Function    `yaml:"constructor,omitempty"`
	Methods     []*Function  `yaml:"methods,omitempty"`
}

// Key returns class name
func (c *Class) Key() string {
	return c.Name
}

// Extends returns extended class name
func (c *Class) Extends() string {
	if c.Heritage == nil {
		return ""
	}
	return c.Heritage.Extends
}

// LookupDecorator returns the first decorator with the given name
func (c *Class) LookupDecorator(name string) *Decorator {
	for _, decorator := range c.Decorators {
		if decorator.Name == name {
			return decorator
		}
	}
	return nil
}

// LookupProperty returns the first property with the given name
func (c *Class) LookupProperty(name string) *Property {
	for _, property := range c.Properties {
		if property.Name == name {
			return property
		}
	}
	return nil
}

// LookupMethod returns the first method with the given name
func (c *Class) LookupMethod(name string) *Function {
	for _, method := range c.Methods {
		if method.Name == name {
			return method
		}
	}
	return nil
}

// AddDecorator adds a decorator to the class
func (c *Class) AddDecorator(decorator *Decorator) {
	c.Decorators = append(c.Decorators, decorator)
}

// AddProperty adds a property to the class
func (c *Class) AddProperty(property *Property) {
	c.Properties = append(c.Properties, property)
}

// AddMethod adds a method to the class
func (c *Class) AddMethod(method *Function) {
	c.Methods = append(c.Methods, method)
}
