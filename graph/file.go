package graph

// File represents a compilation unit model with its top-level declarations
type File struct {
	Path      string      `yaml:"path,omitempty"` // File path
	Imports   []*Import   `yaml:"imports,omitempty"`
	Exports   []*Export   `yaml:"exports,omitempty"`
	Variables []*Variable `yaml:"variables,omitempty"`
	Functions []*Function `yaml:"functions,omitempty"`
	Classes   []*Class    `yaml:"classes,omitempty"`
}

// LookupImport retrieves the first import clause of the given module
func (f *File) LookupImport(module string) *Import {
	for _, candidate := range f.Imports {
		if candidate.Module == module {
			return candidate
		}
	}
	return nil
}

// LookupExport retrieves the first export clause of the given module
func (f *File) LookupExport(module string) *Export {
	for _, candidate := range f.Exports {
		if candidate.Module == module {
			return candidate
		}
	}
	return nil
}

// LookupVariable retrieves a variable by name
func (f *File) LookupVariable(name string) *Variable {
	for _, candidate := range f.Variables {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// LookupFunction retrieves a function by name
func (f *File) LookupFunction(name string) *Function {
	for _, candidate := range f.Functions {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// LookupClass retrieves a class by name
func (f *File) LookupClass(name string) *Class {
	for _, candidate := range f.Classes {
		if candidate.Name == name {
			return candidate
		}
	}
	return nil
}

// AddImport adds an import clause
func (f *File) AddImport(clause *Import) {
	f.Imports = append(f.Imports, clause)
}

// AddExport adds an export clause
func (f *File) AddExport(clause *Export) {
	f.Exports = append(f.Exports, clause)
}

// AddVariable adds a variable
func (f *File) AddVariable(variable *Variable) {
	f.Variables = append(f.Variables, variable)
}

// AddFunction adds a function
func (f *File) AddFunction(function *Function) {
	f.Functions = append(f.Functions, function)
}

// AddClass adds a class
func (f *File) AddClass(class *Class) {
	f.Classes = append(f.Classes, class)
}
