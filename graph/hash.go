package graph

import (
	"hash"
	"strconv"

	"github.com/minio/highwayhash"
)

var key = []byte("0123456789ABCDEF0123456789ABCDEF")

// Fingerprint returns content hash of the file model, file path is not part of the fingerprint
func (f *File) Fingerprint() (uint64, error) {
	hasher, err := highwayhash.New64(key)
	if err != nil {
		return 0, err
	}
	d := &digest{hash: hasher}
	d.file(f)
	return hasher.Sum64(), nil
}

// digest writes a canonical, separator delimited form of model elements to a hash
type digest struct {
	hash hash.Hash64
}

func (d *digest) write(values ...string) {
	for _, value := range values {
		_, _ = d.hash.Write([]byte(value))
		_, _ = d.hash.Write([]byte{0})
	}
}

func (d *digest) list(tag string, values []string) {
	d.write(tag, strconv.Itoa(len(values)))
	d.write(values...)
}

func (d *digest) flag(tag string, value bool) {
	d.write(tag, strconv.FormatBool(value))
}

func (d *digest) file(f *File) {
	d.write("imports", strconv.Itoa(len(f.Imports)))
	for _, clause := range f.Imports {
		d.write("import", clause.Module, clause.Default, clause.Namespace)
		d.flag("typeOnly", clause.TypeOnly)
		d.specifiers(clause.Named)
	}
	d.write("exports", strconv.Itoa(len(f.Exports)))
	for _, clause := range f.Exports {
		d.write("export", clause.Module, clause.Namespace)
		d.flag("all", clause.All)
		d.specifiers(clause.Named)
	}
	d.write("variables", strconv.Itoa(len(f.Variables)))
	for _, variable := range f.Variables {
		d.write("variable", variable.Name, variable.Kind, variable.Comment, variable.Type, variable.Initializer)
		d.list("modifiers", variable.Modifiers)
	}
	d.write("functions", strconv.Itoa(len(f.Functions)))
	for _, function := range f.Functions {
		d.function(function)
	}
	d.write("classes", strconv.Itoa(len(f.Classes)))
	for _, class := range f.Classes {
		d.class(class)
	}
}

func (d *digest) specifiers(specifiers []*Specifier) {
	d.write("specifiers", strconv.Itoa(len(specifiers)))
	for _, spec := range specifiers {
		d.write(spec.Name, spec.Alias)
	}
}

func (d *digest) decorators(decorators []*Decorator) {
	d.write("decorators", strconv.Itoa(len(decorators)))
	for _, decorator := range decorators {
		d.write("decorator", decorator.Name)
		d.list("arguments", decorator.Arguments)
	}
}

func (d *digest) class(c *Class) {
	d.write("class", c.Name, c.Comment)
	d.list("modifiers", c.Modifiers)
	d.list("typeParams", c.TypeParams)
	if c.Heritage == nil {
		d.write("heritage", "-")
	} else {
		d.write("extends", c.Heritage.Extends)
		d.list("implements", c.Heritage.Implements)
	}
	d.decorators(c.Decorators)
	d.write("properties", strconv.Itoa(len(c.Properties)))
	for _, property := range c.Properties {
		d.write("property", property.Name, property.Comment, property.Type, property.Initializer)
		d.flag("optional", property.Optional)
		d.list("modifiers", property.Modifiers)
		d.decorators(property.Decorators)
	}
	if c.Constructor == nil {
		d.write("constructor", "-")
	} else {
		d.function(c.Constructor)
	}
	d.write("methods", strconv.Itoa(len(c.Methods)))
	for _, method := range c.Methods {
		d.function(method)
	}
}

func (d *digest) function(f *Function) {
	d.write("function", f.Name, f.Comment, f.ReturnType, f.Body)
	d.list("modifiers", f.Modifiers)
	d.list("typeParams", f.TypeParams)
	d.decorators(f.Decorators)
	d.write("parameters", strconv.Itoa(len(f.Parameters)))
	for _, param := range f.Parameters {
		d.write("parameter", param.Name, param.Type, param.Default)
		d.flag("optional", param.Optional)
		d.list("modifiers", param.Modifiers)
		d.decorators(param.Decorators)
	}
	d.location(f.Location)
}

func (d *digest) location(location *Location) {
	if location == nil {
		d.write("location", "-")
		return
	}
	d.write("location", strconv.Itoa(location.Start), strconv.Itoa(location.End))
}
