package merger

import (
	"github.com/viant/codemerge/graph"
	"github.com/viant/codemerge/reconcile"
)

// MergeClass merges a matched class pair.
// With override, base modifiers and heritage are replaced as a whole by the patch ones.
// Decorators, properties, the constructor and methods are then merged, in that order.
func MergeClass(base, patch *graph.Class, override bool) {
	if base == nil || patch == nil {
		return
	}
	if override {
		base.Modifiers = patch.Modifiers.Clone()
		base.Heritage = patch.Heritage.Clone()
	}
	MergeDecorators(&base.Decorators, patch.Decorators, override)
	MergeProperties(&base.Properties, patch.Properties, override)
	MergeConstructor(base, patch, override)
	MergeMethods(&base.Methods, patch.Methods, override)
}

// MergeDecorators merges decorators keyed by name
func MergeDecorators(base *[]*graph.Decorator, patch []*graph.Decorator, override bool) {
	reconcile.Collection(base, patch, override)
}

// MergeProperties merges properties keyed by name
func MergeProperties(base *[]*graph.Property, patch []*graph.Property, override bool) {
	reconcile.Collection(base, patch, override)
}

// MergeConstructor merges the constructor slot of a class pair with the method merge.
// An empty base slot takes the patch constructor.
func MergeConstructor(base, patch *graph.Class, override bool) {
	switch {
	case patch.Constructor == nil:
	case base.Constructor == nil:
		base.Constructor = patch.Constructor
	default:
		MergeMethod(base.Constructor, patch.Constructor, override)
	}
}

// MergeMethods merges methods keyed by name
func MergeMethods(base *[]*graph.Function, patch []*graph.Function, override bool) {
	reconcile.CollectionFunc(base, patch, (*graph.Function).Key, func(baseMethod, patchMethod *graph.Function) {
		MergeMethod(baseMethod, patchMethod, override)
	})
}

// MergeMethod merges a matched method pair
func MergeMethod(base, patch *graph.Function, override bool) {
	base.Merge(patch, override)
}
