// Package merger reconciles a patch code model into a base code model.
//
// The base model is mutated in place and becomes the merged result. Elements are
// matched by identity key (module path or declared name), matched pairs are merged
// recursively and patch-only elements are appended in patch order. The override flag
// is forwarded unchanged to every level: when true, conflicting scalar content is
// taken from the patch, otherwise the base content is kept and only gaps are filled.
//
// A patch model is consumed by the merge: its elements may be appended to the base
// by reference, so it must not be reused afterwards.
package merger

import (
	"github.com/viant/codemerge/graph"
	"github.com/viant/codemerge/reconcile"
)

// MergeFile merges patch file into base file: imports, exports, classes, variables and functions, in that order
func MergeFile(base, patch *graph.File, override bool) {
	if base == nil || patch == nil {
		return
	}
	MergeImports(&base.Imports, patch.Imports)
	MergeExports(&base.Exports, patch.Exports)
	MergeClasses(&base.Classes, patch.Classes, override)
	MergeVariables(&base.Variables, patch.Variables, override)
	MergeFunctions(&base.Functions, patch.Functions, override)
}

// MergeImports merges import clauses keyed by module path
func MergeImports(base *[]*graph.Import, patch []*graph.Import) {
	reconcile.CollectionFunc(base, patch, (*graph.Import).Key, (*graph.Import).Merge)
}

// MergeExports merges export clauses keyed by module path
func MergeExports(base *[]*graph.Export, patch []*graph.Export) {
	reconcile.CollectionFunc(base, patch, (*graph.Export).Key, (*graph.Export).Merge)
}

// MergeClasses matches classes by name and merges every matched pair with MergeClass
func MergeClasses(base *[]*graph.Class, patch []*graph.Class, override bool) {
	reconcile.CollectionFunc(base, patch, (*graph.Class).Key, func(baseClass, patchClass *graph.Class) {
		MergeClass(baseClass, patchClass, override)
	})
}

// MergeVariables merges top-level variables keyed by name
func MergeVariables(base *[]*graph.Variable, patch []*graph.Variable, override bool) {
	reconcile.Collection(base, patch, override)
}

// MergeFunctions merges top-level functions keyed by name
func MergeFunctions(base *[]*graph.Function, patch []*graph.Function, override bool) {
	reconcile.CollectionFunc(base, patch, (*graph.Function).Key, func(baseFunction, patchFunction *graph.Function) {
		MergeFunction(baseFunction, patchFunction, override)
	})
}

// MergeFunction merges a matched pair of top-level functions
func MergeFunction(base, patch *graph.Function, override bool) {
	base.Merge(patch, override)
}
