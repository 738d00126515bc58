// Package reconcile folds an ordered collection of keyed elements into another one.
//
// Every element of the patch collection is matched by identity key against the
// base collection. A match is merged into the base element in place, an element
// without a match is appended at the end of the base collection. Base elements
// are never removed and keep their relative order.
package reconcile

// Element is a collection member that can identify itself and absorb a peer of the same kind.
type Element[E any] interface {
	// Key returns the identity key used to match elements across collections
	Key() string
	// Merge folds patch into the receiver; override decides conflicting scalar values
	Merge(patch E, override bool)
}

// Collection reconciles patch into base, forwarding override to every matched pair.
func Collection[E Element[E]](base *[]E, patch []E, override bool) {
	CollectionFunc(base, patch, func(e E) string {
		return e.Key()
	}, func(baseElement, patchElement E) {
		baseElement.Merge(patchElement, override)
	})
}

// CollectionFunc reconciles patch into base using the supplied key extractor and merge function.
//
// A patch element is merged into every base element sharing its key, not just the
// first one, so duplicate identities in the base all absorb the same patch content.
// The base is scanned with its current content, which includes patch elements
// appended earlier in the same call.
func CollectionFunc[E any](base *[]E, patch []E, key func(E) string, merge func(baseElement, patchElement E)) {
	if len(patch) == 0 {
		return
	}
	if len(*base) == 0 {
		*base = append(*base, patch...)
		return
	}
	for _, patchElement := range patch {
		patchKey := key(patchElement)
		exists := false
		for _, baseElement := range *base {
			if key(baseElement) == patchKey {
				merge(baseElement, patchElement)
				exists = true
			}
		}
		if !exists {
			*base = append(*base, patchElement)
		}
	}
}

// Keys returns the identity keys of elements in collection order.
func Keys[E any](elements []E, key func(E) string) []string {
	result := make([]string, 0, len(elements))
	for _, element := range elements {
		result = append(result, key(element))
	}
	return result
}
