package graph

// Modifiers represents an ordered set of declaration modifiers (export, abstract, public, static, readonly, async ...)
type Modifiers []string

// Has returns true if modifier is present
func (m Modifiers) Has(modifier string) bool {
	for _, candidate := range m {
		if candidate == modifier {
			return true
		}
	}
	return false
}

// Clone returns a copy of the modifiers
func (m Modifiers) Clone() Modifiers {
	if m == nil {
		return nil
	}
	result := make(Modifiers, len(m))
	copy(result, m)
	return result
}

// Merge takes patch modifiers when the receiver is empty, or when override is requested and patch defines any
func (m *Modifiers) Merge(patch Modifiers, override bool) {
	if len(patch) == 0 {
		return
	}
	if len(*m) == 0 || override {
		*m = patch.Clone()
	}
}

// pick returns the merged value of a scalar attribute: gaps are filled from patch, override replaces.
func pick(base, patch string, override bool) string {
	if patch == "" {
		return base
	}
	if base == "" || override {
		return patch
	}
	return base
}

// pickList is pick for list attributes replaced as a whole
func pickList(base, patch []string, override bool) []string {
	if len(patch) == 0 {
		return base
	}
	if len(base) == 0 || override {
		result := make([]string, len(patch))
		copy(result, patch)
		return result
	}
	return base
}
