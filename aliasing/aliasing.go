// Package aliasing finds violations of the "mutability xor aliasing" rule
// for references to variables, the rule Rust's borrow checker enforces: a
// variable may have many immutable references or one mutable reference, but
// never a mutable reference alongside any other reference.
package aliasing

import "strconv"

// Mutability says whether a reference allows mutation.
type Mutability int

const (
	Immutable Mutability = iota
	Mutable
)

var mutabilities = [...]string{
	Immutable: "immutable",
	Mutable:   "mutable",
}

func (m Mutability) String() string {
	s := ""
	if 0 <= int(m) && int(m) < len(mutabilities) {
		s = mutabilities[m]
	}
	if s == "" {
		s = "mutability(" + strconv.Itoa(int(m)) + ")"
	}
	return s
}

// Reference is a single reference to a variable.
type Reference[T comparable] struct {
	Variable   T
	Mutability Mutability
}

// refSetKind classifies all references seen so far for one variable.
type refSetKind int

const (
	// noRefs: no references yet.
	noRefs refSetKind = iota
	// aliased: one or more references, all immutable.
	aliased
	// mutable: exactly one reference, and it is mutable.
	mutable
	// mutablyAliased: two or more references with at least one mutable,
	// which the rule forbids.
	mutablyAliased
)

// add returns the classification after one more reference of the given
// mutability.
func (k refSetKind) add(m Mutability) refSetKind {
	switch k {
	case noRefs:
		if m == Mutable {
			return mutable
		}
		return aliased
	case aliased:
		if m == Mutable {
			return mutablyAliased
		}
		return aliased
	default:
		// Any reference added to a mutable or mutably aliased set keeps a
		// mutable reference aliased.
		return mutablyAliased
	}
}

// Violations returns the variables that are mutably aliased: referenced two
// or more times with at least one of the references mutable. The order of
// the result is unspecified.
func Violations[T comparable](refs []Reference[T]) []T {
	kinds := make(map[T]refSetKind, len(refs))
	for _, ref := range refs {
		kinds[ref.Variable] = kinds[ref.Variable].add(ref.Mutability)
	}

	var violations []T
	for variable, kind := range kinds {
		if kind == mutablyAliased {
			violations = append(violations, variable)
		}
	}
	return violations
}
