package bundles

import (
	"fmt"
)

// MergePolicy decides how flags of an identifier present on both sides of a
// merge are combined.
type MergePolicy string

const (
	// PolicyUnion keeps every environment of both sides. An environment set
	// on both sides resolves to enabled.
	PolicyUnion MergePolicy = "union"

	// PolicyLastWins keeps every environment of both sides, incoming flags
	// overriding existing ones.
	PolicyLastWins MergePolicy = "last-wins"
)

// ParsePolicy validates a policy name. The empty string selects PolicyUnion.
func ParsePolicy(s string) (MergePolicy, error) {
	switch p := MergePolicy(s); p {
	case "":
		return PolicyUnion, nil
	case PolicyUnion, PolicyLastWins:
		return p, nil
	default:
		return "", fmt.Errorf("unknown merge policy %q (expected %q or %q)", s, PolicyUnion, PolicyLastWins)
	}
}

// Merge returns existing with incoming merged in. Existing identifiers keep
// their position, new ones are appended in incoming order. Identifiers absent
// from incoming are left untouched. Neither argument is modified.
//
// This differs from registries generated by Symfony Flex, which list incoming
// entries ahead of existing ones.
func Merge(existing, incoming *Registry, policy MergePolicy) *Registry {
	merged := NewRegistry(existing.Bundles()...)

	for _, in := range incoming.Bundles() {
		current, ok := merged.Get(in.ID)
		if !ok {
			merged.Set(in)
			continue
		}

		for _, flag := range in.Envs {
			_, shared := current.Env(flag.Env)
			switch {
			case !shared:
				current.setEnv(flag.Env, flag.Enabled)
			case policy == PolicyLastWins:
				current.setEnv(flag.Env, flag.Enabled)
			default:
				current.setEnv(flag.Env, true)
			}
		}
		merged.Set(current)
	}

	return merged
}

// Remove returns existing without the given identifiers. Entries are removed
// wholesale whatever their environments.
func Remove(existing *Registry, ids []string) *Registry {
	out := NewRegistry(existing.Bundles()...)
	for _, id := range ids {
		out.Delete(id)
	}
	return out
}
