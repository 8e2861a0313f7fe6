// Package policy implements the guardrail that keeps at least one PHP-FPM
// unit enabled on the host. It is pure: no service manager or filesystem
// access, only the inventory and the requested set.
package policy

import "fmt"

// Decision is the outcome of a guardrail evaluation.
type Decision struct {
	// Approved is true if the request passed every check.
	Approved bool

	// Units is the validated, deduplicated disable set, in request order.
	// Empty unless Approved.
	Units []string

	// Reason explains a refusal in human-readable terms. Empty if Approved.
	Reason string

	// Dropped lists requested names that did not resolve to an inventory
	// member. Populated on both outcomes.
	Dropped []string
}

// ValidateDisableRequest decides whether the requested units may be
// disabled given the live inventory. It refuses empty requests, drops
// unknown names, and refuses unconditionally when the validated set would
// cover the whole inventory. There is no override: the refusal holds even
// for an inventory of one.
func ValidateDisableRequest(inventory, requested []string) Decision {
	if len(requested) == 0 {
		return Decision{Reason: "nothing selected"}
	}

	known := make(map[string]bool, len(inventory))
	for _, name := range inventory {
		known[name] = true
	}

	seen := make(map[string]bool, len(requested))
	var valid, dropped []string
	for _, name := range requested {
		if seen[name] {
			continue
		}
		seen[name] = true
		if known[name] {
			valid = append(valid, name)
		} else {
			dropped = append(dropped, name)
		}
	}

	if len(valid) == 0 {
		return Decision{Reason: "no requested unit matches an installed PHP-FPM service", Dropped: dropped}
	}

	if len(valid) >= len(inventory) {
		return Decision{
			Reason: fmt.Sprintf("refusing to disable all %d installed PHP-FPM services; at least one must remain enabled",
				len(inventory)),
			Dropped: dropped,
		}
	}

	return Decision{Approved: true, Units: valid, Dropped: dropped}
}
