// Package phpfpm holds the naming convention for PHP-FPM service units
// and helpers shared by the inventory and ledger packages.
package phpfpm

import (
	"regexp"
	"sort"
	"strconv"
)

// UnitGlob matches every PHP-FPM service unit known to the service manager.
const UnitGlob = "php*-fpm"

// unitPattern is the canonical unit naming convention: php<major>.<minor>-fpm.
var unitPattern = regexp.MustCompile(`^php([0-9]+)\.([0-9]+)-fpm$`)

// IsUnit reports whether name follows the php<major>.<minor>-fpm convention.
func IsUnit(name string) bool {
	return unitPattern.MatchString(name)
}

// Sort orders unit names by numeric PHP version, ascending, in place.
// Names that do not follow the naming convention sort last, lexically.
func Sort(names []string) {
	sort.Slice(names, func(i, j int) bool {
		return compare(names[i], names[j]) < 0
	})
}

func compare(a, b string) int {
	amaj, amin, aok := version(a)
	bmaj, bmin, bok := version(b)
	switch {
	case aok && !bok:
		return -1
	case !aok && bok:
		return 1
	case !aok && !bok:
		if a < b {
			return -1
		} else if a > b {
			return 1
		}
		return 0
	}
	if amaj != bmaj {
		return amaj - bmaj
	}
	return amin - bmin
}

func version(name string) (major, minor int, ok bool) {
	m := unitPattern.FindStringSubmatch(name)
	if m == nil {
		return 0, 0, false
	}
	major, _ = strconv.Atoi(m[1])
	minor, _ = strconv.Atoi(m[2])
	return major, minor, true
}
