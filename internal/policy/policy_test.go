package policy

import (
	"fmt"
	"reflect"
	"testing"
)

func TestValidateDisableRequest_EmptyRequestRefused(t *testing.T) {
	d := ValidateDisableRequest([]string{"php8.1-fpm"}, nil)
	if d.Approved {
		t.Error("Approved = true, want false for empty request")
	}
	if d.Reason == "" {
		t.Error("Reason empty, want explanatory refusal")
	}
}

func TestValidateDisableRequest_UnknownNamesDropped(t *testing.T) {
	inv := []string{"php7.4-fpm", "php8.1-fpm", "php8.2-fpm"}
	d := ValidateDisableRequest(inv, []string{"php7.4-fpm", "php9.9-fpm"})

	if !d.Approved {
		t.Fatalf("Approved = false (%s), want true", d.Reason)
	}
	if want := []string{"php7.4-fpm"}; !reflect.DeepEqual(d.Units, want) {
		t.Errorf("Units = %v, want %v", d.Units, want)
	}
	if want := []string{"php9.9-fpm"}; !reflect.DeepEqual(d.Dropped, want) {
		t.Errorf("Dropped = %v, want %v", d.Dropped, want)
	}
}

func TestValidateDisableRequest_AllUnknownRefused(t *testing.T) {
	d := ValidateDisableRequest([]string{"php8.1-fpm", "php8.2-fpm"}, []string{"php9.9-fpm"})
	if d.Approved {
		t.Error("Approved = true, want false when no requested unit resolves")
	}
}

func TestValidateDisableRequest_GuardrailTotality(t *testing.T) {
	// For every inventory size N >= 1, requesting all N units is refused.
	for n := 1; n <= 6; n++ {
		var inv []string
		for i := 0; i < n; i++ {
			inv = append(inv, fmt.Sprintf("php8.%d-fpm", i))
		}
		d := ValidateDisableRequest(inv, inv)
		if d.Approved {
			t.Errorf("N=%d: Approved = true, want refusal when requesting all units", n)
		}
		if d.Reason == "" {
			t.Errorf("N=%d: Reason empty, want explanatory refusal", n)
		}
	}
}

func TestValidateDisableRequest_SoleUnitRefused(t *testing.T) {
	d := ValidateDisableRequest([]string{"php8.2-fpm"}, []string{"php8.2-fpm"})
	if d.Approved {
		t.Error("Approved = true, want refusal for the sole installed unit")
	}
}

func TestValidateDisableRequest_PartialSetsApproved(t *testing.T) {
	// For every inventory size N >= 2, requesting 1..N-1 units is approved.
	for n := 2; n <= 6; n++ {
		var inv []string
		for i := 0; i < n; i++ {
			inv = append(inv, fmt.Sprintf("php8.%d-fpm", i))
		}
		for k := 1; k < n; k++ {
			d := ValidateDisableRequest(inv, inv[:k])
			if !d.Approved {
				t.Errorf("N=%d k=%d: Approved = false (%s), want true", n, k, d.Reason)
			}
			if !reflect.DeepEqual(d.Units, inv[:k]) {
				t.Errorf("N=%d k=%d: Units = %v, want %v", n, k, d.Units, inv[:k])
			}
		}
	}
}

func TestValidateDisableRequest_DuplicatesCollapse(t *testing.T) {
	inv := []string{"php7.4-fpm", "php8.1-fpm"}
	d := ValidateDisableRequest(inv, []string{"php7.4-fpm", "php7.4-fpm", "php7.4-fpm"})

	if !d.Approved {
		t.Fatalf("Approved = false (%s), want true", d.Reason)
	}
	if want := []string{"php7.4-fpm"}; !reflect.DeepEqual(d.Units, want) {
		t.Errorf("Units = %v, want %v", d.Units, want)
	}
}

func TestValidateDisableRequest_DuplicatesDoNotEvadeGuardrail(t *testing.T) {
	// Duplicates of one unit must not count as distinct entries, and the
	// deduplicated set covering the inventory must still refuse.
	inv := []string{"php7.4-fpm", "php8.1-fpm"}
	d := ValidateDisableRequest(inv, []string{"php7.4-fpm", "php8.1-fpm", "php7.4-fpm"})
	if d.Approved {
		t.Error("Approved = true, want refusal when deduplicated set covers inventory")
	}
}
