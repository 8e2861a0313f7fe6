package flow

import (
	"reflect"
	"testing"
)

func TestResolveSelection_Basic(t *testing.T) {
	listed := []string{"php7.4-fpm", "php8.1-fpm", "php8.2-fpm"}

	units, warnings := resolveSelection("1 3", listed)
	if want := []string{"php7.4-fpm", "php8.2-fpm"}; !reflect.DeepEqual(units, want) {
		t.Errorf("units = %v, want %v", units, want)
	}
	if len(warnings) != 0 {
		t.Errorf("warnings = %v, want none", warnings)
	}
}

func TestResolveSelection_CommaSeparated(t *testing.T) {
	listed := []string{"php7.4-fpm", "php8.1-fpm"}

	units, _ := resolveSelection("1,2", listed)
	if want := []string{"php7.4-fpm", "php8.1-fpm"}; !reflect.DeepEqual(units, want) {
		t.Errorf("units = %v, want %v", units, want)
	}
}

func TestResolveSelection_InvalidTokensDroppedValidKept(t *testing.T) {
	listed := []string{"php7.4-fpm", "php8.1-fpm"}

	units, warnings := resolveSelection("0 1 nine 5 2", listed)
	if want := []string{"php7.4-fpm", "php8.1-fpm"}; !reflect.DeepEqual(units, want) {
		t.Errorf("units = %v, want %v", units, want)
	}
	if len(warnings) != 3 {
		t.Errorf("warnings = %v, want 3 (for 0, nine, 5)", warnings)
	}
}

func TestResolveSelection_DuplicateIndicesCollapse(t *testing.T) {
	listed := []string{"php7.4-fpm", "php8.1-fpm"}

	units, _ := resolveSelection("2 2 2", listed)
	if want := []string{"php8.1-fpm"}; !reflect.DeepEqual(units, want) {
		t.Errorf("units = %v, want %v", units, want)
	}
}

func TestResolveSelection_OrderFollowsInput(t *testing.T) {
	listed := []string{"php7.4-fpm", "php8.1-fpm", "php8.2-fpm"}

	units, _ := resolveSelection("3 1", listed)
	if want := []string{"php8.2-fpm", "php7.4-fpm"}; !reflect.DeepEqual(units, want) {
		t.Errorf("units = %v, want %v", units, want)
	}
}
