// Package condition_test content completeness checks for the shipped
// condition library.
package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cory-johannsen/gametable/internal/game/condition"
)

// TestContent_LibraryLoads verifies the shipped condition YAML parses
// under strict field checking.
func TestContent_LibraryLoads(t *testing.T) {
	lib, err := condition.LoadDirectory("../../../content/conditions")
	require.NoError(t, err, "content/conditions should load without error")
	require.NotEmpty(t, lib.All())

	for _, name := range []string{
		"blinded", "charmed", "deafened", "exhaustion", "frightened",
		"grappled", "incapacitated", "invisible", "paralyzed",
		"petrified", "poisoned", "prone", "restrained", "stunned",
		"unconscious",
	} {
		_, ok := lib.Get(name)
		assert.True(t, ok, "condition %q should be present", name)
	}
}

// TestContent_EveryEntryHasDescriptionAndEffects guards against empty
// definitions slipping into the library.
func TestContent_EveryEntryHasDescriptionAndEffects(t *testing.T) {
	lib, err := condition.LoadDirectory("../../../content/conditions")
	require.NoError(t, err)

	for _, entry := range lib.All() {
		assert.NotEmpty(t, entry.Description, "condition %q has no description", entry.Name)
		assert.NotEmpty(t, entry.Effects, "condition %q has no effects", entry.Name)
		assert.NotEmpty(t, entry.Icon, "condition %q has no icon", entry.Name)
	}
}

// TestContent_HierarchyNamesResolve verifies every condition referenced
// by the conflict rules exists in the shipped library.
func TestContent_HierarchyNamesResolve(t *testing.T) {
	lib, err := condition.LoadDirectory("../../../content/conditions")
	require.NoError(t, err)

	// Applying unconscious over incapacitated must supersede it, which
	// only holds when both names resolve.
	warnings := condition.CheckConflicts([]string{"incapacitated"}, "unconscious")
	require.Len(t, warnings, 1)
	for _, name := range []string{warnings[0].Existing, warnings[0].Applied} {
		_, ok := lib.Get(name)
		assert.True(t, ok, "conflict rule references unknown condition %q", name)
	}
}
