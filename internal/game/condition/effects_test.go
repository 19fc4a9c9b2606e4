package condition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/cory-johannsen/gametable/internal/game/condition"
)

func TestAggregate_MostRestrictiveWins(t *testing.T) {
	tests := []struct {
		name string
		sets []condition.EffectSet
		key  string
		want condition.Effect
	}{
		{
			name: "auto_fail beats disadvantage",
			sets: []condition.EffectSet{
				{"saving_throws": condition.RollEffect(condition.RollDisadvantage)},
				{"saving_throws": condition.RollEffect(condition.RollAutoFail)},
			},
			key:  "saving_throws",
			want: condition.RollEffect(condition.RollAutoFail),
		},
		{
			name: "auto_fail survives later disadvantage",
			sets: []condition.EffectSet{
				{"saving_throws": condition.RollEffect(condition.RollAutoFail)},
				{"saving_throws": condition.RollEffect(condition.RollDisadvantage)},
			},
			key:  "saving_throws",
			want: condition.RollEffect(condition.RollAutoFail),
		},
		{
			name: "disadvantage beats advantage",
			sets: []condition.EffectSet{
				{"attack_rolls": condition.RollEffect(condition.RollAdvantage)},
				{"attack_rolls": condition.RollEffect(condition.RollDisadvantage)},
			},
			key:  "attack_rolls",
			want: condition.RollEffect(condition.RollDisadvantage),
		},
		{
			name: "numeric takes the minimum",
			sets: []condition.EffectSet{
				{"speed": condition.NumericEffect(15)},
				{"speed": condition.NumericEffect(0)},
				{"speed": condition.NumericEffect(30)},
			},
			key:  "speed",
			want: condition.NumericEffect(0),
		},
		{
			name: "bool flags OR together",
			sets: []condition.EffectSet{
				{"incapacitated": condition.BoolEffect(false)},
				{"incapacitated": condition.BoolEffect(true)},
			},
			key:  "incapacitated",
			want: condition.BoolEffect(true),
		},
		{
			name: "action none wins",
			sets: []condition.EffectSet{
				{"reactions": condition.ActionEffect(condition.ActionNone)},
				{"reactions": condition.ActionEffect(condition.ActionNormal)},
			},
			key:  "reactions",
			want: condition.ActionEffect(condition.ActionNone),
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := condition.Aggregate(tt.sets, nil)
			assert.Equal(t, tt.want, got.Effects[tt.key])
		})
	}
}

func TestAggregate_DisjointKeysAllKept(t *testing.T) {
	got := condition.Aggregate([]condition.EffectSet{
		{"attack_rolls": condition.RollEffect(condition.RollDisadvantage)},
		{"speed": condition.NumericEffect(0), "incapacitated": condition.BoolEffect(true)},
	}, []string{"poisoned", "paralyzed"})

	assert.Len(t, got.Effects, 3)
	assert.Equal(t, []string{"poisoned", "paralyzed"}, got.Sources)
}

func TestEffectSet_UnmarshalYAML(t *testing.T) {
	var set condition.EffectSet
	err := yaml.Unmarshal([]byte(`
attack_rolls: disadvantage
saving_throws: auto_fail
speed: 0
incapacitated: true
actions: none
`), &set)
	require.NoError(t, err)

	assert.Equal(t, condition.RollEffect(condition.RollDisadvantage), set["attack_rolls"])
	assert.Equal(t, condition.RollEffect(condition.RollAutoFail), set["saving_throws"])
	assert.Equal(t, condition.NumericEffect(0), set["speed"])
	assert.Equal(t, condition.BoolEffect(true), set["incapacitated"])
	assert.Equal(t, condition.ActionEffect(condition.ActionNone), set["actions"])
}

func TestEffectSet_UnmarshalYAML_RejectsUnknownModes(t *testing.T) {
	var set condition.EffectSet
	err := yaml.Unmarshal([]byte("attack_rolls: sideways"), &set)
	assert.Error(t, err)

	err = yaml.Unmarshal([]byte("actions: disadvantage"), &set)
	assert.Error(t, err, "roll modes are not valid action-economy values")
}

func TestCheckConflicts(t *testing.T) {
	t.Run("duplicate", func(t *testing.T) {
		got := condition.CheckConflicts([]string{"poisoned"}, "poisoned")
		require.Len(t, got, 1)
		assert.Equal(t, condition.ConflictDuplicate, got[0].Kind)
		assert.False(t, got[0].DeactivatesExisting)
	})

	t.Run("new supersedes existing", func(t *testing.T) {
		got := condition.CheckConflicts([]string{"incapacitated", "prone"}, "unconscious")
		require.Len(t, got, 2)
		for _, c := range got {
			assert.Equal(t, condition.ConflictSuperseded, c.Kind)
			assert.True(t, c.DeactivatesExisting)
		}
	})

	t.Run("existing supersedes new", func(t *testing.T) {
		got := condition.CheckConflicts([]string{"paralyzed"}, "incapacitated")
		require.Len(t, got, 1)
		assert.Equal(t, condition.ConflictSuperseded, got[0].Kind)
		assert.False(t, got[0].DeactivatesExisting, "the existing broader condition stays active")
	})

	t.Run("incompatible pair both directions", func(t *testing.T) {
		got := condition.CheckConflicts([]string{"invisible"}, "blinded")
		require.Len(t, got, 1)
		assert.Equal(t, condition.ConflictIncompatible, got[0].Kind)

		got = condition.CheckConflicts([]string{"blinded"}, "invisible")
		require.Len(t, got, 1)
		assert.Equal(t, condition.ConflictIncompatible, got[0].Kind)
	})

	t.Run("unrelated conditions coexist silently", func(t *testing.T) {
		got := condition.CheckConflicts([]string{"poisoned", "prone"}, "frightened")
		assert.Empty(t, got)
	})
}
