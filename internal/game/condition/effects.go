// Package condition implements the status-condition engine: the static
// condition library, conflict resolution, mechanical-effect aggregation,
// and round-based duration advancement.
package condition

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// EffectKind discriminates the tagged variants of a mechanical effect
// value so merging is exhaustive rather than stringly-typed.
type EffectKind int

const (
	// KindRoll covers d20-roll keys (attack_rolls, ability_checks,
	// saving_throws and per-ability variants).
	KindRoll EffectKind = iota
	// KindNumeric covers numeric overrides such as speed.
	KindNumeric
	// KindBool covers boolean flags such as incapacitated or
	// attacks_against_advantage.
	KindBool
	// KindAction covers action-economy keys (actions, reactions).
	KindAction
)

// RollMode is the value space for KindRoll effects.
type RollMode string

const (
	RollAdvantage    RollMode = "advantage"
	RollDisadvantage RollMode = "disadvantage"
	RollAutoFail     RollMode = "auto_fail"
)

// ActionMode is the value space for KindAction effects.
type ActionMode string

const (
	// ActionNone means the action type is unavailable.
	ActionNone ActionMode = "none"
	// ActionNormal is the unrestricted default.
	ActionNormal ActionMode = "normal"
)

// Effect is one tagged mechanical-effect value. Exactly the field selected
// by Kind is meaningful.
type Effect struct {
	Kind   EffectKind
	Roll   RollMode
	Num    int
	Flag   bool
	Action ActionMode
}

// RollEffect constructs a KindRoll effect.
func RollEffect(m RollMode) Effect { return Effect{Kind: KindRoll, Roll: m} }

// NumericEffect constructs a KindNumeric effect.
func NumericEffect(n int) Effect { return Effect{Kind: KindNumeric, Num: n} }

// BoolEffect constructs a KindBool effect.
func BoolEffect(b bool) Effect { return Effect{Kind: KindBool, Flag: b} }

// ActionEffect constructs a KindAction effect.
func ActionEffect(m ActionMode) Effect { return Effect{Kind: KindAction, Action: m} }

// merge folds next into prev under most-restrictive-wins precedence:
// auto_fail beats everything, disadvantage beats remaining roll values,
// numeric keys take the minimum, ActionNone beats other action values,
// boolean flags OR together. Mismatched kinds and the remaining roll
// combinations resolve to the most recently merged value.
func merge(prev, next Effect) Effect {
	if prev.Kind != next.Kind {
		return next
	}
	switch prev.Kind {
	case KindRoll:
		if prev.Roll == RollAutoFail || next.Roll == RollAutoFail {
			return RollEffect(RollAutoFail)
		}
		if prev.Roll == RollDisadvantage || next.Roll == RollDisadvantage {
			return RollEffect(RollDisadvantage)
		}
		return next
	case KindNumeric:
		if prev.Num < next.Num {
			return prev
		}
		return next
	case KindBool:
		return BoolEffect(prev.Flag || next.Flag)
	case KindAction:
		if prev.Action == ActionNone || next.Action == ActionNone {
			return ActionEffect(ActionNone)
		}
		return next
	default:
		return next
	}
}

// EffectSet maps effect keys (e.g. "attack_rolls", "speed",
// "incapacitated") to their tagged values.
type EffectSet map[string]Effect

// AggregatedMechanicalEffects is the merged effect set across every
// active condition on one participant.
type AggregatedMechanicalEffects struct {
	// Effects is the merged per-key effect map.
	Effects EffectSet
	// Sources lists the condition names that contributed, in merge order.
	Sources []string
}

// Aggregate folds the given effect sets (in order) into one merged set
// under most-restrictive-wins precedence.
func Aggregate(sets []EffectSet, sources []string) AggregatedMechanicalEffects {
	out := AggregatedMechanicalEffects{Effects: make(EffectSet), Sources: sources}
	for _, set := range sets {
		for key, eff := range set {
			if prev, ok := out.Effects[key]; ok {
				out.Effects[key] = merge(prev, eff)
			} else {
				out.Effects[key] = eff
			}
		}
	}
	return out
}

// actionKeys are the effect keys whose string values parse as ActionMode
// rather than RollMode.
var actionKeys = map[string]bool{
	"actions":   true,
	"reactions": true,
	"movement":  true,
}

// UnmarshalYAML decodes an effect map from its loose YAML form, e.g.:
//
//	attack_rolls: disadvantage
//	speed: 0
//	incapacitated: true
//	actions: none
//
// Strings become KindRoll (or KindAction for action-economy keys),
// integers KindNumeric, booleans KindBool.
func (s *EffectSet) UnmarshalYAML(node *yaml.Node) error {
	if node.Kind != yaml.MappingNode {
		return fmt.Errorf("condition: effects must be a mapping")
	}
	out := make(EffectSet, len(node.Content)/2)
	for i := 0; i+1 < len(node.Content); i += 2 {
		key := node.Content[i].Value
		val := node.Content[i+1]

		var b bool
		if err := val.Decode(&b); err == nil && (val.Value == "true" || val.Value == "false") {
			out[key] = BoolEffect(b)
			continue
		}
		var n int
		if err := val.Decode(&n); err == nil {
			out[key] = NumericEffect(n)
			continue
		}
		var str string
		if err := val.Decode(&str); err != nil {
			return fmt.Errorf("condition: effect %q has unsupported value: %w", key, err)
		}
		if actionKeys[key] {
			switch ActionMode(str) {
			case ActionNone, ActionNormal:
				out[key] = ActionEffect(ActionMode(str))
			default:
				return fmt.Errorf("condition: effect %q has unknown action mode %q", key, str)
			}
			continue
		}
		switch RollMode(str) {
		case RollAdvantage, RollDisadvantage, RollAutoFail:
			out[key] = RollEffect(RollMode(str))
		default:
			return fmt.Errorf("condition: effect %q has unknown roll mode %q", key, str)
		}
	}
	*s = out
	return nil
}
