package filter

import (
	"github.com/dodocode/blathers/nookipedia"
)

// VillagerEnv builds the evaluation environment for a villager.
func VillagerEnv(v nookipedia.Villager) map[string]any {
	return map[string]any{
		"Name":        v.Name,
		"Species":     v.Species,
		"Personality": v.Personality,
		"Gender":      v.Gender,
		"Birthday":    v.Birthday(),
		"Sign":        v.Sign,
		"Phrase":      v.Phrase,
		"Islander":    v.Islander,
		"Debut":       v.Debut,
		"Appearances": v.Appearances,
		"appearsIn":   v.AppearsIn,
	}
}

// FishEnv builds the evaluation environment for a fish.
func FishEnv(f nookipedia.Fish) map[string]any {
	return map[string]any{
		"Name":       f.Name,
		"Location":   f.Location,
		"ShadowSize": f.ShadowSize,
		"Rarity":     f.Rarity,
		"SellNook":   f.SellNook,
		"SellCJ":     f.SellCJ,
		"TotalCatch": f.TotalCatch,
	}
}

// BugEnv builds the evaluation environment for a bug.
func BugEnv(b nookipedia.Bug) map[string]any {
	return map[string]any{
		"Name":       b.Name,
		"Location":   b.Location,
		"Rarity":     b.Rarity,
		"SellNook":   b.SellNook,
		"SellFlick":  b.SellFlick,
		"TotalCatch": b.TotalCatch,
	}
}

// SeaCreatureEnv builds the evaluation environment for a sea creature.
func SeaCreatureEnv(s nookipedia.SeaCreature) map[string]any {
	return map[string]any{
		"Name":           s.Name,
		"ShadowSize":     s.ShadowSize,
		"ShadowMovement": s.ShadowMovement,
		"Rarity":         s.Rarity,
		"SellNook":       s.SellNook,
		"TotalCatch":     s.TotalCatch,
	}
}

// Villagers returns the villagers matching the filter.
func Villagers(f *Filter, villagers []nookipedia.Villager) []nookipedia.Villager {
	if f == nil {
		return villagers
	}
	var matched []nookipedia.Villager
	for _, v := range villagers {
		if f.Match(VillagerEnv(v)) {
			matched = append(matched, v)
		}
	}
	return matched
}

// Fish returns the fish matching the filter.
func Fish(f *Filter, fish []nookipedia.Fish) []nookipedia.Fish {
	if f == nil {
		return fish
	}
	var matched []nookipedia.Fish
	for _, candidate := range fish {
		if f.Match(FishEnv(candidate)) {
			matched = append(matched, candidate)
		}
	}
	return matched
}

// Bugs returns the bugs matching the filter.
func Bugs(f *Filter, bugs []nookipedia.Bug) []nookipedia.Bug {
	if f == nil {
		return bugs
	}
	var matched []nookipedia.Bug
	for _, b := range bugs {
		if f.Match(BugEnv(b)) {
			matched = append(matched, b)
		}
	}
	return matched
}

// SeaCreatures returns the sea creatures matching the filter.
func SeaCreatures(f *Filter, creatures []nookipedia.SeaCreature) []nookipedia.SeaCreature {
	if f == nil {
		return creatures
	}
	var matched []nookipedia.SeaCreature
	for _, s := range creatures {
		if f.Match(SeaCreatureEnv(s)) {
			matched = append(matched, s)
		}
	}
	return matched
}
