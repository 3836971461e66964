package engine

// levelTable maps a crafter's character level (1..90) to the recipe-scale
// "effective level" used in every difficulty/modifier comparison once the
// crafter out-levels a recipe's own level-sync band. Index 0 is unused;
// levels beyond the table's range clamp to the last known entry. Supplied
// as data per spec.md §6 — no source table was retrievable from
// original_source/, so this follows the effective-level bands published
// for the underlying game's level-sync system.
var levelTable = [91]int{
	0,
	1, 2, 3, 4, 5, 6, 7, 8, 9, 10,
	11, 12, 13, 14, 15, 16, 17, 18, 19, 20,
	21, 22, 23, 24, 25, 26, 27, 28, 29, 30,
	31, 32, 33, 34, 35, 36, 37, 38, 39, 40,
	41, 42, 43, 44, 45, 46, 47, 48, 49, 50,
	120, 125, 130, 133, 136, 139, 142, 145, 148, 150,
	260, 265, 270, 273, 276, 279, 282, 285, 288, 290,
	390, 395, 400, 403, 406, 409, 412, 415, 418, 420,
	517, 520, 525, 530, 535, 540, 545, 550, 555, 560,
}

// EffectiveCrafterLevel looks up the recipe-scale level for a crafter.
func EffectiveCrafterLevel(synth *Synth) int {
	level := synth.Crafter.Level
	if level < 1 {
		return 0
	}
	if level > 90 {
		level = 90
	}
	return levelTable[level]
}
