// Package weapons maps raw telemetry causer identifiers to canonical
// display names. The upstream event log names the same weapon under several
// historical conventions (WeapX_C, WeapName_X, BP_X_C), and non-weapon kills
// carry vehicle or projectile causer IDs.
package weapons

import "strings"

type Category string

const (
	CategoryAR       Category = "assault_rifle"
	CategoryDMR      Category = "dmr"
	CategorySR       Category = "sniper_rifle"
	CategorySMG      Category = "smg"
	CategoryLMG      Category = "lmg"
	CategoryShotgun  Category = "shotgun"
	CategoryPistol   Category = "pistol"
	CategoryMelee    Category = "melee"
	CategoryCrossbow Category = "crossbow"
	CategoryThrown   Category = "thrown"
	CategoryVehicle  Category = "vehicle"
	CategoryGrenade  Category = "grenade"
	CategoryMolotov  Category = "molotov"
	CategoryPunch    Category = "punch"
	CategoryUnknown  Category = "unknown"
)

// Weapon is a canonical display name plus coarse category.
type Weapon struct {
	Name     string
	Category Category
}

// UnknownName is the sentinel display name for causer IDs that resolve to
// nothing, including absent IDs.
const UnknownName = "Unknown"

// catalog is the authoritative id->weapon table. Where the historical naming
// schemes disagreed (UMP45 vs UMP9) the newer, more specific ID wins.
var catalog = map[string]Weapon{
	// Assault rifles
	"WeapHK416_C":      {"M416", CategoryAR},
	"WeapAK47_C":       {"AKM", CategoryAR},
	"WeapSCAR-L_C":     {"SCAR-L", CategoryAR},
	"WeapG36C_C":       {"G36C", CategoryAR},
	"WeapBerylM762_C":  {"Beryl M762", CategoryAR},
	"WeapMk47Mutant_C": {"MK47 Mutant", CategoryAR},
	"WeapM16A4_C":      {"M16A4", CategoryAR},
	"WeapACE32_C":      {"ACE32", CategoryAR},
	"WeapAUG_C":        {"AUG A3", CategoryAR},
	"WeapGroza_C":      {"Groza", CategoryAR},
	"WeapQBZ95_C":      {"QBZ95", CategoryAR},
	"WeapFamas_C":      {"FAMAS", CategoryAR},
	"WeapK2_C":         {"K2", CategoryAR},

	// Sniper rifles
	"WeapKar98k_C":      {"Kar98k", CategorySR},
	"WeapM24_C":         {"M24", CategorySR},
	"WeapAWM_C":         {"AWM", CategorySR},
	"WeapWin94_C":       {"Win94", CategorySR},
	"WeapMosinNagant_C": {"Mosin Nagant", CategorySR},
	"WeapLynx_C":        {"Lynx AMR", CategorySR},

	// Designated marksman rifles
	"WeapMk14_C":   {"MK14 EBR", CategoryDMR},
	"WeapMini14_C": {"Mini14", CategoryDMR},
	"WeapSKS_C":    {"SKS", CategoryDMR},
	"WeapVSS_C":    {"VSS", CategoryDMR},
	"WeapQBU88_C":    {"QBU", CategoryDMR},
	"WeapSLR_C":      {"SLR", CategoryDMR},
	"WeapMk12_C":     {"MK12", CategoryDMR},
	"WeapDragunov_C": {"Dragunov", CategoryDMR},

	// Light machine guns
	"WeapDP28_C": {"DP-28", CategoryLMG},
	"WeapM249_C": {"M249", CategoryLMG},
	"WeapL6_C":   {"MG3", CategoryLMG},

	// Shotguns
	"WeapS686_C":     {"S686", CategoryShotgun},
	"WeapS1897_C":    {"S1897", CategoryShotgun},
	"WeapS12K_C":     {"S12K", CategoryShotgun},
	"WeapDBS_C":      {"DBS", CategoryShotgun},
	"WeapSawedoff_C": {"Sawed-off", CategoryShotgun},
	"WeapShake_C":    {"O12", CategoryShotgun},

	// SMGs
	"WeapThompson_C":   {"Tommy Gun", CategorySMG},
	"WeapUMP_C":        {"UMP45", CategorySMG},
	"WeapUMP9_C":       {"UMP9", CategorySMG},
	"WeapVector_C":     {"Vector", CategorySMG},
	"WeapUZI_C":        {"Micro UZI", CategorySMG},
	"WeapMP5K_C":       {"MP5K", CategorySMG},
	"WeapMP9_C":        {"MP9", CategorySMG},
	"WeapBizonPP19_C":  {"PP-19 Bizon", CategorySMG},
	"WeapP90_C":        {"P90", CategorySMG},
	"WeapJS9_C":        {"JS9", CategorySMG},

	// Pistols
	"WeapG18_C":         {"P18C", CategoryPistol},
	"WeapM1911_C":       {"P1911", CategoryPistol},
	"WeapR1895_C":       {"R1895", CategoryPistol},
	"WeapNagantM1895_C": {"R1895", CategoryPistol},
	"WeapRhino_C":       {"R45", CategoryPistol},
	"WeapP92_C":         {"P92", CategoryPistol},
	"WeapDesertEagle_C": {"Deagle", CategoryPistol},
	"WeapSaiga_C":       {"Skorpion", CategoryPistol},

	// Melee
	"WeapCowbar_C":  {"Crowbar", CategoryMelee},
	"WeapMachete_C": {"Machete", CategoryMelee},
	"WeapPan_C":     {"Pan", CategoryMelee},
	"WeapSickle_C":  {"Sickle", CategoryMelee},

	// Crossbow
	"WeapCrossbow_C":   {"Crossbow", CategoryCrossbow},
	"WeapCrossbow_1_C": {"Crossbow", CategoryCrossbow},

	// Thrown
	"WeapMolotov_C":         {"Molotov", CategoryMolotov},
	"WeapGrenade_C":         {"Frag Grenade", CategoryGrenade},
	"WeapSmokeBomb_C":       {"Smoke Grenade", CategoryThrown},
	"WeapFlashBang_C":       {"Flashbang", CategoryThrown},
	"WeapJerryCan_C":        {"Jerrycan", CategoryThrown},
	"WeapStickyGrenade_C":   {"Sticky Bomb", CategoryGrenade},
	"WeapDecoyGrenade_C":    {"Decoy Grenade", CategoryThrown},
	"WeapBluezoneGrenade_C": {"Blue Zone Grenade", CategoryGrenade},
	"WeapPanzerFaust100M_C": {"Panzerfaust", CategoryGrenade},

	// Non-weapon causes that still show up with stable IDs
	"PlayerBluntDamage_C":                    {"Punch", CategoryPunch},
	"BattleRoyaleModeController_Def_C":       {"Blue Zone", CategoryUnknown},
	"BattleRoyaleModeController_DeathArea_C": {"Blue Zone", CategoryUnknown},
	"RedZoneBomb_C":                          {"Red Zone", CategoryUnknown},

	// Sentinels the event log emits for unattributed causes
	"None":      {"Other", CategoryUnknown},
	"Undefined": {UnknownName, CategoryUnknown},
	"Default":   {UnknownName, CategoryUnknown},
}

// markers classify causer IDs that match no table entry but contain a known
// non-weapon token. Checked in order; vehicles before projectiles because
// some vehicle IDs embed weapon-like suffixes.
var markers = []struct {
	token  string
	weapon Weapon
}{
	{"Vehicle", Weapon{"Vehicle", CategoryVehicle}},
	{"Dacia", Weapon{"Vehicle", CategoryVehicle}},
	{"Buggy", Weapon{"Vehicle", CategoryVehicle}},
	{"Uaz", Weapon{"Vehicle", CategoryVehicle}},
	{"Motorbike", Weapon{"Vehicle", CategoryVehicle}},
	{"Boat", Weapon{"Vehicle", CategoryVehicle}},
	{"Molotov", Weapon{"Molotov", CategoryMolotov}},
	{"Grenade", Weapon{"Frag Grenade", CategoryGrenade}},
	{"Punch", Weapon{"Punch", CategoryPunch}},
	{"Blunt", Weapon{"Punch", CategoryPunch}},
}

// prefixes and suffixes stripped when deriving a residual display name from
// an unrecognized ID.
var (
	strippedPrefixes = []string{"WeapName_", "Weapon_", "Weap", "BP_"}
	strippedSuffixes = []string{"_C"}
)

// Canonicalize resolves a raw causer identifier to a canonical weapon.
// Resolution order: exact table match, non-weapon marker substring, residual
// token after prefix/suffix stripping, Unknown sentinel. Absent IDs never
// panic; they resolve to Unknown.
func Canonicalize(rawID string) Weapon {
	rawID = strings.TrimSpace(rawID)
	if rawID == "" {
		return Weapon{UnknownName, CategoryUnknown}
	}

	if w, ok := catalog[rawID]; ok {
		return w
	}

	for _, m := range markers {
		if strings.Contains(rawID, m.token) {
			return m.weapon
		}
	}

	residual := rawID
	for _, s := range strippedSuffixes {
		residual = strings.TrimSuffix(residual, s)
	}
	for _, p := range strippedPrefixes {
		residual = strings.TrimPrefix(residual, p)
	}
	residual = strings.TrimSpace(residual)
	if residual == "" {
		return Weapon{UnknownName, CategoryUnknown}
	}
	return Weapon{residual, CategoryUnknown}
}

// DisplayName is a convenience wrapper for callers that only need the name.
func DisplayName(rawID string) string {
	return Canonicalize(rawID).Name
}
