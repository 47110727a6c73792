package weapons

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCanonicalize(t *testing.T) {
	tests := []struct {
		name     string
		rawID    string
		want     string
		category Category
	}{
		{"exact match", "WeapHK416_C", "M416", CategoryAR},
		{"exact match sniper", "WeapKar98k_C", "Kar98k", CategorySR},
		{"ump resolves to 45", "WeapUMP_C", "UMP45", CategorySMG},
		{"legacy ump9 keeps its name", "WeapUMP9_C", "UMP9", CategorySMG},
		{"blunt damage is punch", "PlayerBluntDamage_C", "Punch", CategoryPunch},
		{"blue zone controller", "BattleRoyaleModeController_Def_C", "Blue Zone", CategoryUnknown},
		{"vehicle marker", "BP_Motorbike_04_C", "Vehicle", CategoryVehicle},
		{"dacia marker", "Dacia_A_01_v2_C", "Vehicle", CategoryVehicle},
		{"uaz marker", "Uaz_B_01_esports_C", "Vehicle", CategoryVehicle},
		{"boat marker", "Boat_PG117_C", "Vehicle", CategoryVehicle},
		{"molotov projectile", "ProjMolotov_DamageField_Direct_C", "Molotov", CategoryMolotov},
		{"grenade projectile", "ProjGrenade_C", "Frag Grenade", CategoryGrenade},
		{"none sentinel", "None", "Other", CategoryUnknown},
		{"empty id", "", "Unknown", CategoryUnknown},
		{"whitespace id", "   ", "Unknown", CategoryUnknown},
		{"unrecognized id strips affixes", "WeapFuture_C", "Future", CategoryUnknown},
		{"unrecognized bp prefix", "BP_Mystery_C", "Mystery", CategoryUnknown},
		{"fully stripped id", "Weap_C", "Unknown", CategoryUnknown},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Canonicalize(tt.rawID)
			assert.Equal(t, tt.want, got.Name)
			assert.Equal(t, tt.category, got.Category)
		})
	}
}

func TestCanonicalizeIsDeterministic(t *testing.T) {
	for _, id := range []string{"WeapAK47_C", "BP_Motorbike_04_C", "garbage"} {
		first := Canonicalize(id)
		for i := 0; i < 3; i++ {
			assert.Equal(t, first, Canonicalize(id))
		}
	}
}

func TestDisplayName(t *testing.T) {
	assert.Equal(t, "AKM", DisplayName("WeapAK47_C"))
	assert.Equal(t, "Unknown", DisplayName(""))
}
