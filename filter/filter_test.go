package filter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dodocode/blathers/nookipedia"
)

func TestCompile(t *testing.T) {
	tests := []struct {
		name       string
		expression string
		wantErr    bool
	}{
		{
			name:       "valid comparison",
			expression: `SellNook > 1000`,
			wantErr:    false,
		},
		{
			name:       "valid string helper",
			expression: `contains(Name, "shark")`,
			wantErr:    false,
		},
		{
			name:       "empty expression",
			expression: "",
			wantErr:    true,
		},
		{
			name:       "whitespace only",
			expression: "   ",
			wantErr:    true,
		},
		{
			name:       "non-boolean result",
			expression: `1 + 2`,
			wantErr:    true,
		},
		{
			name:       "syntax error",
			expression: `SellNook >`,
			wantErr:    true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			if tt.wantErr {
				require.Error(t, err)
				var compErr *CompilationError
				assert.ErrorAs(t, err, &compErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expression, f.Expression())
		})
	}
}

func TestFilterFish(t *testing.T) {
	fish := []nookipedia.Fish{
		{Name: "sea bass", Location: "Sea", SellNook: 400},
		{Name: "great white shark", Location: "Sea", SellNook: 15000},
		{Name: "golden trout", Location: "River (clifftop)", SellNook: 15000},
	}

	tests := []struct {
		name       string
		expression string
		wantNames  []string
	}{
		{
			name:       "by price",
			expression: `SellNook >= 15000`,
			wantNames:  []string{"great white shark", "golden trout"},
		},
		{
			name:       "by location substring",
			expression: `contains(Location, "river")`,
			wantNames:  []string{"golden trout"},
		},
		{
			name:       "combined",
			expression: `SellNook > 1000 && Location == "Sea"`,
			wantNames:  []string{"great white shark"},
		},
		{
			name:       "no matches",
			expression: `SellNook > 100000`,
			wantNames:  nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f, err := Compile(tt.expression)
			require.NoError(t, err)

			matched := Fish(f, fish)
			var names []string
			for _, m := range matched {
				names = append(names, m.Name)
			}
			assert.Equal(t, tt.wantNames, names)
		})
	}
}

func TestFilterVillagers(t *testing.T) {
	villagers := []nookipedia.Villager{
		{Name: "Marshal", Species: "Squirrel", Personality: "Smug", Appearances: []string{"NL", "NH"}},
		{Name: "Bob", Species: "Cat", Personality: "Lazy", Appearances: []string{"DNM", "AC", "NL", "NH"}},
		{Name: "Raymond", Species: "Cat", Personality: "Smug", Appearances: []string{"NH"}},
	}

	f, err := Compile(`Species == "Cat" && Personality == "Smug"`)
	require.NoError(t, err)

	matched := Villagers(f, villagers)
	require.Len(t, matched, 1)
	assert.Equal(t, "Raymond", matched[0].Name)

	f, err = Compile(`appearsIn("AC")`)
	require.NoError(t, err)

	matched = Villagers(f, villagers)
	require.Len(t, matched, 1)
	assert.Equal(t, "Bob", matched[0].Name)
}

func TestNilFilterMatchesEverything(t *testing.T) {
	bugs := []nookipedia.Bug{{Name: "common butterfly"}, {Name: "golden stag"}}
	assert.Equal(t, bugs, Bugs(nil, bugs))
}

func TestMatchEvaluationFailureExcludes(t *testing.T) {
	// Referencing an undefined variable compiles (undefined variables
	// are allowed) but fails at run time; the entry is skipped.
	f, err := Compile(`Bogus > 10`)
	require.NoError(t, err)

	assert.False(t, f.Match(map[string]any{"Name": "x"}))
}

func TestOneOfHelper(t *testing.T) {
	f, err := Compile(`oneOf(Rarity, ["Rare", "Ultra-rare"])`)
	require.NoError(t, err)

	assert.True(t, f.Match(map[string]any{"Rarity": "rare"}))
	assert.False(t, f.Match(map[string]any{"Rarity": "Common"}))
}
