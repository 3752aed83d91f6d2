package nookipedia

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHemisphereIsAvailableIn(t *testing.T) {
	h := Hemisphere{MonthsArray: []int{3, 4, 5, 9, 10, 11}}

	assert.True(t, h.IsAvailableIn(3))
	assert.True(t, h.IsAvailableIn(11))
	assert.False(t, h.IsAvailableIn(1))
	assert.False(t, h.IsAvailableIn(12))

	empty := Hemisphere{}
	assert.False(t, empty.IsAvailableIn(6))
}

func TestVillagerBirthday(t *testing.T) {
	tests := []struct {
		name     string
		villager Villager
		expected string
	}{
		{
			name:     "full birthday",
			villager: Villager{BirthdayMonth: "September", BirthdayDay: "29"},
			expected: "September 29",
		},
		{
			name:     "missing day",
			villager: Villager{BirthdayMonth: "September"},
			expected: "",
		},
		{
			name:     "missing both",
			villager: Villager{},
			expected: "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.villager.Birthday())
		})
	}
}

func TestVillagerAppearsIn(t *testing.T) {
	v := Villager{Appearances: []string{"DNM", "AC", "NL", "NH"}}

	assert.True(t, v.AppearsIn("NH"))
	assert.True(t, v.AppearsIn("nh"))
	assert.False(t, v.AppearsIn("HHD"))
	assert.False(t, Villager{}.AppearsIn("NH"))
}
