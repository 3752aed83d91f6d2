package nookipedia

import (
	"fmt"
	"strings"
)

// Availability describes one window in which a critter can be found.
type Availability struct {
	Months string `json:"months"`
	Time   string `json:"time"`
}

// Hemisphere holds the per-hemisphere availability of a critter.
type Hemisphere struct {
	AvailabilityArray []Availability    `json:"availability_array"`
	TimesByMonth      map[string]string `json:"times_by_month"`
	Months            string            `json:"months"`
	MonthsArray       []int             `json:"months_array"`
}

// IsAvailableIn reports whether the hemisphere's availability covers
// the given month (1-12).
func (h Hemisphere) IsAvailableIn(month int) bool {
	for _, m := range h.MonthsArray {
		if m == month {
			return true
		}
	}
	return false
}

// Fish is a New Horizons fish.
type Fish struct {
	Name         string     `json:"name"`
	URL          string     `json:"url"`
	Number       int        `json:"number"`
	ImageURL     string     `json:"image_url"`
	RenderURL    string     `json:"render_url"`
	Location     string     `json:"location"`
	ShadowSize   string     `json:"shadow_size"`
	Rarity       string     `json:"rarity"`
	TotalCatch   int        `json:"total_catch"`
	SellNook     int        `json:"sell_nook"`
	SellCJ       int        `json:"sell_cj"`
	TankWidth    float64    `json:"tank_width"`
	TankLength   float64    `json:"tank_length"`
	Catchphrases []string   `json:"catchphrases"`
	North        Hemisphere `json:"north"`
	South        Hemisphere `json:"south"`
}

// Bug is a New Horizons bug.
type Bug struct {
	Name         string     `json:"name"`
	URL          string     `json:"url"`
	Number       int        `json:"number"`
	ImageURL     string     `json:"image_url"`
	RenderURL    string     `json:"render_url"`
	Location     string     `json:"location"`
	Rarity       string     `json:"rarity"`
	TotalCatch   int        `json:"total_catch"`
	SellNook     int        `json:"sell_nook"`
	SellFlick    int        `json:"sell_flick"`
	TankWidth    float64    `json:"tank_width"`
	TankLength   float64    `json:"tank_length"`
	Catchphrases []string   `json:"catchphrases"`
	North        Hemisphere `json:"north"`
	South        Hemisphere `json:"south"`
}

// SeaCreature is a New Horizons sea creature.
type SeaCreature struct {
	Name           string     `json:"name"`
	URL            string     `json:"url"`
	Number         int        `json:"number"`
	ImageURL       string     `json:"image_url"`
	RenderURL      string     `json:"render_url"`
	ShadowSize     string     `json:"shadow_size"`
	ShadowMovement string     `json:"shadow_movement"`
	Rarity         string     `json:"rarity"`
	TotalCatch     int        `json:"total_catch"`
	SellNook       int        `json:"sell_nook"`
	TankWidth      float64    `json:"tank_width"`
	TankLength     float64    `json:"tank_length"`
	Catchphrases   []string   `json:"catchphrases"`
	North          Hemisphere `json:"north"`
	South          Hemisphere `json:"south"`
}

// VillagerNHDetails is the New Horizons-specific villager data returned
// when the nhdetails query parameter is set.
type VillagerNHDetails struct {
	ImageURL         string   `json:"image_url"`
	PhotoURL         string   `json:"photo_url"`
	IconURL          string   `json:"icon_url"`
	Quote            string   `json:"quote"`
	SubPersonality   string   `json:"sub-personality"`
	Catchphrase      string   `json:"catchphrase"`
	Clothing         string   `json:"clothing"`
	FavStyles        []string `json:"fav_styles"`
	FavColors        []string `json:"fav_colors"`
	Hobby            string   `json:"hobby"`
	HouseExteriorURL string   `json:"house_exterior_url"`
	HouseMusic       string   `json:"house_music"`
}

// Villager is a villager across all Animal Crossing games.
type Villager struct {
	Name          string             `json:"name"`
	URL           string             `json:"url"`
	AltName       string             `json:"alt_name"`
	TitleColor    string             `json:"title_color"`
	TextColor     string             `json:"text_color"`
	ID            string             `json:"id"`
	ImageURL      string             `json:"image_url"`
	Species       string             `json:"species"`
	Personality   string             `json:"personality"`
	Gender        string             `json:"gender"`
	BirthdayMonth string             `json:"birthday_month"`
	BirthdayDay   string             `json:"birthday_day"`
	Sign          string             `json:"sign"`
	Quote         string             `json:"quote"`
	Phrase        string             `json:"phrase"`
	Islander      bool               `json:"islander"`
	Debut         string             `json:"debut"`
	Appearances   []string           `json:"appearances"`
	NHDetails     *VillagerNHDetails `json:"nh_details,omitempty"`
}

// Birthday returns the villager's birthday as "Month Day", or an empty
// string when unknown.
func (v Villager) Birthday() string {
	if v.BirthdayMonth == "" || v.BirthdayDay == "" {
		return ""
	}
	return fmt.Sprintf("%s %s", v.BirthdayMonth, v.BirthdayDay)
}

// AppearsIn reports whether the villager appears in the given game
// (by its short code, e.g. "NH").
func (v Villager) AppearsIn(game string) bool {
	for _, g := range v.Appearances {
		if strings.EqualFold(g, game) {
			return true
		}
	}
	return false
}

// RecipeMaterial is one ingredient of a crafting recipe.
type RecipeMaterial struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// RecipePrice is one way to buy a recipe.
type RecipePrice struct {
	Price    int    `json:"price"`
	Currency string `json:"currency"`
}

// Recipe is a New Horizons crafting recipe.
type Recipe struct {
	Name            string           `json:"name"`
	URL             string           `json:"url"`
	ImageURL        string           `json:"image_url"`
	SerialID        int              `json:"serial_id"`
	Sell            int              `json:"sell"`
	RecipesToUnlock int              `json:"recipes_to_unlock"`
	Materials       []RecipeMaterial `json:"materials"`
	Availability    []struct {
		From string `json:"from"`
		Note string `json:"note"`
	} `json:"availability"`
	Buy []RecipePrice `json:"buy"`
}

// Event is one entry in the seasonal calendar.
type Event struct {
	Event string `json:"event"`
	Date  string `json:"date"`
	Type  string `json:"type"`
	URL   string `json:"url"`
}

// ArtInfo describes the real-world counterpart of a piece of art.
type ArtInfo struct {
	Texture string `json:"texture"`
	Author  string `json:"author"`
	Year    string `json:"year"`
	ArtName string `json:"art_name"`
	ArtType string `json:"art_type"`
}

// Art is a New Horizons museum art piece.
type Art struct {
	Name         string  `json:"name"`
	URL          string  `json:"url"`
	ImageURL     string  `json:"image_url"`
	HasFake      bool    `json:"has_fake"`
	FakeImageURL string  `json:"fake_image_url"`
	ArtName      string  `json:"art_name"`
	Author       string  `json:"author"`
	Year         string  `json:"year"`
	ArtStyle     string  `json:"art_style"`
	Description  string  `json:"description"`
	Buy          int     `json:"buy"`
	Sell         int     `json:"sell"`
	Availability string  `json:"availability"`
	Authenticity string  `json:"authenticity"`
	Width        float64 `json:"width"`
	Length       float64 `json:"length"`
}

// Fossil is an individual New Horizons fossil.
type Fossil struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	ImageURL     string   `json:"image_url"`
	FossilGroup  string   `json:"fossil_group"`
	Interactable bool     `json:"interactable"`
	Sell         int      `json:"sell"`
	Colors       []string `json:"colors"`
	HHABase      int      `json:"hha_base"`
	Width        float64  `json:"width"`
	Length       float64  `json:"length"`
}

// FossilGroup is a multi-part fossil set and its museum placement.
type FossilGroup struct {
	Name        string `json:"name"`
	URL         string `json:"url"`
	Room        int    `json:"room"`
	Description string `json:"description"`
	// Fossils is populated by the combined fossils/all endpoint.
	Fossils []Fossil `json:"fossils,omitempty"`
}

// ItemVariation is one color/pattern variant of an item.
type ItemVariation struct {
	Variation string   `json:"variation"`
	Pattern   string   `json:"pattern"`
	ImageURL  string   `json:"image_url"`
	Colors    []string `json:"colors"`
}

// Furniture is a New Horizons furniture item.
type Furniture struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	Category     string   `json:"category"`
	ItemSeries   string   `json:"item_series"`
	ItemSet      string   `json:"item_set"`
	Themes       []string `json:"themes"`
	HHACategory  string   `json:"hha_category"`
	HHABase      int      `json:"hha_base"`
	LuckySeason  string   `json:"lucky_season"`
	Sell         int      `json:"sell"`
	Customizable bool     `json:"customizable"`
	CustomKits   int      `json:"custom_kits"`
	Functions    []string `json:"functions"`
	Availability []struct {
		From string `json:"from"`
		Note string `json:"note"`
	} `json:"availability"`
	Buy        []RecipePrice   `json:"buy"`
	Variations []ItemVariation `json:"variations"`
}

// Clothing is a New Horizons clothing item.
type Clothing struct {
	Name               string   `json:"name"`
	URL                string   `json:"url"`
	Category           string   `json:"category"`
	Sell               int      `json:"sell"`
	VariationTotal     int      `json:"variation_total"`
	VillagerEquippable bool     `json:"vill_equip"`
	Seasonality        string   `json:"seasonality"`
	Styles             []string `json:"styles"`
	LabelThemes        []string `json:"label_themes"`
	Availability []struct {
		From string `json:"from"`
		Note string `json:"note"`
	} `json:"availability"`
	Buy        []RecipePrice   `json:"buy"`
	Variations []ItemVariation `json:"variations"`
}

// Interior is a New Horizons wallpaper, flooring, or rug.
type Interior struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	ImageURL     string   `json:"image_url"`
	Category     string   `json:"category"`
	ItemSeries   string   `json:"item_series"`
	ItemSet      string   `json:"item_set"`
	HHACategory  string   `json:"hha_category"`
	HHABase      int      `json:"hha_base"`
	Tag          string   `json:"tag"`
	Sell         int      `json:"sell"`
	Colors       []string `json:"colors"`
	Availability []struct {
		From string `json:"from"`
		Note string `json:"note"`
	} `json:"availability"`
	Buy []RecipePrice `json:"buy"`
}

// Tool is a New Horizons tool.
type Tool struct {
	Name         string          `json:"name"`
	URL          string          `json:"url"`
	Uses         string          `json:"uses"`
	HHABase      int             `json:"hha_base"`
	Sell         int             `json:"sell"`
	Customizable bool            `json:"customizable"`
	CustomKits   int             `json:"custom_kits"`
	Availability []struct {
		From string `json:"from"`
		Note string `json:"note"`
	} `json:"availability"`
	Buy        []RecipePrice   `json:"buy"`
	Variations []ItemVariation `json:"variations"`
}

// Photo is a New Horizons character photo or poster.
type Photo struct {
	Name         string          `json:"name"`
	URL          string          `json:"url"`
	Category     string          `json:"category"`
	HHABase      int             `json:"hha_base"`
	Sell         int             `json:"sell"`
	Customizable bool            `json:"customizable"`
	CustomKits   int             `json:"custom_kits"`
	Interactable bool            `json:"interactable"`
	Availability []struct {
		From string `json:"from"`
		Note string `json:"note"`
	} `json:"availability"`
	Buy        []RecipePrice   `json:"buy"`
	Variations []ItemVariation `json:"variations"`
}

// Item is a miscellaneous New Horizons item (materials, food, fencing).
type Item struct {
	Name         string   `json:"name"`
	URL          string   `json:"url"`
	ImageURL     string   `json:"image_url"`
	Stack        int      `json:"stack"`
	HHABase      int      `json:"hha_base"`
	Sell         int      `json:"sell"`
	IsFence      bool     `json:"is_fence"`
	MaterialType string   `json:"material_type"`
	Edible       bool     `json:"edible"`
	PlantType    string   `json:"plant_type"`
	Availability []struct {
		From string `json:"from"`
		Note string `json:"note"`
	} `json:"availability"`
	Buy []RecipePrice `json:"buy"`
}
