package nookipedia

import "context"

// GetVillagers returns villagers across all games. Supported query
// parameters: name, species, personality, game (repeatable), birthmonth,
// birthday, nhdetails, excludedetails.
func (c *Client) GetVillagers(ctx context.Context, opts *RequestOptions) ([]Villager, error) {
	var villagers []Villager
	if err := c.get(ctx, "villagers", nil, opts, &villagers); err != nil {
		return nil, err
	}
	return villagers, nil
}

// GetVillager returns the villagers matching a name exactly. The API
// has no per-villager path, so this is a name-filtered list query.
func (c *Client) GetVillager(ctx context.Context, name string, opts *RequestOptions) ([]Villager, error) {
	return c.GetVillagers(ctx, withQuery(opts, "name", name))
}

// GetRecipes returns crafting recipes. The material query parameter is
// repeatable, e.g. Query{"material": []string{"wood", "iron nugget"}}.
func (c *Client) GetRecipes(ctx context.Context, opts *RequestOptions) ([]Recipe, error) {
	var recipes []Recipe
	if err := c.get(ctx, "nh/recipes", nil, opts, &recipes); err != nil {
		return nil, err
	}
	return recipes, nil
}

// GetRecipe returns a single recipe by item name.
func (c *Client) GetRecipe(ctx context.Context, name string, opts *RequestOptions) (*Recipe, error) {
	var recipe Recipe
	if err := c.get(ctx, "nh/recipes/{recipe}", map[string]string{"recipe": name}, opts, &recipe); err != nil {
		return nil, err
	}
	return &recipe, nil
}

// GetEvents returns calendar events. Supported query parameters: date
// (YYYY-MM-DD or "today"), year, month, day.
func (c *Client) GetEvents(ctx context.Context, opts *RequestOptions) ([]Event, error) {
	var events []Event
	if err := c.get(ctx, "nh/events", nil, opts, &events); err != nil {
		return nil, err
	}
	return events, nil
}

// GetAllArt returns every museum art piece.
func (c *Client) GetAllArt(ctx context.Context, opts *RequestOptions) ([]Art, error) {
	var art []Art
	if err := c.get(ctx, "nh/art", nil, opts, &art); err != nil {
		return nil, err
	}
	return art, nil
}

// GetArt returns a single art piece by name.
func (c *Client) GetArt(ctx context.Context, name string, opts *RequestOptions) (*Art, error) {
	var art Art
	if err := c.get(ctx, "nh/art/{art}", map[string]string{"art": name}, opts, &art); err != nil {
		return nil, err
	}
	return &art, nil
}

// GetAllFurniture returns furniture items. The color query parameter is
// repeatable (up to two colors).
func (c *Client) GetAllFurniture(ctx context.Context, opts *RequestOptions) ([]Furniture, error) {
	var furniture []Furniture
	if err := c.get(ctx, "nh/furniture", nil, opts, &furniture); err != nil {
		return nil, err
	}
	return furniture, nil
}

// GetFurniture returns a single furniture item by name.
func (c *Client) GetFurniture(ctx context.Context, name string, opts *RequestOptions) (*Furniture, error) {
	var furniture Furniture
	if err := c.get(ctx, "nh/furniture/{furniture}", map[string]string{"furniture": name}, opts, &furniture); err != nil {
		return nil, err
	}
	return &furniture, nil
}

// GetAllClothing returns clothing items. The color and style query
// parameters are repeatable.
func (c *Client) GetAllClothing(ctx context.Context, opts *RequestOptions) ([]Clothing, error) {
	var clothing []Clothing
	if err := c.get(ctx, "nh/clothing", nil, opts, &clothing); err != nil {
		return nil, err
	}
	return clothing, nil
}

// GetClothing returns a single clothing item by name.
func (c *Client) GetClothing(ctx context.Context, name string, opts *RequestOptions) (*Clothing, error) {
	var clothing Clothing
	if err := c.get(ctx, "nh/clothing/{clothing}", map[string]string{"clothing": name}, opts, &clothing); err != nil {
		return nil, err
	}
	return &clothing, nil
}

// GetAllInterior returns wallpaper, flooring, and rugs.
func (c *Client) GetAllInterior(ctx context.Context, opts *RequestOptions) ([]Interior, error) {
	var interior []Interior
	if err := c.get(ctx, "nh/interior", nil, opts, &interior); err != nil {
		return nil, err
	}
	return interior, nil
}

// GetInterior returns a single interior item by name.
func (c *Client) GetInterior(ctx context.Context, name string, opts *RequestOptions) (*Interior, error) {
	var interior Interior
	if err := c.get(ctx, "nh/interior/{interior}", map[string]string{"interior": name}, opts, &interior); err != nil {
		return nil, err
	}
	return &interior, nil
}

// GetAllTools returns tools.
func (c *Client) GetAllTools(ctx context.Context, opts *RequestOptions) ([]Tool, error) {
	var tools []Tool
	if err := c.get(ctx, "nh/tools", nil, opts, &tools); err != nil {
		return nil, err
	}
	return tools, nil
}

// GetTool returns a single tool by name.
func (c *Client) GetTool(ctx context.Context, name string, opts *RequestOptions) (*Tool, error) {
	var tool Tool
	if err := c.get(ctx, "nh/tools/{tool}", map[string]string{"tool": name}, opts, &tool); err != nil {
		return nil, err
	}
	return &tool, nil
}

// GetAllPhotos returns character photos and posters.
func (c *Client) GetAllPhotos(ctx context.Context, opts *RequestOptions) ([]Photo, error) {
	var photos []Photo
	if err := c.get(ctx, "nh/photos", nil, opts, &photos); err != nil {
		return nil, err
	}
	return photos, nil
}

// GetPhoto returns a single photo or poster by name.
func (c *Client) GetPhoto(ctx context.Context, name string, opts *RequestOptions) (*Photo, error) {
	var photo Photo
	if err := c.get(ctx, "nh/photos/{photo}", map[string]string{"photo": name}, opts, &photo); err != nil {
		return nil, err
	}
	return &photo, nil
}

// GetAllItems returns miscellaneous items (materials, food, fencing).
func (c *Client) GetAllItems(ctx context.Context, opts *RequestOptions) ([]Item, error) {
	var items []Item
	if err := c.get(ctx, "nh/items", nil, opts, &items); err != nil {
		return nil, err
	}
	return items, nil
}

// GetItem returns a single item by name.
func (c *Client) GetItem(ctx context.Context, name string, opts *RequestOptions) (*Item, error) {
	var item Item
	if err := c.get(ctx, "nh/items/{item}", map[string]string{"item": name}, opts, &item); err != nil {
		return nil, err
	}
	return &item, nil
}

// GetAllFossils returns fossil groups with their individual fossils
// attached.
func (c *Client) GetAllFossils(ctx context.Context, opts *RequestOptions) ([]FossilGroup, error) {
	var groups []FossilGroup
	if err := c.get(ctx, "nh/fossils/all", nil, opts, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetIndividualFossils returns every individual fossil.
func (c *Client) GetIndividualFossils(ctx context.Context, opts *RequestOptions) ([]Fossil, error) {
	var fossils []Fossil
	if err := c.get(ctx, "nh/fossils/individuals", nil, opts, &fossils); err != nil {
		return nil, err
	}
	return fossils, nil
}

// GetFossil returns a single fossil by name.
func (c *Client) GetFossil(ctx context.Context, name string, opts *RequestOptions) (*Fossil, error) {
	var fossil Fossil
	if err := c.get(ctx, "nh/fossils/individuals/{fossil}", map[string]string{"fossil": name}, opts, &fossil); err != nil {
		return nil, err
	}
	return &fossil, nil
}

// GetFossilGroups returns every fossil group.
func (c *Client) GetFossilGroups(ctx context.Context, opts *RequestOptions) ([]FossilGroup, error) {
	var groups []FossilGroup
	if err := c.get(ctx, "nh/fossils/groups", nil, opts, &groups); err != nil {
		return nil, err
	}
	return groups, nil
}

// GetFossilGroup returns a single fossil group by name.
func (c *Client) GetFossilGroup(ctx context.Context, name string, opts *RequestOptions) (*FossilGroup, error) {
	var group FossilGroup
	if err := c.get(ctx, "nh/fossils/groups/{fossil_group}", map[string]string{"fossil_group": name}, opts, &group); err != nil {
		return nil, err
	}
	return &group, nil
}
