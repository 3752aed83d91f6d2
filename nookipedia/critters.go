package nookipedia

import "context"

// CritterMonth is the north/south split the API returns when a critter
// list is filtered by month. The reshaping happens server-side; the
// client only forwards the month parameter. Month is the resolved month
// when "current" was requested.
type CritterMonth[T any] struct {
	Month string `json:"month"`
	North []T    `json:"north"`
	South []T    `json:"south"`
}

// GetAllFish returns every New Horizons fish.
func (c *Client) GetAllFish(ctx context.Context, opts *RequestOptions) ([]Fish, error) {
	var fish []Fish
	if err := c.get(ctx, "nh/fish", nil, opts, &fish); err != nil {
		return nil, err
	}
	return fish, nil
}

// GetFish returns a single fish by name.
func (c *Client) GetFish(ctx context.Context, name string, opts *RequestOptions) (*Fish, error) {
	var fish Fish
	if err := c.get(ctx, "nh/fish/{fish}", map[string]string{"fish": name}, opts, &fish); err != nil {
		return nil, err
	}
	return &fish, nil
}

// GetFishByMonth returns the fish available in the given month, split
// by hemisphere. Month accepts a number (1-12), a month name, or
// "current".
func (c *Client) GetFishByMonth(ctx context.Context, month string, opts *RequestOptions) (*CritterMonth[Fish], error) {
	var result CritterMonth[Fish]
	if err := c.get(ctx, "nh/fish", nil, withQuery(opts, "month", month), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAllBugs returns every New Horizons bug.
func (c *Client) GetAllBugs(ctx context.Context, opts *RequestOptions) ([]Bug, error) {
	var bugs []Bug
	if err := c.get(ctx, "nh/bugs", nil, opts, &bugs); err != nil {
		return nil, err
	}
	return bugs, nil
}

// GetBug returns a single bug by name.
func (c *Client) GetBug(ctx context.Context, name string, opts *RequestOptions) (*Bug, error) {
	var bug Bug
	if err := c.get(ctx, "nh/bugs/{bug}", map[string]string{"bug": name}, opts, &bug); err != nil {
		return nil, err
	}
	return &bug, nil
}

// GetBugsByMonth returns the bugs available in the given month, split
// by hemisphere.
func (c *Client) GetBugsByMonth(ctx context.Context, month string, opts *RequestOptions) (*CritterMonth[Bug], error) {
	var result CritterMonth[Bug]
	if err := c.get(ctx, "nh/bugs", nil, withQuery(opts, "month", month), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// GetAllSeaCreatures returns every New Horizons sea creature.
func (c *Client) GetAllSeaCreatures(ctx context.Context, opts *RequestOptions) ([]SeaCreature, error) {
	var creatures []SeaCreature
	if err := c.get(ctx, "nh/sea", nil, opts, &creatures); err != nil {
		return nil, err
	}
	return creatures, nil
}

// GetSeaCreature returns a single sea creature by name.
func (c *Client) GetSeaCreature(ctx context.Context, name string, opts *RequestOptions) (*SeaCreature, error) {
	var creature SeaCreature
	if err := c.get(ctx, "nh/sea/{sea_creature}", map[string]string{"sea_creature": name}, opts, &creature); err != nil {
		return nil, err
	}
	return &creature, nil
}

// GetSeaCreaturesByMonth returns the sea creatures available in the
// given month, split by hemisphere.
func (c *Client) GetSeaCreaturesByMonth(ctx context.Context, month string, opts *RequestOptions) (*CritterMonth[SeaCreature], error) {
	var result CritterMonth[SeaCreature]
	if err := c.get(ctx, "nh/sea", nil, withQuery(opts, "month", month), &result); err != nil {
		return nil, err
	}
	return &result, nil
}

// withQuery returns a copy of opts with one query parameter set,
// leaving the caller's RequestOptions untouched.
func withQuery(opts *RequestOptions, name string, value any) *RequestOptions {
	merged := RequestOptions{}
	if opts != nil {
		merged = *opts
	}
	query := Query{}
	for k, v := range merged.Query {
		query[k] = v
	}
	query[name] = value
	merged.Query = query
	return &merged
}
