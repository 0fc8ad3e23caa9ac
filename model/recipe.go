package model

// Recipe is the stored record. Its JSON form is also the value persisted in
// the key-value store, so field names are part of the storage contract.
type Recipe struct {
	ID           string   `json:"id"`
	OwnerID      string   `json:"userId"`
	Title        string   `json:"title"`
	Ingredients  []string `json:"ingredients"`
	Instructions string   `json:"instructions"`
	Tags         []string `json:"tags"`
	IsFavorite   bool     `json:"isFavorite"`
}

// RecipeDraft holds the caller-controlled fields of a recipe.
type RecipeDraft struct {
	Title        string
	Ingredients  []string
	Instructions string
	Tags         []string
}

// Clone returns a deep copy so callers cannot alias stored slices.
func (r *Recipe) Clone() *Recipe {
	c := *r
	c.Ingredients = append([]string{}, r.Ingredients...)
	c.Tags = append([]string{}, r.Tags...)
	return &c
}

// Apply replaces the mutable fields with the draft's.
func (r *Recipe) Apply(d RecipeDraft) {
	r.Title = d.Title
	r.Ingredients = append([]string{}, d.Ingredients...)
	r.Instructions = d.Instructions
	r.Tags = append([]string{}, d.Tags...)
}

// HasTag reports whether the recipe carries tag.
func (r *Recipe) HasTag(tag string) bool {
	for _, t := range r.Tags {
		if t == tag {
			return true
		}
	}
	return false
}
