// file: model/request.go

package model

import "strings"

// LoginRequest defines the payload for user authentication.
type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

func (r *LoginRequest) Normalize() {
	r.Username = strings.TrimSpace(r.Username)
}

// LoginResponse carries the issued bearer token.
type LoginResponse struct {
	Token string `json:"token"`
}

// RecipeRequest is the body of create and update calls. Ingredients must be
// present as an array; tags may be omitted.
type RecipeRequest struct {
	Title        string   `json:"title" validate:"required"`
	Ingredients  []string `json:"ingredients" validate:"required"`
	Instructions string   `json:"instructions" validate:"required"`
	Tags         []string `json:"tags"`
}

// Normalize trims every field and drops blank ingredients and tags.
// Ingredients stay non-nil when they were sent so an all-blank list is
// accepted as empty rather than reported missing.
func (r *RecipeRequest) Normalize() {
	r.Title = strings.TrimSpace(r.Title)
	r.Instructions = strings.TrimSpace(r.Instructions)
	if r.Ingredients != nil {
		r.Ingredients = CleanList(r.Ingredients)
	}
	r.Tags = CleanTags(r.Tags)
}

// Draft converts the request into store input.
func (r *RecipeRequest) Draft() RecipeDraft {
	return RecipeDraft{
		Title:        r.Title,
		Ingredients:  r.Ingredients,
		Instructions: r.Instructions,
		Tags:         r.Tags,
	}
}

// CleanList trims entries and drops empty ones. It never returns nil.
func CleanList(in []string) []string {
	out := make([]string, 0, len(in))
	for _, s := range in {
		if s = strings.TrimSpace(s); s != "" {
			out = append(out, s)
		}
	}
	return out
}

// CleanTags is CleanList plus de-duplication, keeping first occurrences.
func CleanTags(in []string) []string {
	cleaned := CleanList(in)
	seen := make(map[string]struct{}, len(cleaned))
	out := cleaned[:0]
	for _, t := range cleaned {
		if _, dup := seen[t]; dup {
			continue
		}
		seen[t] = struct{}{}
		out = append(out, t)
	}
	return out
}
