package client

import (
	"recipe-api/model"
	"sort"
	"sync"
)

// TagFilter is the set of active tags. A recipe is visible when it carries
// every active tag; an empty filter shows everything.
type TagFilter struct {
	mu     sync.RWMutex
	active map[string]struct{}
}

func NewTagFilter(tags ...string) *TagFilter {
	f := &TagFilter{active: make(map[string]struct{})}
	f.Set(tags...)
	return f
}

// Toggle switches tag on or off and reports whether it is now active.
func (f *TagFilter) Toggle(tag string) bool {
	f.mu.Lock()
	defer f.mu.Unlock()
	if _, ok := f.active[tag]; ok {
		delete(f.active, tag)
		return false
	}
	f.active[tag] = struct{}{}
	return true
}

// Set replaces the active tags.
func (f *TagFilter) Set(tags ...string) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.active = make(map[string]struct{}, len(tags))
	for _, t := range tags {
		if t != "" {
			f.active[t] = struct{}{}
		}
	}
}

func (f *TagFilter) Clear() {
	f.Set()
}

// Active returns the active tags sorted by name.
func (f *TagFilter) Active() []string {
	f.mu.RLock()
	defer f.mu.RUnlock()
	out := make([]string, 0, len(f.active))
	for t := range f.active {
		out = append(out, t)
	}
	sort.Strings(out)
	return out
}

func (f *TagFilter) Matches(r model.Recipe) bool {
	f.mu.RLock()
	defer f.mu.RUnlock()
	for t := range f.active {
		if !r.HasTag(t) {
			return false
		}
	}
	return true
}

// Apply keeps the recipes that match, in their original order. A nil
// filter matches everything.
func (f *TagFilter) Apply(recipes []model.Recipe) []model.Recipe {
	out := make([]model.Recipe, 0, len(recipes))
	for _, r := range recipes {
		if f == nil || f.Matches(r) {
			out = append(out, r)
		}
	}
	return out
}
