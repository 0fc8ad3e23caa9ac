package client

// Tag is an entry of the display palette.
type Tag struct {
	Name       string
	ColorClass string
}

const fallbackColorClass = "tag-color-1"

// AvailableTags is the fixed palette offered when editing a recipe. The
// server accepts any tag.
var AvailableTags = []Tag{
	{Name: "schnell", ColorClass: "tag-color-3"},
	{Name: "vegetarisch", ColorClass: "tag-color-4"},
	{Name: "vegan", ColorClass: "tag-color-2"},
	{Name: "herzhaft", ColorClass: "tag-color-5"},
	{Name: "süß", ColorClass: "tag-color-6"},
	{Name: "getränk", ColorClass: "tag-color-1"},
}

// ColorClass returns the CSS class for a tag name.
func ColorClass(name string) string {
	for _, t := range AvailableTags {
		if t.Name == name {
			return t.ColorClass
		}
	}
	return fallbackColorClass
}
