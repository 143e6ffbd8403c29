package courses

import (
	"strings"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

// Icon names the frontend knows how to render. Courses store only the name;
// unknown names fall back to the default so a renamed icon never blanks a card.
const DefaultIcon = "BookOpen"

var knownIcons = map[string]bool{
	"BookOpen":      true,
	"Brain":         true,
	"Code":          true,
	"Cpu":           true,
	"Database":      true,
	"LineChart":     true,
	"Briefcase":     true,
	"Rocket":        true,
	"Bot":           true,
	"Lightbulb":     true,
	"GraduationCap": true,
}

// ResolveIcon maps a stored icon name to the one the UI should render.
func ResolveIcon(iconName string) string {
	if knownIcons[iconName] {
		return iconName
	}
	return DefaultIcon
}

// buildCourseFilter composes the list query. Every set filter is ANDed;
// search matches case-insensitive substrings across the display fields.
func buildCourseFilter(filters models.CourseFilters) bson.M {
	filter := bson.M{}

	if filters.Category != "" {
		filter["category"] = filters.Category
	}
	if filters.CourseCategory != "" {
		filter["courseCategory"] = filters.CourseCategory
	}
	if filters.Level != "" {
		filter["level"] = filters.Level
	}
	if filters.Mode != "" {
		filter["mode"] = filters.Mode
	}
	if filters.Featured != nil {
		filter["featured"] = *filters.Featured
	}
	if filters.Trending != nil {
		filter["trending"] = *filters.Trending
	}

	if search := strings.TrimSpace(filters.Search); search != "" {
		regex := primitive.Regex{Pattern: escapeRegex(search), Options: "i"}
		filter["$or"] = bson.A{
			bson.M{"title": bson.M{"$regex": regex}},
			bson.M{"description": bson.M{"$regex": regex}},
			bson.M{"instructor": bson.M{"$regex": regex}},
			bson.M{"category": bson.M{"$regex": regex}},
			bson.M{"skills": bson.M{"$regex": regex}},
			bson.M{"tags": bson.M{"$regex": regex}},
		}
	}

	return filter
}

// escapeRegex quotes regex metacharacters so search terms match literally.
func escapeRegex(s string) string {
	replacer := strings.NewReplacer(
		`\`, `\\`, `.`, `\.`, `+`, `\+`, `*`, `\*`, `?`, `\?`,
		`(`, `\(`, `)`, `\)`, `[`, `\[`, `]`, `\]`, `{`, `\{`, `}`, `\}`,
		`^`, `\^`, `$`, `\$`, `|`, `\|`,
	)
	return replacer.Replace(s)
}

// trimList drops empty entries and trims whitespace. Skills and tags arrive
// from a comma-separated input on the admin form.
func trimList(items []string) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		if trimmed := strings.TrimSpace(item); trimmed != "" {
			out = append(out, trimmed)
		}
	}
	return out
}
