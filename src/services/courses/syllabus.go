package courses

import (
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"
)

// Syllabus builder operations. The admin editor builds the section/lecture
// structure through these before a single full-document submit. Every
// operation returns a rebuilt slice so callers holding the old value never
// see the change.

const defaultLectureDuration = "00:00"

// AddSection appends a new section with a placeholder title and no lectures.
func AddSection(syllabus []models.Section) []models.Section {
	out := make([]models.Section, 0, len(syllabus)+1)
	out = append(out, syllabus...)
	out = append(out, models.Section{
		Title:    fmt.Sprintf("Section %d", len(syllabus)+1),
		Lectures: []models.Lecture{},
	})
	return out
}

// RemoveSection removes the section at index i. Out-of-range indices are a no-op.
func RemoveSection(syllabus []models.Section, i int) []models.Section {
	if i < 0 || i >= len(syllabus) {
		return syllabus
	}
	out := make([]models.Section, 0, len(syllabus)-1)
	out = append(out, syllabus[:i]...)
	out = append(out, syllabus[i+1:]...)
	return out
}

// RenameSection replaces the title of the section at index i.
func RenameSection(syllabus []models.Section, i int, title string) []models.Section {
	if i < 0 || i >= len(syllabus) {
		return syllabus
	}
	out := make([]models.Section, len(syllabus))
	copy(out, syllabus)
	out[i].Title = title
	return out
}

// AddLecture appends an empty lecture to the section at index i.
func AddLecture(syllabus []models.Section, i int) []models.Section {
	if i < 0 || i >= len(syllabus) {
		return syllabus
	}
	out := make([]models.Section, len(syllabus))
	copy(out, syllabus)
	lectures := make([]models.Lecture, 0, len(out[i].Lectures)+1)
	lectures = append(lectures, out[i].Lectures...)
	lectures = append(lectures, models.Lecture{Duration: defaultLectureDuration})
	out[i].Lectures = lectures
	return out
}

// RemoveLecture removes lecture j from section i.
func RemoveLecture(syllabus []models.Section, i, j int) []models.Section {
	if i < 0 || i >= len(syllabus) {
		return syllabus
	}
	if j < 0 || j >= len(syllabus[i].Lectures) {
		return syllabus
	}
	out := make([]models.Section, len(syllabus))
	copy(out, syllabus)
	lectures := make([]models.Lecture, 0, len(out[i].Lectures)-1)
	lectures = append(lectures, out[i].Lectures[:j]...)
	lectures = append(lectures, out[i].Lectures[j+1:]...)
	out[i].Lectures = lectures
	return out
}

// UpdateLecture replaces lecture j of section i with the result of apply.
func UpdateLecture(syllabus []models.Section, i, j int, apply func(models.Lecture) models.Lecture) []models.Section {
	if i < 0 || i >= len(syllabus) {
		return syllabus
	}
	if j < 0 || j >= len(syllabus[i].Lectures) {
		return syllabus
	}
	out := make([]models.Section, len(syllabus))
	copy(out, syllabus)
	lectures := make([]models.Lecture, len(out[i].Lectures))
	copy(lectures, out[i].Lectures)
	lectures[j] = apply(lectures[j])
	out[i].Lectures = lectures
	return out
}

// DurationMinutes parses a "MM:SS" lecture duration into minutes. Non-numeric
// segments count as zero, so a malformed duration never breaks a total.
func DurationMinutes(duration string) float64 {
	parts := strings.Split(duration, ":")
	if len(parts) == 0 {
		return 0
	}
	mins, err := strconv.Atoi(strings.TrimSpace(parts[0]))
	if err != nil || mins < 0 {
		mins = 0
	}
	secs := 0
	if len(parts) > 1 {
		secs, err = strconv.Atoi(strings.TrimSpace(parts[1]))
		if err != nil || secs < 0 {
			secs = 0
		}
	}
	return float64(mins) + float64(secs)/60
}

// TotalLectures counts lectures across all sections.
func TotalLectures(syllabus []models.Section) int {
	total := 0
	for _, s := range syllabus {
		total += len(s.Lectures)
	}
	return total
}

// TotalDurationMinutes sums every lecture duration, rounded to whole minutes.
func TotalDurationMinutes(syllabus []models.Section) int {
	var total float64
	for _, s := range syllabus {
		for _, l := range s.Lectures {
			total += DurationMinutes(l.Duration)
		}
	}
	return int(math.Round(total))
}

// SectionDurationLabel formats one section's summed duration, e.g. "16min".
func SectionDurationLabel(section models.Section) string {
	var total float64
	for _, l := range section.Lectures {
		total += DurationMinutes(l.Duration)
	}
	return fmt.Sprintf("%dmin", int(math.Round(total)))
}

// NormalizeSyllabus converts any legacy content shape on the course to the
// canonical section/lecture structure and clears the legacy fields. Old
// documents carry either flat-topic sections ({module, topics}) inside the
// syllabus array or a separate curriculum array; both fold into sections here
// so no consumer ever branches on shape again.
func NormalizeSyllabus(course *models.Course) {
	if course == nil {
		return
	}

	normalized := make([]models.Section, 0, len(course.Syllabus)+len(course.Curriculum))
	for _, s := range course.Syllabus {
		if s.Title == "" && s.LegacyModule != "" {
			// flat-topic section: each topic becomes an untimed lecture
			sec := models.Section{Title: s.LegacyModule, Lectures: make([]models.Lecture, 0, len(s.LegacyTopics))}
			for _, topic := range s.LegacyTopics {
				sec.Lectures = append(sec.Lectures, models.Lecture{Title: topic, Duration: defaultLectureDuration})
			}
			normalized = append(normalized, sec)
			continue
		}
		s.LegacyModule = ""
		s.LegacyTopics = nil
		if s.Lectures == nil {
			s.Lectures = []models.Lecture{}
		}
		normalized = append(normalized, s)
	}

	// Oldest shape: module-count entries with no per-lecture content.
	for _, m := range course.Curriculum {
		normalized = append(normalized, models.Section{
			Title:    m.Module,
			Lectures: []models.Lecture{},
		})
	}

	course.Syllabus = normalized
	course.Curriculum = nil
}
