package courses

import (
	"testing"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"github.com/stretchr/testify/assert"
)

func sampleSyllabus() []models.Section {
	return []models.Section{
		{
			Title: "Getting Started",
			Lectures: []models.Lecture{
				{Title: "Welcome", Duration: "10:00", IsPreview: true},
				{Title: "Setup", Duration: "05:30"},
			},
		},
		{
			Title: "Core Concepts",
			Lectures: []models.Lecture{
				{Title: "Models", Duration: "20:00"},
				{Title: "Training", Duration: "14:30"},
				{Title: "Evaluation", Duration: "09:45"},
			},
		},
		{
			Title:    "Wrap Up",
			Lectures: []models.Lecture{},
		},
	}
}

func TestDurationMinutes(t *testing.T) {
	assert.InDelta(t, 10.0, DurationMinutes("10:00"), 0.001)
	assert.InDelta(t, 5.5, DurationMinutes("05:30"), 0.001)
	assert.InDelta(t, 0.75, DurationMinutes("00:45"), 0.001)

	// Malformed segments count as zero instead of breaking the total
	assert.InDelta(t, 0.0, DurationMinutes(""), 0.001)
	assert.InDelta(t, 0.0, DurationMinutes("abc"), 0.001)
	assert.InDelta(t, 10.0, DurationMinutes("10:xx"), 0.001)
	assert.InDelta(t, 0.5, DurationMinutes("xx:30"), 0.001)
}

func TestTotalLectures(t *testing.T) {
	syllabus := sampleSyllabus()
	total := 0
	for _, s := range syllabus {
		total += len(s.Lectures)
	}
	assert.Equal(t, total, TotalLectures(syllabus))
	assert.Equal(t, 5, TotalLectures(syllabus))
	assert.Equal(t, 0, TotalLectures(nil))
}

func TestTotalDurationOrderIndependent(t *testing.T) {
	syllabus := sampleSyllabus()
	reversed := []models.Section{syllabus[2], syllabus[1], syllabus[0]}

	assert.Equal(t, TotalDurationMinutes(syllabus), TotalDurationMinutes(reversed))
}

func TestSectionDurationLabel(t *testing.T) {
	// 10:00 + 05:30 = 15.5 minutes, displayed rounded
	section := sampleSyllabus()[0]
	assert.Equal(t, "16min", SectionDurationLabel(section))

	empty := models.Section{Title: "Empty"}
	assert.Equal(t, "0min", SectionDurationLabel(empty))
}

func TestAddSection(t *testing.T) {
	syllabus := sampleSyllabus()
	out := AddSection(syllabus)

	assert.Len(t, out, 4)
	assert.Equal(t, "Section 4", out[3].Title)
	assert.Empty(t, out[3].Lectures)
	// original untouched
	assert.Len(t, syllabus, 3)
}

func TestRemoveSection(t *testing.T) {
	syllabus := sampleSyllabus()
	out := RemoveSection(syllabus, 1)

	assert.Len(t, out, 2)
	assert.Equal(t, "Getting Started", out[0].Title)
	assert.Equal(t, "Wrap Up", out[1].Title)

	// out-of-range index is a no-op
	assert.Len(t, RemoveSection(syllabus, -1), 3)
	assert.Len(t, RemoveSection(syllabus, 3), 3)
}

func TestRenameSection(t *testing.T) {
	syllabus := sampleSyllabus()
	out := RenameSection(syllabus, 0, "Introduction")

	assert.Equal(t, "Introduction", out[0].Title)
	assert.Equal(t, "Getting Started", syllabus[0].Title)
}

func TestAddAndRemoveLecture(t *testing.T) {
	syllabus := sampleSyllabus()

	withLecture := AddLecture(syllabus, 2)
	assert.Len(t, withLecture[2].Lectures, 1)
	assert.Equal(t, "00:00", withLecture[2].Lectures[0].Duration)
	assert.False(t, withLecture[2].Lectures[0].IsPreview)
	assert.Empty(t, syllabus[2].Lectures)

	removed := RemoveLecture(syllabus, 1, 1)
	assert.Len(t, removed[1].Lectures, 2)
	assert.Equal(t, "Models", removed[1].Lectures[0].Title)
	assert.Equal(t, "Evaluation", removed[1].Lectures[1].Title)
	assert.Len(t, syllabus[1].Lectures, 3)
}

func TestUpdateLecture(t *testing.T) {
	syllabus := sampleSyllabus()
	out := UpdateLecture(syllabus, 0, 1, func(l models.Lecture) models.Lecture {
		l.Duration = "07:15"
		l.IsPreview = true
		return l
	})

	assert.Equal(t, "07:15", out[0].Lectures[1].Duration)
	assert.True(t, out[0].Lectures[1].IsPreview)
	assert.Equal(t, "05:30", syllabus[0].Lectures[1].Duration)
}

func TestNormalizeSyllabusFlatTopics(t *testing.T) {
	course := models.Course{
		Syllabus: []models.Section{
			{LegacyModule: "Python Basics", LegacyTopics: []string{"Variables", "Loops", "Functions"}},
			{Title: "Already Canonical", Lectures: []models.Lecture{{Title: "Intro", Duration: "03:00"}}},
		},
	}

	NormalizeSyllabus(&course)

	assert.Len(t, course.Syllabus, 2)
	assert.Equal(t, "Python Basics", course.Syllabus[0].Title)
	assert.Len(t, course.Syllabus[0].Lectures, 3)
	assert.Equal(t, "Variables", course.Syllabus[0].Lectures[0].Title)
	assert.Equal(t, "00:00", course.Syllabus[0].Lectures[0].Duration)
	assert.Empty(t, course.Syllabus[0].LegacyModule)
	assert.Empty(t, course.Syllabus[0].LegacyTopics)
	assert.Equal(t, "Already Canonical", course.Syllabus[1].Title)
}

func TestNormalizeSyllabusCurriculum(t *testing.T) {
	course := models.Course{
		Curriculum: []models.CurriculumModule{
			{Module: "Foundations", Lessons: 8, Duration: "2 weeks"},
			{Module: "Projects", Lessons: 4, Duration: "1 week"},
		},
	}

	NormalizeSyllabus(&course)

	assert.Nil(t, course.Curriculum)
	assert.Len(t, course.Syllabus, 2)
	assert.Equal(t, "Foundations", course.Syllabus[0].Title)
	assert.Empty(t, course.Syllabus[0].Lectures)
}

func TestNormalizeSyllabusNilSafe(t *testing.T) {
	NormalizeSyllabus(nil)

	course := models.Course{}
	NormalizeSyllabus(&course)
	assert.Empty(t, course.Syllabus)
}
