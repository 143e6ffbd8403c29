package courses

import (
	"testing"

	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"github.com/stretchr/testify/assert"
)

func validCourse() models.Course {
	return models.Course{
		Title:          "Intro to ML",
		Description:    "A hands-on introduction to machine learning",
		Duration:       "4 weeks",
		Category:       "students",
		CourseCategory: "Machine Learning",
		Level:          "Beginner",
		Mode:           "Online",
	}
}

func TestValidateCourseAccepts(t *testing.T) {
	course := validCourse()
	assert.NoError(t, ValidateCourse(&course))
}

func TestValidateCourseRequiredFields(t *testing.T) {
	for _, clear := range []func(*models.Course){
		func(c *models.Course) { c.Title = "" },
		func(c *models.Course) { c.Description = "" },
		func(c *models.Course) { c.Duration = "" },
		func(c *models.Course) { c.Category = "" },
	} {
		course := validCourse()
		clear(&course)
		assert.Error(t, ValidateCourse(&course))
	}
}

func TestValidateCourseEnums(t *testing.T) {
	course := validCourse()
	course.Category = "enterprise" // not one of the three audiences
	assert.Error(t, ValidateCourse(&course))

	course = validCourse()
	course.Level = "Expert"
	assert.Error(t, ValidateCourse(&course))

	course = validCourse()
	course.Level = "All Levels"
	assert.NoError(t, ValidateCourse(&course))

	course = validCourse()
	course.Mode = "Remote"
	assert.Error(t, ValidateCourse(&course))

	// optional enums may stay empty
	course = validCourse()
	course.Level = ""
	course.Mode = ""
	assert.NoError(t, ValidateCourse(&course))
}

func TestToViewDerivedValues(t *testing.T) {
	course := validCourse()
	course.IconName = "NoSuchIcon"
	course.Syllabus = sampleSyllabus()

	view := toView(course)

	assert.Equal(t, DefaultIcon, view.Icon)
	assert.Equal(t, 5, view.TotalLectures)
	// 10:00+05:30+20:00+14:30+09:45 = 59.75 -> rounded
	assert.Equal(t, "60min", view.TotalDuration)
}

func TestToViewNoSyllabus(t *testing.T) {
	view := toView(validCourse())
	assert.Equal(t, 0, view.TotalLectures)
	assert.Equal(t, "0min", view.TotalDuration)
}
