package courses

import (
	"context"
	"crypto/sha1"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"time"

	DB "github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/database"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/models"

	"github.com/go-playground/validator/v10"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo/options"
)

var validate = validator.New()

// --- Redis Cache Helper ---
func hashParams(params interface{}) string {
	b, _ := json.Marshal(params)
	h := sha1.New()
	h.Write(b)
	return hex.EncodeToString(h.Sum(nil))
}

func setCache(key string, value interface{}, ttl time.Duration) {
	if DB.RedisClient == nil {
		return
	}
	b, _ := json.Marshal(value)
	DB.RedisClient.Set(DB.RedisCtx, key, b, ttl)
}

func getCache(key string, dest interface{}) bool {
	if DB.RedisClient == nil {
		return false
	}
	val, err := DB.RedisClient.Get(DB.RedisCtx, key).Result()
	if err != nil {
		return false
	}
	return json.Unmarshal([]byte(val), dest) == nil
}

func invalidateCourseListCache() {
	if DB.RedisClient == nil {
		return
	}
	iter := DB.RedisClient.Scan(DB.RedisCtx, 0, "courses:list:*", 0).Iterator()
	for iter.Next(DB.RedisCtx) {
		DB.RedisClient.Del(DB.RedisCtx, iter.Val())
	}
}

// ValidateCourse enforces the persistence invariant: title, description,
// duration and category must be non-empty and enums in range. Runs before
// every insert and replace, regardless of what the admin form checked.
func ValidateCourse(course *models.Course) error {
	return validate.Struct(course)
}

// toView attaches the derived display values the frontend shows on cards and
// detail pages. Computed here, in one place, from the normalized syllabus.
func toView(course models.Course) models.CourseView {
	return models.CourseView{
		Course:        course,
		Icon:          ResolveIcon(course.IconName),
		TotalLectures: TotalLectures(course.Syllabus),
		TotalDuration: fmt.Sprintf("%dmin", TotalDurationMinutes(course.Syllabus)),
	}
}

// CreateCourse validates, normalizes the syllabus and inserts a new course.
func CreateCourse(course *models.Course) (*models.CourseView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ValidateCourse(course); err != nil {
		return nil, err
	}

	defer invalidateCourseListCache()

	course.ID = primitive.NewObjectID()
	course.CreatedAt = time.Now().UTC()
	course.UpdatedAt = course.CreatedAt
	course.Skills = trimList(course.Skills)
	course.Tags = trimList(course.Tags)
	NormalizeSyllabus(course)

	_, err := DB.CourseCollection.InsertOne(ctx, course)
	if err != nil {
		return nil, err
	}
	view := toView(*course)
	return &view, nil
}

// GetAllCourses lists courses for the catalog: combinable filters, free-text
// search, skip/limit, newest first. Results are cached per filter hash.
func GetAllCourses(filters models.CourseFilters) ([]models.CourseView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	key := "courses:list:" + hashParams(filters)
	var cached []models.CourseView
	if getCache(key, &cached) {
		return cached, nil
	}

	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})
	if filters.Skip > 0 {
		opts.SetSkip(filters.Skip)
	}
	if filters.Limit > 0 {
		opts.SetLimit(filters.Limit)
	}

	cursor, err := DB.CourseCollection.Find(ctx, buildCourseFilter(filters), opts)
	if err != nil {
		return nil, err
	}
	var courses []models.Course
	if err = cursor.All(ctx, &courses); err != nil {
		return nil, err
	}

	views := make([]models.CourseView, 0, len(courses))
	for i := range courses {
		NormalizeSyllabus(&courses[i])
		views = append(views, toView(courses[i]))
	}

	setCache(key, views, 5*time.Minute)
	return views, nil
}

// GetCourseByID returns one course or mongo.ErrNoDocuments when the id
// matches nothing. Callers turn that into an explicit 404 the frontend's
// fetch-with-fallback relies on.
func GetCourseByID(id primitive.ObjectID) (*models.CourseView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	var course models.Course
	err := DB.CourseCollection.FindOne(ctx, bson.M{"_id": id}).Decode(&course)
	if err != nil {
		return nil, err
	}
	NormalizeSyllabus(&course)
	view := toView(course)
	return &view, nil
}

// UpdateCourse replaces the full document, the way the admin editor submits
// it. Legacy curriculum fields are unset so old shapes stop round-tripping.
func UpdateCourse(id primitive.ObjectID, update models.Course) (*models.CourseView, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := ValidateCourse(&update); err != nil {
		return nil, err
	}

	defer invalidateCourseListCache()

	update.Skills = trimList(update.Skills)
	update.Tags = trimList(update.Tags)
	NormalizeSyllabus(&update)

	updateData := bson.M{
		"title":           update.Title,
		"subtitle":        update.Subtitle,
		"description":     update.Description,
		"longDescription": update.LongDescription,
		"duration":        update.Duration,
		"mode":            update.Mode,
		"level":           update.Level,
		"price":           update.Price,
		"originalPrice":   update.OriginalPrice,
		"language":        update.Language,
		"prerequisites":   update.Prerequisites,
		"instructor":      update.Instructor,
		"category":        update.Category,
		"courseCategory":  update.CourseCategory,
		"skills":          update.Skills,
		"tags":            update.Tags,
		"iconName":        update.IconName,
		"featured":        update.Featured,
		"trending":        update.Trending,
		"certificate":     update.Certificate,
		"syllabus":        update.Syllabus,
		"updatedAt":       time.Now().UTC(),
	}

	_, err := DB.CourseCollection.UpdateOne(ctx, bson.M{"_id": id}, bson.M{
		"$set":   updateData,
		"$unset": bson.M{"curriculum": ""},
	})
	if err != nil {
		return nil, err
	}
	return GetCourseByID(id)
}

// DeleteCourse removes a course by id.
func DeleteCourse(id primitive.ObjectID) error {
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	defer invalidateCourseListCache()

	_, err := DB.CourseCollection.DeleteOne(ctx, bson.M{"_id": id})
	return err
}
