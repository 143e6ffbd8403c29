package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	_ "github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/docs"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/database"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/jobs"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/middleware"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/routes"
	"github.com/studiosalgoforge-stack/AlgoForgestudios-sub000/src/services/admins"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"
)

// @title        AlgoForge Studios API
// @version      1.0
// @description  REST backend for the AlgoForge Studios site: course catalog, lead capture, careers and the admin dashboard.
// @BasePath     /api
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	// Cache and job queue are optional - both degrade when Redis is absent.
	database.InitRedis()
	database.InitAsynq()

	admins.EnsureDefaultAdmin()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	// Maintenance flag header on every route except uploads and system status
	app.Use(middleware.Maintenance)

	app.Get("/swagger/*", swagger.HandlerDefault)

	// Resume files uploaded through /api/careers
	app.Static("/uploads/resumes", "./uploads/resumes")

	routes.InitRoutes(app)

	// Lead notification worker shares the Redis behind the Asynq client
	if database.AsynqClient != nil {
		go jobs.StartWorker(database.RedisURI)
	}

	appURI := os.Getenv("APP_URI")
	if appURI == "" {
		appURI = "8888"
	}

	log.Println("Server is running on port " + appURI)
	err = app.Listen(fmt.Sprintf(":%s", url.PathEscape(appURI)))
	if err != nil {
		log.Fatal(err)
	}

}
