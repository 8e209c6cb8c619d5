package main

import (
	"fmt"
	"log"
	"net/url"
	"os"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/swagger"

	_ "github.com/growupanand/convoform/docs"
	"github.com/growupanand/convoform/src/database"
	"github.com/growupanand/convoform/src/jobs"
	"github.com/growupanand/convoform/src/realtime"
	"github.com/growupanand/convoform/src/routes"
	"github.com/growupanand/convoform/src/seeder"
)

func main() {

	err := database.ConnectMongoDB()
	if err != nil {
		log.Fatalf("Error connecting to the database: %v", err)
	}

	database.InitRedis()
	database.InitAsynq()

	if err := realtime.InitRelay(); err != nil {
		log.Println("⚠️ Notification relay disabled:", err)
	}
	defer realtime.Shutdown()

	if err := seeder.SeedDemoForm(); err != nil {
		log.Println("⚠️ Demo form seeding failed:", err)
	}

	go jobs.RunWorker()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins:     "*",
		AllowMethods:     "GET,POST,PUT,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization, X-Webhook-Secret",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app)

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
