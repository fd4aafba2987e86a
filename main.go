package main

import (
	"log"
	"os"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/joho/godotenv"

	"clinic-booking-api/controllers"
	"clinic-booking-api/cron"
	"clinic-booking-api/db"
	"clinic-booking-api/middleware"
	"clinic-booking-api/redis"
	"clinic-booking-api/routes"
	"clinic-booking-api/services"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	secret := os.Getenv("JWT_SECRET")
	if secret == "" {
		log.Fatal("JWT_SECRET is required")
	}

	db.Init()
	db.Migrate()
	db.InitMongo()
	redis.InitRedis()

	store := db.NewStore(db.DB)
	prescriptions := db.NewPrescriptionStore(db.Mongo)
	denylist := redis.NewDenylist(redis.Client)

	tokens := services.NewTokenService(secret, 7*24*time.Hour, denylist)
	scheduler := services.NewSchedulingService(store, store)
	patients := services.NewPatientService(store, store, tokens)
	auth := services.NewAuthService(store, store, store, tokens)

	app := fiber.New()
	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	app.Get("/", func(c *fiber.Ctx) error {
		return c.SendString("Clinic Booking API")
	})

	limiter := middleware.NewRateLimiter(5, 10)
	routes.SetupAuthRoutes(app, &controllers.AuthController{
		Auth:     auth,
		Patients: patients,
		Tokens:   tokens,
	}, limiter, denylist)
	routes.SetupDoctorRoutes(app, &controllers.DoctorController{
		Scheduler: scheduler,
		Store:     store,
	}, denylist)
	routes.SetupAppointmentRoutes(app, &controllers.AppointmentController{
		Scheduler: scheduler,
		Patients:  patients,
		Store:     store,
	}, denylist)
	routes.SetupPrescriptionRoutes(app, &controllers.PrescriptionController{
		Prescriptions: prescriptions,
		Store:         store,
	}, denylist)
	routes.SetupDashboardRoutes(app, &controllers.DashboardController{
		Tokens: tokens,
	})

	cron.StartCronJobs()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8000"
	}
	log.Fatal(app.Listen(":" + port))
}
