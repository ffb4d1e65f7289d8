package main

import (
	"context"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"hostel-backend/config"
	"hostel-backend/controllers"
	"hostel-backend/routes"
	"hostel-backend/services"
	"hostel-backend/utils"
)

func main() {
	// Load .env (optional)
	if err := godotenv.Load(); err != nil {
		log.Println(".env not found or couldn't load it; continuing with environment variables")
	}

	jwtSecret := os.Getenv("JWT_SECRET")
	if jwtSecret == "" {
		log.Fatal("ERROR: JWT_SECRET environment variable is not set")
	}

	if err := config.ConnectDatabase(); err != nil {
		log.Fatalf("Database connect failed: %v", err)
	}
	db := config.DB
	if db == nil {
		log.Fatal("config.DB is nil after ConnectDatabase()")
	}
	log.Println("Database connection established and migrations applied")

	utils.RegisterValidators()

	// Razorpay credentials are optional; the online payment endpoints fail
	// cleanly when the gateway is not configured.
	var gateway services.PaymentGateway
	razorpayKey := os.Getenv("RAZORPAY_KEY_ID")
	razorpaySecret := os.Getenv("RAZORPAY_KEY_SECRET")
	if razorpayKey != "" && razorpaySecret != "" {
		gateway = services.NewRazorpayGateway(razorpayKey, razorpaySecret)
		log.Println("Razorpay gateway configured")
	} else {
		gateway = services.UnconfiguredGateway{}
		log.Println("Razorpay credentials not set; online payments disabled")
	}

	// Services
	allocationService := services.NewAllocationService(db)
	structureService := services.NewStructureService(db)
	studentService := services.NewStudentService(db)
	complaintService := services.NewComplaintService(db)
	maintenanceService := services.NewMaintenanceService(db)
	visitorService := services.NewVisitorService(db)
	noticeService := services.NewNoticeService(db)
	feeService := services.NewFeeService(db, gateway, razorpaySecret)

	// Controllers
	ctl := routes.Controllers{
		Auth:        controllers.NewAuthController(db, jwtSecret),
		Building:    controllers.NewBuildingController(structureService),
		Floor:       controllers.NewFloorController(structureService),
		Room:        controllers.NewRoomController(structureService),
		Allocation:  controllers.NewAllocationController(allocationService),
		Student:     controllers.NewStudentController(studentService),
		Complaint:   controllers.NewComplaintController(complaintService),
		Maintenance: controllers.NewMaintenanceController(maintenanceService),
		Visitor:     controllers.NewVisitorController(visitorService),
		Notice:      controllers.NewNoticeController(noticeService),
		Fee:         controllers.NewFeeController(feeService),
	}

	router := routes.SetupRouter(ctl, jwtSecret)

	addr := ":" + utils.EnvOrDefault("PORT", "8080")

	srv := &http.Server{
		Addr:              addr,
		Handler:           router,
		ReadTimeout:       10 * time.Second,
		ReadHeaderTimeout: 5 * time.Second,
		WriteTimeout:      20 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		log.Printf("Server starting on %s", addr)
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatalf("ListenAndServe(): %v", err)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, os.Interrupt, syscall.SIGTERM)
	<-quit
	log.Println("Shutdown signal received, shutting down server...")

	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		log.Fatalf("Server forced to shutdown: %v", err)
	}

	log.Println("Server stopped gracefully")
}
