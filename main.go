// File: mediconnect/main.go
package main

import (
	"context"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"mediconnect/config"
	"mediconnect/database"
	appointmentRepo "mediconnect/database/repository/appointment"
	doctorRepo "mediconnect/database/repository/doctor"
	userRepoPkg "mediconnect/database/repository/user"
	"mediconnect/handlers"
	"mediconnect/middleware"
	"mediconnect/routes"
	"mediconnect/services/doctor"
	"mediconnect/services/schedule"
	"mediconnect/services/user"
	"mediconnect/utils"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
)

func main() {
	config.LoadConfig()
	logger := utils.GetLogger()

	database.InitDB()
	utils.InitAuthCache()
	utils.StartHealthMonitor(
		[]*redis.Client{utils.GetAuthCacheClient()},
		database.MongoClient,
	)

	// Create the Gin router.
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(utils.ErrorHandler())
	router.Use(gin.Logger())
	router.Use(middleware.RateLimitMiddleware())

	// repositories.
	userRepo := userRepoPkg.NewMongoUserRepo()
	docRepo := doctorRepo.NewMongoDoctorRepo()
	apptRepo := appointmentRepo.NewMongoAppointmentRepo()

	// services.
	userService := &user.DefaultUserService{
		Repo: userRepo,
	}
	doctorService := &doctor.DefaultDoctorService{
		Repo: docRepo,
	}
	schedulingEngine := &schedule.DefaultSchedulingEngine{
		Appointments: apptRepo,
		Doctors:      docRepo,
	}

	// handlers.
	handlerBundle := &handlers.HandlerBundle{
		UserRepo:    userRepo,
		Auth:        handlers.NewAuthHandler(userService),
		Doctor:      handlers.NewDoctorHandler(doctorService, schedulingEngine),
		Appointment: handlers.NewAppointmentHandler(schedulingEngine, apptRepo, docRepo),
	}

	// Register routes with the assembled handler bundle.
	routes.RegisterRoutes(router, handlerBundle)

	// Start the HTTP server.
	port := config.AppConfig.AppPort
	if port == "" {
		port = "8080"
	}
	srv := &http.Server{
		Addr:    "0.0.0.0:" + port,
		Handler: router,
	}

	logger.Sugar().Infof("Starting server on %s...", srv.Addr)
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Sugar().Fatalf("main: server failed to start: %v", err)
		}
	}()

	// Wait for an OS signal to gracefully shutdown.
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	logger.Sugar().Info("main: server is shutting down...")

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		logger.Sugar().Fatalf("main: server forced to shutdown: %v", err)
	}

	logger.Sugar().Info("main: server stopped gracefully")
}
