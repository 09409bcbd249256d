package handlers

import (
	userRepo "mediconnect/database/repository/user"
)

// HandlerBundle aggregates the assembled handlers and the repositories the
// route middleware needs, so route registration takes a single argument.
type HandlerBundle struct {
	UserRepo userRepo.UserRepository

	Auth        *AuthHandler
	Doctor      *DoctorHandler
	Appointment *AppointmentHandler
}
