package main

import (
	"context"

	"frontdesk/config"
	"frontdesk/di"
	"frontdesk/shared/logger"
)

// @title Frontdesk API
// @version 1.0
// @description Property management back office for a small hotel: rooms, guests, bookings, staff, maintenance, payments and guest messaging.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	cfg := config.Get()

	logger.InitLogger()
	logger.SetLogLevel(cfg)

	server := di.InitializeServer()

	go server.Worker.Run(context.Background())

	server.HTTP.Serve()
}
