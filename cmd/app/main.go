package main

import (
	"boatsandjoy/config"
	"boatsandjoy/di"
	"boatsandjoy/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
