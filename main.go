package main

import (
	"github.com/Sayed036/WoodLand-Hospital/configuration"
	"github.com/Sayed036/WoodLand-Hospital/routes"
)

func Init() {
	configuration.LoadEnv()
	configuration.ConfigDB()
	configuration.InitRedis()
	configuration.InitCloudinary()
}

func main() {
	// Perform application initialization
	Init()
	r := routes.SetupRoutes()

	// Run the engine in default port
	if err := r.Run(); err != nil {
		panic(err)
	}
}
