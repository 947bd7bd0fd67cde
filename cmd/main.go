package main

import (
	"github.com/RaulSimioni/Nutrimath/config"
	"github.com/RaulSimioni/Nutrimath/routes"
)

func main() {
	config.InitDB()
	r := routes.SetupRouter()
	r.Run(":8080")
}
