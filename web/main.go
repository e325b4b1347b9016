package main

import (
	"flag"
	"os"
	"strconv"

	"github.com/joho/godotenv"

	"github.com/df07/go-motion-raytracer/pkg/renderer"
	"github.com/df07/go-motion-raytracer/web/server"
)

func main() {
	// Optional .env supplies defaults; flags still win
	_ = godotenv.Load()

	defaultPort := 8080
	if value, err := strconv.Atoi(os.Getenv("RAYTRACER_PORT")); err == nil {
		defaultPort = value
	}

	port := flag.Int("port", defaultPort, "Port to serve on")
	earthTexture := flag.String("earth-texture", os.Getenv("RAYTRACER_EARTH_TEXTURE"), "Image for the earth globe")
	flag.Parse()

	logger := renderer.NewDefaultLogger()
	webServer := server.NewServer(*port, *earthTexture, logger)

	logger.Printf("Raytracer Web Server")
	logger.Printf("Try http://localhost:%d/api/render?scene=random-spheres", *port)

	if err := webServer.Start(); err != nil {
		logger.Printf("Error starting server: %v", err)
		os.Exit(1)
	}
}
