package main

import (
	"flag"
	"log"

	"canvasnotes/internal/app"
	"canvasnotes/internal/config"
	"canvasnotes/internal/server"
)

func main() {
	cfg := config.DefaultConfig()
	flag.IntVar(&cfg.Port, "port", cfg.Port, "port for the local dashboard server")
	flag.StringVar(&cfg.DataDir, "data-dir", cfg.DataDir, "directory holding the course cache, config and notes")
	flag.StringVar(&cfg.AssetDir, "assets", cfg.AssetDir, "directory holding the front-end bundle")
	flag.Parse() // also picks up glog's logging flags

	a, err := app.New(cfg)
	if err != nil {
		log.Fatalf("❌ %v", err)
	}
	server.Start(a)
}
