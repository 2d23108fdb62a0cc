// Command web serves the bridge hand dealer as a web page.
package main

import (
	"log"

	"github.com/gin-gonic/gin"

	"github.com/mpsalisbury/brpts/internal/config"
	"github.com/mpsalisbury/brpts/pkg/discovery"
	"github.com/mpsalisbury/brpts/pkg/server"
)

func main() {
	log.Print("starting server...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("config: %v", err)
	}
	gin.SetMode(cfg.GinMode)

	if cfg.Advertise {
		loc := discovery.ServiceURL(discovery.OutboundIP(), cfg.Port)
		ad, err := discovery.AdvertiseService(loc)
		if err != nil {
			log.Fatalf("AdvertiseService: %v", err)
		}
		defer ad.Close()
		log.Printf("advertising %s", loc)
	}

	r := server.NewRouter(server.NewSessions(server.DealerFactory(cfg.Seed), cfg.MaxSessions))

	log.Printf("listening on port %s", cfg.Port)
	if err := r.Run(":" + cfg.Port); err != nil {
		log.Fatal(err)
	}
}
