package main

import (
	"log"
	"os"

	"PeaceScapeAI/app/clients"
	"PeaceScapeAI/app/configs"
	"PeaceScapeAI/app/images"
	"PeaceScapeAI/app/models"
	"PeaceScapeAI/app/runtime"
	"PeaceScapeAI/app/storage"
)

func main() {
	configPath := os.Getenv("CONFIG_PATH")
	if configPath == "" {
		configPath = "config.yaml"
	}
	cfg, err := configs.LoadConfig(configPath)
	if err != nil {
		log.Fatalf("❌ Error loading configs: %v", err)
	}

	apiKey := os.Getenv("GROQ_API_KEY")
	if apiKey == "" {
		log.Fatal("❌ GROQ_API_KEY is not set")
	}

	db := storage.NewSQLiteStorage()
	defer db.Close()

	model := models.NewGroqClient(cfg.Model.BaseURL, apiKey, cfg.Model.VisionModel, cfg.Model.TextModel)
	processor := images.NewProcessor(images.Limits{
		MaxSizeMB:    cfg.Image.MaxSizeMB,
		MaxDimension: cfg.Image.MaxDimension,
		JPEGQuality:  cfg.Image.JPEGQuality,
	})

	rt := runtime.New(model, processor, db)

	registry := clients.NewRegistry()
	defer registry.CloseAll()

	for _, clientCfg := range cfg.Clients {
		if !clientCfg.Enabled {
			log.Printf("⏭️ Client %s is disabled, skipping", clientCfg.Type)
			continue
		}
		client, err := clients.CreateClient(clientCfg)
		if err != nil {
			log.Fatalf("❌ Error creating %s client: %v", clientCfg.Type, err)
		}
		if err = registry.Register(client, rt); err != nil {
			log.Fatalf("❌ Error registering %s client: %v", clientCfg.Type, err)
		}
		log.Printf("✅ %s client initialized", clientCfg.Type)
	}
	if len(registry.GetAll()) == 0 {
		log.Fatal("❌ No chat clients enabled")
	}

	log.Println("🏮 PeaceScape AI started")
	rt.Start()
}
