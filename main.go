package main

import (
	"foodgram/cmd/config"
	migration "foodgram/cmd/database/migrate"
	"foodgram/internal/utils"

	"github.com/gofiber/fiber/v2/log"
)

func main() {
	utils.LoadConfig()

	db, err := config.ConnectDB()
	if err != nil {
		log.Fatalf("failed to connect database: %v", err)
	}

	if err := migration.Migrate(db); err != nil {
		log.Fatalf("failed to migrate database: %v", err)
	}

	if path := utils.GetConfig("TAGS_FILE"); path != "" {
		n, err := migration.SeedTags(db, path)
		if err != nil {
			log.Warnf("seed tags from %s: %v", path, err)
		} else if n > 0 {
			log.Infof("seeded %d tags", n)
		}
	}
	if path := utils.GetConfig("INGREDIENTS_FILE"); path != "" {
		n, err := migration.SeedIngredients(db, path)
		if err != nil {
			log.Warnf("seed ingredients from %s: %v", path, err)
		} else if n > 0 {
			log.Infof("seeded %d ingredients", n)
		}
	}

	app, err := config.NewApp(db)
	if err != nil {
		log.Fatalf("failed to create app: %v", err)
	}

	if err := app.Listen(":" + utils.GetConfig("APP_PORT")); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
