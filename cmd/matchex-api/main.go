package main

import (
	"fmt"

	"github.com/openmatch/matchex/config"
	"github.com/openmatch/matchex/engine"
	"github.com/openmatch/matchex/jobs/cron"
	"github.com/openmatch/matchex/models"
	"github.com/openmatch/matchex/routes"
)

func main() {
	if err := config.InitializeConfig(); err != nil {
		fmt.Println(err.Error())
		return
	}

	if err := config.DataBase.AutoMigrate(&models.Order{}, &models.Trade{}); err != nil {
		config.Logger.Errorf("Failed to migrate database: %v", err.Error())
		return
	}

	store := engine.NewGormStore(config.DataBase)
	eng := engine.NewEngine(config.App.Market, store)

	if err := eng.ReloadDepth(); err != nil {
		config.Logger.Errorf("Failed to load depth from book: %v", err.Error())
		return
	}

	depth_job := &cron.DepthSnapshotJob{Engine: eng}
	go depth_job.Process()

	r := routes.SetupRouter(eng)
	// running
	r.Listen(config.App.Listen)
}
