package cron

import (
	"github.com/jasonlvhit/gocron"

	"github.com/openmatch/matchex/config"
	"github.com/openmatch/matchex/engine"
)

// DepthSnapshotJob periodically pushes the engine's depth view into
// Redis so the depth endpoint can serve it without touching the engine.
type DepthSnapshotJob struct {
	Engine *engine.Engine
}

func (j *DepthSnapshotJob) Process() {
	s := gocron.NewScheduler()
	s.Every(config.App.DepthSnapshotSec).Seconds().Do(j.snapshot)
	<-s.Start()
}

func (j *DepthSnapshotJob) snapshot() {
	if err := config.Redis.CacheDepth(j.Engine.DepthSnapshot()); err != nil {
		config.Logger.Errorf("Failed to cache depth snapshot: %v", err.Error())
	}
}
