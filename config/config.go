package config

import (
	"io/ioutil"
	"os"

	"gopkg.in/yaml.v2"
)

type AppConfig struct {
	Market           string `yaml:"market"`
	Listen           string `yaml:"listen"`
	DepthCacheTTL    int64  `yaml:"depth_cache_ttl"`
	DepthSnapshotSec uint64 `yaml:"depth_snapshot_sec"`
}

var App = AppConfig{
	Market:           "default",
	Listen:           ":8000",
	DepthCacheTTL:    5,
	DepthSnapshotSec: 10,
}

func LoadAppConfig() error {
	path := os.Getenv("APP_CONFIG")
	if len(path) == 0 {
		path = "config/app.yml"
	}

	content, err := ioutil.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil
		}
		return err
	}

	return yaml.Unmarshal(content, &App)
}

func InitializeConfig() error {
	NewLoggerService()
	if err := LoadAppConfig(); err != nil {
		return err
	}
	if err := ConnectDatabase(); err != nil {
		return err
	}
	if err := NewCacheService(); err != nil {
		return err
	}
	if err := NewInfluxDB(); err != nil {
		return err
	}

	return nil
}
