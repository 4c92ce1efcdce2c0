package config

import (
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"
)

// Duration decodes yaml values like "24h" or "90s".
type Duration time.Duration

func (d *Duration) UnmarshalYAML(value *yaml.Node) error {
	var s string
	if err := value.Decode(&s); err != nil {
		return err
	}
	v, err := time.ParseDuration(s)
	if err != nil {
		return err
	}
	*d = Duration(v)
	return nil
}

func (d Duration) Std() time.Duration { return time.Duration(d) }

type ServerCfg struct {
	Host string `yaml:"host" json:"host"`
	Port int    `yaml:"port" json:"port"`
	Mode string `yaml:"mode" json:"mode"` // gin mode: debug, release, test
}

type CacheCfg struct {
	Backend       string   `yaml:"backend" json:"backend"` // memory, redis, mongo, hybrid
	TTL           Duration `yaml:"ttl" json:"ttl"`
	MaxItems      int      `yaml:"max_items" json:"max_items"`
	RedisURL      string   `yaml:"redis_url" json:"redis_url"`
	MongoURI      string   `yaml:"mongo_uri" json:"mongo_uri"`
	MongoDatabase string   `yaml:"mongo_database" json:"mongo_database"`
}

type SuggestCfg struct {
	JWWeight   float64 `yaml:"jw_weight" json:"jw_weight"`
	LevWeight  float64 `yaml:"lev_weight" json:"lev_weight"`
	MinScore   float64 `yaml:"min_score" json:"min_score"`
	MaxResults int     `yaml:"max_results" json:"max_results"`
}

type Cfg struct {
	Server  ServerCfg  `yaml:"server" json:"server"`
	Cache   CacheCfg   `yaml:"cache" json:"cache"`
	Suggest SuggestCfg `yaml:"suggest" json:"suggest"`
}

var C Cfg

// Defaults returns a runnable configuration for when no file is given.
func Defaults() Cfg {
	return Cfg{
		Server: ServerCfg{Host: "0.0.0.0", Port: 8080, Mode: "release"},
		Cache: CacheCfg{
			Backend:       "memory",
			TTL:           Duration(24 * time.Hour),
			MaxItems:      10000,
			RedisURL:      "redis://localhost:6379/0",
			MongoURI:      "mongodb://localhost:27017",
			MongoDatabase: "geoparse",
		},
		Suggest: SuggestCfg{JWWeight: 0.6, LevWeight: 0.4, MinScore: 0.72, MaxResults: 10},
	}
}

// Load reads the yaml file into C on top of the defaults, then applies ENV
// overrides. An empty path skips the file and keeps defaults plus ENV.
func Load(path string) error {
	C = Defaults()
	if path != "" {
		b, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		if err := yaml.Unmarshal(b, &C); err != nil {
			return err
		}
	}
	// ENV overrides
	if v := os.Getenv("PORT"); v != "" {
		if port, err := strconv.Atoi(v); err == nil {
			C.Server.Port = port
		}
	}
	if v := os.Getenv("GIN_MODE"); v != "" {
		C.Server.Mode = v
	}
	if v := os.Getenv("CACHE_BACKEND"); v != "" {
		C.Cache.Backend = v
	}
	if v := os.Getenv("REDIS_URL"); v != "" {
		C.Cache.RedisURL = v
	}
	if v := os.Getenv("MONGO_URI"); v != "" {
		C.Cache.MongoURI = v
	}
	return nil
}

func RequestTimeout() time.Duration { return 1500 * time.Millisecond }
