package config

import (
	"os"
	"path/filepath"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"
)

const ENV_FILE = ".env"
const CONFIG_FILE = "config.yaml"

type AppConfig struct {
	Server  ServerConfig  `yaml:"server"`
	Logging LoggingConfig `yaml:"logging"`
	Mongo   MongoConfig   `yaml:"mongo"`
	API     APIConfig     `yaml:"api"`
	CDN     CDNConfig     `yaml:"cdn"`
}

type ServerConfig struct {
	Addr string `yaml:"addr"`
}

type LoggingConfig struct {
	Level string `yaml:"level"`
}

type MongoConfig struct {
	// URI and DBName are defaults for local development; the MONGO_URI and
	// MONGO_DB environment variables take precedence when set.
	URI    string `yaml:"uri"`
	DBName string `yaml:"db_name"`
}

type APIConfig struct {
	// DefaultPageSize is used when a list request omits page_size.
	DefaultPageSize int `yaml:"default_page_size"`
	// MaxPageSize caps page_size on all list endpoints.
	MaxPageSize int `yaml:"max_page_size"`
}

// CDNConfig points uploads at the third-party image CDN.
// The API key and secret come from CDN_API_KEY / CDN_API_SECRET, never yaml.
type CDNConfig struct {
	UploadURL      string `yaml:"upload_url"`
	DefaultFolder  string `yaml:"default_folder"`
	TimeoutSeconds int    `yaml:"timeout_seconds"`
}

var config *AppConfig

func InitApp() {
	// load environment variables
	godotenv.Load(filepath.Join(GetBasePath(), ENV_FILE))

	// load configuration file
	data, err := os.ReadFile(filepath.Join(GetBasePath(), CONFIG_FILE))
	if err != nil {
		panic(err)
	}

	var c AppConfig
	err = yaml.Unmarshal(data, &c)
	if err != nil {
		panic(err)
	}
	applyDefaults(&c)
	config = &c
}

func GetConfig() AppConfig {
	if config == nil {
		InitApp()
	}

	return *config
}

func applyDefaults(c *AppConfig) {
	if c.Server.Addr == "" {
		c.Server.Addr = ":8080"
	}
	if c.API.DefaultPageSize <= 0 {
		c.API.DefaultPageSize = 20
	}
	if c.API.MaxPageSize <= 0 {
		c.API.MaxPageSize = 100
	}
	if c.CDN.TimeoutSeconds <= 0 {
		c.CDN.TimeoutSeconds = 30
	}
}

// MongoURI returns the effective connection string (env wins over yaml).
func (c AppConfig) MongoURI() string {
	if uri := os.Getenv("MONGO_URI"); uri != "" {
		return uri
	}
	return c.Mongo.URI
}

// MongoDBName returns the effective database name (env wins over yaml).
func (c AppConfig) MongoDBName() string {
	if name := os.Getenv("MONGO_DB"); name != "" {
		return name
	}
	return c.Mongo.DBName
}

func GetBasePath() string {
	cwd, err := os.Getwd()
	if err != nil {
		return ""
	}

	dir := cwd
	for {
		cfgPath := filepath.Join(dir, CONFIG_FILE)
		if info, err := os.Stat(cfgPath); err == nil && !info.IsDir() {
			return dir
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			break
		}
		dir = parent
	}

	return ""
}
