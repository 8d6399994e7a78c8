package config

import (
	"encoding/xml"
	"io"
	"os"
	"sync"
)

var (
	cfg  *APIConfig
	once sync.Once
)

// APIConfig represents the root element.
type APIConfig struct {
	XMLName        xml.Name             `xml:"API"`
	RequestDump    bool                 `xml:"REQUEST_DUMP,attr"`
	Context        ContextConfig        `xml:"CONTEXT"`
	Authentication AuthenticationConfig `xml:"AUTHENTICATION"`
	Pagination     PaginationConfig     `xml:"PAGINATION"`
	DB             DBConfig             `xml:"DB"`
	Mongo          MongoConfig          `xml:"MONGO"`
	LLM            LLMConfig            `xml:"LLM"`
}

// ContextConfig holds basic server settings.
type ContextConfig struct {
	Port     int    `xml:"PORT"`
	Host     string `xml:"HOST"`
	Path     string `xml:"PATH"`
	TimeZone string `xml:"TIME_ZONE"`
	LogDir   string `xml:"LOG_DIR"`
}

// AuthenticationConfig holds authentication settings.
type AuthenticationConfig struct {
	EnableTokenAuth  bool `xml:"ENABLE_TOKEN_AUTH"`
	TokenExpiryHours int  `xml:"TOKEN_EXPIRY_HOURS"`
}

// PaginationConfig holds pagination settings.
type PaginationConfig struct {
	PageSize int `xml:"PAGE_SIZE"`
}

// DBConfig holds the relational (user account) database settings.
type DBConfig struct {
	Initialize bool         `xml:"INITIALIZE"`
	Host       string       `xml:"HOST"`
	Port       int          `xml:"PORT"`
	Driver     string       `xml:"DRIVER"`
	SSLMode    string       `xml:"SSL_MODE"`
	Name       string       `xml:"NAME"`
	Username   string       `xml:"USERNAME"`
	Password   DBPassword   `xml:"PASSWORD"`
	Pool       DBPoolConfig `xml:"POOL"`
}

// DBPassword holds password details.
type DBPassword struct {
	Type  string `xml:"TYPE,attr"`
	Value string `xml:",chardata"`
}

// DBPoolConfig holds database connection pooling settings.
type DBPoolConfig struct {
	MaxOpenConns    int `xml:"MAX_OPEN_CONNS"`
	MaxIdleConns    int `xml:"MAX_IDLE_CONNS"`
	ConnMaxLifetime int `xml:"CONN_MAX_LIFETIME"`
}

// MongoConfig holds the document store settings. Interview session
// aggregates, topic cards and question history live here.
type MongoConfig struct {
	URI      string `xml:"URI"`
	Database string `xml:"DATABASE"`
}

// LLMConfig holds the question-generation / answer-scoring provider
// settings. The API key is not configured here; it is read from the
// LLM_API_KEY environment variable.
type LLMConfig struct {
	BaseURL          string `xml:"BASE_URL"`
	Model            string `xml:"MODEL"`
	TimeoutSeconds   int    `xml:"TIMEOUT_SECONDS"`
	RequestsPerMin   int    `xml:"REQUESTS_PER_MIN"`
	MaxQuestionCount int    `xml:"MAX_QUESTION_COUNT"`
}

// LoadConfig loads and parses the XML configuration from the given file.
func LoadConfig(xmlPath string) (*APIConfig, error) {
	once.Do(func() {
		f, err := os.Open(xmlPath)
		if err != nil {
			return
		}
		defer f.Close()

		data, err := io.ReadAll(f)
		if err != nil {
			return
		}

		var newCfg APIConfig
		if err := xml.Unmarshal(data, &newCfg); err != nil {
			return
		}

		applyDefaults(&newCfg)
		cfg = &newCfg
	})

	if cfg == nil {
		return nil, os.ErrInvalid
	}
	return cfg, nil
}

func applyDefaults(c *APIConfig) {
	if c.Authentication.TokenExpiryHours <= 0 {
		c.Authentication.TokenExpiryHours = 24 * 7
	}
	if c.Mongo.Database == "" {
		c.Mongo.Database = "prepwise"
	}
	if c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
	if c.LLM.TimeoutSeconds <= 0 {
		c.LLM.TimeoutSeconds = 30
	}
	if c.LLM.MaxQuestionCount <= 0 {
		c.LLM.MaxQuestionCount = 20
	}
	if c.Context.LogDir == "" {
		c.Context.LogDir = "logs"
	}
}

// GetConfig returns the loaded configuration.
func GetConfig() *APIConfig {
	return cfg
}
