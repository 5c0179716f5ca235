package config

import (
	"encoding/json"
	"os"
	"strings"
)

// Config holds service configuration. Secrets and addresses may also come
// from the environment; env values win over the file.
type Config struct {
	ServerAddr string     `json:"server_addr,omitempty"`
	RedisAddr  string     `json:"redis_addr,omitempty"`
	LogMode    string     `json:"log_mode,omitempty"`
	LLM        *LLMConfig `json:"llm,omitempty"`
}

// LLMConfig configures the optional model backend. An absent or keyless LLM
// block means the service runs template-only.
type LLMConfig struct {
	Model   string `json:"model,omitempty"`
	APIKey  string `json:"api_key,omitempty"`
	BaseURL string `json:"base_url,omitempty"`
}

// Load reads JSON config from disk. A missing file is not an error: the
// service can run entirely from env vars and defaults.
func Load(path string) (Config, error) {
	var cfg Config
	data, err := os.ReadFile(path)
	if err == nil {
		if uerr := json.Unmarshal(data, &cfg); uerr != nil {
			return Config{}, uerr
		}
	} else if !os.IsNotExist(err) {
		return Config{}, err
	}
	cfg.applyEnv()
	return cfg, nil
}

func (c *Config) applyEnv() {
	if v := getenv("REDIS_ADDR"); v != "" {
		c.RedisAddr = v
	}
	if v := getenv("LOG_MODE"); v != "" {
		c.LogMode = v
	}
	if v := getenv("OPENAI_API_KEY"); v != "" {
		if c.LLM == nil {
			c.LLM = &LLMConfig{}
		}
		c.LLM.APIKey = v
	}
	if v := getenv("OPENAI_MODEL"); v != "" {
		if c.LLM == nil {
			c.LLM = &LLMConfig{}
		}
		c.LLM.Model = v
	}
	if v := getenv("OPENAI_BASE_URL"); v != "" {
		if c.LLM == nil {
			c.LLM = &LLMConfig{}
		}
		c.LLM.BaseURL = v
	}
	if c.LogMode == "" {
		c.LogMode = "development"
	}
	if c.LLM != nil && c.LLM.Model == "" {
		c.LLM.Model = "gpt-4o-mini"
	}
}

func getenv(key string) string {
	return strings.TrimSpace(os.Getenv(key))
}
