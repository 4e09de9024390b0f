package config

import (
	"fmt"

	"github.com/spf13/viper"
)

type ServerConfig struct {
	Port int `mapstructure:"port"`
}

type AssistantKeysObj struct {
	OpenAiApiKey string `mapstructure:"open_ai_api_key"`
	GeminiApiKey string `mapstructure:"gemini_api_key"`
}

// AssistantConfig selects and tunes the generation backend. Provider is one of
// "openai", "gemini" or "ollama".
type AssistantConfig struct {
	Provider    string `mapstructure:"provider"`
	Model       string `mapstructure:"model"`
	TimeoutSecs int    `mapstructure:"timeout_secs"`
	OllamaURL   string `mapstructure:"ollama_url"`
}

// LiveKitConfig covers the real-time room platform. The token TTL bounds the
// customer's join credential, not the room itself.
type LiveKitConfig struct {
	URL           string `mapstructure:"url"`
	APIKey        string `mapstructure:"api_key"`
	APISecret     string `mapstructure:"api_secret"`
	TokenTTLMins  int    `mapstructure:"token_ttl_mins"`
	AgentVoiceID  string `mapstructure:"agent_voice_id"`
	AgentGreeting string `mapstructure:"agent_greeting"`
}

type GoogleConfig struct {
	CredentialsFile string `mapstructure:"credentials_file"`
	CalendarID      string `mapstructure:"calendar_id"`
	MapsAPIKey      string `mapstructure:"maps_api_key"`
}

type BusinessConfig struct {
	Name          string `mapstructure:"name"`
	Address       string `mapstructure:"address"`
	Timezone      string `mapstructure:"timezone"`
	KnowledgeFile string `mapstructure:"knowledge_file"`
}

type BookingConfig struct {
	LeadTimeMins    int `mapstructure:"lead_time_mins"`
	DurationMins    int `mapstructure:"duration_mins"`
	TimeoutSecs     int `mapstructure:"timeout_secs"`
	SlotLockTTLMins int `mapstructure:"slot_lock_ttl_mins"`
}

type RedisConfig struct {
	Addr string `mapstructure:"addr"`
	Pass string `mapstructure:"pass"`
}

type Settings struct {
	Server        ServerConfig     `mapstructure:"server"`
	AssistantKeys AssistantKeysObj `mapstructure:"assistantKeys"`
	Assistant     AssistantConfig  `mapstructure:"assistant"`
	LiveKit       LiveKitConfig    `mapstructure:"livekit"`
	Google        GoogleConfig     `mapstructure:"google"`
	Business      BusinessConfig   `mapstructure:"business"`
	Booking       BookingConfig    `mapstructure:"booking"`
	Redis         RedisConfig      `mapstructure:"redis"`
	Env           string           `mapstructure:"env"`
	Debug         bool             `mapstructure:"debug" default:"false"`
}

func Load() (*Settings, error) {
	// Load settings from a configuration file or environment variables
	viper.SetConfigName("config_" + genEnv())
	viper.AddConfigPath(".")
	viper.SetConfigType("yaml")

	if err := viper.ReadInConfig(); err != nil {
		return nil, fmt.Errorf("failed to read config: %w", err)
	}

	var settings Settings
	if err := viper.Unmarshal(&settings); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	settings.applyDefaults()
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	return &settings, nil
}

func (s *Settings) applyDefaults() {
	if s.Server.Port == 0 {
		s.Server.Port = 8000
	}
	if s.Assistant.Provider == "" {
		s.Assistant.Provider = "openai"
	}
	if s.Assistant.Model == "" {
		s.Assistant.Model = "gpt-4o-mini"
	}
	if s.Assistant.TimeoutSecs == 0 {
		s.Assistant.TimeoutSecs = 30
	}
	if s.LiveKit.TokenTTLMins == 0 {
		s.LiveKit.TokenTTLMins = 60
	}
	if s.Business.Timezone == "" {
		s.Business.Timezone = "Europe/London"
	}
	if s.Business.KnowledgeFile == "" {
		s.Business.KnowledgeFile = "company_knowledge.json"
	}
	if s.Booking.LeadTimeMins == 0 {
		s.Booking.LeadTimeMins = 60
	}
	if s.Booking.DurationMins == 0 {
		s.Booking.DurationMins = 60
	}
	if s.Booking.TimeoutSecs == 0 {
		s.Booking.TimeoutSecs = 15
	}
	if s.Booking.SlotLockTTLMins == 0 {
		s.Booking.SlotLockTTLMins = s.Booking.DurationMins
	}
}

// Validate fails fast on missing required fields so a misconfigured process
// never reaches the point of serving traffic.
func (s *Settings) Validate() error {
	switch s.Assistant.Provider {
	case "openai":
		if s.AssistantKeys.OpenAiApiKey == "" {
			return fmt.Errorf("config: assistantKeys.open_ai_api_key is required for the openai provider")
		}
	case "gemini":
		if s.AssistantKeys.GeminiApiKey == "" {
			return fmt.Errorf("config: assistantKeys.gemini_api_key is required for the gemini provider")
		}
	case "ollama":
		if s.Assistant.OllamaURL == "" {
			return fmt.Errorf("config: assistant.ollama_url is required for the ollama provider")
		}
	default:
		return fmt.Errorf("config: unknown assistant provider %q", s.Assistant.Provider)
	}

	if s.LiveKit.URL == "" || s.LiveKit.APIKey == "" || s.LiveKit.APISecret == "" {
		return fmt.Errorf("config: livekit url, api_key and api_secret are all required")
	}
	if s.Google.CredentialsFile == "" {
		return fmt.Errorf("config: google.credentials_file is required")
	}
	if s.Google.CalendarID == "" {
		return fmt.Errorf("config: google.calendar_id is required")
	}
	if s.Business.KnowledgeFile == "" {
		return fmt.Errorf("config: business.knowledge_file is required")
	}
	return nil
}

func genEnv() string {
	env := viper.GetString("ENV")
	if env == "" {
		return "dev"
	}
	return env
}
