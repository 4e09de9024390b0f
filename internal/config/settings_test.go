package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validSettings() *Settings {
	return &Settings{
		AssistantKeys: AssistantKeysObj{OpenAiApiKey: "sk-test"},
		Assistant:     AssistantConfig{Provider: "openai", Model: "gpt-4o-mini", TimeoutSecs: 30},
		LiveKit:       LiveKitConfig{URL: "wss://lk", APIKey: "key", APISecret: "secret"},
		Google:        GoogleConfig{CredentialsFile: "sa.json", CalendarID: "primary"},
		Business:      BusinessConfig{Name: "QuickFix", KnowledgeFile: "company_knowledge.json"},
	}
}

func TestValidate(t *testing.T) {
	require.NoError(t, validSettings().Validate())
}

func TestValidateProviderKeys(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Settings)
	}{
		{"openai without key", func(s *Settings) { s.AssistantKeys.OpenAiApiKey = "" }},
		{"gemini without key", func(s *Settings) { s.Assistant.Provider = "gemini" }},
		{"ollama without url", func(s *Settings) { s.Assistant.Provider = "ollama" }},
		{"unknown provider", func(s *Settings) { s.Assistant.Provider = "skynet" }},
		{"missing livekit secret", func(s *Settings) { s.LiveKit.APISecret = "" }},
		{"missing credentials file", func(s *Settings) { s.Google.CredentialsFile = "" }},
		{"missing calendar id", func(s *Settings) { s.Google.CalendarID = "" }},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := validSettings()
			tt.mutate(s)
			assert.Error(t, s.Validate())
		})
	}
}

func TestApplyDefaults(t *testing.T) {
	s := &Settings{}
	s.applyDefaults()

	assert.Equal(t, 8000, s.Server.Port)
	assert.Equal(t, "openai", s.Assistant.Provider)
	assert.Equal(t, "gpt-4o-mini", s.Assistant.Model)
	assert.Equal(t, 30, s.Assistant.TimeoutSecs)
	assert.Equal(t, 60, s.LiveKit.TokenTTLMins)
	assert.Equal(t, "Europe/London", s.Business.Timezone)
	assert.Equal(t, "company_knowledge.json", s.Business.KnowledgeFile)
	assert.Equal(t, 60, s.Booking.LeadTimeMins)
	assert.Equal(t, 60, s.Booking.DurationMins)
	assert.Equal(t, s.Booking.DurationMins, s.Booking.SlotLockTTLMins)
}
