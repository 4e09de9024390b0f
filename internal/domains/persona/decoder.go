package persona

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

var ErrInvalidPersona = errors.New("persona payload is invalid")

// Persona is the synthesized caller profile the demo agent impersonates.
type Persona struct {
	Name     string `json:"name"`
	Age      int    `json:"age"`
	Issue    string `json:"issue"`
	Emotion  string `json:"emotion"`
	Priority int    `json:"priority"`
}

// decode parses a model completion into a Persona. Models wrap JSON in
// markdown fences often enough that stripping them here is cheaper than
// re-prompting; anything else malformed is rejected.
func decode(completion string) (*Persona, error) {
	body := stripFences(completion)
	if body == "" {
		return nil, fmt.Errorf("%w: empty completion", ErrInvalidPersona)
	}

	var p Persona
	dec := json.NewDecoder(strings.NewReader(body))
	if err := dec.Decode(&p); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidPersona, err)
	}

	if strings.TrimSpace(p.Name) == "" {
		return nil, fmt.Errorf("%w: missing name", ErrInvalidPersona)
	}
	if strings.TrimSpace(p.Issue) == "" {
		return nil, fmt.Errorf("%w: missing issue", ErrInvalidPersona)
	}
	if strings.TrimSpace(p.Emotion) == "" {
		return nil, fmt.Errorf("%w: missing emotion", ErrInvalidPersona)
	}
	if p.Age <= 0 {
		return nil, fmt.Errorf("%w: age %d out of range", ErrInvalidPersona, p.Age)
	}
	return &p, nil
}

// clampPriority reports whether the value had to be pulled into [1,10].
func clampPriority(p *Persona) bool {
	switch {
	case p.Priority < 1:
		p.Priority = 1
		return true
	case p.Priority > 10:
		p.Priority = 10
		return true
	}
	return false
}

func stripFences(s string) string {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "```") {
		return s
	}
	s = strings.TrimPrefix(s, "```")
	if idx := strings.Index(s, "\n"); idx >= 0 {
		// drop a language tag like ```json
		s = s[idx+1:]
	}
	s = strings.TrimSuffix(strings.TrimSpace(s), "```")
	return strings.TrimSpace(s)
}
