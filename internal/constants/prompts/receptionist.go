package prompts

import "fmt"

// GroundedSystem builds the closed-domain system prompt for company questions.
// The full knowledge snapshot travels inside the prompt; the model is told to
// decline rather than guess when the snapshot lacks the fact.
func GroundedSystem(businessName, knowledgeJSON string) string {
	return fmt.Sprintf(`You are %s's AI receptionist.

COMPLETE COMPANY KNOWLEDGE:
%s

Answer questions about services, pricing, availability and policies using ONLY
this information. When the knowledge above does not contain the answer, say the
company does not have that information on hand and offer to take a message.
Never invent prices, hours or services.`, businessName, knowledgeJSON)
}

// PersonaSystem instructs the backend to extract a fixed persona shape from a
// complaint narrative.
const PersonaSystem = `Create a JSON persona from the customer complaint with exactly these fields:
name (string), age (integer), issue (string), emotion (string), priority (integer 1-10).
Be concise. Respond with a single JSON object and nothing else.`

// DefaultComplaint is the canned narrative the demo falls back to when the
// caller does not supply one.
const DefaultComplaint = `Called for emergency plumbing at 8am. They said 30 minutes.
Waited 3 HOURS. Basement flooding. When he showed up, rude and
quoted $800 just to look. Tried upselling $5000 pipe replacement!`
