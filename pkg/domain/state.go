package domain

// Phase is the single explicit state of a conversation.
type Phase string

const (
	PhaseIdle           Phase = "idle"            // Started or reset, nothing revealed yet
	PhaseRevealing      Phase = "revealing"       // A step's text is being revealed
	PhaseAwaitingChoice Phase = "awaiting_choice" // Blocked on an option selection
	PhaseAwaitingText   Phase = "awaiting_text"   // Blocked on free text
	PhaseAdvancing      Phase = "advancing"       // Between steps, next Advance pops the queue
	PhaseDone           Phase = "done"            // Script exhausted, answers emitted
)

// AwaitingInput reports whether the phase blocks on the user.
func (p Phase) AwaitingInput() bool {
	return p == PhaseAwaitingChoice || p == PhaseAwaitingText
}

// DefaultSinkKey is the key finished answers are saved under unless configured otherwise.
const DefaultSinkKey = "printerRequest"

// Speaker identifies who authored a transcript message.
type Speaker string

const (
	SpeakerAgent Speaker = "agent"
	SpeakerUser  Speaker = "user"
)

// Message is one transcript entry.
type Message struct {
	Speaker Speaker `json:"speaker"`
	Text    string  `json:"text"`
}

// InputType defines the kind of input requested.
type InputType string

const (
	InputText   InputType = "text"
	InputChoice InputType = "choice"
)

// InputRequest describes the constraints and type of input needed.
type InputRequest struct {
	Type    InputType `json:"type"`
	Field   string    `json:"field"`
	Options []string  `json:"options,omitempty"`
}

// Snapshot is a read-only copy of a conversation, handed to presentation layers.
type Snapshot struct {
	ConversationID string            `json:"conversation_id"`
	Phase          Phase             `json:"phase"`
	Transcript     []Message         `json:"transcript"`
	Answers        map[string]string `json:"answers"`
	Pending        int               `json:"pending"`

	// Prompt is set while the conversation awaits input.
	Prompt *InputRequest `json:"prompt,omitempty"`

	// SaveErr holds the sink failure of a completed conversation, if any.
	SaveErr error `json:"-"`
}

// AwaitingInput is true iff the engine is blocked on a user response.
func (s Snapshot) AwaitingInput() bool {
	return s.Phase.AwaitingInput()
}

// ActiveField is the field of the step awaiting input, or "".
func (s Snapshot) ActiveField() string {
	if s.Prompt == nil {
		return ""
	}
	return s.Prompt.Field
}

// Completed reports whether the script has been exhausted.
func (s Snapshot) Completed() bool {
	return s.Phase == PhaseDone
}
