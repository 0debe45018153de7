package domain

import (
	"slices"
)

// SnapshotDiff represents the changes between two snapshots.
// It is designed to be serialized to JSON for partial updates on the client.
type SnapshotDiff struct {
	// ConversationID is always present to identify the target.
	ConversationID string `json:"conversation_id"`

	Phase *Phase `json:"phase,omitempty"`

	// Transcript holds the entries that were appended or grew since the old snapshot.
	Transcript *TranscriptDelta `json:"transcript,omitempty"`

	// Answers contains only changed or added keys.
	Answers map[string]string `json:"answers,omitempty"`

	// Prompt is set when a new prompt appeared.
	Prompt *InputRequest `json:"prompt,omitempty"`

	// Reset is true when the new snapshot belongs to a different conversation.
	Reset bool `json:"reset,omitempty"`
}

// TranscriptDelta lists transcript entries starting at From.
// Entries below From are unchanged. An entry at From may be a longer
// revision of an entry the client already holds (reveal progress).
type TranscriptDelta struct {
	From     int       `json:"from"`
	Messages []Message `json:"messages"`
}

// Diff calculates the difference between old and new.
// If old is nil, or belongs to another conversation, the diff describes the whole new snapshot.
// Returns nil when nothing changed.
func Diff(old, new *Snapshot) *SnapshotDiff {
	if new == nil {
		return nil
	}

	diff := &SnapshotDiff{ConversationID: new.ConversationID}
	if old != nil && old.ConversationID != new.ConversationID {
		diff.Reset = true
		old = nil
	}

	if old == nil || old.Phase != new.Phase {
		diff.Phase = &new.Phase
	}
	diff.Transcript = diffTranscript(old, new)
	diff.Answers = diffAnswers(old, new)
	if new.Prompt != nil && (old == nil || old.Prompt == nil || !samePrompt(old.Prompt, new.Prompt)) {
		diff.Prompt = new.Prompt
	}

	if !diff.Reset && diff.IsEmpty() {
		return nil
	}
	return diff
}

func diffTranscript(old, new *Snapshot) *TranscriptDelta {
	if old == nil {
		if len(new.Transcript) == 0 {
			return nil
		}
		return &TranscriptDelta{From: 0, Messages: new.Transcript}
	}

	// Transcript is append-only; only the last old entry can still grow.
	from := len(old.Transcript)
	if from > 0 && from <= len(new.Transcript) && old.Transcript[from-1] != new.Transcript[from-1] {
		from--
	}
	if from >= len(new.Transcript) {
		return nil
	}
	return &TranscriptDelta{From: from, Messages: new.Transcript[from:]}
}

func diffAnswers(old, new *Snapshot) map[string]string {
	delta := make(map[string]string)
	for k, v := range new.Answers {
		if old == nil {
			delta[k] = v
			continue
		}
		if prev, ok := old.Answers[k]; !ok || prev != v {
			delta[k] = v
		}
	}
	if len(delta) == 0 {
		return nil
	}
	return delta
}

func samePrompt(a, b *InputRequest) bool {
	return a.Type == b.Type && a.Field == b.Field && slices.Equal(a.Options, b.Options)
}

// IsEmpty checks if the diff contains any actionable changes.
func (d *SnapshotDiff) IsEmpty() bool {
	return d.Phase == nil &&
		d.Transcript == nil &&
		len(d.Answers) == 0 &&
		d.Prompt == nil
}
