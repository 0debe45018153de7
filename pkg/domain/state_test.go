package domain_test

import (
	"testing"

	"github.com/aretw0/intake/pkg/domain"
	"github.com/stretchr/testify/assert"
)

func snapshotIn(phase domain.Phase, prompt *domain.InputRequest) domain.Snapshot {
	return domain.Snapshot{Phase: phase, Prompt: prompt}
}

func TestSnapshot_DerivedFlags(t *testing.T) {
	tests := []struct {
		name      string
		snap      domain.Snapshot
		awaiting  bool
		field     string
		completed bool
	}{
		{"Idle", snapshotIn(domain.PhaseIdle, nil), false, "", false},
		{"Revealing", snapshotIn(domain.PhaseRevealing, nil), false, "", false},
		{"Awaiting Choice", snapshotIn(domain.PhaseAwaitingChoice, &domain.InputRequest{Type: domain.InputChoice, Field: "brand"}), true, "brand", false},
		{"Awaiting Text", snapshotIn(domain.PhaseAwaitingText, &domain.InputRequest{Type: domain.InputText, Field: "name"}), true, "name", false},
		{"Done", snapshotIn(domain.PhaseDone, nil), false, "", true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			// Called on the returned value, the way Engine.Snapshot() is used.
			assert.Equal(t, tt.awaiting, snapshotIn(tt.snap.Phase, tt.snap.Prompt).AwaitingInput())
			assert.Equal(t, tt.field, tt.snap.ActiveField())
			assert.Equal(t, tt.completed, tt.snap.Completed())
		})
	}
}
