package domain

import (
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tagging"
	"github.com/google/uuid"
)

// Run records the outcome of driving a machine over one input.
type Run struct {
	ID         uuid.UUID      `json:"id"`
	Definition string         `json:"definition"`
	SessionID  uuid.UUID      `json:"session_id,omitempty"`
	Input      string         `json:"input"`
	Status     machine.Status `json:"status"`
	Steps      int            `json:"steps"`
	FinalState string         `json:"final_state"`
	Tape       []string       `json:"tape"`
	CreatedAt  time.Time      `json:"created_at"`
}

// NewRun fills a Run from a machine snapshot.
func NewRun(definition, input string, sessionID uuid.UUID, snap machine.Snapshot) Run {
	return Run{
		ID:         uuid.New(),
		Definition: definition,
		SessionID:  sessionID,
		Input:      input,
		Status:     snap.Status,
		Steps:      snap.Steps,
		FinalState: snap.State,
		Tape:       snap.Tape,
		CreatedAt:  time.Now().UTC(),
	}
}

// Tokenization records a tokenizer run and the tags derived from its tokens.
type Tokenization struct {
	ID        uuid.UUID        `json:"id"`
	Text      string           `json:"text"`
	Tokens    []string         `json:"tokens"`
	POS       []tagging.Tagged `json:"pos"`
	Entities  []tagging.Tagged `json:"entities"`
	CreatedAt time.Time        `json:"created_at"`
}
