package es

import (
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tagging"
	"github.com/google/uuid"
)

// RunDocument is the stored shape of a domain.Run.
type RunDocument struct {
	ID         string    `json:"id"`
	Definition string    `json:"definition"`
	SessionID  string    `json:"session_id,omitempty"`
	Input      string    `json:"input"`
	Status     string    `json:"status"`
	Steps      int       `json:"steps"`
	FinalState string    `json:"final_state"`
	Tape       []string  `json:"tape"`
	CreatedAt  time.Time `json:"created_at"`
}

type TokenizationDocument struct {
	ID        string           `json:"id"`
	Text      string           `json:"text"`
	Tokens    []string         `json:"tokens"`
	POS       []tagging.Tagged `json:"pos"`
	Entities  []tagging.Tagged `json:"entities"`
	CreatedAt time.Time        `json:"created_at"`
}

func runToDocument(run domain.Run) RunDocument {
	doc := RunDocument{
		ID:         run.ID.String(),
		Definition: run.Definition,
		Input:      run.Input,
		Status:     run.Status.String(),
		Steps:      run.Steps,
		FinalState: run.FinalState,
		Tape:       run.Tape,
		CreatedAt:  run.CreatedAt,
	}
	if run.SessionID != uuid.Nil {
		doc.SessionID = run.SessionID.String()
	}
	return doc
}

func (d RunDocument) toDomain() (domain.Run, error) {
	id, err := uuid.Parse(d.ID)
	if err != nil {
		return domain.Run{}, err
	}

	var sessionID uuid.UUID
	if d.SessionID != "" {
		if sessionID, err = uuid.Parse(d.SessionID); err != nil {
			return domain.Run{}, err
		}
	}

	var status machine.Status
	if err := status.UnmarshalText([]byte(d.Status)); err != nil {
		return domain.Run{}, err
	}

	return domain.Run{
		ID:         id,
		Definition: d.Definition,
		SessionID:  sessionID,
		Input:      d.Input,
		Status:     status,
		Steps:      d.Steps,
		FinalState: d.FinalState,
		Tape:       d.Tape,
		CreatedAt:  d.CreatedAt,
	}, nil
}

func tokenizationToDocument(t domain.Tokenization) TokenizationDocument {
	return TokenizationDocument{
		ID:        t.ID.String(),
		Text:      t.Text,
		Tokens:    t.Tokens,
		POS:       t.POS,
		Entities:  t.Entities,
		CreatedAt: t.CreatedAt,
	}
}
