package dto

import (
	"github.com/DjordjeVuckovic/turing-nlp/internal/tagging"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tokenizer"
	"github.com/google/uuid"
)

type TokenizeRequest struct {
	Text  string `json:"text"`
	Trace bool   `json:"trace,omitempty"`
}

type TokenizeResponse struct {
	ID        uuid.UUID            `json:"id"`
	Tokens    []string             `json:"tokens"`
	POS       []tagging.Tagged     `json:"pos"`
	Entities  []tagging.Tagged     `json:"entities"`
	Snapshots []tokenizer.Snapshot `json:"snapshots,omitempty"`
}
