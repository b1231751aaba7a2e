package dto

import (
	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/internal/machine"
	"github.com/DjordjeVuckovic/turing-nlp/internal/session"
)

// CreateMachineRequest picks the machine from Definition (YAML text), then
// Config, and falls back to the built-in parity machine when both are empty.
type CreateMachineRequest struct {
	Name       string          `json:"name,omitempty"`
	Definition string          `json:"definition,omitempty"`
	Config     *machine.Config `json:"config,omitempty"`
	Input      *string         `json:"input,omitempty"`
}

type LoadRequest struct {
	Input string `json:"input"`
}

type RunRequest struct {
	Limit int `json:"limit"`
}

type StepResponse struct {
	Status  machine.Status `json:"status"`
	Session session.Info   `json:"session"`
}

type RunResponse struct {
	Status    machine.Status `json:"status"`
	Taken     int            `json:"taken"`
	ElapsedMs float64        `json:"elapsed_ms"`
	Session   session.Info   `json:"session"`
	Run       domain.Run     `json:"run"`
}

type ErrorResponse struct {
	Error string `json:"error"`
	Title string `json:"title,omitempty"`
}
