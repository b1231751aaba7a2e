package router

import (
	"log/slog"
	"net/http"
	"time"

	"github.com/DjordjeVuckovic/turing-nlp/internal/diagram"
	"github.com/DjordjeVuckovic/turing-nlp/internal/domain"
	"github.com/DjordjeVuckovic/turing-nlp/internal/dto"
	"github.com/DjordjeVuckovic/turing-nlp/internal/storage"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tagging"
	"github.com/DjordjeVuckovic/turing-nlp/internal/tokenizer"
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

type TokenizeRouter struct {
	e         *echo.Echo
	tokenizer *tokenizer.TapeTokenizer
	tagger    *tagging.Tagger
	storer    storage.Storer
}

func NewTokenizeRouter(e *echo.Echo, tagger *tagging.Tagger, storer storage.Storer) *TokenizeRouter {
	return &TokenizeRouter{
		e:         e,
		tokenizer: tokenizer.NewTapeTokenizer(),
		tagger:    tagger,
		storer:    storer,
	}
}

func (r *TokenizeRouter) Bind() {
	r.e.POST("/tokenize", r.tokenizeHandler)
	r.e.GET("/diagram/tokenizer", r.diagramHandler)
}

// tokenizeHandler godoc
// @Summary Tokenize and tag text
// @Description Splits text with the scanning tokenizer, tags the tokens and records the result.
// @Tags tokenizer
// @Accept json
// @Produce json
// @Param request body dto.TokenizeRequest true "Text to tokenize"
// @Success 200 {object} dto.TokenizeResponse
// @Failure 400 {object} dto.ErrorResponse
// @Router /tokenize [post]
func (r *TokenizeRouter) tokenizeHandler(c echo.Context) error {
	var req dto.TokenizeRequest
	if err := c.Bind(&req); err != nil {
		return err
	}

	snapshots, tokens := r.tokenizer.Trace(req.Text)
	record := domain.Tokenization{
		ID:        uuid.New(),
		Text:      req.Text,
		Tokens:    tokens,
		POS:       r.tagger.POS(tokens),
		Entities:  r.tagger.Entities(tokens),
		CreatedAt: time.Now().UTC(),
	}

	id, err := r.storer.SaveTokenization(c.Request().Context(), record)
	if err != nil {
		return err
	}
	slog.Debug("Text tokenized", "id", id, "tokens", len(tokens))

	res := dto.TokenizeResponse{
		ID:       id,
		Tokens:   record.Tokens,
		POS:      record.POS,
		Entities: record.Entities,
	}
	if req.Trace {
		res.Snapshots = snapshots
	}
	return c.JSON(http.StatusOK, res)
}

// diagramHandler godoc
// @Summary Tokenizer state diagram
// @Tags tokenizer
// @Produce plain
// @Success 200 {string} string
// @Router /diagram/tokenizer [get]
func (r *TokenizeRouter) diagramHandler(c echo.Context) error {
	return c.String(http.StatusOK, diagram.Tokenizer())
}
