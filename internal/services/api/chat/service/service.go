// Package service turns chat questions into model prompts
package service

import (
	"context"
	"fmt"

	"lunacycle/internal/core/normalize"
	perr "lunacycle/internal/platform/errors"
	"lunacycle/internal/platform/logger"
	"lunacycle/internal/platform/net/http/bind"
	str "lunacycle/internal/platform/strings"
	"lunacycle/internal/services/api/chat/domain"
	cycledomain "lunacycle/internal/services/api/cycle/domain"

	"github.com/google/uuid"
)

// SystemInstruction frames every model call
const SystemInstruction = "You are a friendly, compassionate, and non-diagnostic AI specialist focusing on menstrual cycle health. " +
	"Include the user's phase and 2 practical tips. Be concise and kind."

const promptFormat = "User Context:\n- Current Cycle Day: %s\n- Reported Symptoms: %s\nUser's Question: %s"

// Service defines the chat service contract
type Service interface {
	domain.ServicePort
}

// Svc implements the chat service
type Svc struct {
	gen    domain.Generator
	cycles cycledomain.ServicePort
	newID  func() (uuid.UUID, error)
}

// New constructs a chat service over gen. cycles may be nil, in which case
// AskInput.Last is ignored
func New(gen domain.Generator, cycles cycledomain.ServicePort) *Svc {
	if gen == nil {
		panic("chat.Service requires a non nil Generator")
	}
	return &Svc{gen: gen, cycles: cycles, newID: uuid.NewRandom}
}

// Prompt renders the user turn sent to the model. Missing context reads as "unknown"
func Prompt(in domain.AskInput) string {
	return fmt.Sprintf(promptFormat,
		str.FirstNonBlank(in.CycleDay, "unknown"),
		str.FirstNonBlank(in.Symptoms, "unknown"),
		in.Message,
	)
}

// Ask normalizes in, asks the model and stamps the reply with a fresh id
func (s *Svc) Ask(ctx context.Context, in domain.AskInput) (domain.Reply, error) {
	in.Message = normalize.Text(in.Message)
	in.Symptoms = normalize.Text(in.Symptoms)
	in.CycleDay = normalize.Name(in.CycleDay)
	in.Last = normalize.Name(in.Last)
	if err := bind.Validate(in); err != nil {
		return domain.Reply{}, err
	}
	if in.CycleDay == "" && in.Last != "" && s.cycles != nil {
		res, err := s.cycles.Current(ctx, cycledomain.Query{Last: in.Last})
		if err != nil {
			return domain.Reply{}, perr.WithField(err, "last")
		}
		in.CycleDay = fmt.Sprintf("%d (%s)", res.Day, res.Phase.Label())
	}

	id, err := s.newID()
	if err != nil {
		return domain.Reply{}, perr.Wrap(err, perr.ErrorCodeUnknown, "could not allocate reply id")
	}

	text, err := s.gen.Generate(ctx, SystemInstruction, Prompt(in))
	if err != nil {
		logger.C(ctx).Warn().Err(err).Str("reply_id", id.String()).Msg("chat generation failed")
		return domain.Reply{}, perr.WithOp(err, "chat.ask")
	}

	logger.C(ctx).Info().
		Str("reply_id", id.String()).
		Str("question", str.Truncate(in.Message, 40)).
		Int("reply_len", len(text)).
		Msg("chat answered")
	return domain.Reply{ID: id.String(), Response: text}, nil
}
