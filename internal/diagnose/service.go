package diagnose

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/SaranSelva18/CarDiagnosis/internal/domain"
	"github.com/SaranSelva18/CarDiagnosis/internal/gemini"
	"github.com/SaranSelva18/CarDiagnosis/internal/media"
)

// Generator abstracts the generative backend. *gemini.Client satisfies it;
// tests substitute a stub.
type Generator interface {
	GenerateContent(ctx context.Context, prompt string, inline *gemini.Blob) (string, error)
}

// InputError marks a rejection that happened before any API call was made:
// a malformed trouble code, an unsupported file, an oversize upload. Handlers
// map it to a 400 instead of running the upstream classifier.
type InputError struct {
	Err error
}

func (e *InputError) Error() string {
	return e.Err.Error()
}

func (e *InputError) Unwrap() error {
	return e.Err
}

// Service runs one diagnosis round trip: validate input, build the prompt,
// reduce media, call the model, normalize the reply. No retry, no queue,
// no persistence.
type Service struct {
	gen    Generator
	limits media.Limits
	rate   Rate
	logger *slog.Logger
}

// ServiceOption is a functional option for configuring Service.
type ServiceOption func(*Service)

// WithLimits overrides the per-kind upload caps.
func WithLimits(limits media.Limits) ServiceOption {
	return func(s *Service) {
		s.limits = limits
	}
}

// WithRate sets the secondary-currency conversion rate.
func WithRate(rate Rate) ServiceOption {
	return func(s *Service) {
		s.rate = rate
	}
}

// WithLogger sets a custom logger.
func WithLogger(logger *slog.Logger) ServiceOption {
	return func(s *Service) {
		s.logger = logger
	}
}

// NewService creates a Service backed by the given generator.
func NewService(gen Generator, opts ...ServiceOption) *Service {
	s := &Service{
		gen:    gen,
		limits: media.DefaultLimits(),
		logger: slog.Default(),
	}

	for _, opt := range opts {
		opt(s)
	}

	return s
}

// DiagnoseCode diagnoses a user-typed OBD-II trouble code.
func (s *Service) DiagnoseCode(ctx context.Context, code string) (domain.DiagnosisResult, error) {
	normalized := domain.NormalizeDTC(code)
	if !domain.ValidDTC(normalized) {
		return domain.DiagnosisResult{}, &InputError{
			Err: fmt.Errorf("%q is not a valid OBD-II trouble code", code),
		}
	}

	s.logger.Debug("diagnosing trouble code",
		slog.String("code", normalized),
		slog.String("system", domain.DTCSystem(normalized)),
	)

	return s.roundTrip(ctx, CodePrompt(normalized), nil)
}

// DiagnoseMedia diagnoses an uploaded photo, clip, or sound recording. The
// media reduction (frame grab, amplitude profile) runs synchronously to
// completion before the API call is issued.
func (s *Service) DiagnoseMedia(ctx context.Context, kind domain.InputKind, data []byte) (domain.DiagnosisResult, error) {
	payload, err := media.Encode(kind, data, s.limits)
	if err != nil {
		return domain.DiagnosisResult{}, &InputError{Err: err}
	}

	var prompt string
	switch kind {
	case domain.KindImage:
		prompt = ImagePrompt()

	case domain.KindVideo:
		reduced := media.ReduceVideo(payload)
		prompt = VideoPrompt(reduced != payload)
		if reduced != payload {
			s.logger.Debug("video reduced to still frame",
				slog.Int("clip_bytes", len(payload.Data)),
				slog.Int("frame_bytes", len(reduced.Data)),
			)
		}
		payload = reduced

	case domain.KindSound:
		profile, err := media.AnalyzeWAV(payload.Data)
		if err != nil {
			return domain.DiagnosisResult{}, &InputError{Err: err}
		}
		prompt = SoundPrompt(profile)
	}

	return s.roundTrip(ctx, prompt, &gemini.Blob{MIMEType: payload.MIMEType, Data: payload.Data})
}

// roundTrip performs the single request/response cycle shared by all inputs.
func (s *Service) roundTrip(ctx context.Context, prompt string, inline *gemini.Blob) (domain.DiagnosisResult, error) {
	raw, err := s.gen.GenerateContent(ctx, prompt, inline)
	if err != nil {
		return domain.DiagnosisResult{}, fmt.Errorf("generate content: %w", err)
	}

	result, err := Normalize(raw)
	if err != nil {
		s.logger.Warn("model reply rejected", slog.String("error", err.Error()))
		return domain.DiagnosisResult{}, err
	}

	result.EstimatedCost = ConvertEstimate(result.EstimatedCost.Amount, s.rate)
	return result, nil
}
