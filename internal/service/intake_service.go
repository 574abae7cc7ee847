package service

import (
	"context"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/lotuslabs/lotus-arcana-api/internal/dto"
	"github.com/lotuslabs/lotus-arcana-api/internal/models"
	appErrors "github.com/lotuslabs/lotus-arcana-api/pkg/errors"
)

type draftWriter interface {
	Create(ctx context.Context, draft *models.Draft) error
}

// IntakeService accepts public submissions and persists them as pending
// drafts. It never touches the public catalog.
type IntakeService struct {
	drafts    draftWriter
	validator *validator.Validate
	logger    *zap.Logger
}

// NewIntakeService constructs the service.
func NewIntakeService(drafts draftWriter, validate *validator.Validate, logger *zap.Logger) *IntakeService {
	if validate == nil {
		validate = validator.New()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &IntakeService{drafts: drafts, validator: validate, logger: logger}
}

// Submit validates the payload and inserts exactly one pending draft. All
// validation happens before any store write.
func (s *IntakeService) Submit(ctx context.Context, req dto.SubmitDraftRequest) (*models.Draft, error) {
	if err := s.validator.Struct(req); err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrValidation.Code, appErrors.ErrValidation.Status, "invalid submission payload")
	}
	if err := validateQuizQuestions(req.QuizQuestions); err != nil {
		return nil, err
	}

	thumbnail := req.ThumbnailURL
	if thumbnail == nil || strings.TrimSpace(*thumbnail) == "" {
		if derived := deriveThumbnailURL(req.VideoURL); derived != "" {
			thumbnail = &derived
		} else {
			thumbnail = nil
		}
	}

	draft := &models.Draft{
		Title:         strings.TrimSpace(req.Title),
		Description:   strings.TrimSpace(req.Description),
		VideoURL:      req.VideoURL,
		ThumbnailURL:  thumbnail,
		Category:      models.Category(req.Category),
		Duration:      strings.TrimSpace(req.Duration),
		QuizQuestions: toQuizQuestions(req.QuizQuestions),
		Status:        models.DraftStatusPending,
	}
	if err := s.drafts.Create(ctx, draft); err != nil {
		s.logger.Error("failed to persist draft", zap.Error(err))
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, "failed to save draft")
	}
	s.logger.Info("draft submitted", zap.String("draft_id", draft.ID), zap.String("category", string(draft.Category)))
	return draft, nil
}

// validateQuizQuestions enforces the quiz contract: non-empty question text,
// at least two non-empty options, and a correct_answer index inside the
// options list.
func validateQuizQuestions(questions []dto.QuizQuestionPayload) error {
	for i, q := range questions {
		if strings.TrimSpace(q.Question) == "" {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("quiz question %d: question text is required", i+1))
		}
		if len(q.Options) < 2 {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("quiz question %d: at least two options are required", i+1))
		}
		for j, opt := range q.Options {
			if strings.TrimSpace(opt) == "" {
				return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("quiz question %d: option %d is empty", i+1, j+1))
			}
		}
		if q.CorrectAnswer < 0 || q.CorrectAnswer >= len(q.Options) {
			return appErrors.Clone(appErrors.ErrValidation, fmt.Sprintf("quiz question %d: correct_answer must index an option", i+1))
		}
	}
	return nil
}

func toQuizQuestions(payload []dto.QuizQuestionPayload) models.QuizQuestions {
	questions := make(models.QuizQuestions, 0, len(payload))
	for _, q := range payload {
		questions = append(questions, models.QuizQuestion{
			Question:      strings.TrimSpace(q.Question),
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
			Explanation:   strings.TrimSpace(q.Explanation),
		})
	}
	return questions
}

// deriveThumbnailURL builds a YouTube poster-frame URL for recognised video
// links. Unrecognised hosts get no derived thumbnail.
func deriveThumbnailURL(videoURL string) string {
	id := youtubeVideoID(videoURL)
	if id == "" {
		return ""
	}
	return fmt.Sprintf("https://img.youtube.com/vi/%s/hqdefault.jpg", id)
}

func youtubeVideoID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return ""
	}
	host := strings.TrimPrefix(u.Hostname(), "www.")
	switch host {
	case "youtube.com", "m.youtube.com":
		if v := u.Query().Get("v"); v != "" {
			return v
		}
		if rest, ok := strings.CutPrefix(u.Path, "/embed/"); ok {
			return strings.Split(rest, "/")[0]
		}
	case "youtu.be":
		return strings.TrimPrefix(u.Path, "/")
	}
	return ""
}
