package service

import (
	"context"
	"fmt"

	"github.com/carlosbrath/lives-stolen-sub000/internal/logger"
	"github.com/carlosbrath/lives-stolen-sub000/internal/store"
	"github.com/carlosbrath/lives-stolen-sub000/internal/utils"
	"github.com/carlosbrath/lives-stolen-sub000/models"
)

// submissionService is the concrete implementation of SubmissionService.
type submissionService struct {
	submissionRepository store.SubmissionRepository
	uuidGenerator        *utils.UUIDGenerator
	logger               *logger.Logger
}

// NewSubmissionService constructs a SubmissionService over the given
// repository.
func NewSubmissionService(submissionRepository store.SubmissionRepository, logger *logger.Logger) SubmissionService {
	return &submissionService{
		submissionRepository: submissionRepository,
		uuidGenerator:        utils.NewUUIDGenerator(),
		logger:               logger,
	}
}

// Create stores a new memorial story in the "new" moderation state.
func (s *submissionService) Create(ctx context.Context, submission models.Submission) (models.Submission, error) {
	log := logger.FromContext(ctx)

	submission.Shop = normalizeShop(submission.Shop)
	if submission.Shop == "" || submission.AuthorName == "" || submission.Title == "" || submission.Body == "" {
		log.Warn().Str("shop", submission.Shop).Msg("submission rejected: required field missing")
		return models.Submission{}, ErrInvalidSubmission
	}
	submission.ID = s.uuidGenerator.Generate()
	submission.Status = models.SubmissionNew

	created, err := s.submissionRepository.Create(ctx, submission)
	if err != nil {
		log.Err(err).Str("shop", submission.Shop).Msg("submission creation ended with error")
		return models.Submission{}, fmt.Errorf("submission creation ended with error: %w", err)
	}

	log.Info().Str("shop", created.Shop).Str("submission_id", created.ID).Msg("submission created")
	return created, nil
}

// List returns a shop's stories, optionally filtered by moderation state.
func (s *submissionService) List(ctx context.Context, shop string, status models.SubmissionStatus) ([]models.Submission, error) {
	submissions, err := s.submissionRepository.List(ctx, normalizeShop(shop), status)
	if err != nil {
		logger.FromContext(ctx).Err(err).Str("shop", shop).Msg("submission listing ended with error")
		return nil, fmt.Errorf("submission listing ended with error: %w", err)
	}
	return submissions, nil
}

// Approve moves a new story into the approved state.
func (s *submissionService) Approve(ctx context.Context, id string) (models.Submission, error) {
	return s.transition(ctx, id, models.SubmissionNew, models.SubmissionApproved)
}

// Publish moves an approved story into the published state.
func (s *submissionService) Publish(ctx context.Context, id string) (models.Submission, error) {
	return s.transition(ctx, id, models.SubmissionApproved, models.SubmissionPublished)
}

// transition enforces the new → approved → published order before updating.
func (s *submissionService) transition(ctx context.Context, id string, from, to models.SubmissionStatus) (models.Submission, error) {
	log := logger.FromContext(ctx)

	current, err := s.submissionRepository.GetByID(ctx, id)
	if err != nil {
		log.Err(err).Str("submission_id", id).Msg("submission lookup ended with error")
		return models.Submission{}, fmt.Errorf("submission lookup ended with error: %w", err)
	}
	if current.Status != from {
		log.Warn().Str("submission_id", id).
			Str("current_status", string(current.Status)).
			Str("target_status", string(to)).
			Msg("submission status transition rejected")
		return models.Submission{}, fmt.Errorf("%w: %s cannot become %s", ErrInvalidStatusTransition, current.Status, to)
	}

	updated, err := s.submissionRepository.UpdateStatus(ctx, id, to)
	if err != nil {
		log.Err(err).Str("submission_id", id).Msg("submission status update ended with error")
		return models.Submission{}, fmt.Errorf("submission status update ended with error: %w", err)
	}

	log.Info().Str("submission_id", id).Str("status", string(to)).Msg("submission status updated")
	return updated, nil
}
