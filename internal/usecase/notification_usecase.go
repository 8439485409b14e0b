package usecase

import (
	"context"
	"errors"

	"go-jobboard-backend/internal/domain"
	"go-jobboard-backend/pkg/apperror"
	"go-jobboard-backend/pkg/logger"
)

type notificationUsecase struct {
	repo domain.NotificationRepository
}

func NewNotificationUsecase(repo domain.NotificationRepository) domain.NotificationUsecase {
	return &notificationUsecase{repo: repo}
}

// Notify records a notification for the user. Failures are logged and
// swallowed so the triggering operation always succeeds.
func (u *notificationUsecase) Notify(ctx context.Context, userID, title, body string) {
	n := &domain.Notification{
		UserID: userID,
		Title:  title,
		Body:   body,
	}
	if err := u.repo.Create(ctx, n); err != nil {
		logger.Log.Error("failed to create notification", "error", err, "user_id", userID)
	}
}

func (u *notificationUsecase) ListMine(ctx context.Context, userID string, page, pageSize int) ([]domain.Notification, int64, error) {
	limit, offset := paginate(page, pageSize)
	return u.repo.GetByUserID(ctx, userID, limit, offset)
}

func (u *notificationUsecase) UnreadCount(ctx context.Context, userID string) (int64, error) {
	return u.repo.CountUnread(ctx, userID)
}

func (u *notificationUsecase) MarkRead(ctx context.Context, userID string, id int64) error {
	if err := u.repo.MarkRead(ctx, userID, id); err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return apperror.NotFound("Notification not found")
		}
		return err
	}
	return nil
}

func (u *notificationUsecase) MarkAllRead(ctx context.Context, userID string) error {
	return u.repo.MarkAllRead(ctx, userID)
}
