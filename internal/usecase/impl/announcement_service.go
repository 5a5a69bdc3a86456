package impl

import (
	"context"
	"log/slog"
	"strings"
	"time"

	"azan/internal/domain/constants"
	domainerrors "azan/internal/domain/errors"
	"azan/internal/domain/service"
	"azan/internal/usecase"
)

type announcementService struct {
	logger      *slog.Logger
	broadcaster service.Broadcaster
	now         func() time.Time
}

// NewAnnouncementService creates a new announcement service instance
func NewAnnouncementService(logger *slog.Logger, broadcaster service.Broadcaster) usecase.AnnouncementUsecase {
	return &announcementService{
		logger:      logger,
		broadcaster: broadcaster,
		now:         time.Now,
	}
}

// Announce broadcasts a live announcement to every connected viewer
func (s *announcementService) Announce(ctx context.Context, input *usecase.AnnouncementInput) (*usecase.Announcement, error) {
	audioURL := strings.TrimSpace(input.AudioURL)
	if audioURL == "" {
		return nil, domainerrors.ErrAnnouncementAudioRequired
	}

	title := strings.TrimSpace(input.Title)
	if title == "" {
		title = usecase.DefaultAnnouncementTitle
	}

	announcement := &usecase.Announcement{
		AudioURL:  audioURL,
		Title:     title,
		Timestamp: s.now().UTC(),
	}

	if err := s.broadcaster.Publish(ctx, constants.ChannelLiveAnnouncement, announcement); err != nil {
		return nil, domainerrors.ErrBroadcastFailed.WrapMessage(err.Error())
	}

	s.logger.InfoContext(ctx, "Live announcement broadcast",
		slog.String("title", title),
	)

	return announcement, nil
}
