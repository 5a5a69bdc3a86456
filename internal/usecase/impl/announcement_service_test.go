package impl

import (
	"context"
	"testing"
	"time"

	"azan/internal/domain/constants"
	domainerrors "azan/internal/domain/errors"
	mockSvc "azan/internal/mocks/service"
	"azan/internal/usecase"

	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func createTestAnnouncementService(t *testing.T) (*announcementService, *mockSvc.MockBroadcaster) {
	broadcaster := mockSvc.NewMockBroadcaster(t)
	svc := NewAnnouncementService(newTestLogger(), broadcaster).(*announcementService)
	svc.now = func() time.Time { return time.Date(2024, 3, 15, 7, 30, 5, 0, time.UTC) }

	return svc, broadcaster
}

func TestAnnouncementService_Announce(t *testing.T) {
	svc, broadcaster := createTestAnnouncementService(t)
	ctx := context.Background()

	broadcaster.EXPECT().Publish(ctx, constants.ChannelLiveAnnouncement, mock.MatchedBy(func(a *usecase.Announcement) bool {
		return a.AudioURL == "https://cdn.example.com/live.mp3" && a.Title == "Friday khutbah"
	})).Return(nil).Once()

	announcement, err := svc.Announce(ctx, &usecase.AnnouncementInput{
		Title:    " Friday khutbah ",
		AudioURL: "https://cdn.example.com/live.mp3",
	})
	require.NoError(t, err)
	assert.Equal(t, "Friday khutbah", announcement.Title)
	assert.Equal(t, time.Date(2024, 3, 15, 7, 30, 5, 0, time.UTC), announcement.Timestamp)
}

func TestAnnouncementService_Announce_DefaultTitle(t *testing.T) {
	svc, broadcaster := createTestAnnouncementService(t)
	ctx := context.Background()

	broadcaster.EXPECT().Publish(ctx, constants.ChannelLiveAnnouncement, mock.Anything).Return(nil).Once()

	announcement, err := svc.Announce(ctx, &usecase.AnnouncementInput{AudioURL: "https://cdn.example.com/live.mp3"})
	require.NoError(t, err)
	assert.Equal(t, usecase.DefaultAnnouncementTitle, announcement.Title)
}

func TestAnnouncementService_Announce_RequiresAudio(t *testing.T) {
	svc, broadcaster := createTestAnnouncementService(t)

	_, err := svc.Announce(context.Background(), &usecase.AnnouncementInput{Title: "x", AudioURL: "  "})
	assert.ErrorIs(t, err, domainerrors.ErrAnnouncementAudioRequired)
	broadcaster.AssertNotCalled(t, "Publish", mock.Anything, mock.Anything, mock.Anything)
}

func TestAnnouncementService_Announce_PublishFailure(t *testing.T) {
	svc, broadcaster := createTestAnnouncementService(t)
	ctx := context.Background()

	broadcaster.EXPECT().Publish(ctx, constants.ChannelLiveAnnouncement, mock.Anything).Return(errors.New("redis down")).Once()

	_, err := svc.Announce(ctx, &usecase.AnnouncementInput{AudioURL: "https://cdn.example.com/live.mp3"})
	assert.ErrorIs(t, err, domainerrors.ErrBroadcastFailed)
}
