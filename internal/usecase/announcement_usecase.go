package usecase

import (
	"context"
	"time"
)

// DefaultAnnouncementTitle is used when an announcement has no title.
const DefaultAnnouncementTitle = "Live Announcement"

// AnnouncementInput is a live announcement request.
type AnnouncementInput struct {
	Title    string `json:"title"`
	AudioURL string `json:"audioUrl" validate:"required,url"`
}

// Announcement is the payload broadcast to realtime viewers.
type Announcement struct {
	AudioURL  string    `json:"audioUrl"`
	Title     string    `json:"title"`
	Timestamp time.Time `json:"timestamp"`
}

// AnnouncementUsecase broadcasts live announcements to connected viewers.
type AnnouncementUsecase interface {
	Announce(ctx context.Context, input *AnnouncementInput) (*Announcement, error)
}
