package notification

import (
	"context"
	"io"
	"log/slog"
	"strings"
	"testing"

	"azan/internal/domain/service"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIsRegistrationToken(t *testing.T) {
	tests := []struct {
		name  string
		token string
		want  bool
	}{
		{name: "fcm token", token: "dGVzdA:APA91bHun4MxP5egoKMwt2KZFBaFUH-1RYqx", want: true},
		{name: "empty", token: "", want: false},
		{name: "whitespace", token: "abc def", want: false},
		{name: "expo style brackets", token: "ExponentPushToken[xxxx]", want: false},
		{name: "too long", token: strings.Repeat("a", firebaseMaxTokenLen+1), want: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, isRegistrationToken(tt.token))
		})
	}
}

func TestBuildMulticastMessage_Visible(t *testing.T) {
	msg := &service.PushMessage{
		Title:     "Fajr",
		Body:      "It's time for Fajr",
		Data:      map[string]string{"id": "1"},
		Sound:     "default",
		ChannelID: "prayer-times",
	}

	got := buildMulticastMessage([]string{"a", "b"}, msg)

	require.NotNil(t, got.Notification)
	assert.Equal(t, "Fajr", got.Notification.Title)
	assert.Equal(t, "It's time for Fajr", got.Notification.Body)
	assert.Equal(t, []string{"a", "b"}, got.Tokens)
	assert.Equal(t, "high", got.Android.Priority)
	assert.Equal(t, "prayer-times", got.Android.Notification.ChannelID)
	assert.Equal(t, "default", got.Android.Notification.Sound)
	assert.Equal(t, "default", got.APNS.Payload.Aps.Sound)
	assert.Equal(t, "1", got.Data["id"])
}

func TestBuildMulticastMessage_Silent(t *testing.T) {
	msg := &service.PushMessage{
		Data:   map[string]string{"type": "data_changed"},
		Silent: true,
	}

	got := buildMulticastMessage([]string{"a"}, msg)

	assert.Nil(t, got.Notification)
	assert.Nil(t, got.Android.Notification)
	assert.True(t, got.APNS.Payload.Aps.ContentAvailable)
	assert.Equal(t, "background", got.APNS.Headers["apns-push-type"])
	assert.Equal(t, "data_changed", got.Data["type"])
}

func TestLogService_SendBatchNotification(t *testing.T) {
	svc := NewLogService(slog.New(slog.NewTextHandler(io.Discard, nil)))

	sent, failed, invalid, err := svc.SendBatchNotification(context.Background(), []string{"a", "b", "c"}, &service.PushMessage{Title: "x"})

	require.NoError(t, err)
	assert.Equal(t, 3, sent)
	assert.Zero(t, failed)
	assert.Empty(t, invalid)
	assert.Equal(t, firebaseMaxBatchSize, svc.MaxBatchSize())
}
