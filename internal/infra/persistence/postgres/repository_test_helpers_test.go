package postgres

import (
	"context"
	"fmt"
	"strings"
	"testing"

	"azan/internal/infra/persistence/model"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a private in-memory SQLite database with the service schema.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	name := strings.NewReplacer("/", "_", " ", "_").Replace(t.Name())
	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", name)

	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = sqlDB.Close() })

	require.NoError(t, Migrate(context.Background(), db))

	return db
}

func strPtr(value string) *string {
	return &value
}

func seedVoice(t *testing.T, db *gorm.DB, name, locator string) *model.VoiceModel {
	t.Helper()

	voice := &model.VoiceModel{Name: name, SoundFile: locator, IsActive: true}
	require.NoError(t, db.Create(voice).Error)

	return voice
}

func seedEvent(t *testing.T, db *gorm.DB, event *model.EventModel) *model.EventModel {
	t.Helper()

	active := event.IsActive
	require.NoError(t, db.Create(event).Error)
	if !active {
		// the column default would otherwise win over the zero value
		require.NoError(t, db.Model(event).Update("is_active", false).Error)
	}

	return event
}
