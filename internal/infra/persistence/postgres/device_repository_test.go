package postgres

import (
	"context"
	"testing"

	"azan/internal/domain/entity"
	"azan/internal/domain/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeviceRepository_CreateAndFind(t *testing.T) {
	repo := NewDeviceRepository(newTestDB(t))
	ctx := context.Background()

	device := &entity.DeviceRegistration{Token: "token-a", Platform: entity.PlatformIOS}
	require.NoError(t, repo.CreateDevice(ctx, device))
	assert.NotZero(t, device.ID)
	assert.False(t, device.CreatedAt.IsZero())

	found, err := repo.FindDeviceByToken(ctx, "token-a")
	require.NoError(t, err)
	assert.Equal(t, device.ID, found.ID)
	assert.Equal(t, entity.PlatformIOS, found.Platform)

	_, err = repo.FindDeviceByToken(ctx, "missing")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}

func TestDeviceRepository_CreateDuplicate(t *testing.T) {
	repo := NewDeviceRepository(newTestDB(t))
	ctx := context.Background()

	require.NoError(t, repo.CreateDevice(ctx, &entity.DeviceRegistration{Token: "dup", Platform: entity.PlatformAndroid}))

	err := repo.CreateDevice(ctx, &entity.DeviceRegistration{Token: "dup", Platform: entity.PlatformIOS})
	assert.ErrorIs(t, err, repository.ErrDuplicateDevice)
}

func TestDeviceRepository_ListUpdateDelete(t *testing.T) {
	repo := NewDeviceRepository(newTestDB(t))
	ctx := context.Background()

	for _, token := range []string{"t1", "t2", "t3"} {
		require.NoError(t, repo.CreateDevice(ctx, &entity.DeviceRegistration{Token: token, Platform: entity.PlatformAndroid}))
	}

	require.NoError(t, repo.UpdatePlatform(ctx, "t2", entity.PlatformIOS))
	assert.ErrorIs(t, repo.UpdatePlatform(ctx, "nope", entity.PlatformIOS), repository.ErrDeviceNotFound)

	require.NoError(t, repo.DeleteDeviceRegistration(ctx, "t1"))
	assert.ErrorIs(t, repo.DeleteDeviceRegistration(ctx, "t1"), repository.ErrDeviceNotFound)

	devices, err := repo.ListDeviceRegistrations(ctx)
	require.NoError(t, err)
	require.Len(t, devices, 2)
	assert.Equal(t, "t2", devices[0].Token)
	assert.Equal(t, entity.PlatformIOS, devices[0].Platform)
	assert.Equal(t, "t3", devices[1].Token)
}

func TestTransactionManager_RollsBackOnError(t *testing.T) {
	db := newTestDB(t)
	tm := NewTransactionManager(db)
	ctx := context.Background()

	err := tm.Execute(ctx, func(factory repository.RepositoryFactory) error {
		if err := factory.NewDeviceRepository().CreateDevice(ctx, &entity.DeviceRegistration{Token: "tx", Platform: entity.PlatformAndroid}); err != nil {
			return err
		}

		return repository.ErrDeviceNotFound
	})
	require.ErrorIs(t, err, repository.ErrDeviceNotFound)

	_, err = NewDeviceRepository(db).FindDeviceByToken(ctx, "tx")
	assert.ErrorIs(t, err, repository.ErrDeviceNotFound)
}
