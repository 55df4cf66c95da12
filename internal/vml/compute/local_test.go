package compute

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/jimyag/vml/internal/vml/entity"
	"github.com/jimyag/vml/internal/vml/repository"
	"github.com/jimyag/vml/pkg/apierror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// setupLocal 创建带种子数据的本地后端
func setupLocal(t *testing.T) *Local {
	t.Helper()

	repo, err := repository.New(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		_ = repo.Close()
	})
	require.NoError(t, repo.Seed(context.Background()))
	return NewLocal(repo)
}

func TestLocalCreateServer(t *testing.T) {
	t.Parallel()

	local := setupLocal(t)
	ctx := context.Background()

	server, err := local.CreateServer(ctx, "web-1", "11111111-0000-0000-0000-000000000001", "22222222-0000-0000-0000-000000000001")
	require.NoError(t, err)

	assert.True(t, strings.HasPrefix(server.ID, "srv-"))
	assert.Equal(t, "web-1", server.Name)
	assert.Equal(t, entity.StatusActive, server.Status)
	assert.True(t, strings.HasPrefix(server.IPAddress, "10."))
	assert.False(t, server.CreatedAt.IsZero())
}

func TestLocalGetServerAbsent(t *testing.T) {
	t.Parallel()

	local := setupLocal(t)

	server, err := local.GetServer(context.Background(), "srv-missing")
	require.NoError(t, err)
	assert.Nil(t, server)
}

func TestLocalPerformActionStop(t *testing.T) {
	t.Parallel()

	local := setupLocal(t)
	ctx := context.Background()

	server, err := local.CreateServer(ctx, "web-1", "11111111-0000-0000-0000-000000000001", "22222222-0000-0000-0000-000000000001")
	require.NoError(t, err)

	stopped, err := local.PerformAction(ctx, server, entity.ActionStop, ActionOptions{})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusShutoff, stopped.Status)
	assert.Greater(t, stopped.Version, server.Version)
}

func TestLocalPerformActionResizeRewritesFlavor(t *testing.T) {
	t.Parallel()

	local := setupLocal(t)
	ctx := context.Background()

	server, err := local.CreateServer(ctx, "web-1", "11111111-0000-0000-0000-000000000001", "22222222-0000-0000-0000-000000000001")
	require.NoError(t, err)

	resized, err := local.PerformAction(ctx, server, entity.ActionResize, ActionOptions{
		FlavorID: "11111111-0000-0000-0000-000000000002",
	})
	require.NoError(t, err)
	assert.Equal(t, entity.StatusActive, resized.Status)
	assert.Equal(t, "11111111-0000-0000-0000-000000000002", resized.FlavorID)
}

func TestLocalConcurrentUpdateConflict(t *testing.T) {
	t.Parallel()

	local := setupLocal(t)
	ctx := context.Background()

	server, err := local.CreateServer(ctx, "web-1", "11111111-0000-0000-0000-000000000001", "22222222-0000-0000-0000-000000000001")
	require.NoError(t, err)

	// 第一个变更成功，第二个仍然持有旧版本号，应该冲突
	_, err = local.PerformAction(ctx, server, entity.ActionStop, ActionOptions{})
	require.NoError(t, err)

	_, err = local.PerformAction(ctx, server, entity.ActionReboot, ActionOptions{})
	assert.ErrorIs(t, err, apierror.ErrConcurrentUpdate)
}

func TestLocalDeleteServerTombstone(t *testing.T) {
	t.Parallel()

	local := setupLocal(t)
	ctx := context.Background()

	server, err := local.CreateServer(ctx, "web-1", "11111111-0000-0000-0000-000000000001", "22222222-0000-0000-0000-000000000001")
	require.NoError(t, err)
	require.NoError(t, local.DeleteServer(ctx, server))

	// 墓碑记录仍然可以读到
	got, err := local.GetServer(ctx, server.ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, entity.StatusDeleted, got.Status)

	// 但不出现在列表里
	servers, total, err := local.ListServers(ctx, 10, 0)
	require.NoError(t, err)
	assert.Empty(t, servers)
	assert.Equal(t, int64(0), total)
}

func TestLocalCatalog(t *testing.T) {
	t.Parallel()

	local := setupLocal(t)
	ctx := context.Background()

	flavors, total, err := local.ListFlavors(ctx, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(5), total)
	assert.Len(t, flavors, 5)

	images, total, err := local.ListImages(ctx, 100, 0)
	require.NoError(t, err)
	assert.Equal(t, int64(4), total)
	assert.Len(t, images, 4)

	flavor, err := local.GetFlavor(ctx, "11111111-0000-0000-0000-000000000003")
	require.NoError(t, err)
	require.NotNil(t, flavor)
	assert.Equal(t, "m1.medium", flavor.Name)

	absent, err := local.GetFlavor(ctx, "11111111-0000-0000-0000-999999999999")
	require.NoError(t, err)
	assert.Nil(t, absent)
}

func TestCloudNotImplemented(t *testing.T) {
	t.Parallel()

	cloud := NewCloud(CloudConfig{AuthURL: "https://keystone.example.com/v3"})

	_, err := cloud.CreateServer(context.Background(), "web-1", "f1", "i1")
	assert.ErrorIs(t, err, apierror.ErrNotImplemented)

	_, _, err = cloud.ListServers(context.Background(), 10, 0)
	assert.ErrorIs(t, err, apierror.ErrNotImplemented)
}

func TestRandomIPRange(t *testing.T) {
	t.Parallel()

	for i := 0; i < 100; i++ {
		ip := randomIP()
		assert.True(t, strings.HasPrefix(ip, "10."))
		assert.Len(t, strings.Split(ip, "."), 4)
	}
}
