package usecase_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/sp-ops/spgroups/pkg/domain/interfaces/mocks"
	"github.com/sp-ops/spgroups/pkg/domain/model"
	"github.com/sp-ops/spgroups/pkg/domain/types"
	"github.com/sp-ops/spgroups/pkg/usecase"
)

func TestResolverResolve(t *testing.T) {
	ctx := context.Background()

	t.Run("exact display name match wins", func(t *testing.T) {
		mockDir := &mocks.DirectoryClientMock{
			FindGroupByDisplayNameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
				gt.Equal(t, "Team-A-SG", name)
				return []*model.DirectoryGroup{
					{ID: "g-123", DisplayName: "Team-A-SG"},
				}, nil
			},
		}

		resolver := usecase.NewResolver(mockDir)
		group, err := resolver.Resolve(ctx, "Team-A-SG")

		gt.NoError(t, err).Required()
		gt.Equal(t, types.DirectoryGroupID("g-123"), group.ID)

		// Alias lookup never happens on an exact hit
		gt.Equal(t, 1, len(mockDir.FindGroupByDisplayNameCalls()))
		gt.Equal(t, 0, len(mockDir.FindGroupByMailNicknameCalls()))
	})

	t.Run("falls back to alias match", func(t *testing.T) {
		mockDir := &mocks.DirectoryClientMock{
			FindGroupByDisplayNameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
				return nil, nil
			},
			FindGroupByMailNicknameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
				gt.Equal(t, "team-a-sg", name)
				return []*model.DirectoryGroup{
					{ID: "g-456", MailNickname: "team-a-sg"},
				}, nil
			},
		}

		resolver := usecase.NewResolver(mockDir)
		group, err := resolver.Resolve(ctx, "team-a-sg")

		gt.NoError(t, err).Required()
		gt.Equal(t, types.DirectoryGroupID("g-456"), group.ID)
		gt.Equal(t, 1, len(mockDir.FindGroupByMailNicknameCalls()))
	})

	t.Run("no match is not found", func(t *testing.T) {
		mockDir := &mocks.DirectoryClientMock{
			FindGroupByDisplayNameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
				return nil, nil
			},
			FindGroupByMailNicknameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
				return nil, nil
			},
		}

		resolver := usecase.NewResolver(mockDir)
		_, err := resolver.Resolve(ctx, "No-Such-Group")

		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDirectoryGroupNotFound))
	})

	t.Run("transport error converts to not found", func(t *testing.T) {
		mockDir := &mocks.DirectoryClientMock{
			FindGroupByDisplayNameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
				return nil, goerr.New("directory service unavailable")
			},
		}

		resolver := usecase.NewResolver(mockDir)
		_, err := resolver.Resolve(ctx, "Team-A-SG")

		gt.Error(t, err)
		gt.True(t, errors.Is(err, model.ErrDirectoryGroupNotFound))
	})

	t.Run("multiple matches take the first", func(t *testing.T) {
		mockDir := &mocks.DirectoryClientMock{
			FindGroupByDisplayNameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
				return []*model.DirectoryGroup{
					{ID: "g-first", DisplayName: "Team-A-SG"},
					{ID: "g-second", DisplayName: "Team-A-SG"},
				}, nil
			},
		}

		resolver := usecase.NewResolver(mockDir)
		group, err := resolver.Resolve(ctx, "Team-A-SG")

		gt.NoError(t, err).Required()
		gt.Equal(t, types.DirectoryGroupID("g-first"), group.ID)
	})
}
