package usecase_test

import (
	"context"
	"strings"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/gt"
	"github.com/sp-ops/spgroups/pkg/domain/interfaces"
	"github.com/sp-ops/spgroups/pkg/domain/interfaces/mocks"
	"github.com/sp-ops/spgroups/pkg/domain/model"
	"github.com/sp-ops/spgroups/pkg/domain/types"
	"github.com/sp-ops/spgroups/pkg/repository"
	"github.com/sp-ops/spgroups/pkg/usecase"
)

// newSession builds a session mock where every operation succeeds and the
// site has no groups yet. Individual tests override what they care about.
func newSession() *mocks.SiteSessionMock {
	return &mocks.SiteSessionMock{
		FindGroupFunc: func(ctx context.Context, title string) (*model.SiteGroup, error) {
			return nil, nil
		},
		CreateGroupFunc: func(ctx context.Context, title, description string) (*model.SiteGroup, error) {
			return &model.SiteGroup{ID: 7, Title: title, Description: description}, nil
		},
		GrantPermissionFunc: func(ctx context.Context, groupID types.SiteGroupID, level types.PermissionLevel) error {
			return nil
		},
		AddMemberFunc: func(ctx context.Context, groupID types.SiteGroupID, login types.LoginName) error {
			return nil
		},
		CloseFunc: func() error {
			return nil
		},
	}
}

func newConnector(session *mocks.SiteSessionMock) *mocks.SiteConnectorMock {
	return &mocks.SiteConnectorMock{
		OpenFunc: func(ctx context.Context, site types.SiteURL) (interfaces.SiteSession, error) {
			return session, nil
		},
	}
}

func newDirectory() *mocks.DirectoryClientMock {
	return &mocks.DirectoryClientMock{
		FindGroupByDisplayNameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
			return []*model.DirectoryGroup{{ID: "g-123", DisplayName: name}}, nil
		},
	}
}

func TestProvisionRun(t *testing.T) {
	ctx := context.Background()

	fullRow := model.ManifestRow{
		Site:               "https://t.sharepoint.com/sites/a",
		GroupName:          "Team A",
		PermissionLevel:    "Read",
		DirectoryGroupName: "Team-A-SG",
		Line:               1,
	}

	t.Run("full row drives the complete call sequence", func(t *testing.T) {
		session := newSession()
		connector := newConnector(session)
		directory := newDirectory()

		uc := usecase.NewProvision(
			repository.NewMemory([]model.ManifestRow{fullRow}),
			connector, directory, nil,
		)

		summary, err := uc.Run(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, summary.Succeeded)
		gt.Equal(t, 0, summary.Failed)
		gt.Equal(t, 0, summary.Skipped)

		gt.Equal(t, 1, len(connector.OpenCalls()))
		gt.Equal(t, types.SiteURL("https://t.sharepoint.com/sites/a"), connector.OpenCalls()[0].Site)

		gt.Equal(t, 1, len(session.FindGroupCalls()))
		gt.Equal(t, "Team A", session.FindGroupCalls()[0].Title)

		gt.Equal(t, 1, len(session.CreateGroupCalls()))
		gt.Equal(t, "Team A", session.CreateGroupCalls()[0].Title)
		gt.Equal(t, model.DefaultGroupDescription, session.CreateGroupCalls()[0].Description)

		gt.Equal(t, 1, len(session.GrantPermissionCalls()))
		gt.Equal(t, types.SiteGroupID(7), session.GrantPermissionCalls()[0].GroupID)
		gt.Equal(t, types.PermissionLevel("Read"), session.GrantPermissionCalls()[0].Level)

		gt.Equal(t, 1, len(session.AddMemberCalls()))
		gt.True(t, strings.Contains(session.AddMemberCalls()[0].Login.String(), "g-123"))

		gt.Equal(t, 1, len(session.CloseCalls()))
	})

	t.Run("existing group skips creation only", func(t *testing.T) {
		session := newSession()
		session.FindGroupFunc = func(ctx context.Context, title string) (*model.SiteGroup, error) {
			return &model.SiteGroup{ID: 11, Title: title}, nil
		}
		connector := newConnector(session)

		uc := usecase.NewProvision(
			repository.NewMemory([]model.ManifestRow{fullRow}),
			connector, newDirectory(), nil,
		)

		summary, err := uc.Run(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, summary.Succeeded)
		gt.Equal(t, 0, summary.Failed)

		gt.Equal(t, 0, len(session.CreateGroupCalls()))
		gt.Equal(t, 1, len(session.GrantPermissionCalls()))
		gt.Equal(t, types.SiteGroupID(11), session.GrantPermissionCalls()[0].GroupID)
		gt.Equal(t, 1, len(session.AddMemberCalls()))
		gt.Equal(t, 1, len(session.CloseCalls()))
	})

	t.Run("blank rows make no remote calls", func(t *testing.T) {
		session := newSession()
		connector := newConnector(session)

		rows := []model.ManifestRow{
			{Site: "", GroupName: "Team A", Line: 1},
			{Site: "https://t.sharepoint.com/sites/a", GroupName: "", Line: 2},
			fullRow,
		}

		uc := usecase.NewProvision(
			repository.NewMemory(rows),
			connector, newDirectory(), nil,
		)

		summary, err := uc.Run(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, summary.Succeeded)
		gt.Equal(t, 0, summary.Failed)
		gt.Equal(t, 2, summary.Skipped)

		// Only the complete row opened a session
		gt.Equal(t, 1, len(connector.OpenCalls()))
	})

	t.Run("unresolved directory group fails the row without membership call", func(t *testing.T) {
		session := newSession()
		connector := newConnector(session)
		directory := &mocks.DirectoryClientMock{
			FindGroupByDisplayNameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
				return nil, nil
			},
			FindGroupByMailNicknameFunc: func(ctx context.Context, name string) ([]*model.DirectoryGroup, error) {
				return nil, nil
			},
		}

		uc := usecase.NewProvision(
			repository.NewMemory([]model.ManifestRow{fullRow}),
			connector, directory, nil,
		)

		summary, err := uc.Run(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, 0, summary.Succeeded)
		gt.Equal(t, 1, summary.Failed)

		gt.Equal(t, 0, len(session.AddMemberCalls()))
		// Teardown still runs on the error path
		gt.Equal(t, 1, len(session.CloseCalls()))
	})

	t.Run("empty permission level skips the grant step", func(t *testing.T) {
		session := newSession()
		connector := newConnector(session)

		row := fullRow
		row.PermissionLevel = ""

		uc := usecase.NewProvision(
			repository.NewMemory([]model.ManifestRow{row}),
			connector, newDirectory(), nil,
		)

		summary, err := uc.Run(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, summary.Succeeded)

		gt.Equal(t, 0, len(session.GrantPermissionCalls()))
		gt.Equal(t, 1, len(session.CreateGroupCalls()))
		gt.Equal(t, 1, len(session.AddMemberCalls()))
	})

	t.Run("defaults fill an empty permission level", func(t *testing.T) {
		session := newSession()
		connector := newConnector(session)

		row := fullRow
		row.PermissionLevel = ""
		defaults := &model.Defaults{
			GroupDescription: "Managed group",
			PermissionLevel:  "Contribute",
		}

		uc := usecase.NewProvision(
			repository.NewMemory([]model.ManifestRow{row}),
			connector, newDirectory(), defaults,
		)

		summary, err := uc.Run(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, summary.Succeeded)

		gt.Equal(t, 1, len(session.GrantPermissionCalls()))
		gt.Equal(t, types.PermissionLevel("Contribute"), session.GrantPermissionCalls()[0].Level)
		gt.Equal(t, "Managed group", session.CreateGroupCalls()[0].Description)
	})

	t.Run("row failure does not stop the run", func(t *testing.T) {
		session := newSession()
		calls := 0
		session.CreateGroupFunc = func(ctx context.Context, title, description string) (*model.SiteGroup, error) {
			calls++
			if calls == 1 {
				return nil, goerr.New("site unavailable")
			}
			return &model.SiteGroup{ID: 7, Title: title}, nil
		}
		connector := newConnector(session)

		second := fullRow
		second.Site = "https://t.sharepoint.com/sites/b"
		second.Line = 2

		uc := usecase.NewProvision(
			repository.NewMemory([]model.ManifestRow{fullRow, second}),
			connector, newDirectory(), nil,
		)

		summary, err := uc.Run(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, summary.Succeeded)
		gt.Equal(t, 1, summary.Failed)

		// Both rows opened and closed their own session
		gt.Equal(t, 2, len(connector.OpenCalls()))
		gt.Equal(t, 2, len(session.CloseCalls()))
	})

	t.Run("session open failure fails the row", func(t *testing.T) {
		connector := &mocks.SiteConnectorMock{
			OpenFunc: func(ctx context.Context, site types.SiteURL) (interfaces.SiteSession, error) {
				return nil, goerr.New("authentication failed")
			},
		}

		uc := usecase.NewProvision(
			repository.NewMemory([]model.ManifestRow{fullRow}),
			connector, newDirectory(), nil,
		)

		summary, err := uc.Run(ctx)
		gt.NoError(t, err).Required()
		gt.Equal(t, 1, summary.Failed)
	})

	t.Run("manifest load failure is fatal", func(t *testing.T) {
		source := &mocks.ManifestSourceMock{
			LoadFunc: func(ctx context.Context) ([]model.ManifestRow, error) {
				return nil, model.ErrManifestEmpty
			},
		}
		connector := newConnector(newSession())

		uc := usecase.NewProvision(source, connector, newDirectory(), nil)

		_, err := uc.Run(ctx)
		gt.Error(t, err)
		gt.Equal(t, 0, len(connector.OpenCalls()))
	})
}
