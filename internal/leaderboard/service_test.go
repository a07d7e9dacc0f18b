package leaderboard

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mveiros/ironwood-companion/internal/domain"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) FetchPage(ctx context.Context, skill domain.Skill, page, pageSize int) (*domain.LeaderboardPage, error) {
	args := m.Called(ctx, skill, page, pageSize)
	if p := args.Get(0); p != nil {
		return p.(*domain.LeaderboardPage), args.Error(1)
	}
	return nil, args.Error(1)
}

func TestService_GetPage(t *testing.T) {
	ctx := context.Background()

	t.Run("unknown skill rejected before the upstream call", func(t *testing.T) {
		client := new(mockClient)
		svc := NewService(client)

		_, err := svc.GetPage(ctx, "alchemy", 1, 25)
		assert.ErrorIs(t, err, domain.ErrUnknownSkill)
		client.AssertNotCalled(t, "FetchPage")
	})

	t.Run("defaults and clamps pagination", func(t *testing.T) {
		client := new(mockClient)
		svc := NewService(client)
		want := &domain.LeaderboardPage{Skill: domain.SkillFishing, Page: 1, PageSize: DefaultPageSize}

		client.On("FetchPage", mock.Anything, domain.SkillFishing, 1, DefaultPageSize).Return(want, nil).Once()
		got, err := svc.GetPage(ctx, domain.SkillFishing, 0, 0)
		require.NoError(t, err)
		assert.Equal(t, want, got)

		client.On("FetchPage", mock.Anything, domain.SkillFishing, 3, MaxPageSize).Return(want, nil).Once()
		_, err = svc.GetPage(ctx, domain.SkillFishing, 3, 5000)
		require.NoError(t, err)

		client.AssertExpectations(t)
	})
}
