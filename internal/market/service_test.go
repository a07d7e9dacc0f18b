package market

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/mveiros/ironwood-companion/internal/catalog"
	"github.com/mveiros/ironwood-companion/internal/domain"
)

type mockClient struct {
	mock.Mock
}

func (m *mockClient) FetchPrices(ctx context.Context) ([]domain.MarketPrice, error) {
	args := m.Called(ctx)
	if p := args.Get(0); p != nil {
		return p.([]domain.MarketPrice), args.Error(1)
	}
	return nil, args.Error(1)
}

func testCatalog() *catalog.Catalog {
	return catalog.New(map[domain.Skill][]domain.SkillItem{
		domain.SkillFishing: {
			{Name: "Raw Cod", Level: 1, BaseExp: 10, BaseSeconds: 5, BaseGoldValue: 2},
			{Name: "Raw Shark", Level: 95, BaseExp: 480, BaseSeconds: 10, BaseGoldValue: 100},
		},
	})
}

func TestService_GetPrices_Caches(t *testing.T) {
	client := new(mockClient)
	svc := NewService(client, testCatalog(), time.Minute)
	ctx := context.Background()

	snapshot := []domain.MarketPrice{{ItemName: "Raw Cod", Price: 3.5, Volume: 120}}
	client.On("FetchPrices", mock.Anything).Return(snapshot, nil).Once()

	first, err := svc.GetPrices(ctx)
	require.NoError(t, err)
	second, err := svc.GetPrices(ctx)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	client.AssertExpectations(t)
}

func TestService_GetPrices_UpstreamError(t *testing.T) {
	client := new(mockClient)
	svc := NewService(client, testCatalog(), time.Minute)

	client.On("FetchPrices", mock.Anything).Return(nil, domain.ErrUpstreamFailed).Once()

	_, err := svc.GetPrices(context.Background())
	assert.ErrorIs(t, err, domain.ErrUpstreamFailed)
}

func TestService_GetSkillPrices(t *testing.T) {
	client := new(mockClient)
	svc := NewService(client, testCatalog(), time.Minute)
	ctx := context.Background()

	snapshot := []domain.MarketPrice{{ItemName: "raw cod", Price: 3.5, Volume: 120}}
	client.On("FetchPrices", mock.Anything).Return(snapshot, nil).Once()

	t.Run("joins case-insensitively and keeps unlisted items", func(t *testing.T) {
		joined, err := svc.GetSkillPrices(ctx, domain.SkillFishing)
		require.NoError(t, err)
		require.Len(t, joined, 2)

		require.NotNil(t, joined[0].Price)
		assert.Equal(t, 3.5, *joined[0].Price)
		assert.Equal(t, 120, joined[0].Volume)

		assert.Nil(t, joined[1].Price, "unlisted items keep a nil price")
	})

	t.Run("unknown skill", func(t *testing.T) {
		_, err := svc.GetSkillPrices(ctx, "alchemy")
		assert.ErrorIs(t, err, domain.ErrUnknownSkill)
	})
}
