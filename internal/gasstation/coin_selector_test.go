package gasstation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-journal/internal/gasstation"
	"github.com/feral-file/ff-journal/internal/sui"
)

func TestNewCoinSelector(t *testing.T) {
	for _, strategy := range []string{"", gasstation.CoinSelectionRandom, gasstation.CoinSelectionBestFit} {
		selector, err := gasstation.NewCoinSelector(strategy)
		require.NoError(t, err)
		assert.NotNil(t, selector)
	}

	_, err := gasstation.NewCoinSelector("largest")
	assert.Error(t, err)
}

func TestBestFitCoinSelector(t *testing.T) {
	selector, err := gasstation.NewCoinSelector(gasstation.CoinSelectionBestFit)
	require.NoError(t, err)

	coins := []sui.Coin{
		coin("0xc3", 9_000),
		coin("0xc2", 3_000),
		coin("0xc1", 3_000),
		coin("0xc0", 1_000),
	}

	tests := []struct {
		name       string
		minBalance uint64
		expected   string
		found      bool
	}{
		{name: "smallest above minimum", minBalance: 1_500, expected: "0xc1", found: true},
		{name: "minimum is exclusive", minBalance: 1_000, expected: "0xc1", found: true},
		{name: "any coin", minBalance: 0, expected: "0xc0", found: true},
		{name: "largest only", minBalance: 3_000, expected: "0xc3", found: true},
		{name: "nothing large enough", minBalance: 9_000},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c, ok := selector.Select(coins, tt.minBalance)
			assert.Equal(t, tt.found, ok)
			if tt.found {
				assert.Equal(t, tt.expected, c.CoinObjectID)
			}
		})
	}
}

func TestRandomCoinSelector(t *testing.T) {
	selector, err := gasstation.NewCoinSelector(gasstation.CoinSelectionRandom)
	require.NoError(t, err)

	coins := []sui.Coin{coin("0xc0", 1_000), coin("0xc1", 5_000), coin("0xc2", 7_000)}

	for i := 0; i < 50; i++ {
		c, ok := selector.Select(coins, 4_000)
		require.True(t, ok)
		assert.Contains(t, []string{"0xc1", "0xc2"}, c.CoinObjectID)
	}

	_, ok := selector.Select(coins, 7_000)
	assert.False(t, ok)

	_, ok = selector.Select(nil, 0)
	assert.False(t, ok)
}
