package gasstation

import (
	"fmt"
	"math/rand/v2"
	"sort"

	"github.com/feral-file/ff-journal/internal/sui"
)

// Coin selection strategies
const (
	CoinSelectionRandom  = "random"
	CoinSelectionBestFit = "best_fit"
)

// CoinSelector picks the gas coin paying for a sponsored transaction
//
//go:generate mockgen -source=coin_selector.go -destination=../mocks/coin_selector.go -package=mocks -mock_names=CoinSelector=MockCoinSelector
type CoinSelector interface {
	// Select returns a coin whose balance is strictly greater than minBalance
	Select(coins []sui.Coin, minBalance uint64) (sui.Coin, bool)
}

// NewCoinSelector returns the selector of a strategy. An empty strategy selects randomly.
func NewCoinSelector(strategy string) (CoinSelector, error) {
	switch strategy {
	case "", CoinSelectionRandom:
		return &randomCoinSelector{}, nil
	case CoinSelectionBestFit:
		return &bestFitCoinSelector{}, nil
	default:
		return nil, fmt.Errorf("unknown coin selection strategy %q", strategy)
	}
}

func eligibleCoins(coins []sui.Coin, minBalance uint64) []sui.Coin {
	var eligible []sui.Coin
	for _, c := range coins {
		if uint64(c.Balance) > minBalance {
			eligible = append(eligible, c)
		}
	}
	return eligible
}

// randomCoinSelector spreads load across the sponsor's coins
type randomCoinSelector struct{}

func (s *randomCoinSelector) Select(coins []sui.Coin, minBalance uint64) (sui.Coin, bool) {
	eligible := eligibleCoins(coins, minBalance)
	if len(eligible) == 0 {
		return sui.Coin{}, false
	}
	return eligible[rand.IntN(len(eligible))], true
}

// bestFitCoinSelector picks the smallest sufficient coin, keeping large coins whole
type bestFitCoinSelector struct{}

func (s *bestFitCoinSelector) Select(coins []sui.Coin, minBalance uint64) (sui.Coin, bool) {
	eligible := eligibleCoins(coins, minBalance)
	if len(eligible) == 0 {
		return sui.Coin{}, false
	}
	sort.SliceStable(eligible, func(i, j int) bool {
		if eligible[i].Balance != eligible[j].Balance {
			return eligible[i].Balance < eligible[j].Balance
		}
		return eligible[i].CoinObjectID < eligible[j].CoinObjectID
	})
	return eligible[0], true
}
