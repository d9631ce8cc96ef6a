package gasstation

import (
	"context"
	"errors"
	"fmt"
	"math"

	"go.uber.org/zap"

	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/logger"
	"github.com/feral-file/ff-journal/internal/metrics"
	"github.com/feral-file/ff-journal/internal/store"
	"github.com/feral-file/ff-journal/internal/sui"
)

const (
	// LifetimeSponsorshipCap is the total gas, in MIST, sponsored per user over its lifetime.
	// Usage reaching the cap ends sponsorship for the user.
	LifetimeSponsorshipCap uint64 = 250_000_000

	// DryRunGasBudget is the placeholder budget of the simulation pass
	DryRunGasBudget uint64 = 50_000_000
)

// SponsoredTransaction is the final transaction data, signed by the sponsor
type SponsoredTransaction struct {
	TxBytes          []byte
	SponsorSignature string
	Digest           string
	GasBudget        uint64
	ActionType       string
}

// Usage is the lifetime sponsorship usage of a user
type Usage struct {
	Address   string `json:"address"`
	Used      uint64 `json:"used"`
	Remaining uint64 `json:"remaining"`
	Cap       uint64 `json:"cap"`
}

// Status describes the sponsor's gas pool
type Status struct {
	SponsorAddress     string `json:"sponsorAddress"`
	CoinCount          int    `json:"coinCount"`
	TotalBalance       uint64 `json:"totalBalance"`
	LargestCoinBalance uint64 `json:"largestCoinBalance"`
}

// GasStation sponsors allow-listed journal transactions
//
//go:generate mockgen -source=gasstation.go -destination=../mocks/gasstation.go -package=mocks -mock_names=GasStation=MockGasStation
type GasStation interface {
	// SponsorTransaction validates, simulates, budgets and co-signs a user transaction
	SponsorTransaction(ctx context.Context, txBytes []byte, sender string) (*SponsoredTransaction, error)
	// ExecuteSponsored submits a transaction carrying the user and sponsor signatures
	ExecuteSponsored(ctx context.Context, txBytes []byte, userSignature string, sponsorSignature string) (*sui.ExecuteResult, error)
	// GetUsage returns the lifetime usage of a user
	GetUsage(ctx context.Context, address string) (*Usage, error)
	// Status returns the sponsor's gas pool status
	Status(ctx context.Context) (*Status, error)
}

type gasStation struct {
	client   sui.Client
	store    store.Store
	signer   sui.Signer
	policy   *Policy
	selector CoinSelector
}

// NewGasStation creates a gas station. A nil signer leaves the station offline.
func NewGasStation(client sui.Client, st store.Store, signer sui.Signer, policy *Policy, selector CoinSelector) GasStation {
	return &gasStation{
		client:   client,
		store:    st,
		signer:   signer,
		policy:   policy,
		selector: selector,
	}
}

// SafeBudget is ceil((computationCost + storageCost) * 1.5). The storage rebate is
// refunded after execution and does not reduce the budget.
func SafeBudget(gasUsed sui.GasCostSummary) (uint64, error) {
	cost := uint64(gasUsed.ComputationCost)
	storage := uint64(gasUsed.StorageCost)
	if cost > math.MaxUint64-storage {
		return 0, errors.New("gas cost overflow")
	}
	cost += storage
	if cost > (math.MaxUint64-1)/3 {
		return 0, errors.New("gas cost overflow")
	}
	return (cost*3 + 1) / 2, nil
}

func (g *gasStation) SponsorTransaction(ctx context.Context, txBytes []byte, sender string) (*SponsoredTransaction, error) {
	result, err := g.sponsor(ctx, txBytes, sender)
	metrics.SponsorshipRequests.WithLabelValues(resultLabel(err)).Inc()
	if err == nil {
		metrics.SponsoredGas.Add(float64(result.GasBudget))
	}
	return result, err
}

func (g *gasStation) sponsor(ctx context.Context, txBytes []byte, sender string) (*SponsoredTransaction, error) {
	sender, err := domain.NormalizeAddress(sender)
	if err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}

	// 1. Budget pre-check
	usage, err := g.store.GetTotalSponsoredGas(ctx, sender)
	if err != nil {
		return nil, err
	}
	if usage >= LifetimeSponsorshipCap {
		return nil, fmt.Errorf("%w: used %d of %d", domain.ErrBudgetExhausted, usage, LifetimeSponsorshipCap)
	}

	// 2. Deserialize
	kind, expiration, err := sui.ParseTransactionBytes(txBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTransactionBytes, err)
	}

	// 3. Allow-list
	actionType, err := g.policy.Check(kind)
	if err != nil {
		logger.WarnCtx(ctx, "rejected transaction outside the allow-list",
			zap.String("sender", sender),
			zap.Error(err))
		return nil, err
	}

	// 4. Sponsor identity
	if g.signer == nil {
		logger.ErrorCtx(ctx, domain.ErrGasStationOffline, zap.String("reason", "no sponsor key configured"))
		return nil, domain.ErrGasStationOffline
	}
	sponsor, err := sui.ParseAddress(g.signer.Address())
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrGasStationOffline, err)
	}
	senderAddr, err := sui.ParseAddress(sender)
	if err != nil {
		return nil, fmt.Errorf("invalid sender: %w", err)
	}

	// 5. Preliminary dry run
	coins, err := g.client.GetCoins(ctx, g.signer.Address(), domain.SUI_COIN_TYPE)
	if err != nil {
		return nil, fmt.Errorf("failed to get sponsor coins: %w", err)
	}
	metrics.SponsorCoinCount.Set(float64(len(coins)))

	placeholder, ok := g.selector.Select(coins, DryRunGasBudget-1)
	if !ok {
		placeholder, ok = g.selector.Select(coins, 0)
	}
	if !ok {
		logger.ErrorCtx(ctx, domain.ErrGasStationEmpty, zap.String("sponsor", g.signer.Address()))
		return nil, domain.ErrGasStationEmpty
	}

	price, err := g.client.GetReferenceGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to get reference gas price: %w", err)
	}

	data := &sui.TransactionData{
		Kind:       *kind,
		Sender:     senderAddr,
		Expiration: expiration,
		GasData: sui.GasData{
			Owner:  sponsor,
			Price:  price,
			Budget: DryRunGasBudget,
		},
	}
	if err := setPayment(data, placeholder); err != nil {
		return nil, err
	}

	dryRunBytes, err := data.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to build dry run transaction: %w", err)
	}
	simulation, err := g.client.DryRunTransactionBlock(ctx, dryRunBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to dry run transaction: %w", err)
	}
	if !simulation.Succeeded() {
		logger.WarnCtx(ctx, "transaction simulation failed",
			zap.String("sender", sender),
			zap.String("status", simulation.Status),
			zap.String("error", simulation.Error))
		return nil, fmt.Errorf("%w: %s", domain.ErrTransactionSimulationFailed, simulation.Error)
	}

	// 6. Real cost
	budget, err := SafeBudget(simulation.GasUsed)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrTransactionSimulationFailed, err)
	}

	// 7. Budget re-check
	if usage+budget >= LifetimeSponsorshipCap {
		return nil, fmt.Errorf("%w: used %d, requested %d, cap %d",
			domain.ErrBudgetInsufficient, usage, budget, LifetimeSponsorshipCap)
	}

	// 8. Coin re-selection
	payment, ok := g.selector.Select(coins, budget)
	if !ok {
		logger.ErrorCtx(ctx, domain.ErrGasStationFragmented,
			zap.String("sponsor", g.signer.Address()),
			zap.Uint64("budget", budget),
			zap.Int("coins", len(coins)))
		return nil, fmt.Errorf("%w: no coin above %d", domain.ErrGasStationFragmented, budget)
	}

	// 9. Finalize and sign
	data.GasData.Budget = budget
	if err := setPayment(data, payment); err != nil {
		return nil, err
	}
	finalBytes, err := data.Marshal()
	if err != nil {
		return nil, fmt.Errorf("failed to build transaction: %w", err)
	}
	signature, err := g.signer.SignTransaction(finalBytes)
	if err != nil {
		return nil, fmt.Errorf("failed to sign transaction: %w", err)
	}

	// 10. Audit write, committed before the bytes are released
	if _, err := g.store.CreateSponsorshipRecord(ctx, store.CreateSponsorshipRecordInput{
		UserAddress: sender,
		GasBudget:   budget,
		ActionType:  actionType,
		LifetimeCap: LifetimeSponsorshipCap,
	}); err != nil {
		return nil, err
	}

	digest := sui.TransactionDigest(finalBytes)
	logger.InfoCtx(ctx, "sponsored transaction",
		zap.String("sender", sender),
		zap.String("action", actionType),
		zap.String("digest", digest),
		zap.Uint64("budget", budget),
		zap.String("coin", payment.CoinObjectID))

	// 11. Return
	return &SponsoredTransaction{
		TxBytes:          finalBytes,
		SponsorSignature: signature,
		Digest:           digest,
		GasBudget:        budget,
		ActionType:       actionType,
	}, nil
}

func setPayment(data *sui.TransactionData, coin sui.Coin) error {
	ref, err := coin.ObjectRef()
	if err != nil {
		return fmt.Errorf("invalid sponsor coin %s: %w", coin.CoinObjectID, err)
	}
	data.GasData.Payment = []sui.ObjectRef{ref}
	return nil
}

func (g *gasStation) ExecuteSponsored(ctx context.Context, txBytes []byte, userSignature string, sponsorSignature string) (*sui.ExecuteResult, error) {
	if g.signer == nil {
		return nil, domain.ErrGasStationOffline
	}

	data, err := sui.UnmarshalTransactionData(txBytes)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", domain.ErrInvalidTransactionBytes, err)
	}
	if data.GasData.Owner.String() != g.signer.Address() {
		return nil, fmt.Errorf("%w: gas owner %s is not the sponsor", domain.ErrTransactionNotAllowed, data.GasData.Owner)
	}
	if _, err := g.policy.Check(&data.Kind); err != nil {
		return nil, err
	}

	signer, err := sui.VerifyTransactionSignature(txBytes, sponsorSignature)
	if err != nil || signer != g.signer.Address() {
		return nil, fmt.Errorf("%w: sponsor signature does not match", domain.ErrTransactionNotAllowed)
	}
	sender, err := sui.VerifyTransactionSignature(txBytes, userSignature)
	if err != nil || sender != data.Sender.String() {
		return nil, fmt.Errorf("%w: user signature does not match the sender", domain.ErrTransactionNotAllowed)
	}

	result, err := g.client.ExecuteTransactionBlock(ctx, txBytes, []string{userSignature, sponsorSignature})
	if err != nil {
		return nil, fmt.Errorf("failed to execute transaction: %w", err)
	}

	logger.InfoCtx(ctx, "executed sponsored transaction",
		zap.String("digest", result.Digest),
		zap.String("status", result.Status))

	return result, nil
}

func (g *gasStation) GetUsage(ctx context.Context, address string) (*Usage, error) {
	address, err := domain.NormalizeAddress(address)
	if err != nil {
		return nil, err
	}

	used, err := g.store.GetTotalSponsoredGas(ctx, address)
	if err != nil {
		return nil, err
	}

	remaining := uint64(0)
	if used < LifetimeSponsorshipCap {
		remaining = LifetimeSponsorshipCap - used
	}

	return &Usage{
		Address:   address,
		Used:      used,
		Remaining: remaining,
		Cap:       LifetimeSponsorshipCap,
	}, nil
}

func (g *gasStation) Status(ctx context.Context) (*Status, error) {
	if g.signer == nil {
		return nil, domain.ErrGasStationOffline
	}

	coins, err := g.client.GetCoins(ctx, g.signer.Address(), domain.SUI_COIN_TYPE)
	if err != nil {
		return nil, fmt.Errorf("failed to get sponsor coins: %w", err)
	}

	status := &Status{
		SponsorAddress: g.signer.Address(),
		CoinCount:      len(coins),
	}
	for _, c := range coins {
		balance := uint64(c.Balance)
		status.TotalBalance += balance
		if balance > status.LargestCoinBalance {
			status.LargestCoinBalance = balance
		}
	}
	metrics.SponsorCoinCount.Set(float64(len(coins)))

	return status, nil
}

// resultLabel maps a sponsorship outcome to a metrics label
func resultLabel(err error) string {
	switch {
	case err == nil:
		return "sponsored"
	case errors.Is(err, domain.ErrBudgetExhausted):
		return "budget_exhausted"
	case errors.Is(err, domain.ErrBudgetInsufficient):
		return "budget_insufficient"
	case errors.Is(err, domain.ErrInvalidTransactionBytes):
		return "invalid_transaction_bytes"
	case errors.Is(err, domain.ErrTransactionNotAllowed):
		return "transaction_not_allowed"
	case errors.Is(err, domain.ErrGasStationOffline):
		return "gas_station_offline"
	case errors.Is(err, domain.ErrGasStationEmpty):
		return "gas_station_empty"
	case errors.Is(err, domain.ErrGasStationFragmented):
		return "gas_station_fragmented"
	case errors.Is(err, domain.ErrTransactionSimulationFailed):
		return "transaction_simulation_failed"
	default:
		return "error"
	}
}
