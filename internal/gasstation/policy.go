package gasstation

import (
	"fmt"
	"strings"

	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/sui"
)

// AllowedFunctions are the journal entry points the gas station pays for
var AllowedFunctions = []string{"engrave", "jack_in", "set_backup_controller"}

// Policy is the allow-list of move call targets
type Policy struct {
	allowed map[string]struct{}
}

// NewPolicy builds the allow-list {packageID}::journal::{AllowedFunctions}
func NewPolicy(packageID string) (*Policy, error) {
	pkg, err := domain.NormalizeAddress(packageID)
	if err != nil {
		return nil, fmt.Errorf("invalid package id: %w", err)
	}

	allowed := make(map[string]struct{}, len(AllowedFunctions))
	for _, fn := range AllowedFunctions {
		allowed[fmt.Sprintf("%s::%s::%s", pkg, domain.JOURNAL_MODULE, fn)] = struct{}{}
	}

	return &Policy{allowed: allowed}, nil
}

// Targets returns the allowed targets
func (p *Policy) Targets() []string {
	targets := make([]string, 0, len(p.allowed))
	for t := range p.allowed {
		targets = append(targets, t)
	}
	return targets
}

// Check rejects the whole transaction unless every command is an allowed move call.
// It returns the action type of the transaction. A nil policy allows nothing.
func (p *Policy) Check(kind *sui.TransactionKind) (string, error) {
	if p == nil {
		return "", fmt.Errorf("%w: no journal package configured", domain.ErrTransactionNotAllowed)
	}
	if kind == nil || kind.Programmable == nil {
		return "", fmt.Errorf("%w: not a programmable transaction", domain.ErrTransactionNotAllowed)
	}

	commands := kind.Programmable.Commands
	if len(commands) == 0 {
		return "", fmt.Errorf("%w: transaction has no commands", domain.ErrTransactionNotAllowed)
	}

	for i, command := range commands {
		call, ok := command.(*sui.MoveCall)
		if !ok {
			return "", fmt.Errorf("%w: command %d is %s", domain.ErrTransactionNotAllowed, i, command.Name())
		}
		if _, ok := p.allowed[call.Target()]; !ok {
			return "", fmt.Errorf("%w: %s", domain.ErrTransactionNotAllowed, call.Target())
		}
	}

	return ActionType(kind), nil
}

// ActionType is the function name of the first move call, or "unknown"
func ActionType(kind *sui.TransactionKind) string {
	if kind == nil || kind.Programmable == nil {
		return domain.UNKNOWN_ACTION_TYPE
	}
	for _, command := range kind.Programmable.Commands {
		if call, ok := command.(*sui.MoveCall); ok {
			target := call.Target()
			if i := strings.LastIndex(target, "::"); i >= 0 && i+2 < len(target) {
				return target[i+2:]
			}
			break
		}
	}
	return domain.UNKNOWN_ACTION_TYPE
}
