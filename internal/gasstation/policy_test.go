package gasstation_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/feral-file/ff-journal/internal/domain"
	"github.com/feral-file/ff-journal/internal/gasstation"
	"github.com/feral-file/ff-journal/internal/sui"
)

func TestNewPolicy(t *testing.T) {
	policy, err := gasstation.NewPolicy("0xAA")
	require.NoError(t, err)
	assert.ElementsMatch(t, []string{
		testPackageID + "::journal::engrave",
		testPackageID + "::journal::jack_in",
		testPackageID + "::journal::set_backup_controller",
	}, policy.Targets())

	_, err = gasstation.NewPolicy("")
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestPolicyCheck(t *testing.T) {
	policy, err := gasstation.NewPolicy(testPackageID)
	require.NoError(t, err)

	programmable := func(commands ...sui.Command) *sui.TransactionKind {
		return &sui.TransactionKind{Programmable: &sui.ProgrammableTransaction{Commands: commands}}
	}

	tests := []struct {
		name       string
		kind       *sui.TransactionKind
		actionType string
		allowed    bool
	}{
		{
			name:       "single engrave",
			kind:       programmable(moveCall(t, testPackageID, "journal", "engrave")),
			actionType: "engrave",
			allowed:    true,
		},
		{
			name: "several allowed calls",
			kind: programmable(
				moveCall(t, testPackageID, "journal", "set_backup_controller"),
				moveCall(t, testPackageID, "journal", "engrave"),
			),
			actionType: "set_backup_controller",
			allowed:    true,
		},
		{
			name:       "short package form",
			kind:       programmable(moveCall(t, "0xaa", "journal", "jack_in")),
			actionType: "jack_in",
			allowed:    true,
		},
		{
			name: "split coins",
			kind: programmable(&sui.SplitCoins{Coin: sui.Argument{Kind: sui.ArgumentGasCoin}}),
		},
		{
			name: "allowed call with a trailing merge",
			kind: programmable(
				moveCall(t, testPackageID, "journal", "engrave"),
				&sui.MergeCoins{Destination: sui.Argument{Kind: sui.ArgumentGasCoin}},
			),
		},
		{
			name: "other module",
			kind: programmable(moveCall(t, testPackageID, "vault", "engrave")),
		},
		{
			name: "not programmable",
			kind: &sui.TransactionKind{},
		},
		{
			name: "nil kind",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			actionType, err := policy.Check(tt.kind)
			if !tt.allowed {
				assert.ErrorIs(t, err, domain.ErrTransactionNotAllowed)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.actionType, actionType)
		})
	}
}

func TestPolicyCheck_NilPolicy(t *testing.T) {
	var policy *gasstation.Policy

	_, err := policy.Check(&sui.TransactionKind{Programmable: &sui.ProgrammableTransaction{
		Commands: []sui.Command{moveCall(t, testPackageID, "journal", "engrave")},
	}})
	assert.ErrorIs(t, err, domain.ErrTransactionNotAllowed)
}

func TestActionType(t *testing.T) {
	assert.Equal(t, domain.UNKNOWN_ACTION_TYPE, gasstation.ActionType(nil))
	assert.Equal(t, domain.UNKNOWN_ACTION_TYPE, gasstation.ActionType(&sui.TransactionKind{
		Programmable: &sui.ProgrammableTransaction{
			Commands: []sui.Command{&sui.SplitCoins{}},
		},
	}))
	assert.Equal(t, "jack_in", gasstation.ActionType(&sui.TransactionKind{
		Programmable: &sui.ProgrammableTransaction{
			Commands: []sui.Command{&sui.SplitCoins{}, moveCall(t, testPackageID, "journal", "jack_in")},
		},
	}))
}
