package payment

import (
	"errors"
	"math"
	"testing"

	"marketplace-engine/internal/funds"
	"marketplace-engine/internal/marketerrors"

	"github.com/stretchr/testify/require"
)

// failingLedger wraps a real ledger and fails transfers to one account
type failingLedger struct {
	*funds.Ledger
	failTo string
}

func (f *failingLedger) Transfer(from, to string, amount uint64) error {
	if to == f.failTo {
		return errors.New("ledger rejected transfer")
	}
	return f.Ledger.Transfer(from, to, amount)
}

// Test Fee and Required
func TestDistributor_Amounts(t *testing.T) {
	t.Parallel()

	d := NewDistributor(funds.NewLedger(), "platform-fees", 250)

	require.Equal(t, "platform-fees", d.FeeAccount())
	require.Equal(t, uint64(25), d.Fee(1000))
	require.Equal(t, uint64(0), d.Fee(39)) // truncates
	require.Equal(t, uint64(1075), d.Required(1000, 50))
	require.Equal(t, uint64(1025), d.Required(1000, 0))
}

// Fee stays exact for prices where the naive price*bps product would wrap
func TestDistributor_FeeLargePrices(t *testing.T) {
	t.Parallel()

	d := NewDistributor(funds.NewLedger(), "platform-fees", 250)

	require.Equal(t, uint64(250_000_000_000_000_000), d.Fee(10_000_000_000_000_000_000))
	require.Equal(t, uint64(461_168_601_842_738_790), d.Fee(math.MaxUint64))

	// a 100% rate is the identity
	full := NewDistributor(funds.NewLedger(), "platform-fees", 10000)
	require.Equal(t, uint64(math.MaxUint64), full.Fee(math.MaxUint64))
}

func TestBpsOf(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		amount  uint64
		rateBps uint64
		want    uint64
	}{
		{name: "small", amount: 1000, rateBps: 500, want: 50},
		{name: "truncates", amount: 39, rateBps: 250, want: 0},
		{name: "zero_rate", amount: 1000, rateBps: 0, want: 0},
		{name: "huge_amount", amount: 12_345_678_901_234_567_890, rateBps: 250, want: 308_641_972_530_864_197},
		{name: "max_amount_max_rate", amount: math.MaxUint64, rateBps: 10000, want: math.MaxUint64},
	}
	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, BpsOf(tc.amount, tc.rateBps))
		})
	}
}

// Test Distribute
func TestDistributor_Distribute(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name             string
		total            uint64
		fee              uint64
		royaltyRecipient string
		royaltyAmount    uint64
		wantSeller       uint64
		wantFees         uint64
		wantRoyalty      uint64
	}{
		{
			name:  "three_way_split",
			total: 1075, fee: 25, royaltyRecipient: "artist", royaltyAmount: 50,
			wantSeller: 1000, wantFees: 25, wantRoyalty: 50,
		},
		{
			name:  "no_royalty",
			total: 1025, fee: 25,
			wantSeller: 1000, wantFees: 25,
		},
		{
			name:  "seller_absorbs_costs",
			total: 1000, fee: 25, royaltyRecipient: "artist", royaltyAmount: 50,
			wantSeller: 925, wantFees: 25, wantRoyalty: 50,
		},
		{
			name:  "zero_fee_rate",
			total: 100, fee: 0,
			wantSeller: 100,
		},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger := funds.NewLedger()
			ledger.Deposit("escrow", tc.total)
			d := NewDistributor(ledger, "platform-fees", 250)

			err := d.Distribute("escrow", "seller", tc.total, tc.fee, tc.royaltyRecipient, tc.royaltyAmount)
			require.NoError(t, err)

			require.Equal(t, uint64(0), ledger.BalanceOf("escrow"))
			require.Equal(t, tc.wantSeller, ledger.BalanceOf("seller"))
			require.Equal(t, tc.wantFees, ledger.BalanceOf("platform-fees"))
			require.Equal(t, tc.wantRoyalty, ledger.BalanceOf("artist"))
		})
	}
}

// A split whose fee and royalty exceed the total is refused outright
func TestDistributor_InconsistentSplit(t *testing.T) {
	t.Parallel()

	ledger := funds.NewLedger()
	ledger.Deposit("escrow", 100)
	d := NewDistributor(ledger, "platform-fees", 250)

	err := d.Distribute("escrow", "seller", 100, 60, "artist", 50)
	require.True(t, errors.Is(err, marketerrors.ErrTransferFailed))
	require.Equal(t, uint64(100), ledger.BalanceOf("escrow"))
}

// A failed later leg must put the earlier legs back into escrow
func TestDistributor_RollbackOnFailedLeg(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		failTo string
	}{
		{name: "fee_leg_fails", failTo: "platform-fees"},
		{name: "royalty_leg_fails", failTo: "artist"},
		{name: "seller_leg_fails", failTo: "seller"},
	}

	for _, tc := range tests {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()

			ledger := funds.NewLedger()
			ledger.Deposit("escrow", 1075)
			d := NewDistributor(&failingLedger{Ledger: ledger, failTo: tc.failTo}, "platform-fees", 250)

			err := d.Distribute("escrow", "seller", 1075, 25, "artist", 50)
			require.True(t, errors.Is(err, marketerrors.ErrTransferFailed))

			// escrow made whole, nobody got paid
			require.Equal(t, uint64(1075), ledger.BalanceOf("escrow"))
			require.Equal(t, uint64(0), ledger.BalanceOf("platform-fees"))
			require.Equal(t, uint64(0), ledger.BalanceOf("artist"))
			require.Equal(t, uint64(0), ledger.BalanceOf("seller"))
		})
	}
}

// Underfunded escrow fails cleanly on the first leg
func TestDistributor_UnderfundedEscrow(t *testing.T) {
	t.Parallel()

	ledger := funds.NewLedger()
	ledger.Deposit("escrow", 10)
	d := NewDistributor(ledger, "platform-fees", 250)

	err := d.Distribute("escrow", "seller", 1075, 25, "artist", 50)
	require.True(t, errors.Is(err, marketerrors.ErrTransferFailed))
	require.Equal(t, uint64(10), ledger.BalanceOf("escrow"))
}
