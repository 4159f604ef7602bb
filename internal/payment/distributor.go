package payment

import (
	"fmt"

	"marketplace-engine/internal/marketerrors"
)

// FundsLedger is the slice of the native-currency ledger the distributor uses
type FundsLedger interface {
	Transfer(from, to string, amount uint64) error
}

// Distributor executes the three-way split of sale proceeds: platform fee,
// royalty, then seller, always in that order, all-or-nothing.
type Distributor struct {
	funds      FundsLedger
	feeAccount string
	feeRateBps uint64
}

// NewDistributor creates a Distributor paying fees to feeAccount at
// feeRateBps basis points of the sale price
func NewDistributor(funds FundsLedger, feeAccount string, feeRateBps uint64) *Distributor {
	return &Distributor{funds: funds, feeAccount: feeAccount, feeRateBps: feeRateBps}
}

// FeeAccount returns the platform fee destination account
func (d *Distributor) FeeAccount() string {
	return d.feeAccount
}

// Fee returns the platform fee on a sale price
func (d *Distributor) Fee(price uint64) uint64 {
	return BpsOf(price, d.feeRateBps)
}

// BpsOf returns amount*rateBps/10000, truncating, without forming the
// intermediate product: amounts near the uint64 ceiling must not wrap.
// Exact for any rateBps up to 10000.
func BpsOf(amount, rateBps uint64) uint64 {
	return amount/10000*rateBps + amount%10000*rateBps/10000
}

// Required returns the total a buyer must supply for a fixed-price sale:
// price plus royalty plus platform fee
func (d *Distributor) Required(price, royalty uint64) uint64 {
	return price + royalty + d.Fee(price)
}

// Distribute pays fee, then royalty, then the remainder of total to the
// seller, all out of the escrow account. Callers must have made the
// listing/auction state terminal before calling. If any leg fails the
// earlier legs are reversed and ErrTransferFailed is returned, so a failed
// distribution leaves the escrow untouched.
func (d *Distributor) Distribute(escrow, seller string, total, fee uint64, royaltyRecipient string, royaltyAmount uint64) error {
	if fee+royaltyAmount > total {
		return fmt.Errorf("distribute from %s: fee %d + royalty %d exceed total %d: %w",
			escrow, fee, royaltyAmount, total, marketerrors.ErrTransferFailed)
	}
	sellerAmount := total - fee - royaltyAmount

	if err := d.funds.Transfer(escrow, d.feeAccount, fee); err != nil {
		return fmt.Errorf("distribute fee from %s: %w", escrow, marketerrors.ErrTransferFailed)
	}
	if royaltyAmount > 0 && royaltyRecipient != "" {
		if err := d.funds.Transfer(escrow, royaltyRecipient, royaltyAmount); err != nil {
			d.mustReverse(d.feeAccount, escrow, fee)
			return fmt.Errorf("distribute royalty from %s: %w", escrow, marketerrors.ErrTransferFailed)
		}
	}
	if err := d.funds.Transfer(escrow, seller, sellerAmount); err != nil {
		d.mustReverse(royaltyRecipient, escrow, royaltyAmount)
		d.mustReverse(d.feeAccount, escrow, fee)
		return fmt.Errorf("distribute seller amount from %s: %w", escrow, marketerrors.ErrTransferFailed)
	}
	return nil
}

// mustReverse undoes a leg that already committed. The credit side always
// holds the funds just moved there, so this cannot fail short of ledger
// corruption.
func (d *Distributor) mustReverse(from, to string, amount uint64) {
	if amount == 0 || from == "" {
		return
	}
	if err := d.funds.Transfer(from, to, amount); err != nil {
		panic(fmt.Sprintf("payment: rollback of %d from %s failed: %v", amount, from, err))
	}
}
