package dto

// WalletBalanceDTO is the wallet's converted balance in one currency.
type WalletBalanceDTO struct {
	Currency string  `json:"currency"`
	Symbol   string  `json:"symbol"`
	Rate     float64 `json:"rate"`
	Amount   float64 `json:"amount"`
}

// WalletDTO is the full wallet page payload.
type WalletDTO struct {
	BalanceUSD float64            `json:"balanceUsd"`
	Balances   []WalletBalanceDTO `json:"balances"`
	Methods    []string           `json:"methods"`
}

// WithdrawRequest simulates a payout request.
type WithdrawRequest struct {
	AmountUSD float64 `json:"amountUsd" binding:"required"`
	Method    string  `json:"method"`
}

// WithdrawResponse acknowledges the simulated payout.
type WithdrawResponse struct {
	Success       bool    `json:"success"`
	Message       string  `json:"message"`
	NewBalanceUSD float64 `json:"newBalanceUsd"`
}
