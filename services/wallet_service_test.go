package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"eliteblog/dto"
)

func TestWalletBalanceConversion(t *testing.T) {
	svc := NewWalletService(2840.50)
	w := svc.Balance()

	assert.Equal(t, 2840.50, w.BalanceUSD)
	assert.Len(t, w.Balances, 4)

	byCurrency := map[string]dto.WalletBalanceDTO{}
	for _, b := range w.Balances {
		byCurrency[b.Currency] = b
	}
	assert.Equal(t, 2840.50, byCurrency["USD"].Amount)
	assert.Equal(t, 2613.26, byCurrency["EUR"].Amount)
	assert.Equal(t, 10651.88, byCurrency["SAR"].Amount)
	assert.Equal(t, 137764.25, byCurrency["EGP"].Amount)

	assert.Contains(t, w.Methods, "Western Union")
}

func TestWithdrawDeductsBalance(t *testing.T) {
	svc := NewWalletService(1000)

	resp, err := svc.Withdraw(dto.WithdrawRequest{AmountUSD: 400})
	assert.NoError(t, err)
	assert.True(t, resp.Success)
	assert.Equal(t, 600.0, resp.NewBalanceUSD)
	assert.Equal(t, 600.0, svc.Balance().BalanceUSD)
}

func TestWithdrawInsufficientBalance(t *testing.T) {
	svc := NewWalletService(100)

	resp, err := svc.Withdraw(dto.WithdrawRequest{AmountUSD: 500})
	assert.NoError(t, err)
	assert.False(t, resp.Success)
	assert.Equal(t, 100.0, resp.NewBalanceUSD)
}

func TestWithdrawRejectsNonPositiveAmount(t *testing.T) {
	svc := NewWalletService(100)

	_, err := svc.Withdraw(dto.WithdrawRequest{AmountUSD: 0})
	assert.Error(t, err)
	_, err = svc.Withdraw(dto.WithdrawRequest{AmountUSD: -5})
	assert.Error(t, err)
}
