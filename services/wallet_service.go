package services

import (
	"fmt"
	"math"
	"sync"

	"eliteblog/dto"
)

type currencyRate struct {
	Code   string
	Symbol string
	Rate   float64
}

// exchangeRates is fixed demo data, USD-anchored.
var exchangeRates = []currencyRate{
	{Code: "USD", Symbol: "$", Rate: 1},
	{Code: "EUR", Symbol: "€", Rate: 0.92},
	{Code: "SAR", Symbol: "ر.س", Rate: 3.75},
	{Code: "EGP", Symbol: "ج.م", Rate: 48.50},
}

var withdrawMethods = []string{"Bank Transfer", "Western Union", "PayPal", "Check"}

// WalletService holds the simulated publisher balance. Withdrawals mutate
// it in memory; nothing is persisted.
type WalletService struct {
	mu      sync.Mutex
	balance float64
}

func NewWalletService(openingBalanceUSD float64) *WalletService {
	return &WalletService{balance: openingBalanceUSD}
}

// Balance returns the wallet payload with the USD balance converted into
// every supported currency.
func (s *WalletService) Balance() dto.WalletDTO {
	s.mu.Lock()
	balance := s.balance
	s.mu.Unlock()

	out := dto.WalletDTO{
		BalanceUSD: balance,
		Balances:   make([]dto.WalletBalanceDTO, 0, len(exchangeRates)),
		Methods:    withdrawMethods,
	}
	for _, r := range exchangeRates {
		out.Balances = append(out.Balances, dto.WalletBalanceDTO{
			Currency: r.Code,
			Symbol:   r.Symbol,
			Rate:     r.Rate,
			Amount:   math.Round(balance*r.Rate*100) / 100,
		})
	}
	return out
}

// Withdraw simulates a payout request. The amount is deducted when it
// fits the balance; nothing leaves the process.
func (s *WalletService) Withdraw(req dto.WithdrawRequest) (dto.WithdrawResponse, error) {
	if req.AmountUSD <= 0 {
		return dto.WithdrawResponse{}, fmt.Errorf("withdrawal amount must be positive")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if req.AmountUSD > s.balance {
		return dto.WithdrawResponse{
			Success:       false,
			Message:       "الرصيد غير كافٍ لإتمام عملية السحب",
			NewBalanceUSD: s.balance,
		}, nil
	}

	s.balance -= req.AmountUSD
	method := req.Method
	if method == "" {
		method = "حوالة بنكية دولية (SWIFT)"
	}
	return dto.WithdrawResponse{
		Success:       true,
		Message:       fmt.Sprintf("تم إرسال طلب السحب بنجاح عبر %s", method),
		NewBalanceUSD: math.Round(s.balance*100) / 100,
	}, nil
}
