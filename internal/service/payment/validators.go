package payment

import (
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// amountTolerance - допустимое расхождение клиентской суммы с суммой заказа,
// сглаживает ошибки округления на фронте.
var amountTolerance = decimal.RequireFromString("0.01")

var supportedCurrencies = []string{"btc", "eth", "usdt", "ltc", "xmr"}

// isValidUUID принимает только канонический вид 8-4-4-4-12:
// uuid.Parse сам по себе пропускает urn: и фигурные скобки.
func isValidUUID(id string) bool {
	if len(id) != 36 {
		return false
	}
	if id[8] != '-' || id[13] != '-' || id[18] != '-' || id[23] != '-' {
		return false
	}
	_, err := uuid.Parse(id)
	return err == nil
}

func isSupportedCurrency(currency string) bool {
	for _, supported := range supportedCurrencies {
		if currency == supported {
			return true
		}
	}
	return false
}

func normalizeCurrency(currency string) string {
	return strings.ToLower(strings.TrimSpace(currency))
}

func amountMatchesTotal(amount, total decimal.Decimal) bool {
	return amount.Sub(total).Abs().LessThanOrEqual(amountTolerance)
}
