package tamil

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func paymentParties() ([]PartyInfo, []PartyInfo) {
	buyers := []PartyInfo{{Name: "முருகன்"}}
	sellers := []PartyInfo{{Name: "கண்ணன்"}}
	return buyers, sellers
}

func TestPaymentClauseCash(t *testing.T) {
	buyers, sellers := paymentParties()
	clause := paymentClause(TransactionInfo{
		PaymentMethod: PaymentCash,
		Amount:        500000,
		// Bank fields populated to prove the cash clause ignores them.
		BuyerBankName:  "SBI",
		SellerBankName: "IOB",
		ChequeNo:       "774411",
	}, buyers, sellers, false)

	assert.Contains(t, clause, "5,00,000")
	assert.Contains(t, clause, "ஐந்து லட்சம் ரூபாய்")
	assert.Contains(t, clause, "ரொக்கமாகப் பெற்றுக்கொண்டு")
	assert.NotContains(t, clause, "SBI")
	assert.NotContains(t, clause, "IOB")
	assert.NotContains(t, clause, "774411")
	assert.Contains(t, clause, "செய்து கொடுத்திருக்கின்றேன்.")
}

func TestPaymentClauseCashLegacySpelling(t *testing.T) {
	buyers, sellers := paymentParties()
	modern := paymentClause(TransactionInfo{PaymentMethod: "ரொக்கம்", Amount: 1000}, buyers, sellers, false)
	legacy := paymentClause(TransactionInfo{PaymentMethod: "ரொக்கம", Amount: 1000}, buyers, sellers, false)
	assert.Equal(t, modern, legacy)
}

func TestPaymentClauseCheque(t *testing.T) {
	buyers, sellers := paymentParties()
	clause := paymentClause(TransactionInfo{
		PaymentMethod:    PaymentBankCheque,
		Amount:           250000,
		ChequeNo:         "002345",
		BuyerBankName:    "Indian Bank",
		BuyerBankBranch:  "Madurai Main",
		BuyerAccountType: "SB",
		BuyerAccountNo:   "30459912345",
		SellerBankName:   "Canara Bank",
		SellerAccountNo:  "99887766",
		TransactionDate:  "12", TransactionMonth: "05", TransactionYear: "2024",
	}, buyers, sellers, false)

	assert.Contains(t, clause, "வங்கிக் காசோலை எண்:-002345")
	assert.Contains(t, clause, "Indian Bank")
	assert.Contains(t, clause, "Madurai Main")
	assert.Contains(t, clause, "30459912345")
	assert.Contains(t, clause, "12/05/2024")
	assert.NotContains(t, clause, "Canara Bank")
	assert.NotContains(t, clause, "99887766")
}

func TestPaymentClauseDraftUsesDDNumber(t *testing.T) {
	buyers, sellers := paymentParties()
	clause := paymentClause(TransactionInfo{
		PaymentMethod: PaymentBankDraft,
		Amount:        100000,
		DDNo:          "887700",
		ChequeNo:      "111111",
	}, buyers, sellers, false)

	assert.Contains(t, clause, "வங்கி வரைவோலை எண்:-887700")
	assert.NotContains(t, clause, "111111")
}

func TestPaymentClauseElectronicMethods(t *testing.T) {
	buyers, sellers := paymentParties()
	tx := TransactionInfo{
		Amount:           300000,
		TransactionNo:    "TXN123",
		BuyerBankName:    "HDFC",
		BuyerAccountNo:   "1111",
		SellerBankName:   "Axis",
		SellerAccountNo:  "2222",
		TransactionDate:  "01", TransactionMonth: "02", TransactionYear: "2025",
	}

	labels := map[string]string{
		PaymentUPI:  "(G-PAY-UPI):-TXN123",
		PaymentNEFT: "(NEFT):-TXN123",
		PaymentRTGS: "(RTGS):-TXN123",
		PaymentIMPS: "(IMPS):-TXN123",
	}
	for method, label := range labels {
		tx.PaymentMethod = method
		clause := paymentClause(tx, buyers, sellers, false)
		assert.Contains(t, clause, label, method)
		assert.Contains(t, clause, "HDFC", method)
		assert.Contains(t, clause, "Axis", method)
		assert.Contains(t, clause, "வங்கி மின்னணு பரிவர்த்தனை", method)
	}
}

func TestPaymentClauseUnknownMethodFallsBack(t *testing.T) {
	buyers, sellers := paymentParties()
	clause := paymentClause(TransactionInfo{
		PaymentMethod: "barter",
		Amount:        42000,
		BuyerBankName: "HDFC",
	}, buyers, sellers, false)

	assert.Contains(t, clause, "மேற்படி கிரையத் தொகை")
	assert.Contains(t, clause, "42,000")
	assert.NotContains(t, clause, "HDFC")
}

func TestPaymentClauseSellerPluralInflection(t *testing.T) {
	buyers, sellers := paymentParties()
	clause := paymentClause(TransactionInfo{PaymentMethod: PaymentCash, Amount: 1000}, buyers, sellers, true)
	assert.Contains(t, clause, "நாங்கள்")
	assert.Contains(t, clause, "செய்து கொடுத்திருக்கின்றோம்.")
}
