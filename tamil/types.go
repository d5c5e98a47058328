// Package tamil composes Tamil-language property deed documents (sale deeds
// and sale-agreement deeds) from structured form data. Every function here is
// pure: the same input always yields the same text, nothing is mutated, and
// incomplete input produces incomplete text rather than an error, so the
// package can back a live preview that re-renders on every keystroke.
package tamil

// PartyInfo describes one buyer or seller as entered on the deed form.
// Bank fields are only used when the payment clause needs them.
type PartyInfo struct {
	Name             string `json:"name"`
	Aadhaar          string `json:"aadhaar"`
	Mobile           string `json:"mobile"`
	PanCard          string `json:"panCard,omitempty"`
	Age              string `json:"age"`
	DoorNo           string `json:"doorNo"`
	AddressLine1     string `json:"addressLine1"`
	AddressLine2     string `json:"addressLine2"`
	AddressLine3     string `json:"addressLine3"`
	Taluk            string `json:"taluk"`
	District         string `json:"district"`
	Pincode          string `json:"pincode"`
	RelationshipType string `json:"relationshipType"`
	RelationsName    string `json:"relationsName"`
	BankName         string `json:"bankName,omitempty"`
	BankBranch       string `json:"bankBranch,omitempty"`
	AccountType      string `json:"accountType,omitempty"`
	AccountNo        string `json:"accountNo,omitempty"`
}

// WitnessInfo is a PartyInfo without the tax fields.
type WitnessInfo struct {
	Name             string `json:"name"`
	Aadhaar          string `json:"aadhaar"`
	Age              string `json:"age"`
	DoorNo           string `json:"doorNo"`
	AddressLine1     string `json:"addressLine1"`
	AddressLine2     string `json:"addressLine2"`
	AddressLine3     string `json:"addressLine3"`
	Taluk            string `json:"taluk"`
	District         string `json:"district"`
	Pincode          string `json:"pincode"`
	RelationshipType string `json:"relationshipType"`
	RelationsName    string `json:"relationsName"`
}

// PreviousDocInfo references the registered document the seller's title
// derives from. OriginalOrXerox is either "அசல்" or "ஜெராக்ஸ்".
type PreviousDocInfo struct {
	Date              string `json:"date"`
	Month             string `json:"month"`
	Year              string `json:"year"`
	SubRegisterOffice string `json:"subRegisterOffice"`
	BookNo            string `json:"bookNo"`
	DocYear           string `json:"docYear"`
	DocNo             string `json:"docNo"`
	DocType           string `json:"docType"`
	OriginalOrXerox   string `json:"originalOrXerox"`
}

// TransactionInfo carries the consideration amount and, depending on the
// payment method, the bank particulars of either side.
type TransactionInfo struct {
	PaymentMethod     string  `json:"paymentMethod"`
	Amount            float64 `json:"amount"`
	TransactionNo     string  `json:"transactionNo,omitempty"`
	TransactionDate   string  `json:"transactionDate,omitempty"`
	TransactionMonth  string  `json:"transactionMonth,omitempty"`
	TransactionYear   string  `json:"transactionYear,omitempty"`
	BuyerBankName     string  `json:"buyerBankName,omitempty"`
	BuyerBankBranch   string  `json:"buyerBankBranch,omitempty"`
	BuyerAccountType  string  `json:"buyerAccountType,omitempty"`
	BuyerAccountNo    string  `json:"buyerAccountNo,omitempty"`
	SellerBankName    string  `json:"sellerBankName,omitempty"`
	SellerBankBranch  string  `json:"sellerBankBranch,omitempty"`
	SellerAccountType string  `json:"sellerAccountType,omitempty"`
	SellerAccountNo   string  `json:"sellerAccountNo,omitempty"`
	ChequeNo          string  `json:"chequeNo,omitempty"`
	DDNo              string  `json:"ddNo,omitempty"`
}

// Payment method vocabulary. Anything else falls through to a generic
// received-the-amount clause.
const (
	PaymentCash       = "ரொக்கம்"
	PaymentBankCheque = "வங்கி காசோலை"
	PaymentBankDraft  = "வங்கி வரைவோலை"
	PaymentUPI        = "UPI"
	PaymentNEFT       = "NEFT"
	PaymentRTGS       = "RTGS"
	PaymentIMPS       = "IMPS"
)

// Preparer is the person who typed the document up.
type Preparer struct {
	Name   string `json:"name"`
	Office string `json:"office"`
	Mobile string `json:"mobile"`
}

// DeedDate is the execution date, kept as entered on the form.
type DeedDate struct {
	Year  string `json:"year"`
	Month string `json:"month"`
	Date  string `json:"date"`
}

// SaleDeedData is the full input for a sale deed. Buyers, sellers and
// witnesses may be empty while the form is still being filled in.
type SaleDeedData struct {
	DeedDate        DeedDate        `json:"deedDate"`
	Buyers          []PartyInfo     `json:"buyers"`
	Sellers         []PartyInfo     `json:"sellers"`
	PreviousDoc     PreviousDocInfo `json:"previousDoc"`
	Transaction     TransactionInfo `json:"transaction"`
	Witnesses       []WitnessInfo   `json:"witnesses"`
	Preparer        Preparer        `json:"preparer"`
	PropertyDetails string          `json:"propertyDetails"`
}

// AgreementDeedData is the full input for a sale-agreement deed. Exactly one
// party on each side; the advance is always a cash receipt at signing.
type AgreementDeedData struct {
	DeedDate        DeedDate        `json:"deedDate"`
	Buyer           PartyInfo       `json:"buyer"`
	Seller          PartyInfo       `json:"seller"`
	PreviousDoc     PreviousDocInfo `json:"previousDoc"`
	TotalAmount     float64         `json:"totalAmount"`
	AdvanceAmount   float64         `json:"advanceAmount"`
	BalanceAmount   float64         `json:"balanceAmount"`
	Deadline        string          `json:"deadline"`
	DeadlineUnit    string          `json:"deadlineUnit"`
	Witnesses       []WitnessInfo   `json:"witnesses"`
	Preparer        Preparer        `json:"preparer"`
	PropertyDetails string          `json:"propertyDetails"`
}
