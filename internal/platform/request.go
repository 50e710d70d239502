package platform

import "time"

// Request-object statuses, used by deposit and withdrawal intents before
// they become completed transactions.
const (
	RequestPending  = "pending"
	RequestApproved = "approved"
	RequestRejected = "rejected"
)

type DepositRequest struct {
	Id              string    `json:"_id"`
	UserId          string    `json:"userId,omitempty"`
	TransactionHash string    `json:"transactionHash"`
	Amount          float64   `json:"amount"`
	WalletAddress   string    `json:"walletAddress"`
	Status          string    `json:"status"` // pending, approved, rejected
	AdminNotes      string    `json:"adminNotes,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type WithdrawalRequest struct {
	Id            string    `json:"_id"`
	UserId        string    `json:"userId,omitempty"`
	Amount        float64   `json:"amount"`
	WalletAddress string    `json:"walletAddress"`
	Status        string    `json:"status"`
	AdminNotes    string    `json:"adminNotes,omitempty"`
	// Settlement hash supplied by the admin, mandatory before approval
	TransactionHash string    `json:"transactionHash,omitempty"`
	CreatedAt       time.Time `json:"createdAt"`
}

type RegistrationDeposit struct {
	Id              string    `json:"_id"`
	UserId          string    `json:"userId"`
	Username        string    `json:"username,omitempty"`
	TransactionHash string    `json:"transactionHash"`
	Amount          float64   `json:"amount"`
	Status          string    `json:"status"`
	CreatedAt       time.Time `json:"createdAt"`
}
