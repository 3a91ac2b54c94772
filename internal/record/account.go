package record

// ReasonInsufficientFunds is returned when a withdrawal exceeds the balance.
const ReasonInsufficientFunds = "insufficient funds"

// Account is a bank account with an owner and a non-negative balance.
type Account struct {
	owner   string
	balance *Guarded
}

// NewAccount opens an account for owner holding initial.
func NewAccount(owner string, initial int64) *Account {
	return &Account{
		owner:   owner,
		balance: NewGuarded("balance", initial).withReason(ReasonInsufficientFunds),
	}
}

func (a *Account) Owner() string  { return a.owner }
func (a *Account) Balance() int64 { return a.balance.Value() }

// Deposit adds amount to the balance.
func (a *Account) Deposit(amount int64) Result {
	return a.balance.Increase(amount)
}

// Withdraw removes amount from the balance, or rejects the withdrawal
// with ReasonInsufficientFunds when the balance is smaller than amount.
func (a *Account) Withdraw(amount int64) Result {
	return a.balance.Decrease(amount)
}
