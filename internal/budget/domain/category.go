package domain

// Category is a user-created spending bucket under a priority tier. Amount is
// what has been spent or allocated so far, Limit a soft ceiling the user set
// for this category. Nothing at the storage layer ties Amount to Limit;
// enforcement happens at mutation time and readers must tolerate stored rows
// that violate it.
type Category struct {
	ID       string `json:"id"`
	UserID   string `json:"-"`
	Name     string `json:"name"`
	Priority int    `json:"priority"`
	Amount   int64  `json:"amount"`
	Limit    int64  `json:"limit"`
}

type CategoryRepository interface {
	Save(category Category) error
	FindByUser(userID string) ([]Category, error)
	FindByID(categoryID string) (*Category, error)
	UpdateAmount(categoryID string, amount int64) error
	Delete(categoryID string) error
	// ResetAmounts zeroes every category amount, across all users.
	ResetAmounts() error
}
