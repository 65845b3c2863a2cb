package model

// CartItem is a row in the cart table. Prices arrive from the catalog
// as display strings ("21,000원"); the checkout service parses them
// into won when fixing the order amount.
type CartItem struct {
	ID        string `json:"id,omitempty"`
	UserID    string `json:"user_id"`
	Name      string `json:"name"`
	Image     string `json:"image"`
	Price     string `json:"price"`
	Volume    string `json:"volume"`
	CreatedAt string `json:"created_at,omitempty"`
}

// CartResponse is returned by GET /cart.
type CartResponse struct {
	Items []CartItem `json:"items"`
	Total int64      `json:"total"`
}
