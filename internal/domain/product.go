package domain

// Product is a catalog entry. Ownership is tracked per user as a set of
// product ids; the catalog itself is global.
type Product struct {
	ProductID   string  `json:"productID"`
	Name        string  `json:"productName"`
	Description string  `json:"productDescription"`
	PriceUSD    float64 `json:"priceUSD"`
	PriceRobux  int     `json:"priceRobux"`
	IconURL     string  `json:"productIconUrl"`
	DownloadURL string  `json:"productDownloadUrl"`
}

// OwnedProduct is a catalog entry annotated with the requesting user's
// ownership.
type OwnedProduct struct {
	Product
	Owned bool `json:"owned"`
}
