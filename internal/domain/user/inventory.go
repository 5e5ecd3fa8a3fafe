package user

// AssetHolding is one row of the asset inventory: the hardware issued to a
// user, labelled with its holder.
type AssetHolding struct {
	Email     string `json:"email"`
	FirstName string `json:"firstName"`
	LastName  string `json:"lastName"`
	Assets    Assets `json:"assets"`
}

// Inventory lists the assets of every user, in the order given.
func Inventory(users []User) []AssetHolding {
	rows := make([]AssetHolding, 0, len(users))

	for _, u := range users {
		rows = append(rows, AssetHolding{
			Email:     u.Email,
			FirstName: u.FirstName,
			LastName:  u.LastName,
			Assets:    u.Details.Assets,
		})
	}

	return rows
}
