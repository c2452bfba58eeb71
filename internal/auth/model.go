package auth

// Owner is the shop-owner account entity.
type Owner struct {
	ID       string
	Name     string
	Email    string
	Password string
	Role     string
}

const RoleOwner = "OWNER"
