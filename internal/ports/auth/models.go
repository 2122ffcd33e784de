package auth

// Claims is what a verified token tells us about the caller.
type Claims struct {
	UserID   string
	Email    string
	TenantID string
}
