package models

// Session is the client-trusted identity attached to every request. The
// server never verifies it; it exists so handlers receive an explicit value
// instead of ambient state.
type Session struct {
	UserID int64  `json:"user_id"`
	Role   string `json:"role"`
}

// NavLink is one entry of the role-based dashboard navigation.
type NavLink struct {
	Label string `json:"label"`
	Page  string `json:"page"`
	Icon  string `json:"icon,omitempty"`
}
