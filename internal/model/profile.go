package model

// Profile is the public face of a user account.
type Profile struct {
	BaseWithUpdatedAt
	// AuthUserID is the Clerk user id that owns the profile.
	AuthUserID string `json:"-" db:"auth_user_id"`
	Username   string `json:"username" db:"username"`
	FullName   string `json:"full_name" db:"full_name"`
	Email      string `json:"-" db:"email"`
	AvatarURL  string `json:"avatar_url" db:"avatar_url"`
	IsPublic   bool   `json:"is_public" db:"is_public"`
}

// DisplayName falls back to the username when no full name is set.
func (p *Profile) DisplayName() string {
	if p.FullName != "" {
		return p.FullName
	}
	return p.Username
}
