package models

// User is one account in the users collection. Passwords are stored as
// bcrypt hashes.
type User struct {
	Username         string `json:"username"`
	PasswordHash     string `json:"password_hash"`
	Name             string `json:"name"`
	TitleName        string `json:"title_name,omitempty"`
	Email            string `json:"email,omitempty"`
	Role             string `json:"role"`
	AcademicPosition string `json:"academic_position,omitempty"`
	PositionDate     string `json:"position_date,omitempty"`
	PositionNumber   string `json:"position_number,omitempty"`
	Department       string `json:"department,omitempty"`
	Faculty          string `json:"faculty,omitempty"`
}

// DisplayName joins the title prefix and name the way the UI shows it.
func (u User) DisplayName() string {
	if u.TitleName == "" {
		return u.Name
	}
	return u.TitleName + " " + u.Name
}
