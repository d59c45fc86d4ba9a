package models

// DirectoryUser is a user managed from the admin dashboard.
type DirectoryUser struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
}

// DirectoryUserInput carries the editable fields of a directory user.
type DirectoryUserInput struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}

// Location is a venue that can host an event.
type Location struct {
	ID         string `json:"location_id"`
	Name       string `json:"location_name"`
	ProvinceID int    `json:"province_id"`
}
