package employee

type EmployeeResponse struct {
	ID        string  `json:"id"`
	FullName  string  `json:"full_name"`
	Email     *string `json:"email,omitempty"`
	AvatarURL *string `json:"avatar_url,omitempty"`
}

func ToResponse(e Employee) EmployeeResponse {
	return EmployeeResponse{
		ID:        e.ID,
		FullName:  e.FullName,
		Email:     e.Email,
		AvatarURL: e.AvatarURL,
	}
}
