package add_professor

import "github.com/m04kA/office-hours-service/internal/service/professors"

// AddProfessorRequest HTTP request model
type AddProfessorRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Password   string `json:"password"`
	Department string `json:"department"`
	About      string `json:"about"`
	Image      string `json:"image"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *AddProfessorRequest) ToServiceRequest() *professors.AddProfessorRequest {
	return &professors.AddProfessorRequest{
		Name:       r.Name,
		Email:      r.Email,
		Password:   r.Password,
		Department: r.Department,
		About:      r.About,
		Image:      r.Image,
	}
}
