package register_student

import "github.com/m04kA/office-hours-service/internal/service/auth"

// RegisterStudentRequest HTTP request model
type RegisterStudentRequest struct {
	Name          string `json:"name"`
	Email         string `json:"email"`
	Password      string `json:"password"`
	StudentNumber string `json:"studentNumber"`
	Phone         string `json:"phone"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *RegisterStudentRequest) ToServiceRequest() *auth.RegisterStudentRequest {
	return &auth.RegisterStudentRequest{
		Name:          r.Name,
		Email:         r.Email,
		Password:      r.Password,
		StudentNumber: r.StudentNumber,
		Phone:         r.Phone,
	}
}
