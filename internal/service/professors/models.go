package professors

// AddProfessorRequest данные нового преподавателя (добавляет администратор)
type AddProfessorRequest struct {
	Name       string `validate:"required"`
	Email      string `validate:"required,email"`
	Password   string `validate:"required,min=8"`
	Department string
	About      string
	Image      string `validate:"omitempty,url"`
}
