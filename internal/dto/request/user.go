package request

type UserUpdateRequest struct {
	FirstName *string `json:"first_name,omitempty" validate:"omitempty,min=1,max=100"`
	LastName  *string `json:"last_name,omitempty" validate:"omitempty,min=1,max=100"`
	Email     *string `json:"email,omitempty" validate:"omitempty,email"`
	BirthDate *string `json:"birth_date,omitempty" validate:"omitempty,datetime=2006-01-02"`
	Role      *string `json:"role,omitempty" validate:"omitempty,oneof=customer staff manager"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=6"`
}

type CreateStaffRequest struct {
	FirstName string `json:"first_name" validate:"required,min=1,max=100"`
	LastName  string `json:"last_name" validate:"required,min=1,max=100"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=6"`
	BirthDate string `json:"birth_date" validate:"required,datetime=2006-01-02"`
	Role      string `json:"role" validate:"required,oneof=staff manager"`
}
