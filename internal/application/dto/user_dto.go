package dto

import "time"

// CreateUserRequest entrada para crear un usuario (password en texto, se hashea en use case).
type CreateUserRequest struct {
	Username string  `json:"username" validate:"required,min=3,max=50,excludesall= "`
	Password string  `json:"password" validate:"required,min=8,max=72"`
	Role     string  `json:"role" validate:"required,oneof=admin manager staff"`
	FullName string  `json:"fullName" validate:"notblank,max=200"`
	Email    *string `json:"email" validate:"omitempty,email,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
}

// UpdateUserRequest entrada para actualizar un usuario; solo se aplican los campos presentes.
type UpdateUserRequest struct {
	Password *string `json:"password" validate:"omitempty,min=8,max=72"`
	Role     *string `json:"role" validate:"omitempty,oneof=admin manager staff"`
	FullName *string `json:"fullName" validate:"omitempty,notblank,max=200"`
	Email    *string `json:"email" validate:"omitempty,email,max=200"`
	Phone    *string `json:"phone" validate:"omitempty,max=30"`
}

// UserResponse salida de un usuario (sin password).
type UserResponse struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Role      string    `json:"role"`
	FullName  string    `json:"fullName"`
	Email     *string   `json:"email"`
	Phone     *string   `json:"phone"`
	IsActive  bool      `json:"isActive"`
	CreatedAt time.Time `json:"createdAt"`
}

// LoginRequest entrada para login.
type LoginRequest struct {
	Username string `json:"username" validate:"notblank"`
	Password string `json:"password" validate:"required"`
}

// LoginResponse salida con token JWT y perfil del usuario.
type LoginResponse struct {
	Success bool         `json:"success"`
	Message string       `json:"message"`
	Token   string       `json:"token"`
	User    UserResponse `json:"user"`
}
