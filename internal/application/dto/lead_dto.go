package dto

import "time"

// CreateRegistrationRequest entrada de POST /api/registration (visita guiada).
type CreateRegistrationRequest struct {
	ParentName string  `json:"parentName" validate:"notblank,max=200"`
	Phone      string  `json:"phone" validate:"notblank,max=30"`
	ChildName  *string `json:"childName" validate:"omitempty,max=200"`
	ChildAge   *string `json:"childAge" validate:"omitempty,max=20"`
	VisitTime  *string `json:"visitTime" validate:"omitempty,max=100"`
}

// RegistrationResponse salida de una solicitud de visita.
type RegistrationResponse struct {
	ID         string    `json:"id"`
	ParentName string    `json:"parentName"`
	Phone      string    `json:"phone"`
	ChildName  *string   `json:"childName"`
	ChildAge   *string   `json:"childAge"`
	VisitTime  *string   `json:"visitTime"`
	CreatedAt  time.Time `json:"createdAt"`
}

// CreateContactMessageRequest entrada de POST /api/contact.
type CreateContactMessageRequest struct {
	Name    string  `json:"name" validate:"notblank,max=200"`
	Email   string  `json:"email" validate:"required,email,max=200"`
	Phone   *string `json:"phone" validate:"omitempty,max=30"`
	Subject *string `json:"subject" validate:"omitempty,max=200"`
	Message string  `json:"message" validate:"notblank,max=5000"`
}

// ContactMessageResponse salida de un mensaje de contacto.
type ContactMessageResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     *string   `json:"phone"`
	Subject   *string   `json:"subject"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"createdAt"`
}
