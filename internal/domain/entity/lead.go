package entity

import "time"

// Registration solicitud de visita guiada enviada desde la web pública (solo inserción).
type Registration struct {
	ID         string
	ParentName string
	Phone      string
	ChildName  *string
	ChildAge   *string
	VisitTime  *string
	CreatedAt  time.Time
}

// ContactMessage mensaje del formulario de contacto (solo inserción).
type ContactMessage struct {
	ID        string
	Name      string
	Email     string
	Phone     *string
	Subject   *string
	Message   string
	CreatedAt time.Time
}
