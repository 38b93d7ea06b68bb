package entity

import "time"

// Estados válidos para los registros de aprobación. El origen del dato era
// texto libre; aquí el estado es un enum cerrado con tabla de transiciones.
const (
	StatusPending  = "pending"
	StatusApproved = "approved"
	StatusRejected = "rejected"
)

// ValidStatus indica si s es uno de los estados reconocidos.
func ValidStatus(s string) bool {
	return s == StatusPending || s == StatusApproved || s == StatusRejected
}

// CanTransition valida la tabla de transiciones: solo pending puede moverse,
// y solo hacia approved o rejected. Los estados terminales son inmutables.
func CanTransition(from, to string) bool {
	if from != StatusPending {
		return false
	}
	return to == StatusApproved || to == StatusRejected
}

// DeleteRequest es una solicitud de baja de producto pendiente de aprobación.
type DeleteRequest struct {
	ID         int64
	UserID     int64
	ProductID  int64
	Message    string
	ApproverID *int64
	Status     string
	CreatedAt  time.Time
	UpdatedAt  time.Time
}

// ProductRequest es una solicitud de reposición de producto con doble
// aprobación (manager y admin) opcional.
type ProductRequest struct {
	ID                int64
	UserID            int64
	ProductID         int64
	Quantity          int
	ApprovedManagerID *int64
	ApprovedAdminID   *int64
	Status            string
	CreatedAt         time.Time
	UpdatedAt         time.Time
}
