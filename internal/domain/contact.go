package domain

import "time"

// ContactStatusNew is the status a contact message is created with.
const ContactStatusNew = "new"

// ContactMessage is an independent "contact us" submission, unrelated to
// orders.
type ContactMessage struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Phone     string    `json:"phone"`
	Message   string    `json:"message"`
	Status    string    `json:"status"`
	CreatedAt time.Time `json:"createdAt"`
}
