package domain

import "time"

type Order struct {
	ID        string
	NodeID    string
	Date      DeliveryDate
	Items     []CartLineItem
	CreatedAt time.Time
}

type User struct {
	ID    string
	Name  string
	Email string
	Token string
}
