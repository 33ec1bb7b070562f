package models

import "time"

type UserStatus string

const (
	StatusActive    UserStatus = "Active"
	StatusInactive  UserStatus = "Inactive"
	StatusSuspended UserStatus = "Suspended"
)

type UserRole string

const (
	RoleCustomer UserRole = "Customer"
	RoleManager  UserRole = "Manager"
	RoleAdmin    UserRole = "Admin"
)

type Name struct {
	Firstname string `gorm:"size:120" json:"firstname"`
	Lastname  string `gorm:"size:120" json:"lastname"`
}

type Geo struct {
	Lat  string `gorm:"size:40" json:"lat"`
	Long string `gorm:"size:40" json:"long"`
}

type Address struct {
	City    string `gorm:"size:120" json:"city"`
	Street  string `gorm:"size:180" json:"street"`
	Number  string `gorm:"size:40" json:"number"`
	Zipcode string `gorm:"size:40" json:"zipcode"`
	Geo     Geo    `gorm:"embedded;embeddedPrefix:geo_" json:"geo"`
}

type User struct {
	ID           uint       `gorm:"primaryKey" json:"id"`
	Email        string     `gorm:"uniqueIndex;size:180;not null" json:"email"`
	Username     string     `gorm:"uniqueIndex;size:120;not null" json:"username"`
	PasswordHash string     `gorm:"size:255;not null" json:"-"`
	Name         Name       `gorm:"embedded;embeddedPrefix:name_" json:"name"`
	Address      Address    `gorm:"embedded;embeddedPrefix:address_" json:"address"`
	Phone        string     `gorm:"size:60" json:"phone"`
	Status       UserStatus `gorm:"size:20;not null" json:"status"`
	Role         UserRole   `gorm:"size:20;not null" json:"role"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
}
