package model

import "time"

// User represents an application user record as stored in the `users`
// table. The password hash never leaves the repository layer; handlers
// define separate response types with the fields they expose.
//
// Fields:
//  ID           – primary key identifier of the user.
//  Name         – display name shown alongside reviews.
//  Email        – unique email address used for login.
//  PasswordHash – bcrypt hashed password.
//  HomeCity     – free-text home city supplied at registration.
//  Budget       – travel budget supplied at registration.
//  CreatedAt    – timestamp of creation.
type User struct {
	ID           uint64    // users.id
	Name         string    // users.name
	Email        string    // users.email
	PasswordHash string    // users.password_hash
	HomeCity     string    // users.home_city
	Budget       float64   // users.budget
	CreatedAt    time.Time // users.created_at
}
