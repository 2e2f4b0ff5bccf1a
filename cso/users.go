package main

import (
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"time"

	uuid "github.com/satori/go.uuid"
)

type User struct {
	ID           int64  `db:"id, primarykey, autoincrement" json:"id"`
	FirstName    string `db:"first_name" json:"firstName"`
	LastName     string `db:"last_name" json:"lastName"`
	Email        string `db:"email" json:"email"`
	PasswordHash string `db:"password_hash" json:"-"`
	Token        string `db:"token" json:"-"`
	Created      int64  `db:"created" json:"-"`
}

func hashPassword(password string) string {
	sum := sha256.Sum256([]byte(password))
	return hex.EncodeToString(sum[:])
}

func generateNewToken() (string, error) {
	tok, err := uuid.NewV4()
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("USERKEY%s%d", tok.String(), time.Now().Unix()), nil
}

func createUserIfNotExists(email, password, firstName, lastName string) error {
	existing := User{}
	err := dbmap.SelectOne(&existing, "SELECT * FROM users WHERE email = ?", email)
	if err == nil {
		return nil
	}

	token, err := generateNewToken()
	if err != nil {
		return err
	}

	newUser := User{
		FirstName:    firstName,
		LastName:     lastName,
		Email:        email,
		PasswordHash: hashPassword(password),
		Token:        token,
		Created:      time.Now().Unix(),
	}

	return dbmap.Insert(&newUser)
}
