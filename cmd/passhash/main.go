package main

import (
	"fmt"
	"os"

	"golang.org/x/crypto/bcrypt"
)

// Prints a bcrypt hash for seeding the first admin row by hand:
//
//	INSERT INTO users (email, name, role, password_hash)
//	VALUES ('admin@example.com', 'Admin', 'ADMIN', '<hash>');
func main() {
	if len(os.Args) != 2 {
		fmt.Fprintln(os.Stderr, "usage: passhash <password>")
		os.Exit(2)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(os.Args[1]), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}

	fmt.Println(string(hash))
}
