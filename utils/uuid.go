package utils

import (
	"github.com/google/uuid"
)

// GenerateID returns a new opaque unique identifier for listings,
// auctions and similar records
func GenerateID() string {
	return uuid.New().String()
}
