package utils

import "github.com/google/uuid"

// UUIDGenerator produces request identifiers. Time-ordered v7 ids are
// preferred so that trace ids sort by arrival; a random v4 id is returned if
// the v7 clock source fails.
type UUIDGenerator struct {
}

func NewUUIDGenerator() *UUIDGenerator {
	return &UUIDGenerator{}
}

// Generate returns a new identifier in canonical string form.
func (g *UUIDGenerator) Generate() string {
	v7, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}

	return v7.String()
}
