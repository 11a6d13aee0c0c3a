package repositories

import (
	"github.com/jackc/pgx/v5/pgxpool"
)

// Repositories holds all the repository instances
type Repositories struct {
	OwnerRepository        *OwnerRepository
	StudentRepository      *StudentRepository
	FeeStructureRepository *FeeStructureRepository
}

// NewRepositories initializes all repositories
func NewRepositories(db *pgxpool.Pool) *Repositories {
	return &Repositories{
		OwnerRepository:        NewOwnerRepository(db),
		StudentRepository:      NewStudentRepository(db),
		FeeStructureRepository: NewFeeStructureRepository(db),
	}
}
