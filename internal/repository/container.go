package repository

import (
	"gorm.io/gorm"
)

type Repos struct {
	Farmer       FarmerRepo
	Employee     EmployeeRepo
	Registration RegistrationRepo
	User         UserRepo
	FPO          FPORepo
	Card         CardRepo
	Audit        AuditRepo

	db *gorm.DB
}

func NewRepositories(db *gorm.DB) *Repos {
	return &Repos{
		Farmer:       NewFarmerRepo(db),
		Employee:     NewEmployeeRepo(db),
		Registration: NewRegistrationRepo(db),
		User:         NewUserRepo(db),
		FPO:          NewFPORepo(db),
		Card:         NewCardRepo(db),
		Audit:        NewAuditRepo(db),
		db:           db,
	}
}

func (r *Repos) Begin() *gorm.DB {
	return r.db.Begin()
}

func (r *Repos) WithTx(tx *gorm.DB) *Repos {
	return &Repos{
		Farmer:       r.Farmer.WithTx(tx),
		Employee:     r.Employee.WithTx(tx),
		Registration: r.Registration.WithTx(tx),
		User:         r.User.WithTx(tx),
		FPO:          r.FPO.WithTx(tx),
		Card:         r.Card.WithTx(tx),
		Audit:        r.Audit.WithTx(tx),
		db:           tx,
	}
}

// ExecTx runs fn against a transactional copy of every repository.
// Entity-mutating workflow operations run through here so a failed
// write never partially applies.
func (r *Repos) ExecTx(fn func(*Repos) error) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		txRepos := r.WithTx(tx)
		return fn(txRepos)
	})
}
