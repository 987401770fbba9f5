package main

import (
	"flag"
	"log"
	"os"

	"github.com/agrisetu/registry-go/internal/api/middleware"
	"github.com/agrisetu/registry-go/internal/config"
	"github.com/agrisetu/registry-go/internal/config/db"
	"github.com/agrisetu/registry-go/internal/domain/employee"
	"github.com/agrisetu/registry-go/internal/domain/fpo"
	"github.com/agrisetu/registry-go/internal/domain/user"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v2"
)

type fixture struct {
	Users []struct {
		Username string `yaml:"username"`
		Password string `yaml:"password"`
		Email    string `yaml:"email"`
		FullName string `yaml:"full_name"`
		Role     string `yaml:"role"`
	} `yaml:"users"`
	Employees []struct {
		Name        string `yaml:"name"`
		Email       string `yaml:"email"`
		Phone       string `yaml:"phone"`
		Designation string `yaml:"designation"`
		Department  string `yaml:"department"`
	} `yaml:"employees"`
	FPOs []struct {
		Name           string `yaml:"name"`
		RegistrationNo string `yaml:"registration_no"`
		State          string `yaml:"state"`
		District       string `yaml:"district"`
		ContactPerson  string `yaml:"contact_person"`
		ContactPhone   string `yaml:"contact_phone"`
	} `yaml:"fpos"`
}

// Seeds the database from a YAML fixture. Existing rows are matched by
// their natural key so the command is safe to re-run.
func main() {
	path := flag.String("f", "seed.yaml", "fixture file")
	flag.Parse()

	config.LoadConfig()
	middleware.Init()
	db.Init()

	raw, err := os.ReadFile(*path)
	if err != nil {
		log.Fatalf("read fixture: %v", err)
	}

	var fx fixture
	if err := yaml.Unmarshal(raw, &fx); err != nil {
		log.Fatalf("parse fixture: %v", err)
	}

	for _, u := range fx.Users {
		hashed, err := bcrypt.GenerateFromPassword([]byte(u.Password), bcrypt.DefaultCost)
		if err != nil {
			log.Fatalf("hash password for %s: %v", u.Username, err)
		}
		row := user.User{
			Username: u.Username,
			Password: string(hashed),
			Email:    u.Email,
			FullName: u.FullName,
			Role:     u.Role,
			Status:   "ACTIVE",
		}
		if err := db.DB.Where(user.User{Username: u.Username}).FirstOrCreate(&row).Error; err != nil {
			log.Fatalf("seed user %s: %v", u.Username, err)
		}
		log.Printf("user %s ready (id=%d)", u.Username, row.ID)
	}

	for _, e := range fx.Employees {
		row := employee.Employee{
			Name:        e.Name,
			Email:       e.Email,
			Phone:       e.Phone,
			Designation: e.Designation,
			Department:  e.Department,
			Status:      employee.StatusActive,
		}
		if err := db.DB.Where(employee.Employee{Email: e.Email}).FirstOrCreate(&row).Error; err != nil {
			log.Fatalf("seed employee %s: %v", e.Name, err)
		}
		log.Printf("employee %s ready (id=%d)", e.Name, row.ID)
	}

	for _, f := range fx.FPOs {
		row := fpo.FPO{
			Name:           f.Name,
			RegistrationNo: f.RegistrationNo,
			State:          f.State,
			District:       f.District,
			ContactPerson:  f.ContactPerson,
			ContactPhone:   f.ContactPhone,
		}
		if err := db.DB.Where(fpo.FPO{RegistrationNo: f.RegistrationNo}).FirstOrCreate(&row).Error; err != nil {
			log.Fatalf("seed fpo %s: %v", f.Name, err)
		}
		log.Printf("fpo %s ready (id=%d)", f.Name, row.ID)
	}

	log.Println("seeding complete")
}
