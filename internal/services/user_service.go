package services

import (
	"staylink/internal/models"
	"staylink/internal/repositories"

	"gorm.io/gorm"
)

type UserService struct {
	db    *gorm.DB
	users repositories.UserRepository
}

func NewUserService(db *gorm.DB, users repositories.UserRepository) *UserService {
	return &UserService{db: db, users: users}
}

func (s *UserService) FindUserByID(id uint) (*models.User, error) {
	return s.users.FindByID(s.db, id)
}

// FindUserByEmail resolves the session principal to a User record.
func (s *UserService) FindUserByEmail(email string) (*models.User, error) {
	return s.users.FindByEmail(s.db, email)
}

func (s *UserService) CreateUser(user *models.User) error {
	return s.users.Create(s.db, user)
}
