package repository

import (
	"errors"
	"log"
	"strings"

	"github.com/StudyHive/course_service/internal/domain"
	"gorm.io/gorm"
)

type AdminRepository interface {
	CredentialStore
	CreateAdmin(admin *domain.Admin) (*domain.Admin, error)
	FindAdminById(adminID uint) (*domain.Admin, error)
	CountAdmins() (int64, error)
}

type adminRepository struct {
	db *gorm.DB
}

func NewAdminRepository(db *gorm.DB) AdminRepository {
	return &adminRepository{db: db}
}

func (r *adminRepository) CreateAdmin(admin *domain.Admin) (*domain.Admin, error) {
	if admin == nil {
		return nil, errors.New("nil admin")
	}
	if err := r.db.Create(admin).Error; err != nil {
		log.Printf("create admin error: %v", err)
		return nil, err
	}
	return admin, nil
}

func (r *adminRepository) CredentialByEmail(email string) (*Credential, error) {
	admin := &domain.Admin{}
	if err := r.db.First(admin, "email = ?", strings.ToLower(email)).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find admin by email error: %v", err)
		}
		return nil, err
	}
	return &Credential{
		ID:           admin.ID,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		IsBlocked:    admin.IsBlocked,
	}, nil
}

func (r *adminRepository) CredentialByID(id uint) (*Credential, error) {
	admin, err := r.FindAdminById(id)
	if err != nil {
		return nil, err
	}
	return &Credential{
		ID:           admin.ID,
		Email:        admin.Email,
		PasswordHash: admin.PasswordHash,
		IsBlocked:    admin.IsBlocked,
	}, nil
}

func (r *adminRepository) FindAdminById(adminID uint) (*domain.Admin, error) {
	admin := &domain.Admin{}
	if err := r.db.First(admin, adminID).Error; err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			log.Printf("find admin by id error: %v", err)
		}
		return nil, err
	}
	return admin, nil
}

func (r *adminRepository) CountAdmins() (int64, error) {
	var count int64
	if err := r.db.Model(&domain.Admin{}).Count(&count).Error; err != nil {
		log.Printf("count admins error: %v", err)
		return 0, err
	}
	return count, nil
}
