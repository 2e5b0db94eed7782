package repository

import (
	"orderboard/entity"

	"gorm.io/gorm"
)

type UserRepository struct {
	DB *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{DB: db}
}

func (r *UserRepository) GetByID(id uint) (*entity.User, error) {
	var u entity.User
	if err := r.DB.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) GetByUsername(username string) (*entity.User, error) {
	var u entity.User
	if err := r.DB.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var n int64
	err := r.DB.Model(&entity.User{}).Where("username = ?", username).Count(&n).Error
	return n, err
}

func (r *UserRepository) ListStaff() ([]entity.User, error) {
	var users []entity.User
	err := r.DB.Order("created_at DESC").Find(&users).Error
	return users, err
}

func (r *UserRepository) Create(u *entity.User) error {
	return r.DB.Create(u).Error
}

func (r *UserRepository) Save(u *entity.User) error {
	return r.DB.Save(u).Error
}

func (r *UserRepository) Delete(id uint) error {
	return r.DB.Delete(&entity.User{}, id).Error
}
