package service

import (
	"strconv"
	"strings"

	"gorm.io/gorm"

	"gitlab.com/digitory/partner_portal_api/model"
	"gitlab.com/digitory/partner_portal_api/service/auth_service"
)

// GetUserByID returns one user by id
func (service *Service) GetUserByID(id uint64) (*model.User, error) {
	user := model.User{}
	db := service.repo.ConnReader.Table("users").Where("id = ?", id).First(&user)
	if db.Error != nil {
		if db.Error == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, db.Error
	}
	return &user, nil
}

// GetUserByEmail returns one user by email
func (service *Service) GetUserByEmail(email string) (*model.User, error) {
	user := model.User{}
	db := service.repo.ConnReader.Table("users").Where("email = ?", strings.ToLower(email)).First(&user)
	if db.Error != nil {
		if db.Error == gorm.ErrRecordNotFound {
			return nil, ErrUserNotFound
		}
		return nil, db.Error
	}
	return &user, nil
}

// Login checks the credentials and issues a signed token for the session
func (service *Service) Login(email, password string) (string, *model.User, error) {
	user, err := service.GetUserByEmail(email)
	if err != nil {
		if err == ErrUserNotFound {
			return "", nil, ErrInvalidCredentials
		}
		return "", nil, err
	}
	if !user.ValidatePass(password) {
		return "", nil, ErrInvalidCredentials
	}
	token, err := auth_service.CreateToken(map[string]interface{}{
		"sub":  strconv.FormatUint(user.ID, 10),
		"role": user.Role.String(),
	}, service.cfg.Server.API.JWTTokenSecret, service.cfg.Server.API.TokenDuration)
	if err != nil {
		return "", nil, err
	}
	return token, user, nil
}

// Register creates a partner account together with its reseller profile.
// New resellers start on the lowest tier with the portal's default
// commission rate.
func (service *Service) Register(name, email, password, companyName, phone string) (*model.User, *model.Reseller, error) {
	return service.createResellerAccount(name, email, password, companyName, phone, service.DefaultCommissionRate())
}

func (service *Service) createResellerAccount(name, email, password, companyName, phone string, rate float64) (*model.User, *model.Reseller, error) {
	name = strings.TrimSpace(name)
	email = strings.TrimSpace(strings.ToLower(email))
	if name == "" || companyName == "" || len(password) < 8 {
		return nil, nil, ErrInvalidInput
	}
	if !emailRegexp.MatchString(email) {
		return nil, nil, ErrInvalidInput
	}
	if rate < 0 || rate > 100 {
		return nil, nil, ErrInvalidInput
	}
	if _, err := service.GetUserByEmail(email); err == nil {
		return nil, nil, ErrEmailTaken
	} else if err != ErrUserNotFound {
		return nil, nil, err
	}

	user := model.NewUser(name, email, password, model.UserRoleReseller)
	if err := user.EncodePass(); err != nil {
		return nil, nil, err
	}
	reseller := &model.Reseller{}
	err := service.repo.Conn.Transaction(func(tx *gorm.DB) error {
		if db := tx.Table("users").Create(user); db.Error != nil {
			return db.Error
		}
		reseller = model.NewReseller(user.ID, strings.TrimSpace(companyName), service.normalizePhone(phone), rate)
		return tx.Table("resellers").Create(reseller).Error
	})
	if err != nil {
		return nil, nil, err
	}
	service.sendWelcomeEmail(user)
	return user, reseller, nil
}

// UpdateProfile changes the account name and, when a new password is given,
// rotates the password after checking the current one
func (service *Service) UpdateProfile(userID uint64, name, currentPassword, newPassword string) (*model.User, error) {
	user, err := service.GetUserByID(userID)
	if err != nil {
		return nil, err
	}
	updates := map[string]interface{}{}
	if name = strings.TrimSpace(name); name != "" {
		user.Name = name
		updates["name"] = name
	}
	if newPassword != "" {
		if len(newPassword) < 8 {
			return nil, ErrInvalidInput
		}
		if !user.ValidatePass(currentPassword) {
			return nil, ErrInvalidCredentials
		}
		user.Password = newPassword
		if err := user.EncodePass(); err != nil {
			return nil, err
		}
		updates["password"] = user.Password
	}
	if len(updates) == 0 {
		return user, nil
	}
	db := service.repo.Conn.Table("users").Where("id = ?", user.ID).Updates(updates)
	if db.Error != nil {
		return nil, db.Error
	}
	return user, nil
}
