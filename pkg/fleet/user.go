package fleet

import (
	"errors"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/EagleFox31/YaroFleet/pkg/common"
	"github.com/EagleFox31/YaroFleet/pkg/models"
)

func (f *Fleet) getUser(id uint) (*models.User, error) {
	var user models.User
	if err := f.Db.Conn.First(&user, id).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (f *Fleet) getUserByUsername(username string) (*models.User, error) {
	var user models.User
	if err := f.Db.Conn.First(&user, "username = ?", username).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (f *Fleet) getUserByEmail(email string) (*models.User, error) {
	var user models.User
	if err := f.Db.Conn.First(&user, "email = ?", email).Error; err != nil {
		return nil, wrapNotFound(err)
	}
	return &user, nil
}

func (f *Fleet) createUser(input *models.User, plainPassword string) error {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetUser),
	)

	if _, err := f.getUserByUsername(input.Username); err == nil {
		return ErrDuplicate
	}
	if _, err := f.getUserByEmail(input.Email); err == nil {
		return ErrDuplicate
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(plainPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}
	input.Password = string(hashed)

	if input.Role == "" {
		input.Role = models.RoleUser
	}

	if err := f.Db.Conn.Create(input).Error; err != nil {
		return err
	}

	logger.Info("User created",
		zap.String("username", input.Username),
		zap.String("role", string(input.Role)))
	return nil
}

func (f *Fleet) listUsersByRole(role models.Role) ([]models.User, error) {
	var users []models.User
	err := f.Db.Conn.Where("role = ?", role).Find(&users).Error
	return users, err
}

func (f *Fleet) authenticate(username, password string) (*models.User, error) {
	user, err := f.getUserByUsername(username)
	if err != nil {
		if errors.Is(err, ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.Password), []byte(password)) != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

type IUserImpl struct {
	fleet *Fleet
}

func (iu *IUserImpl) GetUser(id uint) (*models.User, error) {
	return iu.fleet.getUser(id)
}

func (iu *IUserImpl) GetUserByUsername(username string) (*models.User, error) {
	return iu.fleet.getUserByUsername(username)
}

func (iu *IUserImpl) GetUserByEmail(email string) (*models.User, error) {
	return iu.fleet.getUserByEmail(email)
}

func (iu *IUserImpl) CreateUser(input *models.User, plainPassword string) error {
	return iu.fleet.createUser(input, plainPassword)
}

func (iu *IUserImpl) ListUsersByRole(role models.Role) ([]models.User, error) {
	return iu.fleet.listUsersByRole(role)
}

func (iu *IUserImpl) Authenticate(username, password string) (*models.User, error) {
	return iu.fleet.authenticate(username, password)
}

func (f *Fleet) GetIUser() IUser {
	return &IUserImpl{fleet: f}
}
