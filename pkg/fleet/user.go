package fleet

import (
	"errors"
	"time"

	"go.uber.org/zap"

	"fleetwatch.dev/fleet-dashboard-service/pkg/auth"
	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
	"fleetwatch.dev/fleet-dashboard-service/pkg/store"
)

// ErrInvalidCredentials covers both an unknown username and a wrong
// password, so a login probe cannot tell accounts apart.
var ErrInvalidCredentials = errors.New("invalid username or password")

func (f *Fleet) listUsers() ([]models.User, error) {
	return f.Store.GetUsers()
}

func (f *Fleet) createUser(input *models.User, plainPassword string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetUser),
	)

	hash, err := auth.HashPassword(plainPassword)
	if err != nil {
		return nil, err
	}
	input.Password = hash

	user, err := f.Store.CreateUser(input)
	if err != nil {
		return nil, err
	}

	logger.Info("Created user", zap.Int("id", user.ID), zap.String("username", user.Username))
	return user, nil
}

func (f *Fleet) authenticate(username string, password string) (*models.User, error) {
	logger := common.GetLoggerWith(
		common.LoggerNameFleetCore,
		zap.String(common.LoggerFieldFleetCategory, common.LoggerCategoryFleetUser),
	)

	user, err := f.Store.GetUserByUsername(username)
	if err != nil {
		if errors.Is(err, store.ErrNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}

	if user.Status != models.UserStatusActive {
		return nil, ErrInvalidCredentials
	}
	if !auth.CheckPassword(user.Password, password) {
		return nil, ErrInvalidCredentials
	}

	now := time.Now()
	user, err = f.Store.UpdateUser(user.ID, &models.UserPatch{LastLogin: &now})
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in", zap.Int("id", user.ID), zap.String("username", user.Username))
	return user, nil
}

type IUserImpl struct {
	fleet *Fleet
}

func (iu *IUserImpl) ListUsers() ([]models.User, error) {
	return iu.fleet.listUsers()
}

func (iu *IUserImpl) CreateUser(input *models.User, plainPassword string) (*models.User, error) {
	return iu.fleet.createUser(input, plainPassword)
}

func (iu *IUserImpl) Authenticate(username string, password string) (*models.User, error) {
	return iu.fleet.authenticate(username, password)
}

func (f *Fleet) GetIUser() IUser {
	return &IUserImpl{fleet: f}
}
