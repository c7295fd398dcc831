package fleet

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fleetwatch.dev/fleet-dashboard-service/pkg/common"
	"fleetwatch.dev/fleet-dashboard-service/pkg/models"
	_ "fleetwatch.dev/fleet-dashboard-service/pkg/testing"
)

func TestCreateUser_HashesPassword(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)

	user, err := f.User.CreateUser(&models.User{
		Username: "operator",
		Email:    "operator@example.com",
	}, "operator-secret")
	require.NoError(t, err)

	assert.NotEmpty(t, user.Password)
	assert.NotEqual(t, "operator-secret", user.Password)
	assert.Equal(t, models.UserRoleUser, user.Role)
	assert.Equal(t, models.UserStatusActive, user.Status)
	assert.Nil(t, user.LastLogin)
}

func TestAuthenticate(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)

	_, err := f.User.CreateUser(&models.User{
		Username: "admin",
		Email:    "admin@example.com",
	}, "admin123")
	require.NoError(t, err)

	user, err := f.User.Authenticate("admin", "admin123")
	require.NoError(t, err)
	assert.Equal(t, "admin", user.Username)
	assert.NotNil(t, user.LastLogin)
}

func TestAuthenticate_WrongPassword(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)

	_, err := f.User.CreateUser(&models.User{
		Username: "admin",
		Email:    "admin@example.com",
	}, "admin123")
	require.NoError(t, err)

	_, err = f.User.Authenticate("admin", "wrong")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_UnknownUser(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)

	_, err := f.User.Authenticate("nobody", "whatever")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}

func TestAuthenticate_InactiveUser(t *testing.T) {
	common.SetTestLoggerNop()

	f := GetTestFleetWithMemStorage(t)

	_, err := f.User.CreateUser(&models.User{
		Username: "parked",
		Email:    "parked@example.com",
		Status:   models.UserStatusInactive,
	}, "parked123")
	require.NoError(t, err)

	_, err = f.User.Authenticate("parked", "parked123")
	assert.ErrorIs(t, err, ErrInvalidCredentials)
}
