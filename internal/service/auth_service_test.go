package service

import (
	"encoding/json"
	"strings"
	"testing"
	"time"

	"freeco/internal/domain"
	"freeco/internal/models"
	"freeco/internal/repository"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newAuthService(t *testing.T) (*AuthService, *repository.UserRepository) {
	t.Helper()
	db := newTestDB(t)
	userRepo := repository.NewUserRepository(db)
	return NewAuthService(testConfig(), userRepo, nil), userRepo
}

func registerInput() RegisterInput {
	return RegisterInput{
		FirstName:       "Ravi",
		LastName:        "Sharma",
		Email:           "ravi@example.com",
		PhoneNumber:     "9876543210",
		Gender:          domain.GenderMale,
		Pincode:         "110001",
		State:           "Delhi",
		City:            "New Delhi",
		Password:        "secret123",
		ConfirmPassword: "secret123",
	}
}

func TestRegisterHashesPassword(t *testing.T) {
	svc, repo := newAuthService(t)

	u, otp, err := svc.Register(registerInput())
	require.NoError(t, err)
	require.Len(t, otp, 6)

	stored, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	assert.NotEqual(t, "secret123", stored.PasswordHash)
	assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("secret123")))
	assert.False(t, stored.IsVerified)
	assert.Equal(t, domain.RoleUser, stored.Role)
}

func TestRegisterDuplicateEmail(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register(registerInput())
	require.NoError(t, err)

	dup := registerInput()
	dup.PhoneNumber = "9876543211"
	_, _, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterDuplicatePhone(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register(registerInput())
	require.NoError(t, err)

	dup := registerInput()
	dup.Email = "other@example.com"
	_, _, err = svc.Register(dup)
	assert.ErrorIs(t, err, ErrUserExists)
}

func TestRegisterPasswordMismatch(t *testing.T) {
	svc, _ := newAuthService(t)

	in := registerInput()
	in.ConfirmPassword = "different"
	_, _, err := svc.Register(in)
	assert.ErrorIs(t, err, ErrPasswordMismatch)
}

func TestRegisterRejectsInvalidFields(t *testing.T) {
	svc, _ := newAuthService(t)

	cases := map[string]func(*RegisterInput){
		"bad phone":          func(in *RegisterInput) { in.PhoneNumber = "12345" },
		"bad pincode":        func(in *RegisterInput) { in.Pincode = "11000" },
		"bad email":          func(in *RegisterInput) { in.Email = "not-an-email" },
		"unknown state":      func(in *RegisterInput) { in.State = "Atlantis" },
		"city in wrong state": func(in *RegisterInput) { in.City = "Mumbai" },
		"short password": func(in *RegisterInput) {
			in.Password = "abc"
			in.ConfirmPassword = "abc"
		},
	}
	for name, mutate := range cases {
		t.Run(name, func(t *testing.T) {
			in := registerInput()
			mutate(&in)
			_, _, err := svc.Register(in)
			assert.ErrorIs(t, err, ErrInvalidProfile)
		})
	}
}

func TestVerifyOTP(t *testing.T) {
	svc, repo := newAuthService(t)

	u, otp, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, _, err = svc.VerifyOTP(u.ID, "000000")
	assert.ErrorIs(t, err, ErrInvalidOTP)

	verified, token, err := svc.VerifyOTP(u.ID, otp)
	require.NoError(t, err)
	assert.True(t, verified.IsVerified)
	assert.NotEmpty(t, token)

	stored, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	assert.Empty(t, stored.OTPCode)
	assert.Nil(t, stored.OTPExpiresAt)
}

func TestVerifyOTPExpired(t *testing.T) {
	svc, repo := newAuthService(t)

	u, otp, err := svc.Register(registerInput())
	require.NoError(t, err)

	stored, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	past := time.Now().Add(-time.Minute)
	stored.OTPExpiresAt = &past
	require.NoError(t, repo.Update(stored))

	_, _, err = svc.VerifyOTP(u.ID, otp)
	assert.ErrorIs(t, err, ErrInvalidOTP)
}

func TestLoginUnverifiedGetsFreshOTP(t *testing.T) {
	svc, repo := newAuthService(t)

	u, firstOTP, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, token, err := svc.Login("ravi@example.com", "secret123")
	assert.ErrorIs(t, err, ErrNotVerified)
	assert.Empty(t, token)

	stored, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	assert.NotEmpty(t, stored.OTPCode)
	// A fresh code was stored, even if it collides with the first by chance.
	assert.NotNil(t, stored.OTPExpiresAt)
	_ = firstOTP
}

func TestLoginVerified(t *testing.T) {
	svc, _ := newAuthService(t)

	u, otp, err := svc.Register(registerInput())
	require.NoError(t, err)
	_, _, err = svc.VerifyOTP(u.ID, otp)
	require.NoError(t, err)

	logged, token, err := svc.Login("ravi@example.com", "secret123")
	require.NoError(t, err)
	assert.Equal(t, u.ID, logged.ID)
	assert.NotEmpty(t, token)
}

func TestLoginWrongPassword(t *testing.T) {
	svc, _ := newAuthService(t)

	_, _, err := svc.Register(registerInput())
	require.NoError(t, err)

	_, _, err = svc.Login("ravi@example.com", "wrong-pass")
	assert.ErrorIs(t, err, ErrInvalidCreds)

	_, _, err = svc.Login("nobody@example.com", "secret123")
	assert.ErrorIs(t, err, ErrInvalidCreds)
}

func TestPasswordHashNeverSerialized(t *testing.T) {
	u := models.User{PasswordHash: "bcrypt-hash", OTPCode: "123456", Email: "a@b.co"}
	raw, err := json.Marshal(u)
	require.NoError(t, err)
	assert.False(t, strings.Contains(string(raw), "bcrypt-hash"))
	assert.False(t, strings.Contains(string(raw), "123456"))
}

func TestUpdateProfile(t *testing.T) {
	svc, repo := newAuthService(t)

	u, otp, err := svc.Register(registerInput())
	require.NoError(t, err)
	_, _, err = svc.VerifyOTP(u.ID, otp)
	require.NoError(t, err)

	updated, err := svc.UpdateProfile(u.ID, ProfileUpdateInput{
		FirstName: "Ravindra",
		State:     "Maharashtra",
		City:      "Mumbai",
		Pincode:   "400001",
	})
	require.NoError(t, err)
	assert.Equal(t, "Ravindra", updated.FirstName)
	assert.Equal(t, "Mumbai", updated.City)

	_, err = svc.UpdateProfile(u.ID, ProfileUpdateInput{City: "New Delhi"})
	assert.ErrorIs(t, err, ErrInvalidProfile)

	stored, err := repo.GetByID(u.ID)
	require.NoError(t, err)
	assert.Equal(t, "Mumbai", stored.City)
}
