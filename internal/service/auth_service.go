package service

import (
	"errors"
	"regexp"
	"time"

	"freeco/config"
	"freeco/internal/auth"
	"freeco/internal/domain"
	"freeco/internal/location"
	"freeco/internal/models"
	"freeco/internal/repository"
	"freeco/pkg/mailer"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrUserExists       = errors.New("user with this email or phone number already exists")
	ErrPasswordMismatch = errors.New("passwords do not match")
	ErrInvalidCreds     = errors.New("invalid email or password")
	ErrInvalidOTP       = errors.New("invalid or expired OTP")
	ErrUserNotFound     = errors.New("user not found")
	ErrNotVerified      = errors.New("account not verified")
	ErrInvalidProfile   = errors.New("invalid profile fields")
)

var (
	phoneRe         = regexp.MustCompile(`^\d{10}$`)
	userPincodeRe   = regexp.MustCompile(`^\d{6}$`)
	registerEmailRe = regexp.MustCompile(`^[\w.+-]+@[\w-]+(\.[\w-]+)+$`)
)

type AuthService struct {
	cfg      *config.Config
	userRepo *repository.UserRepository
	mail     *mailer.Mailer
}

func NewAuthService(cfg *config.Config, userRepo *repository.UserRepository, mail *mailer.Mailer) *AuthService {
	return &AuthService{cfg: cfg, userRepo: userRepo, mail: mail}
}

type RegisterInput struct {
	FirstName       string
	LastName        string
	Email           string
	PhoneNumber     string
	Gender          string
	Pincode         string
	State           string
	City            string
	Password        string
	ConfirmPassword string
}

func (in *RegisterInput) validate() error {
	switch {
	case in.FirstName == "", in.LastName == "":
		return ErrInvalidProfile
	case !registerEmailRe.MatchString(in.Email):
		return ErrInvalidProfile
	case !phoneRe.MatchString(in.PhoneNumber):
		return ErrInvalidProfile
	case !domain.ValidGender(in.Gender):
		return ErrInvalidProfile
	case !userPincodeRe.MatchString(in.Pincode):
		return ErrInvalidProfile
	case !location.ValidState(in.State) || !location.ValidCity(in.State, in.City):
		return ErrInvalidProfile
	case len(in.Password) < 6:
		return ErrInvalidProfile
	}
	return nil
}

// Register creates an unverified user with role=user (client-supplied roles
// are ignored), generates an OTP and emails it. The OTP is also returned so
// non-production callers can complete verification without a mailbox.
func (s *AuthService) Register(in RegisterInput) (*models.User, string, error) {
	if err := in.validate(); err != nil {
		return nil, "", err
	}
	if in.Password != in.ConfirmPassword {
		return nil, "", ErrPasswordMismatch
	}
	if _, err := s.userRepo.GetByEmail(in.Email); err == nil {
		return nil, "", ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if _, err := s.userRepo.GetByPhone(in.PhoneNumber); err == nil {
		return nil, "", ErrUserExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, "", err
	}
	u := &models.User{
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Email:        in.Email,
		PhoneNumber:  in.PhoneNumber,
		Gender:       in.Gender,
		Pincode:      in.Pincode,
		State:        in.State,
		City:         in.City,
		Role:         domain.RoleUser,
		PasswordHash: string(hash),
		IsActive:     true,
	}
	otp := u.GenerateOTP()
	if err := s.userRepo.Create(u); err != nil {
		return nil, "", err
	}
	go s.mail.SendOTP(u.Email, u.FirstName, otp)
	return u, otp, nil
}

// VerifyOTP marks the user verified and issues a token.
func (s *AuthService) VerifyOTP(userID uint, code string) (*models.User, string, error) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}
	if !u.OTPValid(code, time.Now()) {
		return nil, "", ErrInvalidOTP
	}
	u.IsVerified = true
	u.ClearOTP()
	if err := s.userRepo.Update(u); err != nil {
		return nil, "", err
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

// Login authenticates by email and password. Unverified accounts get a
// fresh OTP by email and ErrNotVerified instead of a token.
func (s *AuthService) Login(email, password string) (*models.User, string, error) {
	u, err := s.userRepo.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if err := bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(password)); err != nil {
		return nil, "", ErrInvalidCreds
	}
	if !u.IsVerified {
		otp := u.GenerateOTP()
		if err := s.userRepo.Update(u); err != nil {
			return nil, "", err
		}
		go s.mail.SendOTP(u.Email, u.FirstName, otp)
		return u, "", ErrNotVerified
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, u.ID, u.Email, u.Role)
	if err != nil {
		return nil, "", err
	}
	return u, token, nil
}

type ProfileUpdateInput struct {
	FirstName   string
	LastName    string
	PhoneNumber string
	Pincode     string
	State       string
	City        string
}

// UpdateProfile applies the self-editable fields. Role, email, verification
// and approval flags are not touchable here.
func (s *AuthService) UpdateProfile(userID uint, in ProfileUpdateInput) (*models.User, error) {
	u, err := s.userRepo.GetByID(userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if in.FirstName != "" {
		u.FirstName = in.FirstName
	}
	if in.LastName != "" {
		u.LastName = in.LastName
	}
	if in.PhoneNumber != "" {
		if !phoneRe.MatchString(in.PhoneNumber) {
			return nil, ErrInvalidProfile
		}
		u.PhoneNumber = in.PhoneNumber
	}
	if in.Pincode != "" {
		if !userPincodeRe.MatchString(in.Pincode) {
			return nil, ErrInvalidProfile
		}
		u.Pincode = in.Pincode
	}
	if in.State != "" || in.City != "" {
		state := u.State
		city := u.City
		if in.State != "" {
			state = in.State
		}
		if in.City != "" {
			city = in.City
		}
		if !location.ValidState(state) || !location.ValidCity(state, city) {
			return nil, ErrInvalidProfile
		}
		u.State = state
		u.City = city
	}
	if err := s.userRepo.Update(u); err != nil {
		return nil, err
	}
	return u, nil
}
