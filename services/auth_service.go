package services

import (
	"golang.org/x/crypto/bcrypt"
)

const (
	UserTypeClient   = "client"
	UserTypeBusiness = "business"
)

type AuthService struct {
	clients    ClientRepository
	businesses BusinessRepository
}

func NewAuthService(clients ClientRepository, businesses BusinessRepository) *AuthService {
	return &AuthService{clients: clients, businesses: businesses}
}

// AuthenticatedUser is the single shape both identity kinds collapse into.
type AuthenticatedUser struct {
	UserType string   `json:"userType"`
	User     UserInfo `json:"user"`
}

type UserInfo struct {
	ID             uint   `json:"id"`
	Identification string `json:"identification"`
	Name           string `json:"name"`
	Email          string `json:"email"`
	Phone          string `json:"phone"`
}

type loginInput struct {
	UserType string `json:"userType" validate:"required,oneof=client business"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// Login authenticates against the store matching userType. A nil result
// means the credentials did not match; unknown email and wrong password are
// deliberately indistinguishable.
func (s *AuthService) Login(userType, email, password string) (*AuthenticatedUser, error) {
	ve := newValidationError()
	collectStruct(ve, loginInput{UserType: userType, Email: email, Password: password}, "")
	if err := ve.orNil(); err != nil {
		return nil, err
	}

	switch userType {
	case UserTypeClient:
		client, err := s.clients.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		if client == nil || !checkPassword(client.Password, password) {
			return nil, nil
		}
		return &AuthenticatedUser{
			UserType: UserTypeClient,
			User: UserInfo{
				ID:             client.ID,
				Identification: client.Identification,
				Name:           client.Name,
				Email:          client.Email,
				Phone:          client.Phone,
			},
		}, nil

	case UserTypeBusiness:
		business, err := s.businesses.FindByEmail(email)
		if err != nil {
			return nil, err
		}
		if business == nil || !checkPassword(business.Password, password) {
			return nil, nil
		}
		// nit and business_name take the identification and name slots.
		return &AuthenticatedUser{
			UserType: UserTypeBusiness,
			User: UserInfo{
				ID:             business.ID,
				Identification: business.Nit,
				Name:           business.BusinessName,
				Email:          business.Email,
				Phone:          business.Phone,
			},
		}, nil
	}

	return nil, nil
}

func hashPassword(password string) (string, error) {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hashed), nil
}

func checkPassword(hashed, password string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hashed), []byte(password)) == nil
}
