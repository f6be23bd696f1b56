package services

import "github.com/ancorzize0250/lokknowback/models"

type ClientService struct {
	clients ClientRepository
}

func NewClientService(clients ClientRepository) *ClientService {
	return &ClientService{clients: clients}
}

type RegisterClientRequest struct {
	Identification string `json:"identification" validate:"required,max=255"`
	Name           string `json:"name" validate:"required,max=255"`
	Email          string `json:"email" validate:"required,email,max=255"`
	Phone          string `json:"phone" validate:"required,max=20"`
	Password       string `json:"password" validate:"required,min=8"`
}

// RegisterClient validates the payload, checks uniqueness against the store
// and persists the client with the password hashed. Every violated field is
// reported together; nothing is written on failure.
func (s *ClientService) RegisterClient(req RegisterClientRequest) (*models.Client, error) {
	ve := newValidationError()
	collectStruct(ve, req, "")

	if req.Identification != "" {
		taken, err := s.clients.ExistsByIdentification(req.Identification)
		if err != nil {
			return nil, err
		}
		if taken {
			ve.add("identification", takenMessage("identification"))
		}
	}
	if req.Email != "" {
		taken, err := s.clients.ExistsByEmail(req.Email)
		if err != nil {
			return nil, err
		}
		if taken {
			ve.add("email", takenMessage("email"))
		}
	}
	if err := ve.orNil(); err != nil {
		return nil, err
	}

	hashed, err := hashPassword(req.Password)
	if err != nil {
		return nil, err
	}

	client := &models.Client{
		Identification: req.Identification,
		Name:           req.Name,
		Email:          req.Email,
		Phone:          req.Phone,
		Password:       hashed,
	}
	if err := s.clients.Create(client); err != nil {
		return nil, err
	}
	return client, nil
}
