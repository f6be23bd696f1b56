package services

import "github.com/ancorzize0250/lokknowback/models"

type BusinessService struct {
	businesses BusinessRepository
}

func NewBusinessService(businesses BusinessRepository) *BusinessService {
	return &BusinessService{businesses: businesses}
}

type RegisterBusinessRequest struct {
	Nit                 string `json:"nit" validate:"required,max=255"`
	BusinessName        string `json:"business_name" validate:"required,max=255"`
	OwnerIdentification string `json:"owner_identification" validate:"required,max=255"`
	OwnerName           string `json:"owner_name" validate:"required,max=255"`
	Email               string `json:"email" validate:"required,email,max=255"`
	Phone               string `json:"phone" validate:"required,max=20"`
	BusinessAddress     string `json:"business_address" validate:"required,max=255"`
	Password            string `json:"password" validate:"required,min=8"`
}

func (s *BusinessService) RegisterBusiness(req RegisterBusinessRequest) (*models.Business, error) {
	ve := newValidationError()
	collectStruct(ve, req, "")

	if req.Nit != "" {
		taken, err := s.businesses.ExistsByNit(req.Nit, 0)
		if err != nil {
			return nil, err
		}
		if taken {
			ve.add("nit", takenMessage("nit"))
		}
	}
	if req.Email != "" {
		taken, err := s.businesses.ExistsByEmail(req.Email, 0)
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

	business := &models.Business{
		Nit:                 req.Nit,
		BusinessName:        req.BusinessName,
		OwnerIdentification: req.OwnerIdentification,
		OwnerName:           req.OwnerName,
		Email:               req.Email,
		Phone:               req.Phone,
		BusinessAddress:     req.BusinessAddress,
		Password:            hashed,
	}
	if err := s.businesses.Create(business); err != nil {
		return nil, err
	}
	return business, nil
}

// EditBusinessRequest carries the business id plus any subset of fields to
// rewrite; absent fields keep their stored value.
type EditBusinessRequest struct {
	ID                  *uint   `json:"id" validate:"required"`
	Nit                 *string `json:"nit" validate:"omitempty,max=255"`
	BusinessName        *string `json:"business_name" validate:"omitempty,max=255"`
	OwnerIdentification *string `json:"owner_identification" validate:"omitempty,max=255"`
	OwnerName           *string `json:"owner_name" validate:"omitempty,max=255"`
	Email               *string `json:"email" validate:"omitempty,email,max=255"`
	Phone               *string `json:"phone" validate:"omitempty,max=20"`
	BusinessAddress     *string `json:"business_address" validate:"omitempty,max=255"`
	Password            *string `json:"password" validate:"omitempty,min=8"`
}

func (s *BusinessService) EditBusiness(req EditBusinessRequest) (*models.Business, error) {
	ve := newValidationError()
	collectStruct(ve, req, "")

	var business *models.Business
	if req.ID != nil {
		found, err := s.businesses.FindByID(*req.ID)
		if err != nil {
			return nil, err
		}
		if found == nil {
			ve.add("id", "The selected id is invalid.")
		}
		business = found
	}

	// Uniqueness excludes the business's own row so resubmitting the
	// current nit or email is not a violation.
	if business != nil && req.Nit != nil {
		taken, err := s.businesses.ExistsByNit(*req.Nit, business.ID)
		if err != nil {
			return nil, err
		}
		if taken {
			ve.add("nit", takenMessage("nit"))
		}
	}
	if business != nil && req.Email != nil {
		taken, err := s.businesses.ExistsByEmail(*req.Email, business.ID)
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

	if req.Nit != nil {
		business.Nit = *req.Nit
	}
	if req.BusinessName != nil {
		business.BusinessName = *req.BusinessName
	}
	if req.OwnerIdentification != nil {
		business.OwnerIdentification = *req.OwnerIdentification
	}
	if req.OwnerName != nil {
		business.OwnerName = *req.OwnerName
	}
	if req.Email != nil {
		business.Email = *req.Email
	}
	if req.Phone != nil {
		business.Phone = *req.Phone
	}
	if req.BusinessAddress != nil {
		business.BusinessAddress = *req.BusinessAddress
	}
	if req.Password != nil {
		hashed, err := hashPassword(*req.Password)
		if err != nil {
			return nil, err
		}
		business.Password = hashed
	}

	if err := s.businesses.Update(business); err != nil {
		return nil, err
	}
	return business, nil
}
