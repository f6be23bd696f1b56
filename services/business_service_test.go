package services_test

import (
	"errors"
	"testing"

	"github.com/ancorzize0250/lokknowback/services"
	"golang.org/x/crypto/bcrypt"
)

func validBusinessRequest() services.RegisterBusinessRequest {
	return services.RegisterBusinessRequest{
		Nit:                 "NIT123",
		BusinessName:        "Test Business",
		OwnerIdentification: "OWNERID",
		OwnerName:           "Test Owner",
		Email:               "business@example.com",
		Phone:               "0987654321",
		BusinessAddress:     "Business Address",
		Password:            "businesspass",
	}
}

func ptr[T any](v T) *T { return &v }

func TestRegisterBusinessSuccess(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc := services.NewBusinessService(repo)

	business, err := svc.RegisterBusiness(validBusinessRequest())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}
	if business.ID == 0 || business.Nit != "NIT123" {
		t.Fatalf("unexpected created entity: %+v", business)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(business.Password), []byte("businesspass")); err != nil {
		t.Fatal("stored password must be a bcrypt hash of the input")
	}
}

func TestRegisterBusinessRejectsDuplicateNit(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc := services.NewBusinessService(repo)

	if _, err := svc.RegisterBusiness(validBusinessRequest()); err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	req := validBusinessRequest()
	req.Email = "other@example.com"
	_, err := svc.RegisterBusiness(req)
	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if len(ve.Fields["nit"]) == 0 {
		t.Fatalf("expected the nit to be reported taken, got %v", ve.Fields)
	}
}

func TestSameEmailAcrossIdentityKinds(t *testing.T) {
	clientSvc := services.NewClientService(&fakeClientRepo{})
	businessSvc := services.NewBusinessService(&fakeBusinessRepo{})

	clientReq := validClientRequest()
	clientReq.Email = "shared@example.com"
	if _, err := clientSvc.RegisterClient(clientReq); err != nil {
		t.Fatalf("client register failed: %v", err)
	}

	businessReq := validBusinessRequest()
	businessReq.Email = "shared@example.com"
	if _, err := businessSvc.RegisterBusiness(businessReq); err != nil {
		t.Fatalf("the same email must be allowed across kinds: %v", err)
	}
}

func TestEditBusinessPartialUpdate(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc := services.NewBusinessService(repo)

	created, err := svc.RegisterBusiness(validBusinessRequest())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.EditBusiness(services.EditBusinessRequest{
		ID:    ptr(created.ID),
		Phone: ptr("5555555555"),
	})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if updated.Phone != "5555555555" {
		t.Fatalf("phone not rewritten: %+v", updated)
	}
	if updated.Nit != created.Nit || updated.Email != created.Email || updated.BusinessName != created.BusinessName {
		t.Fatalf("untouched fields must keep their values: %+v", updated)
	}
}

func TestEditBusinessUnknownID(t *testing.T) {
	svc := services.NewBusinessService(&fakeBusinessRepo{})

	_, err := svc.EditBusiness(services.EditBusinessRequest{ID: ptr(uint(99))})
	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if len(ve.Fields["id"]) == 0 {
		t.Fatalf("expected an id violation, got %v", ve.Fields)
	}
}

func TestEditBusinessKeepsOwnEmail(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc := services.NewBusinessService(repo)

	created, err := svc.RegisterBusiness(validBusinessRequest())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	if _, err := svc.EditBusiness(services.EditBusinessRequest{
		ID:    ptr(created.ID),
		Email: ptr(created.Email),
	}); err != nil {
		t.Fatalf("resubmitting the current email must not be a violation: %v", err)
	}
}

func TestEditBusinessRejectsTakenEmail(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc := services.NewBusinessService(repo)

	first, err := svc.RegisterBusiness(validBusinessRequest())
	if err != nil {
		t.Fatalf("first register failed: %v", err)
	}

	second := validBusinessRequest()
	second.Nit = "NIT456"
	second.Email = "second@example.com"
	other, err := svc.RegisterBusiness(second)
	if err != nil {
		t.Fatalf("second register failed: %v", err)
	}

	_, err = svc.EditBusiness(services.EditBusinessRequest{
		ID:    ptr(other.ID),
		Email: ptr(first.Email),
	})
	var ve *services.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected a validation error, got %v", err)
	}
	if len(ve.Fields["email"]) == 0 {
		t.Fatalf("expected the email to be reported taken, got %v", ve.Fields)
	}
}

func TestEditBusinessRehashesPassword(t *testing.T) {
	repo := &fakeBusinessRepo{}
	svc := services.NewBusinessService(repo)

	created, err := svc.RegisterBusiness(validBusinessRequest())
	if err != nil {
		t.Fatalf("register failed: %v", err)
	}

	updated, err := svc.EditBusiness(services.EditBusinessRequest{
		ID:       ptr(created.ID),
		Password: ptr("newsecret123"),
	})
	if err != nil {
		t.Fatalf("edit failed: %v", err)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(updated.Password), []byte("newsecret123")); err != nil {
		t.Fatal("updated password must be stored hashed")
	}
}
