package handler_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/salesdesk/daily-report-api/internal/api/handler"
	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

type customerServiceStub struct {
	list   func(ctx context.Context, in ports.ListCustomersInput) (*ports.CustomerList, error)
	create func(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error)
	get    func(ctx context.Context, id int) (*domain.Customer, error)
	update func(ctx context.Context, id int, in ports.CustomerInput) (*domain.Customer, error)
	remove func(ctx context.Context, id int) error
}

func (s *customerServiceStub) List(ctx context.Context, in ports.ListCustomersInput) (*ports.CustomerList, error) {
	return s.list(ctx, in)
}

func (s *customerServiceStub) Create(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	return s.create(ctx, in)
}

func (s *customerServiceStub) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return s.get(ctx, id)
}

func (s *customerServiceStub) Update(ctx context.Context, id int, in ports.CustomerInput) (*domain.Customer, error) {
	return s.update(ctx, id, in)
}

func (s *customerServiceStub) Delete(ctx context.Context, id int) error {
	return s.remove(ctx, id)
}

func TestCustomerListFilters(t *testing.T) {
	var gotIn ports.ListCustomersInput
	h := handler.NewCustomerHandler(&customerServiceStub{
		list: func(ctx context.Context, in ports.ListCustomersInput) (*ports.CustomerList, error) {
			gotIn = in
			return &ports.CustomerList{Items: []domain.Customer{}, Total: 0}, nil
		},
	})

	rec := doRequest(t, h.List, jsonRequest(http.MethodGet, "/master/customers?q=%E5%B1%B1%E7%94%B0&industry=%E8%A3%BD%E9%80%A0%E6%A5%AD", ""))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if gotIn.Query != "山田" || gotIn.Industry != "製造業" {
		t.Fatalf("query params not carried through: %+v", gotIn)
	}
}

func TestCustomerCreateMissingCompany(t *testing.T) {
	h := handler.NewCustomerHandler(&customerServiceStub{
		create: func(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
			t.Fatal("service must not be reached on validation failure")
			return nil, nil
		},
	})

	body := `{"name":"鈴木 一郎"}`
	rec := doRequest(t, h.Create, jsonRequest(http.MethodPost, "/master/customers", body))

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}
	if !hasDetail(decodeError(t, rec), "company_name") {
		t.Fatal("expected a detail for field company_name")
	}
}

func TestCustomerGetNotFound(t *testing.T) {
	h := handler.NewCustomerHandler(&customerServiceStub{
		get: func(ctx context.Context, id int) (*domain.Customer, error) {
			return nil, domain.ErrCustomerNotFound
		},
	})

	rec := doRequest(t, h.Get, jsonRequest(http.MethodGet, "/master/customers/42", ""), withParam("id", "42"))

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", rec.Code)
	}
	if env := decodeError(t, rec); env.Error.Code != "NOT_FOUND" {
		t.Fatalf("expected NOT_FOUND, got %q", env.Error.Code)
	}
}

func TestCustomerUpdate(t *testing.T) {
	h := handler.NewCustomerHandler(&customerServiceStub{
		update: func(ctx context.Context, id int, in ports.CustomerInput) (*domain.Customer, error) {
			return &domain.Customer{ID: id, Name: in.Name, CompanyName: in.CompanyName}, nil
		},
	})

	body := `{"name":"鈴木 一郎","company_name":"株式会社テスト"}`
	rec := doRequest(t, h.Update, jsonRequest(http.MethodPut, "/master/customers/5", body), withParam("id", "5"))

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}

	var env struct {
		Data struct {
			ID          int    `json:"id"`
			CompanyName string `json:"company_name"`
		} `json:"data"`
	}
	decodeJSON(t, rec, &env)
	if env.Data.ID != 5 || env.Data.CompanyName != "株式会社テスト" {
		t.Fatalf("unexpected payload: %+v", env.Data)
	}
}
