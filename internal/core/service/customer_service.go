package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

// CustomerService implements customer master data use cases.
type CustomerService struct {
	repo   ports.CustomerRepository
	logger zerolog.Logger
}

func NewCustomerService(repo ports.CustomerRepository, logger zerolog.Logger) *CustomerService {
	return &CustomerService{repo: repo, logger: logger}
}

func (s *CustomerService) List(ctx context.Context, in ports.ListCustomersInput) (*ports.CustomerList, error) {
	customers, total, err := s.repo.List(ctx, ports.CustomerFilter{
		Query:    in.Query,
		Industry: in.Industry,
		Limit:    in.Page.PerPage,
		Offset:   in.Page.Offset(),
	})
	if err != nil {
		return nil, err
	}
	return &ports.CustomerList{Items: customers, Total: total}, nil
}

func (s *CustomerService) Create(ctx context.Context, in ports.CustomerInput) (*domain.Customer, error) {
	customer := &domain.Customer{
		Name:        in.Name,
		CompanyName: in.CompanyName,
		Department:  in.Department,
		Industry:    in.Industry,
		ContactName: in.ContactName,
		DealSize:    in.DealSize,
		Phone:       in.Phone,
		Address:     in.Address,
	}
	if err := s.repo.Create(ctx, customer); err != nil {
		return nil, err
	}
	s.logger.Info().Int("customer_id", customer.ID).Msg("customer created")
	return customer, nil
}

func (s *CustomerService) Get(ctx context.Context, id int) (*domain.Customer, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *CustomerService) Update(ctx context.Context, id int, in ports.CustomerInput) (*domain.Customer, error) {
	customer, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	customer.Name = in.Name
	customer.CompanyName = in.CompanyName
	customer.Department = in.Department
	customer.Industry = in.Industry
	customer.ContactName = in.ContactName
	customer.DealSize = in.DealSize
	customer.Phone = in.Phone
	customer.Address = in.Address

	if err := s.repo.Update(ctx, customer); err != nil {
		return nil, err
	}
	s.logger.Info().Int("customer_id", customer.ID).Msg("customer updated")
	return customer, nil
}

func (s *CustomerService) Delete(ctx context.Context, id int) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.logger.Info().Int("customer_id", id).Msg("customer deleted")
	return nil
}
