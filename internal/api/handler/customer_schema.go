package handler

import (
	"time"

	"github.com/salesdesk/daily-report-api/internal/core/domain"
	"github.com/salesdesk/daily-report-api/internal/core/ports"
)

type customerRequest struct {
	Name        string  `json:"name"         validate:"required"`
	CompanyName string  `json:"company_name" validate:"required"`
	Department  *string `json:"department"`
	Industry    *string `json:"industry"`
	ContactName *string `json:"contact_name"`
	DealSize    *string `json:"deal_size"`
	Phone       *string `json:"phone"`
	Address     *string `json:"address"`
}

type customerResponse struct {
	ID          int       `json:"id"`
	Name        string    `json:"name"`
	CompanyName string    `json:"company_name"`
	Department  *string   `json:"department"`
	Industry    *string   `json:"industry"`
	ContactName *string   `json:"contact_name"`
	DealSize    *string   `json:"deal_size"`
	Phone       *string   `json:"phone"`
	Address     *string   `json:"address"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}

func toCustomerInput(req customerRequest) ports.CustomerInput {
	return ports.CustomerInput{
		Name:        req.Name,
		CompanyName: req.CompanyName,
		Department:  req.Department,
		Industry:    req.Industry,
		ContactName: req.ContactName,
		DealSize:    req.DealSize,
		Phone:       req.Phone,
		Address:     req.Address,
	}
}

func toCustomerResponse(cu *domain.Customer) customerResponse {
	return customerResponse{
		ID:          cu.ID,
		Name:        cu.Name,
		CompanyName: cu.CompanyName,
		Department:  cu.Department,
		Industry:    cu.Industry,
		ContactName: cu.ContactName,
		DealSize:    cu.DealSize,
		Phone:       cu.Phone,
		Address:     cu.Address,
		CreatedAt:   cu.CreatedAt.UTC(),
		UpdatedAt:   cu.UpdatedAt.UTC(),
	}
}

func toCustomerListResponse(items []domain.Customer) []customerResponse {
	out := make([]customerResponse, len(items))
	for i := range items {
		out[i] = toCustomerResponse(&items[i])
	}
	return out
}
