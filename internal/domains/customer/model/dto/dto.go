package dto

import (
	"fmt"
	"strings"

	"frontdesk/internal/domains/customer/model"
	"frontdesk/shared"
	gDto "frontdesk/shared/dto"
	gModel "frontdesk/shared/model"
	"frontdesk/shared/timezone"
)

type CreateCustomerRequest struct {
	Name     string `json:"name"      validate:"required,max=100"`
	Email    string `json:"email"     validate:"omitempty,email,max=100"`
	Phone    string `json:"phone"     validate:"required,len=10,numeric"`
	Address  string `json:"address"   validate:"omitempty,max=255"`
	IDType   string `json:"id_type"   validate:"omitempty,max=50"`
	IDNumber string `json:"id_number" validate:"omitempty,max=50"`
}

func (c *CreateCustomerRequest) ToModel(seq int64, operator string) model.Customer {
	return model.Customer{
		ID:       fmt.Sprintf("CUST%03d", seq),
		Name:     c.Name,
		Email:    c.Email,
		Phone:    c.Phone,
		Address:  c.Address,
		IDType:   c.IDType,
		IDNumber: c.IDNumber,
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  operator,
			ModifiedBy: operator,
		},
	}
}

type UpdateCustomerRequest struct {
	Name     string `json:"name"      validate:"omitempty,max=100"`
	Email    string `json:"email"     validate:"omitempty,email,max=100"`
	Phone    string `json:"phone"     validate:"omitempty,len=10,numeric"`
	Address  string `json:"address"   validate:"omitempty,max=255"`
	IDType   string `json:"id_type"   validate:"omitempty,max=50"`
	IDNumber string `json:"id_number" validate:"omitempty,max=50"`
}

// ApplyTo overwrites only the fields present in the request. The identifier
// never changes.
func (u *UpdateCustomerRequest) ApplyTo(customer *model.Customer, operator string) {
	if u.Name != "" {
		customer.Name = u.Name
	}

	if u.Email != "" {
		customer.Email = u.Email
	}

	if u.Phone != "" {
		customer.Phone = u.Phone
	}

	if u.Address != "" {
		customer.Address = u.Address
	}

	if u.IDType != "" {
		customer.IDType = u.IDType
	}

	if u.IDNumber != "" {
		customer.IDNumber = u.IDNumber
	}

	customer.ModifiedAt = timezone.Now()
	customer.ModifiedBy = operator
}

type CustomerFilter struct {
	Search string `json:"search"`
}

// Matches does a case-insensitive substring scan over name, phone and id.
func (f CustomerFilter) Matches(customer model.Customer) bool {
	if f.Search == "" {
		return true
	}

	needle := strings.ToLower(f.Search)

	return strings.Contains(strings.ToLower(customer.Name), needle) ||
		strings.Contains(customer.Phone, needle) ||
		strings.Contains(strings.ToLower(customer.ID), needle)
}

type CustomerResponse struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Email    string `json:"email"`
	Phone    string `json:"phone"`
	Address  string `json:"address,omitempty"`
	IDType   string `json:"id_type,omitempty"`
	IDNumber string `json:"id_number,omitempty"`
	gDto.Metadata
}

func (r *CustomerResponse) FromModel(model model.Customer) {
	r.ID = model.ID
	r.Name = model.Name
	r.Email = model.Email
	r.Phone = model.Phone
	r.Address = model.Address
	r.IDType = model.IDType
	r.IDNumber = model.IDNumber
	r.Metadata.FromModel(model.Metadata)
}

type GetCustomersResponse struct {
	Customers []CustomerResponse `json:"customers"`
	TotalPage int                `json:"total_page"`
	TotalData int                `json:"total_data"`
}

func (r *GetCustomersResponse) FromModels(models []model.Customer, totalData, limit int) {
	r.TotalData = totalData
	r.TotalPage = shared.CalculateTotalPage(totalData, limit)

	r.Customers = make([]CustomerResponse, len(models))
	for i, mod := range models {
		r.Customers[i].FromModel(mod)
	}
}
