package response

import "taller_movil/internal/domain/entities"

func FromCustomer(c entities.Customer) CustomerResponse {
	return CustomerResponse{
		ID:            c.ID,
		Name:          c.Name,
		Surname:       c.Surname,
		SecondSurname: c.SecondSurname,
		NationalID:    c.NationalID,
		Phone:         c.Phone,
		Email:         c.Email,
		Address:       c.Address,
	}
}

func FromCustomers(customers []entities.Customer) []CustomerResponse {
	out := make([]CustomerResponse, 0, len(customers))
	for _, c := range customers {
		out = append(out, FromCustomer(c))
	}
	return out
}
