package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"

	"taller_movil/internal/domain/entities"
	"taller_movil/internal/usecase/interfaces"
)

var (
	ErrInvalidSearchTerm = errors.New("invalid search term")
)

// ICustomerDirectoryUseCase exposes the directory operations the customer
// section needs: find an existing customer or register a new one.

type ICustomerDirectoryUseCase interface {
	Search(ctx context.Context, term string) ([]entities.Customer, error)
	Create(ctx context.Context, c entities.Customer) (entities.Customer, error)
}

type CustomerDirectoryUseCase struct {
	directory interfaces.ICustomerDirectory
}

var _ ICustomerDirectoryUseCase = (*CustomerDirectoryUseCase)(nil)

func NewCustomerDirectoryUseCase(directory interfaces.ICustomerDirectory) *CustomerDirectoryUseCase {
	return &CustomerDirectoryUseCase{directory: directory}
}

// Search finds customers by name, surname, phone or national id. An empty
// result is a valid "nothing found" state.
func (u *CustomerDirectoryUseCase) Search(ctx context.Context, term string) ([]entities.Customer, error) {
	term = strings.TrimSpace(term)
	if term == "" {
		return nil, ErrInvalidSearchTerm
	}
	return u.directory.Search(ctx, term)
}

func (u *CustomerDirectoryUseCase) Create(ctx context.Context, c entities.Customer) (entities.Customer, error) {
	if errs := c.ValidateInvariants(); len(errs) > 0 {
		return entities.Customer{}, errors.Join(append([]error{ErrInvalidCustomer}, errs...)...)
	}
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	c.CreatedAt = time.Now().UTC()
	return u.directory.Create(ctx, c)
}
