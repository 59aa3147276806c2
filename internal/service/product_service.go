package service

import (
	"errors"
	"fmt"

	"go-store-api/internal/model"
	"go-store-api/internal/repository"
	"go-store-api/pkg/validator"
)

var ErrProductNotFound = errors.New("product not found")

type ProductService interface {
	CreateProduct(req *ProductRequest) (*model.Product, error)
	GetAvailableProducts() ([]model.ProductResponse, error)
	GetProductByID(id int) (*model.ProductResponse, error)
	UpdateProduct(id int, req *ProductRequest) (*model.Product, error)
	DeleteProduct(id int) error
}

// ProductRequest is used for both creation and update; an update replaces
// every client-settable field. Price is a pointer so a literal 0 passes
// 'required' while a missing field does not.
type ProductRequest struct {
	Name        string  `json:"name" validate:"required,max=100"`
	Description *string `json:"description" validate:"omitempty,max=500"`
	Price       *int64  `json:"price" validate:"required"`
	IsAvailable *bool   `json:"is_available"`
}

type productService struct {
	productRepo repository.ProductRepository
}

func NewProductService(productRepo repository.ProductRepository) ProductService {
	return &productService{productRepo: productRepo}
}

func (s *productService) validate(req *ProductRequest) error {
	if errs := validator.ValidateStruct(req); len(errs) > 0 {
		firstErr := errs[0]
		return fmt.Errorf("%w: field '%s' failed on rule '%s'", ErrValidation, firstErr.FailedField, firstErr.Tag)
	}
	return nil
}

// availability defaults to true when the client omits the field.
func availability(req *ProductRequest) bool {
	if req.IsAvailable != nil {
		return *req.IsAvailable
	}
	return true
}

func (s *productService) CreateProduct(req *ProductRequest) (*model.Product, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	product := &model.Product{
		Name:        req.Name,
		Description: req.Description,
		Price:       *req.Price,
		IsAvailable: availability(req),
	}
	if err := s.productRepo.Create(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) GetAvailableProducts() ([]model.ProductResponse, error) {
	products, err := s.productRepo.FindAvailable()
	if err != nil {
		return nil, err
	}

	responses := make([]model.ProductResponse, len(products))
	for i, product := range products {
		responses[i] = product.ToResponse()
	}
	return responses, nil
}

func (s *productService) GetProductByID(id int) (*model.ProductResponse, error) {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}
	response := product.ToResponse()
	return &response, nil
}

func (s *productService) UpdateProduct(id int, req *ProductRequest) (*model.Product, error) {
	if err := s.validate(req); err != nil {
		return nil, err
	}

	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrProductNotFound
		}
		return nil, err
	}

	// Full replace: every client-settable field is overwritten, only ID and
	// CreatedAt survive from the prior version.
	product.Name = req.Name
	product.Description = req.Description
	product.Price = *req.Price
	product.IsAvailable = availability(req)

	if err := s.productRepo.Update(product); err != nil {
		return nil, err
	}

	return product, nil
}

func (s *productService) DeleteProduct(id int) error {
	product, err := s.productRepo.FindByID(id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrProductNotFound
		}
		return err
	}

	// Soft delete: the row stays in storage permanently.
	product.IsAvailable = false
	return s.productRepo.Update(product)
}
