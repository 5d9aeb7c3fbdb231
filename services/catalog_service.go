package services

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/yeremiapane/order-management-api/models"
)

// CatalogService owns the category and product tables, including the
// referential deletion guards.
type CatalogService struct {
	DB *gorm.DB
}

func NewCatalogService(db *gorm.DB) *CatalogService {
	return &CatalogService{DB: db}
}

func (cs *CatalogService) GetAllCategories() ([]models.Category, error) {
	var categories []models.Category
	if err := cs.DB.Find(&categories).Error; err != nil {
		return nil, err
	}
	return categories, nil
}

func (cs *CatalogService) GetCategoryByID(id uint) (*models.Category, error) {
	var category models.Category
	if err := cs.DB.First(&category, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Category", Field: "id", Value: id}
		}
		return nil, err
	}
	return &category, nil
}

func (cs *CatalogService) SaveCategory(name, details string) (*models.Category, error) {
	category := models.Category{Name: name, Details: details}
	if err := cs.DB.Create(&category).Error; err != nil {
		if IsDuplicateErr(err) {
			return nil, &ValidationError{Reason: "category name must be unique"}
		}
		return nil, fmt.Errorf("failed to save the category: %w", err)
	}
	return &category, nil
}

func (cs *CatalogService) UpdateCategory(id uint, name, details string) (*models.Category, error) {
	category, err := cs.GetCategoryByID(id)
	if err != nil {
		return nil, err
	}

	category.Name = name
	category.Details = details
	if err := cs.DB.Save(category).Error; err != nil {
		if IsDuplicateErr(err) {
			return nil, &ValidationError{Reason: "category name must be unique"}
		}
		return nil, fmt.Errorf("failed to update the category: %w", err)
	}
	return category, nil
}

// DeleteCategory removes a category after confirming it exists. A category
// still referenced by products cannot be deleted.
func (cs *CatalogService) DeleteCategory(id uint) error {
	category, err := cs.GetCategoryByID(id)
	if err != nil {
		return err
	}
	if err := cs.DB.Delete(category).Error; err != nil {
		if IsForeignKeyErr(err) {
			return &ConflictError{
				Resource: "Category",
				Reason:   fmt.Sprintf("category %d is associated with existing products and cannot be deleted", id),
			}
		}
		return fmt.Errorf("failed to delete the category: %w", err)
	}
	return nil
}

func (cs *CatalogService) GetAllProducts() ([]models.Product, error) {
	var products []models.Product
	if err := cs.DB.Find(&products).Error; err != nil {
		return nil, err
	}
	return products, nil
}

func (cs *CatalogService) GetProductByID(id uint) (*models.Product, error) {
	var product models.Product
	if err := cs.DB.First(&product, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Resource: "Product", Field: "id", Value: id}
		}
		return nil, err
	}
	return &product, nil
}

func (cs *CatalogService) SaveProduct(name string, price float64, thumbnail, details string, categoryID uint, quantity int) (*models.Product, error) {
	if price < 0 {
		return nil, &ValidationError{Reason: "price must not be negative"}
	}
	if quantity < 0 {
		return nil, &ValidationError{Reason: "quantity must not be negative"}
	}
	if _, err := cs.GetCategoryByID(categoryID); err != nil {
		return nil, err
	}

	product := models.Product{
		Name:       name,
		Price:      price,
		Thumbnail:  thumbnail,
		Details:    details,
		CategoryID: categoryID,
		Quantity:   quantity,
	}
	if err := cs.DB.Create(&product).Error; err != nil {
		if IsDuplicateErr(err) {
			return nil, &ValidationError{Reason: "product name must be unique"}
		}
		return nil, fmt.Errorf("failed to save the product: %w", err)
	}
	return &product, nil
}

// UpdateProduct replaces every mutable field, the caller supplies the full
// set.
func (cs *CatalogService) UpdateProduct(id uint, name string, price float64, thumbnail, details string, categoryID uint, quantity int) (*models.Product, error) {
	product, err := cs.GetProductByID(id)
	if err != nil {
		return nil, err
	}
	if _, err := cs.GetCategoryByID(categoryID); err != nil {
		return nil, err
	}
	if price < 0 {
		return nil, &ValidationError{Reason: "price must not be negative"}
	}
	if quantity < 0 {
		return nil, &ValidationError{Reason: "quantity must not be negative"}
	}

	product.Name = name
	product.Price = price
	product.Thumbnail = thumbnail
	product.Details = details
	product.CategoryID = categoryID
	product.Quantity = quantity
	if err := cs.DB.Save(product).Error; err != nil {
		if IsDuplicateErr(err) {
			return nil, &ValidationError{Reason: "product name must be unique"}
		}
		return nil, fmt.Errorf("failed to update the product: %w", err)
	}
	return product, nil
}

// DeleteProduct removes a product after confirming it exists. Orders or
// reviews that still reference the product block the delete.
func (cs *CatalogService) DeleteProduct(id uint) error {
	product, err := cs.GetProductByID(id)
	if err != nil {
		return err
	}
	if err := cs.DB.Delete(product).Error; err != nil {
		if IsForeignKeyErr(err) {
			return &ConflictError{
				Resource: "Product",
				Reason:   "associated data prevents deletion, cannot delete the product",
			}
		}
		return fmt.Errorf("failed to delete the product: %w", err)
	}
	return nil
}
