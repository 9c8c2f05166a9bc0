package services

import (
	"errors"

	"gorm.io/gorm"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// categoryService handles category-related business logic.
type categoryService struct {
	db *gorm.DB
}

// NewCategoryService creates a new CategoryServicer.
func NewCategoryService(db *gorm.DB) CategoryServicer {
	return &categoryService{db: db}
}

// defaultCategories is the starter set seeded for every new user.
var defaultCategories = []models.Category{
	{Name: "Salary", Type: models.CategoryTypeIncome, Color: "#4CAF50", Icon: "💰", IsDefault: true},
	{Name: "Other Income", Type: models.CategoryTypeIncome, Color: "#8BC34A", Icon: "🪙", IsDefault: true},
	{Name: "Food & Dining", Type: models.CategoryTypeExpense, Color: "#FF5722", Icon: "🍽️", IsDefault: true},
	{Name: "Transport", Type: models.CategoryTypeExpense, Color: "#2196F3", Icon: "🚌", IsDefault: true},
	{Name: "Housing", Type: models.CategoryTypeExpense, Color: "#795548", Icon: "🏠", IsDefault: true},
	{Name: "Utilities", Type: models.CategoryTypeExpense, Color: "#607D8B", Icon: "💡", IsDefault: true},
	{Name: "Entertainment", Type: models.CategoryTypeExpense, Color: "#9C27B0", Icon: "🎬", IsDefault: true},
	{Name: "Healthcare", Type: models.CategoryTypeExpense, Color: "#F44336", Icon: "🏥", IsDefault: true},
	{Name: "Shopping", Type: models.CategoryTypeExpense, Color: "#E91E63", Icon: "🛍️", IsDefault: true},
	{Name: "Other", Type: models.CategoryTypeExpense, Color: "#9E9E9E", Icon: "📦", IsDefault: true},
}

// CreateCategory creates a new custom category for a user.
func (s *categoryService) CreateCategory(
	userID string,
	name string,
	categoryType models.CategoryType,
	color string,
	icon string,
) (*models.Category, error) {
	// Validate input
	if name == "" {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name is required")
	}
	if categoryType != models.CategoryTypeIncome && categoryType != models.CategoryTypeExpense {
		return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category type must be income or expense")
	}

	// Category names are unique per user
	var count int64
	if err := s.db.Model(&models.Category{}).
		Where("user_id = ? AND name = ?", userID, name).
		Count(&count).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil, apperrors.ErrDuplicateCategory
	}

	category := &models.Category{
		UserID: userID,
		Name:   name,
		Type:   categoryType,
		Color:  color,
		Icon:   icon,
	}

	if err := s.db.Create(category).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}

	return category, nil
}

// SeedDefaultCategories creates the starter category set for a new user.
// It is a no-op if the user already has categories.
func (s *categoryService) SeedDefaultCategories(userID string) error {
	var count int64
	if err := s.db.Model(&models.Category{}).Where("user_id = ?", userID).Count(&count).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if count > 0 {
		return nil
	}

	return s.db.Transaction(func(tx *gorm.DB) error {
		for _, c := range defaultCategories {
			category := c
			category.UserID = userID
			if err := tx.Create(&category).Error; err != nil {
				return apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
		}
		return nil
	})
}

// GetUserCategories retrieves all categories for a user, optionally
// filtered by type, ordered by name.
func (s *categoryService) GetUserCategories(userID string, categoryType *models.CategoryType) ([]models.Category, error) {
	q := s.db.Where("user_id = ?", userID)
	if categoryType != nil {
		q = q.Where("type = ?", *categoryType)
	}

	var categories []models.Category
	if err := q.Order("name ASC").Find(&categories).Error; err != nil {
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return categories, nil
}

// GetCategoryByID retrieves a category by ID for a specific user.
// Existence and ownership are checked together so callers cannot
// distinguish another user's category from a missing one.
func (s *categoryService) GetCategoryByID(userID, categoryID string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("id = ? AND user_id = ?", categoryID, userID).First(&category).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrCategoryNotFound
		}
		return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return &category, nil
}

// UpdateCategory updates an existing non-default category. Unset fields
// are left unchanged; the category type is immutable.
func (s *categoryService) UpdateCategory(userID, categoryID string, fields CategoryUpdateFields) (*models.Category, error) {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return nil, err
	}

	if category.IsDefault {
		return nil, apperrors.ErrDefaultCategory
	}

	updates := make(map[string]interface{})
	if fields.Name != nil {
		if *fields.Name == "" {
			return nil, apperrors.WithMessage(apperrors.ErrInvalidInput, "category name cannot be empty")
		}
		if *fields.Name != category.Name {
			var count int64
			if err := s.db.Model(&models.Category{}).
				Where("user_id = ? AND name = ?", userID, *fields.Name).
				Count(&count).Error; err != nil {
				return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
			}
			if count > 0 {
				return nil, apperrors.ErrDuplicateCategory
			}
		}
		updates["name"] = *fields.Name
	}
	if fields.Color != nil {
		updates["color"] = *fields.Color
	}
	if fields.Icon != nil {
		updates["icon"] = *fields.Icon
	}

	if len(updates) > 0 {
		if err := s.db.Model(category).Updates(updates).Error; err != nil {
			return nil, apperrors.Wrap(apperrors.ErrInternalServer, err)
		}
	}

	return s.GetCategoryByID(userID, categoryID)
}

// DeleteCategory deletes a non-default category that no transaction
// references. The in-use check keeps breakdown joins intact.
func (s *categoryService) DeleteCategory(userID, categoryID string) error {
	category, err := s.GetCategoryByID(userID, categoryID)
	if err != nil {
		return err
	}

	if category.IsDefault {
		return apperrors.ErrDefaultCategory
	}

	var txCount int64
	if err := s.db.Model(&models.Transaction{}).
		Where("user_id = ? AND category_id = ?", userID, categoryID).
		Count(&txCount).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	if txCount > 0 {
		return apperrors.ErrCategoryInUse
	}

	if err := s.db.Delete(category).Error; err != nil {
		return apperrors.Wrap(apperrors.ErrInternalServer, err)
	}
	return nil
}
