package services

import (
	"testing"

	"fintrack/internal/models"
	"fintrack/internal/testutil"
)

func TestCreateCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		category, err := svc.CreateCategory(user.ID, "Groceries", models.CategoryTypeExpense, "#FF5722", "🛒")
		testutil.AssertNoError(t, err)

		if category.ID == "" {
			t.Fatal("expected non-empty category ID")
		}
		if category.IsDefault {
			t.Error("user-created category must not be default")
		}
	})

	t.Run("empty_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "", models.CategoryTypeExpense, "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("invalid_type", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Weird", models.CategoryType("transfer"), "", "")
		testutil.AssertAppError(t, err, "INVALID_INPUT")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(user.ID, "Groceries", models.CategoryTypeExpense, "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(user.ID, "Groceries", models.CategoryTypeExpense, "", "")
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})

	t.Run("same_name_different_users", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)

		_, err := svc.CreateCategory(alice.ID, "Groceries", models.CategoryTypeExpense, "", "")
		testutil.AssertNoError(t, err)

		_, err = svc.CreateCategory(bob.ID, "Groceries", models.CategoryTypeExpense, "", "")
		testutil.AssertNoError(t, err)
	})
}

func TestSeedDefaultCategories(t *testing.T) {
	t.Run("seeds_starter_set", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)

		testutil.AssertNoError(t, svc.SeedDefaultCategories(user.ID))

		categories, err := svc.GetUserCategories(user.ID, nil)
		testutil.AssertNoError(t, err)
		if len(categories) != len(defaultCategories) {
			t.Fatalf("expected %d seeded categories, got %d", len(defaultCategories), len(categories))
		}
		for _, c := range categories {
			if !c.IsDefault {
				t.Errorf("seeded category %q should be marked default", c.Name)
			}
		}
	})

	t.Run("noop_when_user_has_categories", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		testutil.AssertNoError(t, svc.SeedDefaultCategories(user.ID))

		categories, err := svc.GetUserCategories(user.ID, nil)
		testutil.AssertNoError(t, err)
		if len(categories) != 1 {
			t.Errorf("expected seeding to be skipped, got %d categories", len(categories))
		}
	})
}

func TestGetUserCategories(t *testing.T) {
	t.Run("ordered_by_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Zoo")
		testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Auto")

		categories, err := svc.GetUserCategories(user.ID, nil)
		testutil.AssertNoError(t, err)

		if len(categories) != 2 || categories[0].Name != "Auto" || categories[1].Name != "Zoo" {
			t.Errorf("expected alphabetical order, got %+v", categories)
		}
	})

	t.Run("type_filter", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeIncome)
		testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		income := models.CategoryTypeIncome
		categories, err := svc.GetUserCategories(user.ID, &income)
		testutil.AssertNoError(t, err)

		if len(categories) != 1 || categories[0].Type != models.CategoryTypeIncome {
			t.Errorf("expected a single income category, got %+v", categories)
		}
	})

	t.Run("user_isolation", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategory(t, db, alice.ID, models.CategoryTypeExpense)
		testutil.CreateTestCategory(t, db, bob.ID, models.CategoryTypeExpense)

		categories, err := svc.GetUserCategories(alice.ID, nil)
		testutil.AssertNoError(t, err)
		if len(categories) != 1 || categories[0].UserID != alice.ID {
			t.Errorf("expected only alice's categories, got %+v", categories)
		}
	})
}

func TestGetCategoryByID(t *testing.T) {
	t.Run("other_users_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		bobCategory := testutil.CreateTestCategory(t, db, bob.ID, models.CategoryTypeExpense)

		_, err := svc.GetCategoryByID(alice.ID, bobCategory.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})
}

func TestUpdateCategory(t *testing.T) {
	t.Run("partial_update", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Old Name")

		newName := "New Name"
		updated, err := svc.UpdateCategory(user.ID, category.ID, CategoryUpdateFields{Name: &newName})
		testutil.AssertNoError(t, err)

		if updated.Name != "New Name" {
			t.Errorf("expected renamed category, got %s", updated.Name)
		}
		if updated.Color != category.Color {
			t.Error("expected color untouched")
		}
	})

	t.Run("default_protected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestDefaultCategory(t, db, user.ID, models.CategoryTypeExpense)

		newName := "Renamed"
		_, err := svc.UpdateCategory(user.ID, category.ID, CategoryUpdateFields{Name: &newName})
		testutil.AssertAppError(t, err, "DEFAULT_CATEGORY_PROTECTED")
	})

	t.Run("duplicate_name", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Taken")
		category := testutil.CreateTestCategoryWithName(t, db, user.ID, models.CategoryTypeExpense, "Mine")

		taken := "Taken"
		_, err := svc.UpdateCategory(user.ID, category.ID, CategoryUpdateFields{Name: &taken})
		testutil.AssertAppError(t, err, "DUPLICATE_CATEGORY")
	})
}

func TestDeleteCategory(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)

		testutil.AssertNoError(t, svc.DeleteCategory(user.ID, category.ID))

		_, err := svc.GetCategoryByID(user.ID, category.ID)
		testutil.AssertAppError(t, err, "CATEGORY_NOT_FOUND")
	})

	t.Run("default_protected", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestDefaultCategory(t, db, user.ID, models.CategoryTypeExpense)

		testutil.AssertAppError(t, svc.DeleteCategory(user.ID, category.ID), "DEFAULT_CATEGORY_PROTECTED")
	})

	t.Run("in_use", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		user := testutil.CreateTestUser(t, db)
		category := testutil.CreateTestCategory(t, db, user.ID, models.CategoryTypeExpense)
		testutil.CreateTestTransaction(t, db, user.ID, category.ID, models.TransactionTypeExpense, 100, "2026-01-01")

		testutil.AssertAppError(t, svc.DeleteCategory(user.ID, category.ID), "CATEGORY_IN_USE")
	})

	t.Run("other_users_category", func(t *testing.T) {
		db := testutil.SetupTestDB(t)
		defer testutil.TeardownTestDB(t, db)
		svc := NewCategoryService(db)
		alice := testutil.CreateTestUser(t, db)
		bob := testutil.CreateTestUser(t, db)
		bobCategory := testutil.CreateTestCategory(t, db, bob.ID, models.CategoryTypeExpense)

		testutil.AssertAppError(t, svc.DeleteCategory(alice.ID, bobCategory.ID), "CATEGORY_NOT_FOUND")
	})
}
