package services

import (
	"errors"

	"github.com/vfranco00/Nutri-Agent/models"

	"gorm.io/gorm"
)

type ShoppingService struct {
	db *gorm.DB
}

func NewShoppingService(db *gorm.DB) *ShoppingService {
	return &ShoppingService{db: db}
}

type ShoppingItemInput struct {
	Name    string
	Checked bool
}

func (s *ShoppingService) ListLists(userID uint) ([]models.ShoppingList, error) {
	var lists []models.ShoppingList
	err := s.db.
		Preload("Items").
		Where("user_id = ?", userID).
		Order("created_at DESC").
		Find(&lists).Error
	return lists, err
}

func (s *ShoppingService) CreateList(userID uint, title string, items []ShoppingItemInput) (*models.ShoppingList, error) {
	if title == "" {
		title = "Minha Lista"
	}
	list := models.ShoppingList{UserID: userID, Title: title}
	for _, it := range items {
		list.Items = append(list.Items, models.ShoppingItem{Name: it.Name, Checked: it.Checked})
	}
	if err := s.db.Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

func (s *ShoppingService) DeleteList(userID, listID uint) error {
	list, err := s.getList(userID, listID)
	if err != nil {
		return err
	}
	if err := s.db.Where("list_id = ?", list.ID).Delete(&models.ShoppingItem{}).Error; err != nil {
		return err
	}
	return s.db.Delete(list).Error
}

func (s *ShoppingService) AddItem(userID, listID uint, in ShoppingItemInput) (*models.ShoppingItem, error) {
	if _, err := s.getList(userID, listID); err != nil {
		return nil, err
	}
	item := models.ShoppingItem{ListID: listID, Name: in.Name, Checked: in.Checked}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// ToggleItem flips an item's checked flag. Ownership is enforced with a
// join against the parent list, so an item id from another user's list is
// just not found.
func (s *ShoppingService) ToggleItem(userID, itemID uint) (*models.ShoppingItem, error) {
	item, err := s.getItem(userID, itemID)
	if err != nil {
		return nil, err
	}
	item.Checked = !item.Checked
	if err := s.db.Save(item).Error; err != nil {
		return nil, err
	}
	return item, nil
}

func (s *ShoppingService) DeleteItem(userID, itemID uint) error {
	item, err := s.getItem(userID, itemID)
	if err != nil {
		return err
	}
	return s.db.Delete(item).Error
}

func (s *ShoppingService) getList(userID, listID uint) (*models.ShoppingList, error) {
	var list models.ShoppingList
	err := s.db.Where("id = ? AND user_id = ?", listID, userID).First(&list).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &list, nil
}

func (s *ShoppingService) getItem(userID, itemID uint) (*models.ShoppingItem, error) {
	var item models.ShoppingItem
	err := s.db.
		Joins("JOIN shopping_lists ON shopping_lists.id = shopping_items.list_id").
		Where("shopping_items.id = ? AND shopping_lists.user_id = ?", itemID, userID).
		First(&item).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}
