package services

import (
	"errors"
	"testing"
)

func TestShoppingCreateList_WithInitialItems(t *testing.T) {
	svc := NewShoppingService(newTestDB(t))

	list, err := svc.CreateList(1, "Feira da semana", []ShoppingItemInput{
		{Name: "Arroz"},
		{Name: "Feijão", Checked: true},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Title != "Feira da semana" {
		t.Errorf("title = %q", list.Title)
	}
	if len(list.Items) != 2 {
		t.Errorf("got %d items, want 2", len(list.Items))
	}
}

func TestShoppingCreateList_DefaultTitle(t *testing.T) {
	svc := NewShoppingService(newTestDB(t))

	list, err := svc.CreateList(1, "", nil)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if list.Title != "Minha Lista" {
		t.Errorf("title = %q, want default", list.Title)
	}
}

func TestShoppingToggleItem_OwnershipViaJoin(t *testing.T) {
	svc := NewShoppingService(newTestDB(t))

	list, _ := svc.CreateList(1, "Feira", nil)
	item, err := svc.AddItem(1, list.ID, ShoppingItemInput{Name: "Leite"})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// another user never sees the item, not even as forbidden
	if _, err := svc.ToggleItem(2, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound", err)
	}

	toggled, err := svc.ToggleItem(1, item.ID)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !toggled.Checked {
		t.Error("expected checked after toggle")
	}
}

func TestShoppingDeleteList_RemovesItems(t *testing.T) {
	svc := NewShoppingService(newTestDB(t))

	list, _ := svc.CreateList(1, "Feira", []ShoppingItemInput{{Name: "Arroz"}})
	item := list.Items[0]

	if err := svc.DeleteList(2, list.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound for other user", err)
	}
	if err := svc.DeleteList(1, list.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if _, err := svc.ToggleItem(1, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("item survived list deletion: %v", err)
	}

	lists, _ := svc.ListLists(1)
	if len(lists) != 0 {
		t.Errorf("got %d lists, want 0", len(lists))
	}
}

func TestShoppingDeleteItem(t *testing.T) {
	svc := NewShoppingService(newTestDB(t))

	list, _ := svc.CreateList(1, "Feira", nil)
	item, _ := svc.AddItem(1, list.ID, ShoppingItemInput{Name: "Café"})

	if err := svc.DeleteItem(2, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound for other user", err)
	}
	if err := svc.DeleteItem(1, item.ID); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := svc.ToggleItem(1, item.ID); !errors.Is(err, ErrNotFound) {
		t.Errorf("got %v, want ErrNotFound after delete", err)
	}
}
