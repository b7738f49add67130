package services

import (
	"fmt"

	"github.com/mel-lim/listmaker-backend/models"

	"gorm.io/gorm"
)

// ListService - синхронизация списков поездки: полная замена снимком от
// клиента (savelists) и точечные правки отдельных списков и строк.
type ListService struct {
	db *gorm.DB
}

func NewListService(db *gorm.DB) *ListService {
	return &ListService{db: db}
}

// TripLists - списки поездки с их неудалёнными строками,
// индексы Lists и AllListItems соответствуют друг другу.
type TripLists struct {
	Lists        []models.List       `json:"lists"`
	AllListItems [][]models.ListItem `json:"allListItems"`
}

// SaveLists применяет полный снимок списков поездки: прежние списки и строки
// архивируются в deleted_list / deleted_list_item и удаляются, снимок
// вставляется в порядке прихода. Всё в одной транзакции - либо база содержит
// ровно присланное состояние, либо прежнее остаётся нетронутым.
// titles[i] соответствует itemNames[i]; расхождение длин - ошибка валидации
// до открытия транзакции. Пустой снимок - допустимое конечное состояние.
func (s *ListService) SaveLists(tripID, appUserID uint, titles []string, itemNames [][]string) error {
	if len(titles) != len(itemNames) {
		return fmt.Errorf("%w: lists and list items do not match", ErrValidation)
	}

	sess, err := BeginSession(s.db)
	if err != nil {
		return err
	}
	defer sess.End()
	tx := sess.Tx()

	var oldListIDs []uint
	if err := tx.Model(&models.List{}).
		Where("trip_id = ?", tripID).
		Order("id ASC").
		Pluck("id", &oldListIDs).Error; err != nil {
		return err
	}

	if len(oldListIDs) > 0 {
		// Архивируем прежнее состояние, затем удаляем: сначала строки, потом списки
		if err := tx.Exec(
			`INSERT INTO deleted_list (list_id, title, app_user_id, trip_id)
			 SELECT id, title, app_user_id, trip_id FROM list WHERE trip_id = ?`, tripID).Error; err != nil {
			return err
		}
		if err := tx.Exec(
			`INSERT INTO deleted_list_item (name, list_id)
			 SELECT name, list_id FROM list_item WHERE list_id IN ?`, oldListIDs).Error; err != nil {
			return err
		}
		if err := tx.Where("list_id IN ?", oldListIDs).Delete(&models.ListItem{}).Error; err != nil {
			return err
		}
		if err := tx.Where("trip_id = ?", tripID).Delete(&models.List{}).Error; err != nil {
			return err
		}
	}

	for i, title := range titles {
		list := models.List{Title: title, TripID: tripID, AppUserID: appUserID}
		if err := tx.Create(&list).Error; err != nil {
			return err
		}
		for _, itemName := range itemNames[i] {
			item := models.ListItem{Name: itemName, ListID: list.ID}
			if err := tx.Create(&item).Error; err != nil {
				return err
			}
		}
	}

	return sess.Commit()
}

// FetchLists возвращает списки поездки по возрастанию id и неудалённые
// строки каждого списка по возрастанию id. Ноль списков - ErrNotFound.
func (s *ListService) FetchLists(tripID, appUserID uint) (*TripLists, error) {
	var lists []models.List
	if err := s.db.
		Where("trip_id = ? AND app_user_id = ?", tripID, appUserID).
		Order("id ASC").
		Find(&lists).Error; err != nil {
		return nil, err
	}
	if len(lists) == 0 {
		return nil, fmt.Errorf("%w: no lists for trip %d", ErrNotFound, tripID)
	}

	result := &TripLists{Lists: lists, AllListItems: make([][]models.ListItem, 0, len(lists))}
	for _, list := range lists {
		items := []models.ListItem{}
		if err := s.db.
			Where("list_id = ? AND is_deleted = ?", list.ID, false).
			Order("id ASC").
			Find(&items).Error; err != nil {
			return nil, err
		}
		result.AllListItems = append(result.AllListItems, items)
	}
	return result, nil
}

// CreateList добавляет один безымянный список.
func (s *ListService) CreateList(tripID, appUserID uint) (*models.List, error) {
	list := models.List{Title: "", TripID: tripID, AppUserID: appUserID}
	if err := s.db.Create(&list).Error; err != nil {
		return nil, err
	}
	return &list, nil
}

// EditListTitle переименовывает список. Принадлежность списка поездке и
// пользователю уже проверена на уровне маршрута.
func (s *ListService) EditListTitle(listID uint, newTitle string) error {
	res := s.db.Model(&models.List{}).Where("id = ?", listID).Update("title", newTitle)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("%w: list %d was not updated", ErrConsistency, listID)
	}
	return nil
}

// DeleteList удаляет список и его строки в одной транзакции.
func (s *ListService) DeleteList(listID uint) error {
	sess, err := BeginSession(s.db)
	if err != nil {
		return err
	}
	defer sess.End()
	tx := sess.Tx()

	if err := tx.Where("list_id = ?", listID).Delete(&models.ListItem{}).Error; err != nil {
		return err
	}
	res := tx.Where("id = ?", listID).Delete(&models.List{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected != 1 {
		return fmt.Errorf("%w: list %d was not deleted", ErrConsistency, listID)
	}

	return sess.Commit()
}

// AddListItem добавляет строку в список.
func (s *ListService) AddListItem(listID uint, name string) (*models.ListItem, error) {
	item := models.ListItem{Name: name, ListID: listID}
	if err := s.db.Create(&item).Error; err != nil {
		return nil, err
	}
	return &item, nil
}

// EditListItem переименовывает строку. Строка из чужого списка не меняется:
// подмена itemId между списками отклоняется как неавторизованная.
func (s *ListService) EditListItem(listID, itemID uint, newName string) error {
	item, err := s.itemInList(listID, itemID)
	if err != nil {
		return err
	}
	return s.db.Model(item).Update("name", newName).Error
}

// SoftDeleteListItem помечает строку удалённой; строка остаётся в базе и
// исчезает из fetchlists до отмены.
func (s *ListService) SoftDeleteListItem(listID, itemID uint) error {
	return s.setItemDeleted(listID, itemID, true)
}

// UndoSoftDeleteListItem возвращает строку в выдачу.
func (s *ListService) UndoSoftDeleteListItem(listID, itemID uint) error {
	return s.setItemDeleted(listID, itemID, false)
}

func (s *ListService) setItemDeleted(listID, itemID uint, deleted bool) error {
	item, err := s.itemInList(listID, itemID)
	if err != nil {
		return err
	}
	return s.db.Model(item).Update("is_deleted", deleted).Error
}

func (s *ListService) itemInList(listID, itemID uint) (*models.ListItem, error) {
	var item models.ListItem
	if err := s.db.First(&item, itemID).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, fmt.Errorf("%w: list item %d", ErrNotFound, itemID)
		}
		return nil, err
	}
	if item.ListID != listID {
		return nil, fmt.Errorf("%w: list item %d does not belong to list %d", ErrNotOwner, itemID, listID)
	}
	return &item, nil
}
