package repository

import (
	"members-backend/internal/app/ds"
)

// Методы для разрешения области доступа заказчика

// GetAllowedSchemeIDs возвращает ID привязок заказчика к схемам, включая
// дочерние привязки, у которых родитель принадлежит этому заказчику.
// Пустой результат - это не ошибка: такой вызов просто ничего не увидит.
func (r *Repository) GetAllowedSchemeIDs(customerID uint) ([]uint, error) {
	var ownIDs []uint
	err := r.db.Model(&ds.CustomerScheme{}).
		Where("customer_id = ? AND void = ?", customerID, false).
		Pluck("id", &ownIDs).Error
	if err != nil {
		return nil, err
	}

	if len(ownIDs) == 0 {
		return []uint{}, nil
	}

	var childIDs []uint
	err = r.db.Model(&ds.CustomerScheme{}).
		Where("parent_customer_scheme_id IN ? AND void = ?", ownIDs, false).
		Pluck("id", &childIDs).Error
	if err != nil {
		return nil, err
	}

	return append(ownIDs, childIDs...), nil
}
