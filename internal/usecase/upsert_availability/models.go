package upsert_availability

import "github.com/m04kA/SMC-RentalService/pkg/types"

// Request модель запроса на создание или обновление записи календаря
type Request struct {
	PropertyID  types.FlexInt
	Date        *string
	IsAvailable types.StrictBool
	Price       types.FlexInt // отсутствие или null - базовая цена объекта
}

// Response итоговая запись и признак создания
type Response struct {
	ID          int64
	PropertyID  int64
	Date        string
	IsAvailable bool
	Price       *int64
	Created     bool
}
