package create_booking

import (
	"time"

	"github.com/m04kA/SMC-RentalService/pkg/types"
)

// Request модель запроса на создание бронирования.
// Поля сохраняют "сырое" состояние из JSON, чтобы валидация различала отсутствие и некорректное значение
type Request struct {
	PropertyID types.FlexInt
	CheckIn    *string
	CheckOut   *string
	Guests     types.FlexInt
	GuestName  *string
	GuestEmail *string
	TotalPrice types.FlexInt // 0 или отсутствие - рассчитать по цене объекта
}

// Response модель ответа с созданным бронированием
type Response struct {
	ID         int64
	PropertyID int64
	CheckIn    time.Time
	CheckOut   time.Time
	Guests     int
	TotalPrice int64
	GuestName  string
	GuestEmail string
	CreatedAt  time.Time
}
