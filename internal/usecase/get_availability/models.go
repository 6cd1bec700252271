package get_availability

// Request модель запроса календаря объекта.
// PropertyID передается строкой из query, чтобы отличить отсутствие от мусора
type Request struct {
	PropertyID string
	StartDate  *string // включительно
	EndDate    *string // включительно
	Limit      int
	Offset     int
}

// Response записи календаря по возрастанию даты
type Response struct {
	Records []Record
}

// Record запись календаря
type Record struct {
	ID          int64
	PropertyID  int64
	Date        string
	IsAvailable bool
	Price       *int64
}
