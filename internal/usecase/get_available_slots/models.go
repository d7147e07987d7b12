package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-SalonService/pkg/types"
)

// Request модель запроса свободного времени сотрудника
type Request struct {
	EmployeeID int64     // ID сотрудника
	ServiceID  int64     // ID услуги (определяет длительность)
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со свободными началами записи
type Response struct {
	Date            time.Time
	EmployeeID      int64
	ServiceID       int64
	DurationMinutes int
	Slots           []types.TimeString // Начала, на которые запись будет принята
}
