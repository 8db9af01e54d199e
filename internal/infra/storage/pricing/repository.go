package pricing

import (
	"context"
	"fmt"
	"time"

	"github.com/Masterminds/squirrel"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/pkg/dbmetrics"
	"github.com/glamspot/GS-CabinService/pkg/psqlbuilder"
	"github.com/glamspot/GS-CabinService/pkg/types"
)

// Переиспользуем интерфейсы из dbmetrics для работы с БД
type DBExecutor = dbmetrics.DBExecutor

// OverrideRow одна ячейка (date, shift) слоя переопределений в плоской форме.
// Таблица cabin_date_overrides хранит разреженную вложенную структуру
// specificDates как строки с составным ключом (cabin_id, override_date, shift).
type OverrideRow struct {
	Date      types.DateString
	Shift     domain.Shift
	Price     *float64
	Available *bool
}

// Repository репозиторий слоев прайсинга: недельной таблицы цен по умолчанию
// и переопределений на конкретные даты
type Repository struct {
	db DBExecutor
}

// NewRepository создает новый экземпляр репозитория прайсинга
func NewRepository(db DBExecutor) *Repository {
	return &Repository{db: db}
}

// GetDefaultPricing загружает недельную таблицу цен кабины:
// weekday (0-6, воскресенье = 0) → смена → цена
func (r *Repository) GetDefaultPricing(ctx context.Context, cabinID int64) (map[int]map[domain.Shift]float64, error) {
	byCabin, err := r.GetDefaultPricingForCabins(ctx, []int64{cabinID})
	if err != nil {
		return nil, err
	}

	table, ok := byCabin[cabinID]
	if !ok {
		// Отсутствие недельной таблицы - не ошибка: кабина падает на
		// фиксированную цену или платформенный fallback
		return map[int]map[domain.Shift]float64{}, nil
	}
	return table, nil
}

// GetDefaultPricingForCabins загружает недельные таблицы цен набора кабин
// одним запросом (для агрегации по локации)
func (r *Repository) GetDefaultPricingForCabins(ctx context.Context, cabinIDs []int64) (map[int64]map[int]map[domain.Shift]float64, error) {
	result := make(map[int64]map[int]map[domain.Shift]float64, len(cabinIDs))
	if len(cabinIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("cabin_id", "weekday", "shift", "price").
		From("cabin_default_pricing").
		Where(squirrel.Eq{"cabin_id": cabinIDs}).
		OrderBy("cabin_id ASC, weekday ASC, shift ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetDefaultPricingForCabins - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetDefaultPricingForCabins - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cabinID int64
		var weekday int
		var shift domain.Shift
		var price float64

		if err := rows.Scan(&cabinID, &weekday, &shift, &price); err != nil {
			return nil, fmt.Errorf("%w: GetDefaultPricingForCabins: %v", ErrScanRow, err)
		}

		table, ok := result[cabinID]
		if !ok {
			table = make(map[int]map[domain.Shift]float64)
			result[cabinID] = table
		}
		byShift, ok := table[weekday]
		if !ok {
			byShift = make(map[domain.Shift]float64, len(domain.AllShifts))
			table[weekday] = byShift
		}
		byShift[shift] = price
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetDefaultPricingForCabins - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// ReplaceDefaultPricing полностью заменяет недельную таблицу цен кабины.
// Вызывать внутри транзакции: delete + insert не атомарны сами по себе.
func (r *Repository) ReplaceDefaultPricing(ctx context.Context, cabinID int64, table map[int]map[domain.Shift]float64) error {
	executor := dbmetrics.GetExecutor(ctx, r.db)

	// Валидация до каких-либо изменений
	for weekday, byShift := range table {
		if weekday < 0 || weekday > 6 {
			return fmt.Errorf("%w: got %d", ErrInvalidWeekday, weekday)
		}
		for shift, price := range byShift {
			if price <= 0 {
				return fmt.Errorf("%w: weekday=%d shift=%s price=%v", ErrInvalidPrice, weekday, shift, price)
			}
		}
	}

	deleteQuery, deleteArgs, err := psqlbuilder.Delete("cabin_default_pricing").
		Where(squirrel.Eq{"cabin_id": cabinID}).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDefaultPricing - build delete query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, deleteQuery, deleteArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDefaultPricing - execute delete: %v", ErrExecQuery, err)
	}

	if len(table) == 0 {
		return nil
	}

	insertBuilder := psqlbuilder.Insert("cabin_default_pricing").
		Columns("cabin_id", "weekday", "shift", "price")

	// Детерминированный порядок вставки: дни недели и смены по возрастанию
	for weekday := 0; weekday <= 6; weekday++ {
		byShift, ok := table[weekday]
		if !ok {
			continue
		}
		for _, shift := range domain.AllShifts {
			price, ok := byShift[shift]
			if !ok {
				continue
			}
			insertBuilder = insertBuilder.Values(cabinID, weekday, shift, price)
		}
	}

	insertQuery, insertArgs, err := insertBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("%w: ReplaceDefaultPricing - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, insertQuery, insertArgs...); err != nil {
		return fmt.Errorf("%w: ReplaceDefaultPricing - execute insert: %v", ErrExecQuery, err)
	}

	return nil
}

// GetOverrides загружает переопределения кабины за период [from, to]
// в форме разреженной вложенной карты domain.Cabin.SpecificDates
func (r *Repository) GetOverrides(ctx context.Context, cabinID int64, from, to time.Time) (map[types.DateString]map[domain.Shift]domain.OverrideEntry, error) {
	byCabin, err := r.GetOverridesForCabins(ctx, []int64{cabinID}, from, to)
	if err != nil {
		return nil, err
	}

	overrides, ok := byCabin[cabinID]
	if !ok {
		return map[types.DateString]map[domain.Shift]domain.OverrideEntry{}, nil
	}
	return overrides, nil
}

// GetOverridesForCabins загружает переопределения набора кабин за период
// одним запросом (для агрегации по локации)
func (r *Repository) GetOverridesForCabins(ctx context.Context, cabinIDs []int64, from, to time.Time) (map[int64]map[types.DateString]map[domain.Shift]domain.OverrideEntry, error) {
	result := make(map[int64]map[types.DateString]map[domain.Shift]domain.OverrideEntry, len(cabinIDs))
	if len(cabinIDs) == 0 {
		return result, nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	query, args, err := psqlbuilder.Select("cabin_id", "to_char(override_date, 'YYYY-MM-DD')", "shift", "price", "available").
		From("cabin_date_overrides").
		Where(squirrel.Eq{"cabin_id": cabinIDs}).
		Where(squirrel.GtOrEq{"override_date": from}).
		Where(squirrel.LtOrEq{"override_date": to}).
		OrderBy("cabin_id ASC, override_date ASC, shift ASC").
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverridesForCabins - build select query: %v", ErrBuildQuery, err)
	}

	rows, err := executor.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("%w: GetOverridesForCabins - execute query: %v", ErrExecQuery, err)
	}
	defer rows.Close()

	for rows.Next() {
		var cabinID int64
		var dateStr string
		var shift domain.Shift
		var price *float64
		var available *bool

		if err := rows.Scan(&cabinID, &dateStr, &shift, &price, &available); err != nil {
			return nil, fmt.Errorf("%w: GetOverridesForCabins: %v", ErrScanRow, err)
		}

		date, err := types.NewDateStringFromString(dateStr)
		if err != nil {
			return nil, fmt.Errorf("%w: GetOverridesForCabins: %v", ErrScanRow, err)
		}

		overrides, ok := result[cabinID]
		if !ok {
			overrides = make(map[types.DateString]map[domain.Shift]domain.OverrideEntry)
			result[cabinID] = overrides
		}
		byShift, ok := overrides[date]
		if !ok {
			byShift = make(map[domain.Shift]domain.OverrideEntry, len(domain.AllShifts))
			overrides[date] = byShift
		}
		byShift[shift] = domain.OverrideEntry{Price: price, Available: available}
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: GetOverridesForCabins - rows error: %v", ErrScanRow, err)
	}

	return result, nil
}

// UpsertOverrides записывает ячейки переопределений пакетным upsert-ом.
// При конфликте по (cabin_id, override_date, shift) обновляется ТОЛЬКО цена:
// поле available существующей строки намеренно не трогается - пакетная правка
// цены не должна открывать или закрывать смену побочным эффектом.
// Вызывать внутри транзакции пакетного редактирования.
func (r *Repository) UpsertOverrides(ctx context.Context, cabinID int64, overrideRows []OverrideRow) error {
	if len(overrideRows) == 0 {
		return nil
	}

	executor := dbmetrics.GetExecutor(ctx, r.db)

	insertBuilder := psqlbuilder.Insert("cabin_date_overrides").
		Columns("cabin_id", "override_date", "shift", "price", "available")

	for _, row := range overrideRows {
		insertBuilder = insertBuilder.Values(cabinID, string(row.Date), row.Shift, row.Price, row.Available)
	}

	query, args, err := insertBuilder.
		Suffix(`ON CONFLICT (cabin_id, override_date, shift)
			DO UPDATE SET price = EXCLUDED.price, updated_at = NOW()`).
		ToSql()
	if err != nil {
		return fmt.Errorf("%w: UpsertOverrides - build insert query: %v", ErrBuildQuery, err)
	}

	if _, err := executor.ExecContext(ctx, query, args...); err != nil {
		return fmt.Errorf("%w: UpsertOverrides - execute upsert: %v", ErrExecQuery, err)
	}

	return nil
}
