package pricing

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/glamspot/GS-CabinService/internal/domain"
	"github.com/glamspot/GS-CabinService/internal/integrations/catalogservice"
	"github.com/glamspot/GS-CabinService/internal/service/pricing/models"
)

// Service сервис слоев прайсинга. Собирает снапшоты кабин из каталожных
// данных и хранимых слоев (недельная таблица + переопределения) и
// обслуживает CRUD недельной таблицы цен.
type Service struct {
	pricingRepo   PricingRepository
	catalogClient CatalogServiceClient
	txManager     TransactionManager
	logger        Logger
}

// NewService создает новый экземпляр сервиса прайсинга
func NewService(
	pricingRepo PricingRepository,
	catalogClient CatalogServiceClient,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		pricingRepo:   pricingRepo,
		catalogClient: catalogClient,
		txManager:     txManager,
		logger:        logger,
	}
}

// CabinSnapshot собирает полный снапшот кабины за период [from, to]:
// каталожные данные + недельная таблица цен + переопределения дат
func (s *Service) CabinSnapshot(ctx context.Context, cabinID int64, from, to time.Time) (*domain.Cabin, error) {
	cabin, err := s.catalogClient.GetCabin(ctx, cabinID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrCabinNotFound) {
			s.logger.Warn("CabinSnapshot: cabin id=%d not found in catalog", cabinID)
			return nil, ErrCabinNotFound
		}
		s.logger.Error("CabinSnapshot: catalog error for cabin id=%d: %v", cabinID, err)
		return nil, fmt.Errorf("%w: CabinSnapshot - catalog error: %v", ErrInternal, err)
	}

	defaultPricing, err := s.pricingRepo.GetDefaultPricing(ctx, cabinID)
	if err != nil {
		s.logger.Error("CabinSnapshot: failed to load default pricing for cabin id=%d: %v", cabinID, err)
		return nil, fmt.Errorf("%w: CabinSnapshot - default pricing: %v", ErrInternal, err)
	}

	overrides, err := s.pricingRepo.GetOverrides(ctx, cabinID, from, to)
	if err != nil {
		s.logger.Error("CabinSnapshot: failed to load overrides for cabin id=%d: %v", cabinID, err)
		return nil, fmt.Errorf("%w: CabinSnapshot - overrides: %v", ErrInternal, err)
	}

	return models.ToDomainCabin(cabin, defaultPricing, overrides), nil
}

// CabinSnapshots собирает снапшоты всех кабин локации за период [from, to].
// Слои прайсинга всех кабин загружаются пакетно, по одному запросу на слой.
func (s *Service) CabinSnapshots(ctx context.Context, locationID int64, from, to time.Time) (*domain.Location, []*domain.Cabin, error) {
	location, err := s.catalogClient.GetLocation(ctx, locationID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrLocationNotFound) {
			s.logger.Warn("CabinSnapshots: location id=%d not found in catalog", locationID)
			return nil, nil, ErrLocationNotFound
		}
		s.logger.Error("CabinSnapshots: catalog error for location id=%d: %v", locationID, err)
		return nil, nil, fmt.Errorf("%w: CabinSnapshots - catalog error: %v", ErrInternal, err)
	}

	catalogCabins, err := s.catalogClient.GetLocationCabins(ctx, locationID)
	if err != nil {
		s.logger.Error("CabinSnapshots: failed to load cabins for location id=%d: %v", locationID, err)
		return nil, nil, fmt.Errorf("%w: CabinSnapshots - catalog cabins: %v", ErrInternal, err)
	}

	cabinIDs := make([]int64, 0, len(catalogCabins))
	for _, cabin := range catalogCabins {
		cabinIDs = append(cabinIDs, cabin.ID)
	}

	pricingByCabin, err := s.pricingRepo.GetDefaultPricingForCabins(ctx, cabinIDs)
	if err != nil {
		s.logger.Error("CabinSnapshots: failed to load default pricing for location id=%d: %v", locationID, err)
		return nil, nil, fmt.Errorf("%w: CabinSnapshots - default pricing: %v", ErrInternal, err)
	}

	overridesByCabin, err := s.pricingRepo.GetOverridesForCabins(ctx, cabinIDs, from, to)
	if err != nil {
		s.logger.Error("CabinSnapshots: failed to load overrides for location id=%d: %v", locationID, err)
		return nil, nil, fmt.Errorf("%w: CabinSnapshots - overrides: %v", ErrInternal, err)
	}

	cabins := make([]*domain.Cabin, 0, len(catalogCabins))
	for i := range catalogCabins {
		cabin := &catalogCabins[i]
		cabins = append(cabins, models.ToDomainCabin(cabin, pricingByCabin[cabin.ID], overridesByCabin[cabin.ID]))
	}

	s.logger.Info("CabinSnapshots: assembled %d cabin snapshots for location id=%d", len(cabins), locationID)
	return models.ToDomainLocation(location), cabins, nil
}

// GetCabinPricing возвращает текущие слои прайсинга кабины.
// Доступно только владельцу кабины.
func (s *Service) GetCabinPricing(ctx context.Context, cabinID, userID int64) (*models.CabinPricingResponse, error) {
	cabin, err := s.catalogClient.GetCabin(ctx, cabinID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrCabinNotFound) {
			return nil, ErrCabinNotFound
		}
		s.logger.Error("GetCabinPricing: catalog error for cabin id=%d: %v", cabinID, err)
		return nil, fmt.Errorf("%w: GetCabinPricing - catalog error: %v", ErrInternal, err)
	}

	if cabin.OwnerID != userID {
		s.logger.Warn("GetCabinPricing: access denied for user=%d to cabin id=%d", userID, cabinID)
		return nil, ErrAccessDenied
	}

	defaultPricing, err := s.pricingRepo.GetDefaultPricing(ctx, cabinID)
	if err != nil {
		s.logger.Error("GetCabinPricing: failed to load default pricing for cabin id=%d: %v", cabinID, err)
		return nil, fmt.Errorf("%w: GetCabinPricing - default pricing: %v", ErrInternal, err)
	}

	return models.FromDomainPricing(cabinID, cabin.BasePrice, defaultPricing), nil
}

// UpdateCabinPricing полностью заменяет недельную таблицу цен кабины.
// Доступно только владельцу кабины.
func (s *Service) UpdateCabinPricing(ctx context.Context, req *models.UpdateCabinPricingRequest) (*models.CabinPricingResponse, error) {
	s.logger.Info("UpdateCabinPricing: user=%d updating default pricing for cabin id=%d", req.UserID, req.CabinID)

	cabin, err := s.catalogClient.GetCabin(ctx, req.CabinID)
	if err != nil {
		if errors.Is(err, catalogservice.ErrCabinNotFound) {
			return nil, ErrCabinNotFound
		}
		s.logger.Error("UpdateCabinPricing: catalog error for cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: UpdateCabinPricing - catalog error: %v", ErrInternal, err)
	}

	if cabin.OwnerID != req.UserID {
		s.logger.Warn("UpdateCabinPricing: access denied for user=%d to cabin id=%d", req.UserID, req.CabinID)
		return nil, ErrAccessDenied
	}

	table, err := req.ToDomainPricing()
	if err != nil {
		s.logger.Warn("UpdateCabinPricing: invalid pricing table for cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}

	// delete + insert под одной транзакцией
	err = s.txManager.Do(ctx, func(ctx context.Context) error {
		return s.pricingRepo.ReplaceDefaultPricing(ctx, req.CabinID, table)
	})
	if err != nil {
		s.logger.Error("UpdateCabinPricing: failed to replace pricing for cabin id=%d: %v", req.CabinID, err)
		return nil, fmt.Errorf("%w: UpdateCabinPricing - replace pricing: %v", ErrInternal, err)
	}

	s.logger.Info("UpdateCabinPricing: successfully replaced default pricing for cabin id=%d", req.CabinID)
	return models.FromDomainPricing(req.CabinID, cabin.BasePrice, table), nil
}
