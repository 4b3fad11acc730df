package services

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/Sehbaz/foodOrderingAppBackAPI/domain"
	"github.com/Sehbaz/foodOrderingAppBackAPI/internal/validation"
)

// AddressServiceImpl implements domain.AddressService
type AddressServiceImpl struct {
	addressRepo domain.AddressRepository
	orderRepo   domain.OrderRepository
}

// NewAddressService creates a new address service
func NewAddressService(addressRepo domain.AddressRepository, orderRepo domain.OrderRepository) domain.AddressService {
	return &AddressServiceImpl{
		addressRepo: addressRepo,
		orderRepo:   orderRepo,
	}
}

// SaveAddress implements domain.AddressService
func (s *AddressServiceImpl) SaveAddress(ctx context.Context, customer *domain.Customer, address *domain.Address, stateUUID string) (*domain.Address, error) {
	if address.FlatBuildingNumber == "" || address.Locality == "" || address.City == "" || address.Pincode == "" || stateUUID == "" {
		return nil, domain.ErrAddressFieldsMissing
	}
	if !validation.IsValidPincode(address.Pincode) {
		return nil, domain.ErrInvalidPincode
	}

	state, err := s.addressRepo.FindStateByUUID(ctx, stateUUID)
	if err != nil {
		return nil, err
	}

	address.UUID = uuid.NewString()
	address.StateID = state.ID
	address.State = state
	address.Active = true

	if err := s.addressRepo.Create(ctx, address, customer.ID); err != nil {
		return nil, fmt.Errorf("failed to save address: %w", err)
	}
	return address, nil
}

// GetAllAddresses implements domain.AddressService. Addresses come back
// newest first.
func (s *AddressServiceImpl) GetAllAddresses(ctx context.Context, customer *domain.Customer) ([]domain.Address, error) {
	return s.addressRepo.ListByCustomer(ctx, customer.ID)
}

// DeleteAddress implements domain.AddressService. An address that has
// orders against it is deactivated instead of removed so history keeps
// resolving.
func (s *AddressServiceImpl) DeleteAddress(ctx context.Context, customer *domain.Customer, addressUUID string) (*domain.Address, error) {
	if addressUUID == "" {
		return nil, domain.ErrAddressIDMissing
	}

	address, err := s.addressRepo.FindByUUID(ctx, addressUUID)
	if err != nil {
		return nil, err
	}

	owned, err := s.addressRepo.OwnedBy(ctx, address.ID, customer.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to check address ownership: %w", err)
	}
	if !owned {
		return nil, domain.ErrAddressNotOwned
	}

	orders, err := s.orderRepo.CountByAddress(ctx, address.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to count orders for address: %w", err)
	}
	if orders > 0 {
		if err := s.addressRepo.Deactivate(ctx, address); err != nil {
			return nil, fmt.Errorf("failed to deactivate address: %w", err)
		}
		address.Active = false
		return address, nil
	}

	if err := s.addressRepo.Delete(ctx, address); err != nil {
		return nil, fmt.Errorf("failed to delete address: %w", err)
	}
	return address, nil
}

// GetAllStates implements domain.AddressService
func (s *AddressServiceImpl) GetAllStates(ctx context.Context) ([]domain.State, error) {
	return s.addressRepo.ListStates(ctx)
}
