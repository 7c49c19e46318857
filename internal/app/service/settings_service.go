package service

import (
	"context"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/domain"
	"github.com/mcaco95/project-spark-blueprint-admin/internal/core/ports"
	"github.com/mcaco95/project-spark-blueprint-admin/pkg/paginator"
)

// SettingsService stores every value as a string and enforces the
// declared type at the write boundary.
type SettingsService struct {
	settingRepository ports.SettingRepository
}

var _ ports.SettingsService = (*SettingsService)(nil)

func NewSettingsService(settingRepository ports.SettingRepository) *SettingsService {
	return &SettingsService{settingRepository: settingRepository}
}

func (s *SettingsService) List(ctx context.Context, filter domain.SettingListFilter) (paginator.Page[domain.SystemSetting], error) {
	filter.Page, filter.PerPage = paginator.Clamp(filter.Page, filter.PerPage)
	settings, total, err := s.settingRepository.ListPaged(ctx, filter)
	if err != nil {
		return paginator.Page[domain.SystemSetting]{}, err
	}
	return paginator.NewPage(settings, total, filter.Page, filter.PerPage), nil
}

func (s *SettingsService) Create(ctx context.Context, input domain.CreateSettingInput) (domain.SystemSetting, error) {
	if err := validateSettingValue(input.Value, input.Type); err != nil {
		return domain.SystemSetting{}, err
	}

	now := time.Now().UTC()
	setting := domain.SystemSetting{
		ID:          uuid.New(),
		Name:        input.Name,
		Value:       input.Value,
		Type:        input.Type,
		Category:    input.Category,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if setting.Category == "" {
		setting.Category = "general"
	}
	if err := s.settingRepository.Insert(ctx, setting); err != nil {
		return domain.SystemSetting{}, err
	}
	return setting, nil
}

func (s *SettingsService) Get(ctx context.Context, id uuid.UUID) (domain.SystemSetting, error) {
	return s.settingRepository.GetByID(ctx, id)
}

// Update rewrites value, category and description; name and type are
// fixed at creation.
func (s *SettingsService) Update(ctx context.Context, id uuid.UUID, input domain.UpdateSettingInput) (domain.SystemSetting, error) {
	setting, err := s.settingRepository.GetByID(ctx, id)
	if err != nil {
		return domain.SystemSetting{}, err
	}

	if input.Value != nil {
		if err = validateSettingValue(*input.Value, setting.Type); err != nil {
			return domain.SystemSetting{}, err
		}
		setting.Value = *input.Value
	}
	if input.Category != nil {
		setting.Category = *input.Category
	}
	if input.Description != nil {
		setting.Description = input.Description
	}
	if err = s.settingRepository.Update(ctx, setting); err != nil {
		return domain.SystemSetting{}, err
	}
	return s.settingRepository.GetByID(ctx, id)
}

func (s *SettingsService) Delete(ctx context.Context, id uuid.UUID) error {
	return s.settingRepository.Delete(ctx, id)
}

func validateSettingValue(value string, settingType domain.SettingType) error {
	switch settingType {
	case domain.SettingTypeBoolean:
		if value != "true" && value != "false" {
			return domain.ErrInvalidSettingValue
		}
	case domain.SettingTypeNumber:
		if _, err := strconv.ParseFloat(value, 64); err != nil {
			return domain.ErrInvalidSettingValue
		}
	}
	return nil
}
