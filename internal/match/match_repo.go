package match

import (
	"errors"

	"gorm.io/gorm"
)

var ErrMatchNotFound = errors.New("match not found")

// ListFilter restricts a match listing. Zero values mean "no restriction".
type ListFilter struct {
	Round     string
	MatchType Type
	Status    Status
}

// MatchRepository defines methods to interact with match data.
type MatchRepository interface {
	CreateMatch(m *Match) error
	GetMatchByID(id uint) (*Match, error)
	UpdateMatch(m *Match) error
	DeleteMatch(id uint) error
	GetMatches(filter ListFilter) ([]Match, error)
}

// GormMatchRepository implements MatchRepository using GORM.
type GormMatchRepository struct {
	db *gorm.DB
}

func NewGormMatchRepository(db *gorm.DB) *GormMatchRepository {
	return &GormMatchRepository{db: db}
}

func (r *GormMatchRepository) CreateMatch(m *Match) error {
	return r.db.Create(m).Error
}

func (r *GormMatchRepository) GetMatchByID(id uint) (*Match, error) {
	var m Match
	err := r.db.First(&m, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrMatchNotFound
		}
		return nil, err
	}
	return &m, nil
}

// UpdateMatch saves the full record, including fields reset to NULL (goals
// cleared when a completed match is reverted to SCHEDULED).
func (r *GormMatchRepository) UpdateMatch(m *Match) error {
	result := r.db.Model(m).Select("*").Omit("id", "created_at").Updates(m)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *GormMatchRepository) DeleteMatch(id uint) error {
	result := r.db.Delete(&Match{}, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrMatchNotFound
	}
	return nil
}

func (r *GormMatchRepository) GetMatches(filter ListFilter) ([]Match, error) {
	query := r.db.Model(&Match{})
	if filter.Round != "" {
		query = query.Where("round = ?", filter.Round)
	}
	if filter.MatchType != "" {
		query = query.Where("match_type = ?", filter.MatchType)
	}
	if filter.Status != "" {
		query = query.Where("status = ?", filter.Status)
	}

	var matches []Match
	if err := query.Order("match_date DESC, id DESC").Find(&matches).Error; err != nil {
		return nil, err
	}
	return matches, nil
}
