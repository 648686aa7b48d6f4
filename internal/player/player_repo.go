package player

import (
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/PatelKrish-16/golazo/internal/match"
)

var ErrPlayerNotFound = errors.New("player not found")

// ConflictError is returned when deleting a player that still has matches
// on record. The match count is part of the user-facing message.
type ConflictError struct {
	PlayerID   uint
	MatchCount int64
}

func (e *ConflictError) Error() string {
	return fmt.Sprintf("Cannot delete player with ID %d as they have %d matches associated", e.PlayerID, e.MatchCount)
}

// PlayerRepository defines methods to interact with player data.
type PlayerRepository interface {
	CreatePlayer(p *Player) error
	GetAllPlayers() ([]Player, error)
	GetPlayerByID(id uint) (*Player, error)
	FindPlayerByName(name string) (*Player, error)
	DeletePlayer(id uint) (*Player, error)

	// Lookups used by the match validator and the aggregation endpoints.
	ExistingPlayerIDs() (map[uint]struct{}, error)
	PlayerNames() (map[uint]string, error)
}

type gormPlayerRepository struct {
	db *gorm.DB
}

func NewGormPlayerRepository(db *gorm.DB) PlayerRepository {
	return &gormPlayerRepository{db: db}
}

func (r *gormPlayerRepository) CreatePlayer(p *Player) error {
	return r.db.Create(p).Error
}

func (r *gormPlayerRepository) GetAllPlayers() ([]Player, error) {
	var players []Player
	err := r.db.Order("player_name ASC").Find(&players).Error
	return players, err
}

func (r *gormPlayerRepository) GetPlayerByID(id uint) (*Player, error) {
	var p Player
	err := r.db.First(&p, id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPlayerNotFound
		}
		return nil, err
	}
	return &p, nil
}

func (r *gormPlayerRepository) FindPlayerByName(name string) (*Player, error) {
	var p Player
	err := r.db.Where("player_name = ?", name).First(&p).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

// DeletePlayer removes a player and returns the deleted record. A player
// referenced by any match slot cannot be deleted.
func (r *gormPlayerRepository) DeletePlayer(id uint) (*Player, error) {
	p, err := r.GetPlayerByID(id)
	if err != nil {
		return nil, err
	}

	var matchCount int64
	err = r.db.Model(&match.Match{}).
		Where("team1_player1_id = ? OR team1_player2_id = ? OR team2_player1_id = ? OR team2_player2_id = ?",
			id, id, id, id).
		Count(&matchCount).Error
	if err != nil {
		return nil, err
	}
	if matchCount > 0 {
		return nil, &ConflictError{PlayerID: id, MatchCount: matchCount}
	}

	if err := r.db.Delete(&Player{}, id).Error; err != nil {
		return nil, err
	}
	return p, nil
}

func (r *gormPlayerRepository) ExistingPlayerIDs() (map[uint]struct{}, error) {
	var ids []uint
	if err := r.db.Model(&Player{}).Pluck("player_id", &ids).Error; err != nil {
		return nil, err
	}
	existing := make(map[uint]struct{}, len(ids))
	for _, id := range ids {
		existing[id] = struct{}{}
	}
	return existing, nil
}

func (r *gormPlayerRepository) PlayerNames() (map[uint]string, error) {
	var players []Player
	if err := r.db.Find(&players).Error; err != nil {
		return nil, err
	}
	names := make(map[uint]string, len(players))
	for _, p := range players {
		names[p.PlayerID] = p.PlayerName
	}
	return names, nil
}
