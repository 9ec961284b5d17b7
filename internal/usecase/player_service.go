package usecase

import (
	"context"
	"fmt"

	"github.com/riskibarqy/matchday/internal/domain/player"
	"github.com/riskibarqy/matchday/internal/domain/team"
	"github.com/riskibarqy/matchday/internal/platform/id"
)

type PlayerService struct {
	teamRepo   team.Repository
	playerRepo player.Repository
	ids        id.Generator
}

func NewPlayerService(teamRepo team.Repository, playerRepo player.Repository, ids id.Generator) *PlayerService {
	return &PlayerService{
		teamRepo:   teamRepo,
		playerRepo: playerRepo,
		ids:        ids,
	}
}

func (s *PlayerService) GetPlayer(ctx context.Context, playerID string) (player.Player, error) {
	playerID, err := requireID("player", playerID)
	if err != nil {
		return player.Player{}, err
	}

	item, exists, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if !exists {
		return player.Player{}, fmt.Errorf("%w: player=%s", ErrNotFound, playerID)
	}

	return item, nil
}

func (s *PlayerService) CreatePlayer(ctx context.Context, item player.Player) (player.Player, error) {
	var err error
	if item.ID, err = ensureID(s.ids, item.ID); err != nil {
		return player.Player{}, err
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureTeam(ctx, item.TeamID); err != nil {
		return player.Player{}, err
	}

	_, exists, err := s.playerRepo.GetByID(ctx, item.ID)
	if err != nil {
		return player.Player{}, fmt.Errorf("get player by id: %w", err)
	}
	if exists {
		return player.Player{}, fmt.Errorf("%w: player=%s already exists", ErrConflict, item.ID)
	}

	if err := s.playerRepo.Create(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("create player: %w", err)
	}
	return item, nil
}

func (s *PlayerService) UpdatePlayer(ctx context.Context, item player.Player) (player.Player, error) {
	if _, err := s.GetPlayer(ctx, item.ID); err != nil {
		return player.Player{}, err
	}
	if err := item.Validate(); err != nil {
		return player.Player{}, fmt.Errorf("%w: %v", ErrInvalidInput, err)
	}
	if err := s.ensureTeam(ctx, item.TeamID); err != nil {
		return player.Player{}, err
	}

	if err := s.playerRepo.Update(ctx, item); err != nil {
		return player.Player{}, fmt.Errorf("update player: %w", err)
	}
	return item, nil
}

func (s *PlayerService) DeletePlayer(ctx context.Context, playerID string) error {
	if _, err := s.GetPlayer(ctx, playerID); err != nil {
		return err
	}
	if err := s.playerRepo.Delete(ctx, playerID); err != nil {
		return fmt.Errorf("delete player: %w", err)
	}
	return nil
}

func (s *PlayerService) ensureTeam(ctx context.Context, teamID string) error {
	_, exists, err := s.teamRepo.GetByID(ctx, teamID)
	if err != nil {
		return fmt.Errorf("get team by id: %w", err)
	}
	if !exists {
		return fmt.Errorf("%w: team=%s", ErrNotFound, teamID)
	}
	return nil
}
