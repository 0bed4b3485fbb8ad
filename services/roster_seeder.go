package services

import (
	"time"

	"pickem-pool-go/logging"
	"pickem-pool-go/models"
)

// RosterSeeder populates the roster with the pool's initial players.
// Intended for development and first-run setup; existing entries are
// left alone.
type RosterSeeder struct {
	playerRepo PlayerRepository
}

// NewRosterSeeder creates a new roster seeder
func NewRosterSeeder(playerRepo PlayerRepository) *RosterSeeder {
	return &RosterSeeder{
		playerRepo: playerRepo,
	}
}

// SeedPlayers creates the initial roster entries in the database
func (s *RosterSeeder) SeedPlayers() error {
	players := []struct {
		ID      int
		Name    string
		PIN     string // Default PIN, reset before real play
		IsAdmin bool
	}{
		{0, "COMMISSIONER", "0000", true},
		{1, "ANDREW", "1111", false},
		{2, "BARDIA", "2222", false},
		{3, "COOPER", "3333", false},
		{4, "MICAH", "4444", false},
		{5, "RYAN", "5555", false},
		{6, "TJ", "6666", false},
	}

	var existingCount, createdCount int

	for _, playerData := range players {
		existing, err := s.playerRepo.GetPlayerByName(playerData.Name)
		if err == nil && existing != nil {
			existingCount++
			continue
		}

		player := &models.Player{
			ID:        playerData.ID,
			Name:      playerData.Name,
			IsAdmin:   playerData.IsAdmin,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}

		if err := player.SetPIN(playerData.PIN); err != nil {
			logging.Errorf("Failed to hash PIN for %s: %v", playerData.Name, err)
			continue
		}

		if err := s.playerRepo.CreatePlayer(player); err != nil {
			logging.Errorf("Failed to create player %s: %v", playerData.Name, err)
			continue
		}

		logging.Infof("Created player %s with ID %d", playerData.Name, playerData.ID)
		createdCount++
	}

	if existingCount > 0 || createdCount > 0 {
		logging.Infof("Completed seeding roster - %d existing, %d created", existingCount, createdCount)
	}
	return nil
}

// ResetPINs resets every seeded player's PIN to a new value (for development)
func (s *RosterSeeder) ResetPINs(newPIN string) error {
	names := []string{"COMMISSIONER", "ANDREW", "BARDIA", "COOPER", "MICAH", "RYAN", "TJ"}

	for _, name := range names {
		player, err := s.playerRepo.GetPlayerByName(name)
		if err != nil {
			logging.Errorf("Player %s not found for PIN reset: %v", name, err)
			continue
		}

		if err := player.SetPIN(newPIN); err != nil {
			logging.Errorf("Failed to hash new PIN for %s: %v", name, err)
			continue
		}

		if err := s.playerRepo.UpdatePlayer(player); err != nil {
			logging.Errorf("Failed to update PIN for %s: %v", name, err)
			continue
		}

		logging.Infof("Reset PIN for %s", name)
	}

	logging.Infof("PIN reset completed")
	return nil
}
