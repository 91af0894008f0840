// Package seed loads optional demo data from a YAML file on startup.
package seed

import (
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/lukasbehr/messecall/internal/models"
	"github.com/lukasbehr/messecall/internal/repository"
	"github.com/lukasbehr/messecall/pkg/logger"
)

// File is the root of the seed document.
type File struct {
	Churches []Church `yaml:"churches"`
}

// Church seeds one church with its users and events.
type Church struct {
	Name     string  `yaml:"name"`
	Address  string  `yaml:"address"`
	Timezone string  `yaml:"timezone"`
	Users    []User  `yaml:"users"`
	Events   []Event `yaml:"events"`
}

// User seeds one person.
type User struct {
	Name            string `yaml:"name"`
	Email           string `yaml:"email"`
	Role            string `yaml:"role"`
	ExperienceLevel int    `yaml:"experience_level"`
}

// Event seeds one event.
type Event struct {
	Type                string    `yaml:"type"`
	StartTime           time.Time `yaml:"start_time"`
	EndTime             time.Time `yaml:"end_time"`
	Location            string    `yaml:"location"`
	RequiredSlots       int       `yaml:"required_slots"`
	RequiresExperienced bool      `yaml:"requires_experienced"`
	IsPublic            bool      `yaml:"is_public"`
	Description         string    `yaml:"description"`
}

// Load parses a seed file and inserts its contents. Intended for demo and
// development databases; it does not deduplicate.
func Load(
	path string,
	churchRepo *repository.ChurchRepository,
	userRepo *repository.UserRepository,
	eventRepo *repository.EventRepository,
	log *logger.Logger,
) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read seed file %s: %w", path, err)
	}

	var file File
	if err := yaml.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse seed file %s: %w", path, err)
	}

	for _, seedChurch := range file.Churches {
		church := models.Church{
			Name:     seedChurch.Name,
			Address:  seedChurch.Address,
			Timezone: seedChurch.Timezone,
		}
		if church.Timezone == "" {
			church.Timezone = "Europe/Berlin"
		}
		if err := churchRepo.Create(&church); err != nil {
			return err
		}

		for _, seedUser := range seedChurch.Users {
			user := models.User{
				Name:            seedUser.Name,
				Email:           seedUser.Email,
				Role:            seedUser.Role,
				ChurchID:        church.ID,
				ExperienceLevel: seedUser.ExperienceLevel,
				Active:          true,
			}
			if user.ExperienceLevel < 1 {
				user.ExperienceLevel = 1
			}
			if err := userRepo.Create(&user); err != nil {
				return err
			}
		}

		for _, seedEvent := range seedChurch.Events {
			event := models.Event{
				ChurchID:            church.ID,
				Type:                seedEvent.Type,
				StartTime:           seedEvent.StartTime,
				EndTime:             seedEvent.EndTime,
				Location:            seedEvent.Location,
				RequiredSlots:       seedEvent.RequiredSlots,
				RequiresExperienced: seedEvent.RequiresExperienced,
				IsPublic:            seedEvent.IsPublic,
				Description:         seedEvent.Description,
			}
			if event.RequiredSlots < 1 {
				event.RequiredSlots = 1
			}
			if err := eventRepo.Create(&event); err != nil {
				return err
			}
		}

		log.Info().
			Str("church", church.Name).
			Int("users", len(seedChurch.Users)).
			Int("events", len(seedChurch.Events)).
			Msg("Seeded church")
	}

	return nil
}
