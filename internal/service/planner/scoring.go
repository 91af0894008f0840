package planner

import (
	"strings"

	prommetrics "github.com/lukasbehr/messecall/internal/metrics"
	"github.com/lukasbehr/messecall/internal/models"
)

// Score adjustments. All are discounts on the historical-load base cost.
const (
	preferredLocationBonus = 1.0
	favoriteTypeBonus      = 0.5
	partnerBonus           = 0.25
	volunteerBonus         = 1.5
)

// Candidate reasons, surfaced verbatim to coordinators. The fairness
// reason always comes first.
const (
	reasonFairness          = "Fairness basierend auf bisherigen Einsätzen"
	reasonPreferredLocation = "Bevorzugter Ort"
	reasonFavoriteType      = "Lieblingsgottesdienst"
	reasonPartnerAvailable  = "Wunschpartner verfügbar"
	reasonVolunteered       = "Freiwillige Zusage"
)

// scoreCandidates applies the eligibility filter and the fairness scorer
// to every assignable user of the event's church, in user-id order.
func (s *Service) scoreCandidates(event *models.Event) ([]Candidate, error) {
	available, err := s.availabilityRepo.AvailableUserIDs(event.StartTime, event.EndTime)
	if err != nil {
		return nil, err
	}
	assignmentCounts, err := s.assignmentRepo.CountByUserForChurch(event.ChurchID)
	if err != nil {
		return nil, err
	}
	volunteers, err := s.eventRepo.VolunteerUserIDs(event.ID)
	if err != nil {
		return nil, err
	}
	users, err := s.userRepo.ListAssignable(event.ChurchID)
	if err != nil {
		return nil, err
	}

	var candidates []Candidate
	for _, user := range users {
		if !available[user.ID] {
			continue
		}
		if event.RequiresExperienced && user.ExperienceLevel < 2 {
			continue
		}

		score := float64(assignmentCounts[user.ID])
		reasons := []string{reasonFairness}

		preference, err := s.userRepo.FindPreference(user.ID)
		if err != nil {
			return nil, err
		}
		if preference != nil {
			if containsString(preference.PreferredLocations, event.Location) {
				score -= preferredLocationBonus
				reasons = append(reasons, reasonPreferredLocation)
			}
			if containsString(preference.FavoriteEventTypes, event.Type) {
				score -= favoriteTypeBonus
				reasons = append(reasons, reasonFavoriteType)
			}
			if partnerAvailable(preference.PartnerUserIDs, available) {
				score -= partnerBonus
				reasons = append(reasons, reasonPartnerAvailable)
			}
		}
		if volunteers[user.ID] {
			score -= volunteerBonus
			reasons = append(reasons, reasonVolunteered)
		}

		candidates = append(candidates, Candidate{
			UserID: user.ID,
			Score:  score,
			Reason: strings.Join(reasons, "; "),
		})
	}

	prommetrics.EligibleCandidates.Observe(float64(len(candidates)))

	return candidates, nil
}

// partnerAvailable reports whether at least one named partner is in the
// availability set for the event.
func partnerAvailable(partnerIDs []int64, available map[uint]bool) bool {
	for _, partnerID := range partnerIDs {
		if partnerID > 0 && available[uint(partnerID)] {
			return true
		}
	}
	return false
}

func containsString(values []string, target string) bool {
	for _, value := range values {
		if value == target {
			return true
		}
	}
	return false
}
