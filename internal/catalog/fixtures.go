package catalog

import (
	"fmt"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/wareguard/hazardhunt/internal/safety"
)

// Demo builds the demo catalog: three warehouse scenes, two quizzes, and five
// users. Passwords are hashed at start-up with bcrypt.MinCost; this is demo
// fixture data, not credential storage.
func Demo() (*Catalog, error) {
	users, err := demoUsers()
	if err != nil {
		return nil, fmt.Errorf("building demo users: %w", err)
	}
	return New(demoScenes(), demoQuizzes(), users)
}

func demoScenes() []safety.Scene {
	storageHazards := []safety.Hazard{
		{ID: "h1", X: -6, Y: 0.02, Z: 3, Type: safety.HazardSpill, Description: "Oil spill on floor - slip hazard", Severity: safety.SeverityHigh, Size: 1.5},
		{ID: "h2", X: 4, Y: 2.5, Z: -8, Type: safety.HazardStacking, Description: "Unstable pallet stacking - falling hazard", Severity: safety.SeverityCritical, Size: 1},
		{ID: "h3", X: -10, Y: 1.5, Z: 0, Type: safety.HazardExit, Description: "Blocked emergency exit with boxes", Severity: safety.SeverityCritical, Size: 1},
		{ID: "h4", X: 8, Y: 0.3, Z: 5, Type: safety.HazardEquipment, Description: "Damaged forklift with flat tire", Severity: safety.SeverityMedium, Size: 1.2},
	}

	loadingHazards := []safety.Hazard{
		{ID: "h5", X: -5, Y: 0.02, Z: 6, Type: safety.HazardSpill, Description: "Water puddle from leaking dock door", Severity: safety.SeverityMedium, Size: 2},
		{ID: "h6", X: 6, Y: 0, Z: -4, Type: safety.HazardElectrical, Description: "Exposed electrical wiring", Severity: safety.SeverityCritical, Size: 0.5},
		{ID: "h7", X: 0, Y: 3, Z: 8, Type: safety.HazardLighting, Description: "Broken overhead light - dim work area", Severity: safety.SeverityLow, Size: 1},
		{ID: "h8", X: -8, Y: 1, Z: -6, Type: safety.HazardPPE, Description: "Missing safety signage at dock edge", Severity: safety.SeverityMedium, Size: 1},
	}

	chemicalHazards := []safety.Hazard{
		{ID: "h9", X: -4, Y: 0.02, Z: -5, Type: safety.HazardChemical, Description: "Leaking chemical drum - green liquid", Severity: safety.SeverityCritical, Size: 1.8},
		{ID: "h10", X: 5, Y: 1.2, Z: -3, Type: safety.HazardFire, Description: "Fire extinguisher blocked by barrels", Severity: safety.SeverityHigh, Size: 1},
		{ID: "h11", X: 0, Y: 0, Z: 4, Type: safety.HazardPPE, Description: "Safety shower obstructed", Severity: safety.SeverityHigh, Size: 1},
		{ID: "h12", X: -7, Y: 1.5, Z: 2, Type: safety.HazardStacking, Description: "Improperly stacked chemical containers", Severity: safety.SeverityCritical, Size: 1},
		{ID: "h13", X: 8, Y: 0.5, Z: 0, Type: safety.HazardElectrical, Description: "Damaged electrical panel cover", Severity: safety.SeverityHigh, Size: 0.8},
		{ID: "h14", X: 3, Y: 2.8, Z: -7, Type: safety.HazardLighting, Description: "Flickering emergency light", Severity: safety.SeverityMedium, Size: 0.6},
	}

	return []safety.Scene{
		{
			ID:          "scene1",
			Name:        "Main Storage Area",
			Description: "Identify hazards in the primary warehouse storage zone",
			Archetype:   safety.ArchetypeStorage,
			Hazards:     storageHazards,
			Duration:    10,
			Difficulty:  safety.DifficultyBeginner,
		},
		{
			ID:          "scene2",
			Name:        "Loading Dock",
			Description: "Safety assessment of the shipping and receiving area",
			Archetype:   safety.ArchetypeLoading,
			Hazards:     loadingHazards,
			Duration:    15,
			Difficulty:  safety.DifficultyIntermediate,
		},
		{
			ID:          "scene3",
			Name:        "Chemical Storage",
			Description: "Hazardous materials handling zone inspection",
			Archetype:   safety.ArchetypeChemical,
			Hazards:     chemicalHazards,
			Duration:    20,
			Difficulty:  safety.DifficultyAdvanced,
		},
	}
}

func demoQuizzes() []safety.Quiz {
	return []safety.Quiz{
		{
			ID:           "quiz1",
			Title:        "Warehouse Safety Fundamentals",
			Description:  "Basic safety protocols and emergency procedures",
			PassingScore: 70,
			TimeLimit:    15,
			Questions: []safety.QuizQuestion{
				{
					ID:       "q1",
					Question: "What should you do first when you discover a chemical spill?",
					Options: []string{
						"Clean it up immediately",
						"Alert nearby workers and evacuate the area",
						"Continue working and report it later",
						"Take a photo for documentation",
					},
					CorrectAnswer: 1,
					Explanation:   "Safety first! Alert others and evacuate before any cleanup attempts.",
					Category:      "Emergency Response",
				},
				{
					ID:            "q2",
					Question:      "What is the maximum height for manual lifting without assistance?",
					Options:       []string{"Above shoulder height", "Above head height", "Waist to shoulder", "Any height"},
					CorrectAnswer: 2,
					Explanation:   "Manual lifting should be done between waist and shoulder height to prevent injuries.",
					Category:      "Manual Handling",
				},
				{
					ID:            "q3",
					Question:      "How often should fire extinguishers be inspected?",
					Options:       []string{"Monthly", "Quarterly", "Annually", "Only when used"},
					CorrectAnswer: 0,
					Explanation:   "Monthly visual inspections ensure fire extinguishers are ready for use.",
					Category:      "Fire Safety",
				},
				{
					ID:       "q4",
					Question: "What is the primary purpose of PPE?",
					Options: []string{
						"To look professional",
						"To protect against workplace hazards",
						"To identify employees",
						"For comfort while working",
					},
					CorrectAnswer: 1,
					Explanation:   "PPE is designed to protect workers from workplace hazards and reduce injury risk.",
					Category:      "PPE",
				},
				{
					ID:       "q5",
					Question: "When operating a forklift, you should:",
					Options: []string{
						"Drive as fast as possible to save time",
						"Always honk when turning corners",
						"Text while driving if needed",
						"Carry passengers on the forks",
					},
					CorrectAnswer: 1,
					Explanation:   "Honking at corners alerts pedestrians and other operators of your presence.",
					Category:      "Equipment Safety",
				},
			},
		},
		{
			ID:           "quiz2",
			Title:        "Hazard Identification",
			Description:  "Advanced hazard recognition and risk assessment",
			PassingScore: 80,
			TimeLimit:    20,
			Questions: []safety.QuizQuestion{
				{
					ID:            "q6",
					Question:      "Which hazard classification requires immediate evacuation?",
					Options:       []string{"Low risk", "Medium risk", "High risk", "Critical/Imminent danger"},
					CorrectAnswer: 3,
					Explanation:   "Critical hazards with imminent danger require immediate evacuation.",
					Category:      "Risk Assessment",
				},
				{
					ID:            "q7",
					Question:      "What color are warning signs typically?",
					Options:       []string{"Red and white", "Yellow and black", "Blue and white", "Green and white"},
					CorrectAnswer: 1,
					Explanation:   "Yellow and black is the standard color combination for warning signs.",
					Category:      "Safety Signage",
				},
			},
		},
	}
}

func demoUsers() ([]safety.User, error) {
	type seedUser struct {
		id, name, email, department, password string
		role                                  safety.UserRole
		status                                safety.UserStatus
		createdAt                             string
		lastLogin                             string
	}

	seeds := []seedUser{
		{"1", "John Martinez", "john.martinez@warehouse.com", "Receiving", "training123", safety.RoleStaff, safety.UserActive, "2024-01-15", "2025-01-14"},
		{"2", "Sarah Chen", "sarah.chen@warehouse.com", "Shipping", "training123", safety.RoleStaff, safety.UserActive, "2024-02-20", "2025-01-13"},
		{"3", "Mike Johnson", "mike.johnson@warehouse.com", "Safety", "admin123", safety.RoleAdmin, safety.UserActive, "2023-06-01", "2025-01-15"},
		{"4", "Emily Rodriguez", "emily.rodriguez@warehouse.com", "Inventory", "training123", safety.RoleStaff, safety.UserActive, "2024-03-10", "2025-01-12"},
		{"5", "David Kim", "david.kim@warehouse.com", "Receiving", "training123", safety.RoleStaff, safety.UserInactive, "2024-01-05", "2024-12-20"},
	}

	users := make([]safety.User, 0, len(seeds))
	for _, s := range seeds {
		hash, err := bcrypt.GenerateFromPassword([]byte(s.password), bcrypt.MinCost)
		if err != nil {
			return nil, fmt.Errorf("hashing password for %s: %w", s.email, err)
		}
		created, _ := time.Parse("2006-01-02", s.createdAt)
		last, _ := time.Parse("2006-01-02", s.lastLogin)
		users = append(users, safety.User{
			ID:           s.id,
			Name:         s.name,
			Email:        s.email,
			Role:         s.role,
			Status:       s.status,
			Department:   s.department,
			PasswordHash: string(hash),
			CreatedAt:    created,
			LastLogin:    &last,
		})
	}
	return users, nil
}
