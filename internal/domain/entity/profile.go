package entity

import "time"

const (
	// ModeRegistered marks accounts created through username/password registration.
	ModeRegistered = "registered"

	DefaultTheme         = "light"
	DefaultPlantCapacity = 3
	DefaultBalance       = 60
)

// GameState is the capacity bookkeeping nested in a profile.
type GameState struct {
	PlantCapacity           int `json:"plantCapacity"`
	CalculatedPlantCapacity int `json:"calculatedPlantCapacity"`
	UsedPlantCapacity       int `json:"usedPlantCapacity"`
}

// HasFreeCapacity reports whether another plant fits.
func (g GameState) HasFreeCapacity() bool {
	return g.UsedPlantCapacity < g.PlantCapacity
}

// Profile is the player meta-state document.
type Profile struct {
	ID                 AccountID `json:"_id"`
	Username           string    `json:"username"`
	Mode               string    `json:"mode"`
	OnboardingComplete bool      `json:"onboardingComplete"`
	Theme              string    `json:"theme"`
	Game               GameState `json:"game"`
	Balance            int       `json:"balance"`
	CreatedAt          time.Time `json:"createdAt"`
	LastActive         time.Time `json:"lastActive"`
	LastAtShop         time.Time `json:"lastAtShop"`
}

// NewProfile builds the starting profile of a freshly registered account.
func NewProfile(id AccountID, username string, now time.Time) *Profile {
	return &Profile{
		ID:                 id,
		Username:           username,
		Mode:               ModeRegistered,
		OnboardingComplete: false,
		Theme:              DefaultTheme,
		Game: GameState{
			PlantCapacity:           DefaultPlantCapacity,
			CalculatedPlantCapacity: DefaultPlantCapacity,
			UsedPlantCapacity:       0,
		},
		Balance:    DefaultBalance,
		CreatedAt:  now,
		LastActive: now,
		LastAtShop: now,
	}
}
