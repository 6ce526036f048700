package dto

type SavedEntryPayload struct {
	Kind string `json:"type"`
	Key  string `json:"key"`
}

type ListSavedResponse struct {
	Saved []SavedEntryPayload `json:"saved"`
}

type ToggleSavedResponse struct {
	Saved bool `json:"saved"`
}

type TrafficRequest struct {
	Time string `json:"time"`
}

type TrafficResponse struct {
	Time    string  `json:"time"`
	Label   string  `json:"label"`
	Weight  int     `json:"weight"`
	Opacity float64 `json:"opacity"`
	Level   string  `json:"level"`
	Note    string  `json:"note"`
}

type OnboardingResponse struct {
	Done bool `json:"done"`
}
