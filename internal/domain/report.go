package domain

type EventAvailability struct {
	Event     *Event `json:"event"`
	Remaining int    `json:"remaining"`
}

type Dashboard struct {
	BuildingID string                                    `json:"building_id"`
	Resources  map[ResourceClass]map[ResourceStatus]int `json:"resources"`
	Entries    map[EntryStatus]int                       `json:"entries"`
	OpenEvents []EventAvailability                       `json:"open_events"`
}
