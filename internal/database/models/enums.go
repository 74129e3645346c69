package models

// DutyKind defines how a duty recurs
type DutyKind string

const (
	DutyKindRecurring DutyKind = "recurring"
	DutyKindOneOff    DutyKind = "one_off"
)

// ShiftType defines the operational shift a duty belongs to
type ShiftType string

const (
	ShiftTypeDay   ShiftType = "day"
	ShiftTypeNight ShiftType = "night"
)

// SpaceType defines the bookable shared spaces of a condominium
type SpaceType string

const (
	SpaceBarbecue   SpaceType = "churrasqueira"
	SpaceSocialHall SpaceType = "social"
	SpaceKiosk      SpaceType = "quiosque"
	SpaceDrySauna   SpaceType = "sauna_seca"
	SpaceSteamSauna SpaceType = "sauna_umida"
)

// ReservationStatus defines the lifecycle states of a reservation
type ReservationStatus string

const (
	ReservationStatusBooked    ReservationStatus = "booked"
	ReservationStatusCompleted ReservationStatus = "completed"
	ReservationStatusCanceled  ReservationStatus = "canceled"
)

// CleaningStatus defines the lifecycle states of a derived cleaning duty
type CleaningStatus string

const (
	CleaningStatusPending CleaningStatus = "pending"
	CleaningStatusDone    CleaningStatus = "done"
)

// SaunaSessionStatus defines the lifecycle states of a walk-in sauna session
type SaunaSessionStatus string

const (
	SaunaSessionActive SaunaSessionStatus = "active"
	SaunaSessionDone   SaunaSessionStatus = "done"
)

// IsValid checks if the DutyKind is valid
func (k DutyKind) IsValid() bool {
	switch k {
	case DutyKindRecurring, DutyKindOneOff:
		return true
	}
	return false
}

// IsValid checks if the ShiftType is valid
func (s ShiftType) IsValid() bool {
	switch s {
	case ShiftTypeDay, ShiftTypeNight:
		return true
	}
	return false
}

// IsValid checks if the SpaceType is one of the bookable spaces
func (s SpaceType) IsValid() bool {
	switch s {
	case SpaceBarbecue, SpaceSocialHall, SpaceKiosk, SpaceDrySauna, SpaceSteamSauna:
		return true
	}
	return false
}

// IsSauna reports whether the space also takes walk-in sessions
func (s SpaceType) IsSauna() bool {
	return s == SpaceDrySauna || s == SpaceSteamSauna
}

// Label returns the display name of the space
func (s SpaceType) Label() string {
	switch s {
	case SpaceBarbecue:
		return "Churrasqueira"
	case SpaceSocialHall:
		return "Salão Social"
	case SpaceKiosk:
		return "Quiosque"
	case SpaceDrySauna:
		return "Sauna Seca"
	case SpaceSteamSauna:
		return "Sauna Úmida"
	}
	return string(s)
}

// AllSpaces returns the bookable spaces in display order
func AllSpaces() []SpaceType {
	return []SpaceType{SpaceBarbecue, SpaceSocialHall, SpaceKiosk, SpaceDrySauna, SpaceSteamSauna}
}

// IsValid checks if the ReservationStatus is valid
func (s ReservationStatus) IsValid() bool {
	switch s {
	case ReservationStatusBooked, ReservationStatusCompleted, ReservationStatusCanceled:
		return true
	}
	return false
}

// IsTerminal reports whether no further transition is permitted
func (s ReservationStatus) IsTerminal() bool {
	return s == ReservationStatusCompleted || s == ReservationStatusCanceled
}

// IsValid checks if the CleaningStatus is valid
func (s CleaningStatus) IsValid() bool {
	switch s {
	case CleaningStatusPending, CleaningStatusDone:
		return true
	}
	return false
}

// IsValid checks if the SaunaSessionStatus is valid
func (s SaunaSessionStatus) IsValid() bool {
	return s == SaunaSessionActive || s == SaunaSessionDone
}
