package scheduling

// Role is the closed set of account roles
type Role string

const (
	RoleOwner      Role = "owner"      // platform operator
	RoleSindico    Role = "sindico"    // building manager
	RoleSubsindico Role = "subsindico" // deputy manager
	RoleZelador    Role = "zelador"    // caretaker staff
	RoleMorador    Role = "morador"    // resident
	RolePrestador  Role = "prestador"  // external service provider
)

// IsValid checks if the role is one of the known roles
func (r Role) IsValid() bool {
	_, ok := capabilities[r]
	return ok
}

// Capability names an action gated by role
type Capability string

const (
	CapViewBoard            Capability = "board.view"
	CapManageDuties         Capability = "duties.manage"
	CapCompleteDuties       Capability = "duties.complete"
	CapViewReservations     Capability = "reservations.view"
	CapBookReservations     Capability = "reservations.book"
	CapCompleteReservations Capability = "reservations.complete"
	CapDeleteReservations   Capability = "reservations.delete"
	CapOverrideReservations Capability = "reservations.override"
	CapViewCleaning         Capability = "cleaning.view"
	CapManageCleaning       Capability = "cleaning.manage"
	CapManageSauna          Capability = "sauna.manage"
	CapAdminister           Capability = "admin"
)

var capabilities = map[Role]map[Capability]bool{
	RoleOwner: set(CapViewBoard, CapManageDuties, CapCompleteDuties, CapViewReservations, CapBookReservations,
		CapCompleteReservations, CapDeleteReservations, CapOverrideReservations, CapViewCleaning, CapManageCleaning, CapManageSauna, CapAdminister),
	RoleSindico: set(CapViewBoard, CapManageDuties, CapCompleteDuties, CapViewReservations, CapBookReservations,
		CapCompleteReservations, CapDeleteReservations, CapOverrideReservations, CapViewCleaning, CapManageCleaning,
		CapManageSauna, CapAdminister),
	RoleSubsindico: set(CapViewBoard, CapManageDuties, CapCompleteDuties, CapViewReservations, CapBookReservations,
		CapCompleteReservations, CapDeleteReservations, CapOverrideReservations, CapViewCleaning, CapManageCleaning,
		CapManageSauna),
	RoleZelador: set(CapViewBoard, CapCompleteDuties, CapViewReservations, CapBookReservations,
		CapCompleteReservations, CapViewCleaning, CapManageCleaning, CapManageSauna),
	RoleMorador:   set(CapViewReservations, CapBookReservations),
	RolePrestador: set(CapViewBoard, CapViewCleaning, CapManageCleaning),
}

func set(caps ...Capability) map[Capability]bool {
	m := make(map[Capability]bool, len(caps))
	for _, c := range caps {
		m[c] = true
	}
	return m
}

// Can reports whether the role holds the capability. Unknown roles hold none.
func (r Role) Can(c Capability) bool {
	return capabilities[r][c]
}

// Actor identifies who performs a mutation. It is passed explicitly into
// every mutating call and stamped onto the records it produces.
type Actor struct {
	ID   string `json:"id"`
	Name string `json:"name"`
	Role Role   `json:"role"`
}

// Can reports whether the actor's role holds the capability
func (a Actor) Can(c Capability) bool {
	return a.Role.Can(c)
}

// DisplayName falls back to the id when no name is known
func (a Actor) DisplayName() string {
	if a.Name != "" {
		return a.Name
	}
	return a.ID
}
