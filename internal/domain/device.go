package domain

// DeviceKind groups devices for display and fuzzy matching. Several devices
// may share a kind (five lights in different rooms), but ids are unique and
// immutable for the process lifetime.
type DeviceKind string

const (
	DeviceKindLight      DeviceKind = "light"
	DeviceKindFan        DeviceKind = "fan"
	DeviceKindTV         DeviceKind = "tv"
	DeviceKindAC         DeviceKind = "ac"
	DeviceKindSpeaker    DeviceKind = "speaker"
	DeviceKindLock       DeviceKind = "lock"
	DeviceKindThermostat DeviceKind = "thermostat"
	DeviceKindVacuum     DeviceKind = "vacuum"
	DeviceKindCamera     DeviceKind = "camera"
)

type Device struct {
	ID     string     `json:"id"`
	Kind   DeviceKind `json:"kind"`
	Room   string     `json:"room"`
	Status Action     `json:"status"`
}
