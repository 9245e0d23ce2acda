package resource

// Handle is an opaque reference to a value in a table.
// Handle 0 is reserved and always invalid.
//
// The low 20 bits select a slot, the high 12 bits carry the slot generation,
// so a handle that outlives its value never resolves to a later occupant of
// the same slot.
type Handle uint32

const (
	slotBits = 20
	slotMask = 1<<slotBits - 1
	genMask  = 1<<(32-slotBits) - 1

	// MaxSlots is the number of values a table can hold at once.
	MaxSlots = slotMask
)

func makeHandle(slot int, gen uint32) Handle {
	return Handle((gen&genMask)<<slotBits | uint32(slot+1))
}

func (h Handle) slot() int { return int(uint32(h)&slotMask) - 1 }

func (h Handle) gen() uint32 { return uint32(h) >> slotBits }

// EventType identifies a lifecycle notification.
type EventType uint8

const (
	EventCreated EventType = iota
	EventDropped
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventDropped:
		return "dropped"
	default:
		return "unknown"
	}
}

// Event represents a lifecycle event.
type Event struct {
	Value  any
	Handle Handle
	TypeID uint32
	Type   EventType
}

// Observer receives notifications about lifecycle events.
type Observer interface {
	OnResourceEvent(Event)
}

// ObserverFunc adapts a function to Observer. Function observers cannot be
// unsubscribed.
type ObserverFunc func(Event)

func (f ObserverFunc) OnResourceEvent(e Event) { f(e) }

// Dropper is optionally implemented by values that need cleanup when the
// table releases them.
type Dropper interface {
	Drop()
}
