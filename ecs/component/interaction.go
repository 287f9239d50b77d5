package component

// Interactor can come into range of interactables. Width and Height are the
// full extents of a box centred on the entity's position.
type Interactor struct {
	Width  float64
	Height float64
}

// Interactable can be triggered by an interactor in range. ID is unique in a scene.
type Interactable struct {
	ID     string
	Width  float64
	Height float64
	// First stays true until the interactable has been triggered once.
	First bool
}

// InRange is attached to an interactor that overlaps an interactable.
type InRange struct {
	ID string
}

// Highlight is attached to an interactable that should pulse. Offset is the
// clock time at which highlighting began.
type Highlight struct {
	Offset float64
}

// InteractionEvent asks the furnishing with ID to react.
type InteractionEvent struct {
	ID string
}

// ProximityKind describes how an interactor's target changed.
type ProximityKind int

const (
	ProximityEnter ProximityKind = iota
	ProximityChange
	ProximityExit
)

func (k ProximityKind) String() string {
	switch k {
	case ProximityChange:
		return "change"
	case ProximityExit:
		return "exit"
	default:
		return "enter"
	}
}

// ProximityEvent reports an InRange transition. From is empty on enter, To on exit.
type ProximityEvent struct {
	Interactor uint64
	Kind       ProximityKind
	From       string
	To         string
}
