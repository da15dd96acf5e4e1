package variant

// Echoer is the capability shared by every alternative. A container forwards
// Echo to whichever alternative is live.
type Echoer interface {
	Echo() string
}

// Alternative constrains the types a container may hold. Clone must return
// an independent deep copy; containers call it only from Clone.
//
// Alternatives must also be relocatable: a plain Go assignment followed by
// discarding the source must leave exactly one owner. Types holding
// self-referential pointers do not qualify.
type Alternative[T any] interface {
	Echoer
	Clone() T
}

// Dropper is optionally implemented by alternatives that release resources.
// Drop is called exactly once for each value a container destroys, that is
// on Set over a live value and on Drop. Values moved out with Take or
// Replace belong to the caller and are never dropped by the container.
//
// Drop must have a value receiver unless the alternative is itself a
// pointer type.
type Dropper interface {
	Drop()
}
