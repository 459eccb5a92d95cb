package proxyui

// StateError is the reason a proxy declaration was rejected or an existing
// association was torn down.
type StateError uint8

//go:generate go tool stringer -type=StateError

const (
	// ErrMultipleProxyUIPerEntity means the proxy entity is already mapped to
	// a different target.
	ErrMultipleProxyUIPerEntity StateError = iota + 1
	// ErrDuplicateProxyUI means the proxy entity is already mapped to the
	// same target.
	ErrDuplicateProxyUI
	// ErrTargetNotFound means the target entity is not alive.
	ErrTargetNotFound
	// ErrTargetHasUINode means the target carries a UI node of its own.
	ErrTargetHasUINode
	// ErrBrokenAssociation means the target no longer refers back to the proxy.
	ErrBrokenAssociation
)

func (e StateError) Error() string {
	switch e {
	case ErrMultipleProxyUIPerEntity:
		return "multiple proxy UI per entity"
	case ErrDuplicateProxyUI:
		return "duplicate proxy UI"
	case ErrTargetNotFound:
		return "proxy target not found"
	case ErrTargetHasUINode:
		return "proxied entities can not contain ui nodes"
	case ErrBrokenAssociation:
		return "proxy target does not refer back to its proxy"
	default:
		return e.String()
	}
}
