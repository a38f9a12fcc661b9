// Package registry implements the identifier registry described in
// spec.md §4.2: a monotonic fresh-id counter, a bidirectional binding
// between node ids and source-side expression handles, and a LIFO
// stack of lexical scopes mapping names to (scoped id, is-generic).
package registry

import (
	"fmt"
	"strconv"

	"golang.org/x/text/unicode/norm"

	"github.com/sunholo/hminfer/internal/errs"
	"github.com/sunholo/hminfer/internal/types"
)

// Binding is what a scope maps a surface name to: the id standing for
// that name's type, and whether occurrences of the name should be
// generalized (let-bound, true) or not (lambda-bound, false).
type Binding struct {
	ID        types.ID
	IsGeneric bool
}

// Scope is one level of the lexical scope stack.
type Scope map[string]Binding

// Registry is the mutable bookkeeping structure threaded through an
// AST walk. It is not safe for concurrent use, matching the engine's
// single-threaded, synchronous design (spec.md §5).
//
// The bidirectional idToHandle/handleToID maps are kept in sync the
// same way internal/sid.SIDMap keeps SurfaceToCore/CoreToSurface in
// sync — adapted here from stable source-location hashes to the
// registry's three id namespaces (fresh int, var_*, gen_*).
type Registry struct {
	nextID     int
	idToHandle map[types.ID]any
	handleToID map[any]types.ID
	scopes     []Scope
}

// New returns an empty registry with its fresh-id counter starting at 1.
func New() *Registry {
	return &Registry{
		idToHandle: make(map[types.ID]any),
		handleToID: make(map[any]types.ID),
	}
}

// GenerateNewID returns a fresh, strictly monotonic integer id.
func (r *Registry) GenerateNewID() types.ID {
	r.nextID++
	return types.ID(strconv.Itoa(r.nextID))
}

// NewVarID mints a fresh `var_<name>_<n>` id for a lexical binding
// site (a Lambda parameter or a Let binding name), per spec.md §4.2's
// second id namespace.
func (r *Registry) NewVarID(name string) types.ID {
	r.nextID++
	return types.ID(fmt.Sprintf("var_%s_%d", name, r.nextID))
}

// NewGenericID mints a fresh `gen_<n>.<parent>` id for a generic
// instantiation site — one per occurrence of a generalized (let-bound)
// variable — per spec.md §4.2's third id namespace. parent is the
// scoped id of the variable being instantiated.
func (r *Registry) NewGenericID(parent types.ID) types.ID {
	r.nextID++
	return types.ID(fmt.Sprintf("gen_%d.%s", r.nextID, parent))
}

// AddToRegistry allocates a fresh id and binds it bidirectionally to
// handle. handle must not already be registered.
func (r *Registry) AddToRegistry(handle any) (types.ID, error) {
	if id, ok := r.handleToID[handle]; ok {
		return "", &errs.DuplicateRegistration{ID: id}
	}
	id := r.GenerateNewID()
	r.idToHandle[id] = handle
	r.handleToID[handle] = id
	return id, nil
}

// RegisterForID binds an externally-chosen id (e.g. a gen_* id minted
// by the walker) to handle. Fails if either side is already bound,
// even to the exact same pair — repeating a registration is a caller
// bug, not a no-op. EnsureRegisteredAs is the variant that tolerates
// an identical repeat.
func (r *Registry) RegisterForID(id types.ID, handle any) error {
	if _, ok := r.idToHandle[id]; ok {
		return &errs.DuplicateRegistration{ID: id}
	}
	if existingID, ok := r.handleToID[handle]; ok {
		return &errs.DuplicateRegistration{ID: existingID}
	}
	r.idToHandle[id] = handle
	r.handleToID[handle] = id
	return nil
}

// EnsureRegisteredAs is a no-op if id is already registered to handle,
// and registers the binding otherwise.
func (r *Registry) EnsureRegisteredAs(id types.ID, handle any) error {
	if existing, ok := r.idToHandle[id]; ok {
		if existing == handle {
			return nil
		}
		return &errs.DuplicateRegistration{ID: id}
	}
	return r.RegisterForID(id, handle)
}

// GetIDFor looks up the id bound to handle.
func (r *Registry) GetIDFor(handle any) (types.ID, bool) {
	id, ok := r.handleToID[handle]
	return id, ok
}

// GetRegistered returns the id -> handle binding for id, if any.
func (r *Registry) GetRegistered(id types.ID) (any, bool) {
	h, ok := r.idToHandle[id]
	return h, ok
}

// PushNewScope pushes a new innermost scope. Names are NFC-normalized
// before insertion — following internal/lexer/normalize.go's
// BOM-strip-and-NFC boundary function, applied here at the scope
// boundary instead of the lexer boundary — so that lexically
// equivalent names under different Unicode encodings are identified.
func (r *Registry) PushNewScope(bindings map[string]Binding) {
	scope := make(Scope, len(bindings))
	for name, b := range bindings {
		scope[normalizeName(name)] = b
	}
	r.scopes = append(r.scopes, scope)
}

// PopCurrentScope removes the innermost scope. It is a no-op if the
// scope stack is already empty.
func (r *Registry) PopCurrentScope() {
	if len(r.scopes) == 0 {
		return
	}
	r.scopes = r.scopes[:len(r.scopes)-1]
}

// LookupVarInScope walks the scope stack from innermost to outermost
// and returns the first binding found for name, or false if no scope
// binds it. There is no implicit global scope: an unbound name at the
// top of the stack is simply absent.
func (r *Registry) LookupVarInScope(name string) (Binding, bool) {
	name = normalizeName(name)
	for i := len(r.scopes) - 1; i >= 0; i-- {
		if b, ok := r.scopes[i][name]; ok {
			return b, true
		}
	}
	return Binding{}, false
}

// ScopeDepth returns the current nesting depth of the scope stack.
func (r *Registry) ScopeDepth() int {
	return len(r.scopes)
}

func normalizeName(name string) string {
	if norm.NFC.IsNormalString(name) {
		return name
	}
	return norm.NFC.String(name)
}
